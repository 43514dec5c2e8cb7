package contact

import (
	"context"
	"fmt"
	"strings"
)

// Creator persists validated submissions.
type Creator interface {
	Create(ctx context.Context, sub *Submission) error
}

// Notifier is told about persisted submissions. Implementations are
// best-effort: they log their own failures and never return them, so a
// notification outage cannot fail the submission request.
type Notifier interface {
	SubmissionReceived(ctx context.Context, sub *Submission)
}

// Service runs the submission pipeline: validation, persistence, then
// fire-and-forget notification. Persistence commits before notification is
// attempted; a crash between the two leaves a stored record with no email
// sent, which is accepted.
type Service struct {
	store    Creator
	notifier Notifier
}

// NewService creates a submission service. notifier may be nil, in which
// case persisted submissions trigger no emails.
func NewService(store Creator, notifier Notifier) *Service {
	return &Service{store: store, notifier: notifier}
}

// Submit validates and persists a contact-form submission.
// Validation failures come back as field errors with a nil Submission;
// a non-nil error means persistence failed and nothing was stored.
func (s *Service) Submit(ctx context.Context, in SubmissionInput) (*Submission, []FieldError, error) {
	if errs := Validate(in); len(errs) > 0 {
		return nil, errs, nil
	}

	sub := &Submission{
		Name:                  strings.TrimSpace(in.Name),
		Email:                 strings.TrimSpace(in.Email),
		Phone:                 strings.TrimSpace(in.Phone),
		Company:               strings.TrimSpace(in.Company),
		Subject:               strings.TrimSpace(in.Subject),
		Message:               in.Message,
		SubscribeToNewsletter: in.SubscribeToNewsletter,
		AgreeToPrivacyPolicy:  in.AgreeToPrivacyPolicy,
	}

	if err := s.store.Create(ctx, sub); err != nil {
		return nil, nil, fmt.Errorf("creating submission: %w", err)
	}

	if s.notifier != nil {
		s.notifier.SubmissionReceived(ctx, sub)
	}

	return sub, nil, nil
}
