package mailer

import (
	"context"

	"github.com/baobabstack/website-api/internal/contact"
	"github.com/baobabstack/website-api/internal/pkg/logger"
)

// Notifier sends the two per-submission emails: an operator alert and a
// submitter acknowledgment. Both sends are best-effort and independent;
// failures are logged and never propagated, so a provider outage cannot
// fail a contact-form request.
type Notifier struct {
	mailer     Mailer
	from       string
	operatorTo string
}

// NewNotifier creates a notifier. operatorTo may be empty, in which case the
// operator alert is skipped (with a logged warning) while the acknowledgment
// still goes out.
func NewNotifier(m Mailer, from, operatorTo string) *Notifier {
	return &Notifier{mailer: m, from: from, operatorTo: operatorTo}
}

// SubmissionReceived sends both notification emails sequentially.
// It is called after the submission has been persisted; a crash here leaves
// a stored record with no email sent, which is accepted.
func (n *Notifier) SubmissionReceived(ctx context.Context, sub *contact.Submission) {
	if n.operatorTo == "" {
		logger.Warn("operator address not configured; skipping operator notification",
			"submission_id", sub.ID)
	} else {
		html, err := RenderOperatorNotification(sub)
		if err != nil {
			logger.Error("failed to render operator notification",
				"submission_id", sub.ID, "error", err)
		} else if err := n.mailer.Send(ctx, Message{
			From:    n.from,
			To:      []string{n.operatorTo},
			Subject: "New contact: " + sub.Subject,
			HTML:    html,
		}); err != nil {
			logger.Error("failed to send operator notification",
				"submission_id", sub.ID, "error", err)
		} else {
			logger.Info("operator notification sent", "submission_id", sub.ID)
		}
	}

	html, err := RenderAcknowledgment(sub.Name)
	if err != nil {
		logger.Error("failed to render acknowledgment email",
			"submission_id", sub.ID, "error", err)
		return
	}
	if err := n.mailer.Send(ctx, Message{
		From:    n.from,
		To:      []string{sub.Email},
		Subject: "We received your message",
		HTML:    html,
	}); err != nil {
		logger.Error("failed to send acknowledgment email",
			"submission_id", sub.ID, "email", sub.Email, "error", err)
		return
	}
	logger.Info("acknowledgment email sent", "submission_id", sub.ID, "email", sub.Email)
}
