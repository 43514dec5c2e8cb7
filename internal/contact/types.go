// Package contact implements the contact-form submission pipeline:
// validation, persistence, best-effort notification, and the admin
// moderation workflow over stored submissions.
package contact

import "time"

// Submission lifecycle statuses. Any member may be set at any time via
// moderation; there is no enforced transition order.
const (
	StatusNew        = "NEW"
	StatusInProgress = "IN_PROGRESS"
	StatusResolved   = "RESOLVED"
)

// ValidStatus reports whether s is a member of the status enumeration.
func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// Submission is a stored contact-form entry.
type Submission struct {
	ID                    int64     `json:"id"`
	Name                  string    `json:"name"`
	Email                 string    `json:"email"`
	Phone                 string    `json:"phone,omitempty"`
	Company               string    `json:"company,omitempty"`
	Subject               string    `json:"subject"`
	Message               string    `json:"message"`
	SubscribeToNewsletter bool      `json:"subscribeToNewsletter"`
	AgreeToPrivacyPolicy  bool      `json:"agreeToPrivacyPolicy"`
	Status                string    `json:"status"`
	AdminNote             string    `json:"adminNote,omitempty"`
	SubmittedAt           time.Time `json:"submittedAt"`
}

// SubmissionInput is the untrusted request body of the public contact endpoint.
type SubmissionInput struct {
	Name                  string `json:"name"`
	Email                 string `json:"email"`
	Phone                 string `json:"phone"`
	Company               string `json:"company"`
	Subject               string `json:"subject"`
	Message               string `json:"message"`
	SubscribeToNewsletter bool   `json:"subscribeToNewsletter"`
	AgreeToPrivacyPolicy  bool   `json:"agreeToPrivacyPolicy"`
}

// FieldError describes a single validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// UpdateParams is a partial moderation update. Nil fields are left untouched.
type UpdateParams struct {
	Status    *string `json:"status"`
	AdminNote *string `json:"adminNote"`
}

// ListParams filters and pages the moderation list.
type ListParams struct {
	Query  string
	Status string
	Page   int
	Limit  int
}

// Offset returns the row offset for the 1-based page number.
func (p ListParams) Offset() int {
	page := p.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * p.Limit
}
