package contact

import (
	"net/url"
	"strings"
)

// Validate checks an inbound submission against the contact-form schema and
// returns one FieldError per violated rule. An empty slice means the input is
// acceptable. Phone and company are optional and never produce errors.
func Validate(in SubmissionInput) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Name is required"})
	}
	if !ValidEmail(in.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "Invalid email address"})
	}
	if strings.TrimSpace(in.Subject) == "" {
		errs = append(errs, FieldError{Field: "subject", Message: "Please select a subject"})
	}
	if strings.TrimSpace(in.Message) == "" {
		errs = append(errs, FieldError{Field: "message", Message: "Message is required"})
	}
	if !in.AgreeToPrivacyPolicy {
		errs = append(errs, FieldError{Field: "agreeToPrivacyPolicy", Message: "You must agree to the privacy policy"})
	}

	return errs
}

// ValidEmail reports whether email looks like a deliverable address.
// Length limits follow RFC 5321 (64-char local part, 254-char total).
func ValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if len(email) < 3 || len(email) > 254 {
		return false
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}

	local, domain := parts[0], parts[1]
	if len(local) == 0 || len(local) > 64 {
		return false
	}
	if len(domain) == 0 || len(domain) > 253 {
		return false
	}
	if !strings.Contains(domain, ".") {
		return false
	}

	_, err := url.Parse("mailto:" + email)
	return err == nil
}
