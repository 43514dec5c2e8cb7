// Package mailer sends transactional email for the contact pipeline through
// a pluggable provider (Resend or AWS SES).
package mailer

import "context"

// Message is a single outbound HTML email.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Mailer delivers a single message. Implementations make one delivery
// attempt (plus transport-level retries) and report the outcome; there is
// no queue and no delivery confirmation.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
