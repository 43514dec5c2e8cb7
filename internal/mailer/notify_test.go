package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baobabstack/website-api/internal/contact"
)

type recordingMailer struct {
	sent []Message
	err  error
}

func (m *recordingMailer) Send(ctx context.Context, msg Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func testSubmission() *contact.Submission {
	return &contact.Submission{
		ID:      12,
		Name:    "Jane Moyo",
		Email:   "jane@example.com",
		Phone:   "+263 77 123 4567",
		Company: "Acme Ltd",
		Subject: "Partnership",
		Message: "Let's talk",
		Status:  contact.StatusNew,
	}
}

func TestSubmissionReceivedSendsBothEmails(t *testing.T) {
	m := &recordingMailer{}
	n := NewNotifier(m, "no-reply@example.com", "ops@example.com")

	n.SubmissionReceived(context.Background(), testSubmission())

	require.Len(t, m.sent, 2)

	operator := m.sent[0]
	assert.Equal(t, []string{"ops@example.com"}, operator.To)
	assert.Equal(t, "New contact: Partnership", operator.Subject)
	assert.Contains(t, operator.HTML, "jane@example.com")
	assert.Contains(t, operator.HTML, "+263 77 123 4567")
	assert.Contains(t, operator.HTML, "Acme Ltd")

	ack := m.sent[1]
	assert.Equal(t, []string{"jane@example.com"}, ack.To)
	assert.Equal(t, "We received your message", ack.Subject)
	assert.Contains(t, ack.HTML, "Jane Moyo")
	// Acknowledgment carries only the name, never the message body
	assert.NotContains(t, ack.HTML, "Let's talk")
}

func TestSubmissionReceivedSkipsOperatorWhenUnconfigured(t *testing.T) {
	m := &recordingMailer{}
	n := NewNotifier(m, "no-reply@example.com", "")

	n.SubmissionReceived(context.Background(), testSubmission())

	require.Len(t, m.sent, 1)
	assert.Equal(t, []string{"jane@example.com"}, m.sent[0].To)
}

func TestSubmissionReceivedSwallowsSendFailures(t *testing.T) {
	m := &recordingMailer{err: errors.New("provider down")}
	n := NewNotifier(m, "no-reply@example.com", "ops@example.com")

	// Must not panic or propagate; the request path treats this as done.
	n.SubmissionReceived(context.Background(), testSubmission())
	assert.Empty(t, m.sent)
}

func TestRenderOperatorNotificationOmitsEmptyOptionalFields(t *testing.T) {
	sub := testSubmission()
	sub.Phone = ""
	sub.Company = ""

	html, err := RenderOperatorNotification(sub)
	require.NoError(t, err)
	assert.NotContains(t, html, "Phone:")
	assert.NotContains(t, html, "Company:")
	assert.Contains(t, html, "Partnership")
}

func TestRenderAcknowledgmentEscapesHTML(t *testing.T) {
	html, err := RenderAcknowledgment(`<script>alert("x")</script>`)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
