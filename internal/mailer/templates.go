package mailer

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/baobabstack/website-api/internal/contact"
)

var operatorTmpl = template.Must(template.New("operator").Parse(`<div style="font-family: system-ui, -apple-system, Segoe UI, Roboto, Helvetica, Arial, sans-serif; line-height: 1.6; color: #111">
  <h2>New Contact Form Submission</h2>
  <p><strong>Subject:</strong> {{.Subject}}</p>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  {{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
  {{if .Company}}<p><strong>Company:</strong> {{.Company}}</p>{{end}}
  <hr />
  <p style="white-space: pre-wrap">{{.Message}}</p>
</div>`))

var acknowledgmentTmpl = template.Must(template.New("acknowledgment").Parse(`<div style="font-family: system-ui, -apple-system, Segoe UI, Roboto, Helvetica, Arial, sans-serif; line-height: 1.6; color: #111">
  <h2>Thanks for contacting Baobab Stack</h2>
  <p>Hi {{.Name}},</p>
  <p>We received your message and will get back to you shortly.</p>
  <p>Best regards,<br/>Baobab Stack Team</p>
</div>`))

// RenderOperatorNotification produces the operator-facing email body
// containing all submitted fields.
func RenderOperatorNotification(sub *contact.Submission) (string, error) {
	var buf strings.Builder
	if err := operatorTmpl.Execute(&buf, sub); err != nil {
		return "", fmt.Errorf("rendering operator notification: %w", err)
	}
	return buf.String(), nil
}

// RenderAcknowledgment produces the submitter-facing acknowledgment body,
// which carries only the submitter's name.
func RenderAcknowledgment(name string) (string, error) {
	var buf strings.Builder
	if err := acknowledgmentTmpl.Execute(&buf, struct{ Name string }{Name: name}); err != nil {
		return "", fmt.Errorf("rendering acknowledgment: %w", err)
	}
	return buf.String(), nil
}
