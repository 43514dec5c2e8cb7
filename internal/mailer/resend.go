package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/baobabstack/website-api/internal/config"
	"github.com/baobabstack/website-api/internal/pkg/httpretry"
)

// ResendClient is a Resend API client (https://resend.com).
type ResendClient struct {
	baseURL    string
	apiKey     string
	httpClient httpretry.HTTPDoer
}

// NewResendClient creates a new Resend API client. The API key may be empty
// at construction time; sending then fails with a configuration error.
func NewResendClient(cfg config.EmailConfig) *ResendClient {
	return &ResendClient{
		baseURL: cfg.ResendBaseURL,
		apiKey:  cfg.ResendAPIKey,
		httpClient: httpretry.NewRetryClient(&http.Client{
			Timeout: cfg.Timeout(),
		}, 3),
	}
}

type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Send delivers one email via POST /emails. An Idempotency-Key header keeps
// transport-level retries from producing duplicate deliveries.
func (c *ResendClient) Send(ctx context.Context, msg Message) error {
	if c.apiKey == "" {
		return fmt.Errorf("resend: missing RESEND_API_KEY")
	}

	body, err := json.Marshal(resendPayload{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		return fmt.Errorf("resend: encoding payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("resend: creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", uuid.New().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("resend: executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("resend: API error (status %d): %s", resp.StatusCode, string(respBody))
	}
	return nil
}
