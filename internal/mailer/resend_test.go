package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baobabstack/website-api/internal/config"
)

func TestResendClientSend(t *testing.T) {
	var gotAuth, gotIdempotency string
	var gotPayload resendPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotIdempotency = r.Header.Get("Idempotency-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"msg_123"}`))
	}))
	defer srv.Close()

	client := NewResendClient(config.EmailConfig{
		ResendAPIKey:   "re_test_key",
		ResendBaseURL:  srv.URL,
		TimeoutSeconds: 5,
	})

	err := client.Send(context.Background(), Message{
		From:    "Baobab <no-reply@example.com>",
		To:      []string{"jane@example.com"},
		Subject: "Hello",
		HTML:    "<p>Hi</p>",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer re_test_key", gotAuth)
	assert.NotEmpty(t, gotIdempotency)
	assert.Equal(t, "Baobab <no-reply@example.com>", gotPayload.From)
	assert.Equal(t, []string{"jane@example.com"}, gotPayload.To)
	assert.Equal(t, "Hello", gotPayload.Subject)
}

func TestResendClientSendAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer srv.Close()

	client := NewResendClient(config.EmailConfig{
		ResendAPIKey:   "re_test_key",
		ResendBaseURL:  srv.URL,
		TimeoutSeconds: 5,
	})

	err := client.Send(context.Background(), Message{To: []string{"x@example.com"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "invalid from address")
}

func TestResendClientSendMissingKey(t *testing.T) {
	client := NewResendClient(config.EmailConfig{ResendBaseURL: "https://api.resend.com"})
	err := client.Send(context.Background(), Message{To: []string{"x@example.com"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RESEND_API_KEY")
}
