// Package api exposes the public website endpoints and the admin
// moderation surface over HTTP.
package api

import (
	"context"
	"net/http"

	"github.com/baobabstack/website-api/internal/contact"
	"github.com/baobabstack/website-api/internal/content"
	"github.com/baobabstack/website-api/internal/ratelimit"
)

// SubmissionStore is the moderation-side view of submission storage.
type SubmissionStore interface {
	Get(ctx context.Context, id int64) (*contact.Submission, error)
	List(ctx context.Context, params contact.ListParams) ([]contact.Submission, int64, error)
	Update(ctx context.Context, id int64, params contact.UpdateParams) (*contact.Submission, error)
	All(ctx context.Context) ([]contact.Submission, error)
}

// Handlers bundles the dependencies every route handler draws from.
type Handlers struct {
	contactSvc *contact.Service
	store      SubmissionStore
	content    *content.Source
	limiter    *ratelimit.Limiter // nil when rate limiting is disabled
}

// NewHandlers creates the handler set. limiter may be nil.
func NewHandlers(svc *contact.Service, store SubmissionStore, src *content.Source, limiter *ratelimit.Limiter) *Handlers {
	return &Handlers{
		contactSvc: svc,
		store:      store,
		content:    src,
		limiter:    limiter,
	}
}

// HealthCheck reports process liveness.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
