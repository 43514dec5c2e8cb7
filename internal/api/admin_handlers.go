package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/baobabstack/website-api/internal/contact"
	"github.com/baobabstack/website-api/internal/pkg/httputil"
)

// submissionEnvelope wraps single-submission responses. Message is set only
// on creation.
type submissionEnvelope struct {
	Data    *contact.Submission `json:"data"`
	Message string              `json:"message,omitempty"`
}

// ListSubmissions handles GET /admin/submissions with free-text search,
// status filter, and 1-based pagination. Out-of-range pages return an
// empty list.
func (h *Handlers) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	pg := ParsePagination(r, 20, 100)

	status := r.URL.Query().Get("status")
	if status != "" && !contact.ValidStatus(status) {
		httputil.BadRequest(w, fmt.Sprintf("invalid status %q", status))
		return
	}

	subs, total, err := h.store.List(r.Context(), contact.ListParams{
		Query:  r.URL.Query().Get("query"),
		Status: status,
		Page:   pg.Page,
		Limit:  pg.Limit,
	})
	if err != nil {
		httputil.InternalError(w, err)
		return
	}

	if subs == nil {
		subs = []contact.Submission{}
	}
	httputil.OK(w, NewPaginatedResponse(subs, pg, total))
}

// GetSubmission handles GET /admin/submissions/{id}.
func (h *Handlers) GetSubmission(w http.ResponseWriter, r *http.Request) {
	id, ok := submissionID(w, r)
	if !ok {
		return
	}

	sub, err := h.store.Get(r.Context(), id)
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	if sub == nil {
		httputil.NotFound(w, "submission not found")
		return
	}
	httputil.OK(w, submissionEnvelope{Data: sub})
}

// UpdateSubmission handles PATCH /admin/submissions/{id}. Absent body
// fields leave the stored values untouched.
func (h *Handlers) UpdateSubmission(w http.ResponseWriter, r *http.Request) {
	id, ok := submissionID(w, r)
	if !ok {
		return
	}

	var params contact.UpdateParams
	if !httputil.Decode(w, r, &params) {
		return
	}
	if params.Status != nil && !contact.ValidStatus(*params.Status) {
		httputil.BadRequest(w, fmt.Sprintf("invalid status %q", *params.Status))
		return
	}

	sub, err := h.store.Update(r.Context(), id, params)
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	if sub == nil {
		httputil.NotFound(w, "submission not found")
		return
	}
	httputil.OK(w, submissionEnvelope{Data: sub})
}

type adminAction struct {
	Action string `json:"action"`
}

// SubmissionsAction handles POST /admin/submissions. The only action today
// is "export", which materializes every submission as a CSV attachment.
func (h *Handlers) SubmissionsAction(w http.ResponseWriter, r *http.Request) {
	var req adminAction
	if !httputil.Decode(w, r, &req) {
		return
	}
	if req.Action != "export" {
		httputil.BadRequest(w, fmt.Sprintf("unknown action %q", req.Action))
		return
	}

	subs, err := h.store.All(r.Context())
	if err != nil {
		httputil.InternalError(w, err)
		return
	}

	filename := fmt.Sprintf("contact-submissions-%s.csv", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := contact.WriteCSV(w, subs); err != nil {
		// Headers are already out; nothing useful left to send.
		return
	}
}

func submissionID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		httputil.BadRequest(w, "invalid submission id")
		return 0, false
	}
	return id, true
}
