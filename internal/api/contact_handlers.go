package api

import (
	"net"
	"net/http"
	"strconv"

	"github.com/baobabstack/website-api/internal/contact"
	"github.com/baobabstack/website-api/internal/pkg/httputil"
)

// SubmitContact handles POST /contact: validate, persist, then send the
// best-effort notification emails. Validation failures return the full list
// of field errors; only a storage failure is a 500.
func (h *Handlers) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if h.limiter != nil {
		key := clientIP(r)
		if !h.limiter.Allow(r.Context(), key) {
			retryAfter := h.limiter.RetryAfter(r.Context(), key)
			w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
			httputil.Error(w, http.StatusTooManyRequests, "Too many submissions, please try again later")
			return
		}
	}

	var in contact.SubmissionInput
	if !httputil.Decode(w, r, &in) {
		return
	}

	sub, fieldErrs, err := h.contactSvc.Submit(r.Context(), in)
	if err != nil {
		httputil.InternalError(w, err)
		return
	}
	if len(fieldErrs) > 0 {
		httputil.ValidationFailed(w, fieldErrs)
		return
	}

	httputil.Created(w, submissionEnvelope{
		Data:    sub,
		Message: "Contact form submitted successfully",
	})
}

// clientIP extracts the caller's address; the RealIP middleware has already
// resolved proxy headers into RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
