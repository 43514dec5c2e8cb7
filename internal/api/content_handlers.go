package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/baobabstack/website-api/internal/content"
	"github.com/baobabstack/website-api/internal/pkg/httputil"
)

type contentEnvelope struct {
	Data interface{} `json:"data"`
}

// setDataSource tells the caller which tier served the response, so a
// degraded database never silently masquerades as fresh data.
func setDataSource(w http.ResponseWriter, fallback bool) {
	if fallback {
		w.Header().Set("X-Data-Source", "fallback")
	} else {
		w.Header().Set("X-Data-Source", "database")
	}
}

// GetContent handles GET /content/{resource} for the read-only marketing
// resources (blog, team, pricing, testimonials, features, techstack,
// values, stats, podcasts, portfolio).
func (h *Handlers) GetContent(w http.ResponseWriter, r *http.Request) {
	resource := chi.URLParam(r, "resource")
	if !content.ValidResource(resource) {
		httputil.NotFound(w, "unknown content resource")
		return
	}
	if resource == "blog" {
		h.getBlogList(w, r)
		return
	}

	data, fallback := h.content.Fetch(r.Context(), resource)
	setDataSource(w, fallback)
	httputil.OK(w, contentEnvelope{Data: data})
}

type blogPagination struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
	HasMore  bool  `json:"hasMore"`
}

type blogListResponse struct {
	Data []content.BlogPost `json:"data"`
	Meta struct {
		Pagination blogPagination `json:"pagination"`
	} `json:"meta"`
}

// getBlogList serves the blog list with limit/offset paging (defaults 10/0),
// unlike the other content resources, which are small enough to return whole.
func (h *Handlers) getBlogList(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		limit = 10
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	posts, total, fallback := h.content.BlogPosts(r.Context(), limit, offset)
	setDataSource(w, fallback)

	resp := blogListResponse{Data: posts}
	resp.Meta.Pagination = blogPagination{
		Total:    total,
		Page:     offset/limit + 1,
		PageSize: limit,
		HasMore:  int64(offset+limit) < total,
	}
	httputil.OK(w, resp)
}

// GetBlogPost handles GET /content/blog/{id}.
func (h *Handlers) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		httputil.BadRequest(w, "invalid blog post id")
		return
	}

	post, fallback := h.content.BlogPost(r.Context(), id)
	setDataSource(w, fallback)
	if post == nil {
		httputil.NotFound(w, "blog post not found")
		return
	}
	httputil.OK(w, contentEnvelope{Data: post})
}

// GetContactInfo handles GET /contact-info.
func (h *Handlers) GetContactInfo(w http.ResponseWriter, r *http.Request) {
	info, fallback := h.content.ContactInfo(r.Context())
	setDataSource(w, fallback)
	httputil.OK(w, contentEnvelope{Data: info})
}
