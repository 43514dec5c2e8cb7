package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/baobabstack/website-api/internal/auth"
)

// SetupRoutes configures the router. authManager may be nil, in which case
// the admin group is mounted without an authentication gate (local
// development only; production config enables auth).
func SetupRoutes(h *Handlers, authManager *auth.Manager) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	// CORS - allow credentials for the admin session cookie
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://baobabstack.com", "https://www.baobabstack.com", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Data-Source", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check (no auth required)
	r.Get("/health", h.HealthCheck)

	// Auth routes (no auth required)
	if authManager != nil {
		r.Get("/auth/login", authManager.HandleLogin)
		r.Get("/auth/callback", authManager.HandleCallback)
		r.Get("/auth/logout", authManager.HandleLogout)
		r.Get("/auth/user", authManager.HandleUserInfo)
	}

	// Public website surface
	r.Post("/contact", h.SubmitContact)
	r.Get("/contact-info", h.GetContactInfo)
	r.Route("/content", func(r chi.Router) {
		r.Get("/blog/{id}", h.GetBlogPost)
		r.Get("/{resource}", h.GetContent)
	})

	// Admin moderation surface (protected)
	r.Route("/admin", func(r chi.Router) {
		if authManager != nil {
			r.Use(authManager.RequireAuth)
		}
		r.Get("/submissions", h.ListSubmissions)
		r.Post("/submissions", h.SubmissionsAction)
		r.Get("/submissions/{id}", h.GetSubmission)
		r.Patch("/submissions/{id}", h.UpdateSubmission)
	})

	return r
}
