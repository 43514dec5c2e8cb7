package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/baobabstack/website-api/internal/auth"
	"github.com/baobabstack/website-api/internal/config"
)

// Server is the website API server.
type Server struct {
	config      config.ServerConfig
	handler     http.Handler
	handlers    *Handlers
	server      *http.Server
	authManager *auth.Manager
	router      *chi.Mux
}

// NewServer creates an API server without an authentication gate.
func NewServer(cfg config.ServerConfig, h *Handlers) *Server {
	router := SetupRoutes(h, nil)
	return &Server{
		config:   cfg,
		handler:  router,
		handlers: h,
		router:   router,
	}
}

// NewServerWithAuth creates an API server with the admin surface gated
// behind the given authentication manager.
func NewServerWithAuth(cfg config.ServerConfig, h *Handlers, authManager *auth.Manager) *Server {
	router := SetupRoutes(h, authManager)
	return &Server{
		config:      cfg,
		handler:     router,
		handlers:    h,
		authManager: authManager,
		router:      router,
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		// The CSV export materializes every submission before writing,
		// so the write timeout stays generous.
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Handler returns the HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.handler
}
