package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baobabstack/website-api/internal/api"
	"github.com/baobabstack/website-api/internal/auth"
	"github.com/baobabstack/website-api/internal/config"
	"github.com/baobabstack/website-api/internal/contact"
	"github.com/baobabstack/website-api/internal/content"
	"github.com/baobabstack/website-api/internal/mailer"
	"github.com/baobabstack/website-api/internal/ratelimit"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/redis/go-redis/v9"
)

// checkPortAvailable verifies the target port is not already in use, so a
// stale process never silently keeps serving behind the load balancer.
func checkPortAvailable(host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("port %d is already in use (addr %s): %v", port, addr, err)
	}
	ln.Close()
	return nil
}

func newMailer(cfg config.EmailConfig) (mailer.Mailer, error) {
	switch cfg.Provider {
	case "ses":
		return mailer.NewSESClient(context.Background(), cfg)
	case "resend", "":
		return mailer.NewResendClient(cfg), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}

func main() {
	log.Println("Baobab Stack website API (cmd/server)")

	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if os.Getenv("DATABASE_URL") != "" {
		log.Println("[config] DATABASE_URL env override active")
	}

	host := cfg.Server.GetHost()
	port := cfg.Server.Port
	if port == 0 {
		port = 8080
	}
	if err := checkPortAvailable(host, port); err != nil {
		log.Fatalf("Pre-flight check FAILED: %v", err)
	}

	// Database
	if cfg.Database.URL == "" {
		log.Fatal("database url is required (config database.url or DATABASE_URL)")
	}
	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.MaxLifetime())

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		// The content endpoints degrade to static snapshots, so boot anyway.
		log.Printf("Warning: database unreachable at boot: %v — content endpoints will serve fallbacks", err)
	} else {
		log.Println("Connected to database")
	}
	pingCancel()

	// Email provider
	mail, err := newMailer(cfg.Email)
	if err != nil {
		log.Fatalf("Failed to initialize email provider: %v", err)
	}
	notifier := mailer.NewNotifier(mail, cfg.Email.FromAddress, cfg.Email.OperatorTo)
	if cfg.Email.OperatorTo == "" {
		log.Println("Warning: CONTACT_TO_EMAIL not set — operator notifications disabled")
	}

	// Redis rate limiter (optional)
	var limiter *ratelimit.Limiter
	if cfg.RateLimit.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RateLimit.RedisURL)
		var redisClient *redis.Client
		if err != nil {
			redisClient = redis.NewClient(&redis.Options{Addr: cfg.RateLimit.RedisURL})
		} else {
			redisClient = redis.NewClient(opts)
		}
		pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Printf("Warning: Redis connection failed (%s): %v — rate limiting disabled", cfg.RateLimit.RedisURL, err)
			redisClient.Close()
		} else {
			limiter = ratelimit.New(redisClient, cfg.RateLimit.MaxPerWindow, cfg.RateLimit.Window())
			log.Printf("Redis connected: rate limiting %d submissions per %s", cfg.RateLimit.MaxPerWindow, cfg.RateLimit.Window())
			defer redisClient.Close()
		}
		pingCancel()
	} else {
		log.Println("Rate limiting disabled (no Redis URL configured)")
	}

	// Wire the pipeline
	submissionStore := contact.NewStore(db)
	contactSvc := contact.NewService(submissionStore, notifier)
	contentSrc := content.NewSource(content.NewStore(db), content.NewSnapshot(cfg.Content.FallbackDir))
	handlers := api.NewHandlers(contactSvc, submissionStore, contentSrc, limiter)

	// Authentication for the admin surface
	var authManager *auth.Manager
	if cfg.Auth.Enabled && cfg.Auth.GoogleClientID != "" {
		baseURL := fmt.Sprintf("http://%s:%d", host, port)
		if envURL := os.Getenv("AUTH_BASE_URL"); envURL != "" {
			baseURL = envURL
		}

		authManager = auth.NewManager(&cfg.Auth, baseURL)

		// Catch rotated/stale OAuth credentials at boot rather than at
		// first admin login.
		log.Println("Validating Google OAuth credentials...")
		if err := authManager.ValidateCredentials(context.Background()); err != nil {
			log.Fatalf("OAuth pre-flight FAILED: %v", err)
		}
		authManager.CleanupExpiredSessions()
		log.Printf("Google OAuth enabled for domain: %s (callback: %s/auth/callback)", cfg.Auth.AllowedDomain, baseURL)
	} else {
		log.Println("Authentication disabled — admin endpoints are unprotected")
	}

	var server *api.Server
	if authManager != nil {
		server = api.NewServerWithAuth(cfg.Server, handlers, authManager)
	} else {
		server = api.NewServer(cfg.Server, handlers)
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		addr := fmt.Sprintf("%s:%d", host, port)
		log.Printf("Starting server on %s", addr)
		if err := server.ListenAndServe(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
