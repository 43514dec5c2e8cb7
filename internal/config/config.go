package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Email     EmailConfig     `yaml:"email"`
	Auth      AuthConfig      `yaml:"auth"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Content   ContentConfig   `yaml:"content"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// GetHost returns the server host, with container detection
func (c ServerConfig) GetHost() string {
	// On ECS/container, listen on all interfaces
	if os.Getenv("ECS_CONTAINER_METADATA_URI") != "" || os.Getenv("AWS_EXECUTION_ENV") != "" {
		return "0.0.0.0"
	}
	// Allow override via environment
	if host := os.Getenv("SERVER_HOST"); host != "" {
		return host
	}
	return c.Host
}

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	URL             string `yaml:"url"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime_minutes"`
}

// MaxLifetime returns the connection max lifetime as a duration
func (c DatabaseConfig) MaxLifetime() time.Duration {
	return time.Duration(c.ConnMaxLifetime) * time.Minute
}

// EmailConfig holds outbound transactional email settings.
// Provider selects the backend: "resend" (default) or "ses".
// OperatorTo is the internal address alerted on new submissions;
// when empty, the operator notification is skipped with a logged warning.
type EmailConfig struct {
	Provider       string `yaml:"provider"`
	ResendAPIKey   string `yaml:"resend_api_key"`
	ResendBaseURL  string `yaml:"resend_base_url"`
	FromAddress    string `yaml:"from_address"`
	OperatorTo     string `yaml:"operator_to"`
	SESRegion      string `yaml:"ses_region"`
	SESAccessKey   string `yaml:"ses_access_key"`
	SESSecretKey   string `yaml:"ses_secret_key"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the configured timeout as a duration
func (c EmailConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// AuthConfig holds Google OAuth authentication configuration for the admin panel
type AuthConfig struct {
	Enabled            bool   `yaml:"enabled"`
	GoogleClientID     string `yaml:"google_client_id"`
	GoogleClientSecret string `yaml:"google_client_secret"`
	AllowedDomain      string `yaml:"allowed_domain"`
	CookieName         string `yaml:"cookie_name"`
	CookieMaxAge       int    `yaml:"cookie_max_age"`
}

// RateLimitConfig holds contact-form rate limiting settings.
// The limiter is disabled when RedisURL is empty.
type RateLimitConfig struct {
	RedisURL      string `yaml:"redis_url"`
	MaxPerWindow  int    `yaml:"max_per_window"`
	WindowSeconds int    `yaml:"window_seconds"`
}

// Window returns the rate limit window as a duration
func (c RateLimitConfig) Window() time.Duration {
	return time.Duration(c.WindowSeconds) * time.Second
}

// ContentConfig holds content endpoint settings
type ContentConfig struct {
	FallbackDir string `yaml:"fallback_dir"`
}

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Set defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 30
	}
	if cfg.Email.Provider == "" {
		cfg.Email.Provider = "resend"
	}
	if cfg.Email.ResendBaseURL == "" {
		cfg.Email.ResendBaseURL = "https://api.resend.com"
	}
	if cfg.Email.FromAddress == "" {
		cfg.Email.FromAddress = "Baobab Stack <no-reply@baobabstack.com>"
	}
	if cfg.Email.SESRegion == "" {
		cfg.Email.SESRegion = "us-west-2"
	}
	if cfg.Email.TimeoutSeconds == 0 {
		cfg.Email.TimeoutSeconds = 30
	}
	if cfg.Auth.CookieName == "" {
		cfg.Auth.CookieName = "admin_session"
	}
	if cfg.Auth.CookieMaxAge == 0 {
		cfg.Auth.CookieMaxAge = 86400
	}
	if cfg.RateLimit.MaxPerWindow == 0 {
		cfg.RateLimit.MaxPerWindow = 5
	}
	if cfg.RateLimit.WindowSeconds == 0 {
		cfg.RateLimit.WindowSeconds = 3600
	}
	if cfg.Content.FallbackDir == "" {
		cfg.Content.FallbackDir = "data"
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration with environment variable overrides.
// It automatically loads a .env file (if present) before reading env vars,
// so secrets can live in .env locally and in real env vars in production.
func LoadFromEnv(path string) (*Config, error) {
	// Load .env file if it exists (no error if missing)
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.URL = dbURL
	}
	if apiKey := os.Getenv("RESEND_API_KEY"); apiKey != "" {
		cfg.Email.ResendAPIKey = apiKey
	}
	if baseURL := os.Getenv("RESEND_BASE_URL"); baseURL != "" {
		cfg.Email.ResendBaseURL = baseURL
	}
	if from := os.Getenv("EMAIL_FROM"); from != "" {
		cfg.Email.FromAddress = from
	}
	if to := os.Getenv("CONTACT_TO_EMAIL"); to != "" {
		cfg.Email.OperatorTo = to
	}
	if provider := os.Getenv("EMAIL_PROVIDER"); provider != "" {
		cfg.Email.Provider = provider
	}
	if accessKey := os.Getenv("AWS_SES_ACCESS_KEY"); accessKey != "" {
		cfg.Email.SESAccessKey = accessKey
	}
	if secretKey := os.Getenv("AWS_SES_SECRET_KEY"); secretKey != "" {
		cfg.Email.SESSecretKey = secretKey
	}
	if region := os.Getenv("AWS_SES_REGION"); region != "" {
		cfg.Email.SESRegion = region
	}
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cfg.RateLimit.RedisURL = redisURL
	}

	// Auth overrides
	if v := os.Getenv("GOOGLE_CLIENT_ID"); v != "" {
		cfg.Auth.GoogleClientID = v
	}
	if v := os.Getenv("GOOGLE_CLIENT_SECRET"); v != "" {
		cfg.Auth.GoogleClientSecret = v
	}
	if v := os.Getenv("AUTH_ALLOWED_DOMAIN"); v != "" {
		cfg.Auth.AllowedDomain = v
	}

	return cfg, nil
}
