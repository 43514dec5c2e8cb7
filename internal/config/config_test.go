package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
server:
  port: 9090
  host: "0.0.0.0"

database:
  url: "postgres://localhost/website_test?sslmode=disable"
  max_open_conns: 20

email:
  provider: "resend"
  resend_api_key: "test-api-key"
  from_address: "Test <no-reply@example.com>"
  operator_to: "ops@example.com"
  timeout_seconds: 45

rate_limit:
  redis_url: "redis://localhost:6379/0"
  max_per_window: 10
  window_seconds: 60

content:
  fallback_dir: "./test-data"
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	// Server config
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)

	// Database config
	assert.Equal(t, "postgres://localhost/website_test?sslmode=disable", cfg.Database.URL)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)

	// Email config
	assert.Equal(t, "resend", cfg.Email.Provider)
	assert.Equal(t, "test-api-key", cfg.Email.ResendAPIKey)
	assert.Equal(t, "Test <no-reply@example.com>", cfg.Email.FromAddress)
	assert.Equal(t, "ops@example.com", cfg.Email.OperatorTo)
	assert.Equal(t, 45, cfg.Email.TimeoutSeconds)

	// Rate limit config
	assert.Equal(t, "redis://localhost:6379/0", cfg.RateLimit.RedisURL)
	assert.Equal(t, 10, cfg.RateLimit.MaxPerWindow)
	assert.Equal(t, 60, cfg.RateLimit.WindowSeconds)

	// Content config
	assert.Equal(t, "./test-data", cfg.Content.FallbackDir)
}

func TestLoadDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := os.WriteFile(configPath, []byte("server:\n  port: 0\n"), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "resend", cfg.Email.Provider)
	assert.Equal(t, "https://api.resend.com", cfg.Email.ResendBaseURL)
	assert.Equal(t, 30, cfg.Email.TimeoutSeconds)
	assert.Equal(t, 5, cfg.RateLimit.MaxPerWindow)
	assert.Equal(t, 3600, cfg.RateLimit.WindowSeconds)
	assert.Equal(t, "data", cfg.Content.FallbackDir)
	assert.Equal(t, "admin_session", cfg.Auth.CookieName)
	// Operator address absent is a valid, degraded configuration
	assert.Empty(t, cfg.Email.OperatorTo)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := os.WriteFile(configPath, []byte(`
email:
  resend_api_key: "file-key"
  operator_to: "file@example.com"
`), 0644)
	require.NoError(t, err)

	t.Setenv("RESEND_API_KEY", "env-key")
	t.Setenv("CONTACT_TO_EMAIL", "env@example.com")
	t.Setenv("DATABASE_URL", "postgres://env/db")

	cfg, err := LoadFromEnv(configPath)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Email.ResendAPIKey)
	assert.Equal(t, "env@example.com", cfg.Email.OperatorTo)
	assert.Equal(t, "postgres://env/db", cfg.Database.URL)
}
