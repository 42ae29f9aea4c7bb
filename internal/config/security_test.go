package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "security.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadSecurityConfig_Defaults(t *testing.T) {
	cfg, err := LoadSecurityConfig("")
	require.NoError(t, err)

	assert.False(t, cfg.AuthEnabled())
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins())
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL())
	assert.Contains(t, cfg.GetPublicEndpoints(), "/articles/")
	assert.Equal(t, 12, cfg.GetMinPasswordLength())
	assert.Contains(t, cfg.GetWeakPasswords(), "password")
	assert.Equal(t, 10*time.Minute, cfg.RateLimit().IdleTTL)
}

func TestLoadSecurityConfig_File(t *testing.T) {
	path := writeConfig(t, `security:
  auth:
    enabled: true
    min_password_length: 16
  public_endpoints:
    - "/health"
  jwt:
    secret_env: "SPEED_JWT"
    expiry_hours: 2
  cors:
    allowed_origins: ["https://speed.example.org"]
  rate_limit:
    enabled: true
    global_rps: 5
    global_burst: 10
    submit_rps: 0.5
    submit_burst: 2
    idle_ttl: 90s
`)
	cfg, err := LoadSecurityConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.AuthEnabled())
	assert.Equal(t, 16, cfg.GetMinPasswordLength())
	assert.Equal(t, []string{"/health"}, cfg.GetPublicEndpoints())
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL())
	assert.Equal(t, []string{"https://speed.example.org"}, cfg.AllowedOrigins())
	assert.Equal(t, RateLimitConfig{
		Enabled: true, GlobalRPS: 5, GlobalBurst: 10, SubmitRPS: 0.5, SubmitBurst: 2, IdleTTL: 90 * time.Second,
	}, cfg.RateLimit())
	// keys missing from the file keep their defaults
	assert.Contains(t, cfg.GetWeakPasswords(), "admin")
}

func TestLoadSecurityConfig_EnvOverrides(t *testing.T) {
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.test, https://b.test")
	t.Setenv("JWT_EXPIRY_HOURS", "1")

	cfg, err := LoadSecurityConfig("")
	require.NoError(t, err)
	assert.True(t, cfg.AuthEnabled())
	assert.Equal(t, []string{"https://a.test", "https://b.test"}, cfg.AllowedOrigins())
	assert.Equal(t, time.Hour, cfg.TokenTTL())
}

func TestLoadSecurityConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"short password policy", "security:\n  auth:\n    min_password_length: 4\n", "min_password_length"},
		{"no secret env", "security:\n  jwt:\n    secret_env: \"\"\n", "secret_env"},
		{"zero expiry", "security:\n  jwt:\n    expiry_hours: 0\n", "expiry_hours"},
		{"zero rps", "security:\n  rate_limit:\n    submit_rps: 0\n", "rps"},
		{"not yaml", "security: [", "failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSecurityConfig(writeConfig(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := LoadSecurityConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestJWTSecret(t *testing.T) {
	cfg := DefaultSecurityConfig()

	t.Setenv("JWT_SECRET", "too-short")
	_, err := cfg.JWTSecret()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	secret, err := cfg.JWTSecret()
	require.NoError(t, err)
	assert.Len(t, secret, 32)
}
