// Package config loads the API's security policy: authentication, token
// lifetime, public endpoints, CORS origins and rate limits.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"speed/internal/handler/http/auth"
	cfgcheck "speed/internal/pkg/config"
	envconfig "speed/pkg/config"
)

// SecurityConfig represents security configuration.
type SecurityConfig struct {
	Security struct {
		Auth struct {
			Enabled           bool     `yaml:"enabled"`
			MinPasswordLength int      `yaml:"min_password_length"`
			WeakPasswords     []string `yaml:"weak_passwords"`
		} `yaml:"auth"`
		PublicEndpoints []string `yaml:"public_endpoints"`
		JWT             struct {
			SecretEnv   string `yaml:"secret_env"`
			ExpiryHours int    `yaml:"expiry_hours"`
		} `yaml:"jwt"`
		CORS struct {
			AllowedOrigins []string `yaml:"allowed_origins"`
		} `yaml:"cors"`
		RateLimit RateLimitConfig `yaml:"rate_limit"`
	} `yaml:"security"`
}

// RateLimitConfig configures the per-IP token buckets. Submit applies to
// POST /articles/new only; Global applies to every request.
type RateLimitConfig struct {
	Enabled     bool          `yaml:"enabled"`
	GlobalRPS   float64       `yaml:"global_rps"`
	GlobalBurst int           `yaml:"global_burst"`
	SubmitRPS   float64       `yaml:"submit_rps"`
	SubmitBurst int           `yaml:"submit_burst"`
	IdleTTL     time.Duration `yaml:"idle_ttl"`
}

// DefaultSecurityConfig matches the historic open API: no auth, any origin.
func DefaultSecurityConfig() *SecurityConfig {
	var c SecurityConfig
	s := &c.Security
	s.Auth.Enabled = false
	s.Auth.MinPasswordLength = 12
	s.Auth.WeakPasswords = append([]string(nil), auth.DefaultWeakPasswords...)
	s.PublicEndpoints = append([]string(nil), auth.DefaultPublicEndpoints...)
	s.JWT.SecretEnv = "JWT_SECRET"
	s.JWT.ExpiryHours = 12
	s.CORS.AllowedOrigins = []string{"*"}
	s.RateLimit = RateLimitConfig{
		Enabled:     true,
		GlobalRPS:   20,
		GlobalBurst: 40,
		SubmitRPS:   0.2,
		SubmitBurst: 5,
		IdleTTL:     10 * time.Minute,
	}
	return &c
}

// LoadSecurityConfig reads a YAML file over the defaults. An empty path
// returns the defaults. Environment overrides are applied afterwards and the
// result is validated.
func LoadSecurityConfig(path string) (*SecurityConfig, error) {
	cfg := DefaultSecurityConfig()
	if path != "" {
		// #nosec G304 -- path comes from a flag or env, not from requests
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides file values with AUTH_ENABLED, JWT_EXPIRY_HOURS,
// CORS_ALLOWED_ORIGINS and RATE_LIMIT_ENABLED.
func (c *SecurityConfig) ApplyEnv() {
	s := &c.Security
	s.Auth.Enabled = envconfig.GetEnvBool("AUTH_ENABLED", s.Auth.Enabled)
	s.JWT.ExpiryHours = envconfig.GetEnvInt("JWT_EXPIRY_HOURS", s.JWT.ExpiryHours)
	s.CORS.AllowedOrigins = envconfig.GetEnvStringList("CORS_ALLOWED_ORIGINS", s.CORS.AllowedOrigins)
	s.RateLimit.Enabled = envconfig.GetEnvBool("RATE_LIMIT_ENABLED", s.RateLimit.Enabled)
}

// Validate checks the loaded configuration.
func (c *SecurityConfig) Validate() error {
	s := c.Security
	var errs []error
	if s.Auth.MinPasswordLength < 8 {
		errs = append(errs, errors.New("min_password_length must be at least 8"))
	}
	if s.JWT.SecretEnv == "" {
		errs = append(errs, errors.New("jwt secret_env is required"))
	}
	if s.JWT.ExpiryHours <= 0 {
		errs = append(errs, errors.New("jwt expiry_hours must be positive"))
	}
	if len(s.CORS.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("cors allowed_origins must not be empty"))
	}
	if s.RateLimit.Enabled {
		if s.RateLimit.GlobalRPS <= 0 || s.RateLimit.SubmitRPS <= 0 {
			errs = append(errs, errors.New("rate_limit rps values must be positive"))
		}
		if s.RateLimit.GlobalBurst < 1 || s.RateLimit.SubmitBurst < 1 {
			errs = append(errs, errors.New("rate_limit bursts must be at least 1"))
		}
		if err := cfgcheck.ValidatePositiveDuration(s.RateLimit.IdleTTL); err != nil {
			errs = append(errs, fmt.Errorf("rate_limit idle_ttl: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (c *SecurityConfig) AuthEnabled() bool            { return c.Security.Auth.Enabled }
func (c *SecurityConfig) GetMinPasswordLength() int    { return c.Security.Auth.MinPasswordLength }
func (c *SecurityConfig) GetWeakPasswords() []string   { return c.Security.Auth.WeakPasswords }
func (c *SecurityConfig) GetPublicEndpoints() []string { return c.Security.PublicEndpoints }
func (c *SecurityConfig) AllowedOrigins() []string     { return c.Security.CORS.AllowedOrigins }
func (c *SecurityConfig) RateLimit() RateLimitConfig   { return c.Security.RateLimit }

// JWTSecret reads the signing secret from the configured variable.
func (c *SecurityConfig) JWTSecret() ([]byte, error) {
	secret := os.Getenv(c.Security.JWT.SecretEnv)
	if len(secret) < 32 {
		return nil, fmt.Errorf("%s must be at least 32 characters", c.Security.JWT.SecretEnv)
	}
	return []byte(secret), nil
}

// TokenTTL is the lifetime of issued tokens.
func (c *SecurityConfig) TokenTTL() time.Duration {
	return time.Duration(c.Security.JWT.ExpiryHours) * time.Hour
}
