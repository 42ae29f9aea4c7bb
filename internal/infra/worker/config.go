package worker

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"speed/internal/pkg/config"
)

// WorkerConfig holds the digest worker settings.
//
// Every field falls back to its default when the environment value is
// invalid, so the worker always starts. Fallbacks are logged and counted.
type WorkerConfig struct {
	// DigestSchedule is a five-field cron expression. Default: weekdays at 08:00.
	DigestSchedule string

	// Timezone is the IANA zone the schedule is evaluated in.
	Timezone string

	// DigestTimeout bounds a single digest run (1m-1h).
	DigestTimeout time.Duration

	// HealthPort serves /health, /health/ready, /health/channels and /metrics.
	HealthPort int
}

// DefaultConfig returns the production defaults.
func DefaultConfig() WorkerConfig {
	return WorkerConfig{
		DigestSchedule: "0 8 * * 1-5",
		Timezone:       "UTC",
		DigestTimeout:  5 * time.Minute,
		HealthPort:     9091,
	}
}

// Validate reports every invalid field at once.
func (c *WorkerConfig) Validate() error {
	var errs []error
	if err := config.ValidateCronSchedule(c.DigestSchedule); err != nil {
		errs = append(errs, fmt.Errorf("DigestSchedule: %w", err))
	}
	if err := config.ValidateTimezone(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("Timezone: %w", err))
	}
	if err := validateDigestTimeout(c.DigestTimeout); err != nil {
		errs = append(errs, fmt.Errorf("DigestTimeout: %w", err))
	}
	if err := validatePort(c.HealthPort); err != nil {
		errs = append(errs, fmt.Errorf("HealthPort: %w", err))
	}
	return errors.Join(errs...)
}

// Location loads Timezone, falling back to UTC.
func (c *WorkerConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func validateDigestTimeout(d time.Duration) error {
	return config.ValidateDuration(d, time.Minute, time.Hour)
}

func validatePort(p int) error {
	return config.ValidateIntRange(p, 1024, 65535)
}

// LoadConfigFromEnv reads DIGEST_SCHEDULE, WORKER_TIMEZONE, DIGEST_TIMEOUT and
// WORKER_HEALTH_PORT.
//
// 不正な値はデフォルトに置き換え、警告ログとメトリクスで通知する（fail-open）。
func LoadConfigFromEnv(logger *slog.Logger, metrics *WorkerMetrics) *WorkerConfig {
	cfg := DefaultConfig()
	fallback := false

	note := func(field, warning string, applied bool) {
		if !applied {
			return
		}
		fallback = true
		logger.Warn(warning, slog.String("field", field))
		if metrics != nil {
			metrics.RecordFallback(field)
		}
	}

	schedule := config.LoadEnvString("DIGEST_SCHEDULE", cfg.DigestSchedule, config.ValidateCronSchedule)
	cfg.DigestSchedule = schedule.Value
	note("digest_schedule", schedule.Warning, schedule.FallbackApplied)

	tz := config.LoadEnvString("WORKER_TIMEZONE", cfg.Timezone, config.ValidateTimezone)
	cfg.Timezone = tz.Value
	note("timezone", tz.Warning, tz.FallbackApplied)

	timeout := config.LoadEnvDuration("DIGEST_TIMEOUT", cfg.DigestTimeout, validateDigestTimeout)
	cfg.DigestTimeout = timeout.Value
	note("digest_timeout", timeout.Warning, timeout.FallbackApplied)

	port := config.LoadEnvInt("WORKER_HEALTH_PORT", cfg.HealthPort, validatePort)
	cfg.HealthPort = port.Value
	note("health_port", port.Warning, port.FallbackApplied)

	if metrics != nil {
		metrics.SetFallbackActive(fallback)
		metrics.RecordLoadTimestamp()
	}
	return &cfg
}
