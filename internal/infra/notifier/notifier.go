// Package notifier delivers the moderation digest to chat webhooks.
// Slack and Discord are supported; NoOpNotifier is used when neither is configured.
package notifier

import (
	"context"
	"time"

	"speed/internal/domain/entity"
	"speed/pkg/config"
)

// Notifier sends a queue digest to one chat channel.
// Implementations apply rate limiting, retries and a circuit breaker internally.
type Notifier interface {
	// Name identifies the channel in logs and metrics (e.g. "slack").
	Name() string
	NotifyDigest(ctx context.Context, digest entity.QueueDigest) error
}

// CircuitReporter is implemented by notifiers guarded by a circuit breaker.
type CircuitReporter interface {
	CircuitOpen() bool
}

// Config holds webhook settings for every supported channel.
type Config struct {
	SlackWebhookURL   string
	DiscordWebhookURL string
	// DashboardURL is linked from messages so reviewers can jump to the queue.
	DashboardURL string
	Timeout      time.Duration
}

// LoadConfigFromEnv reads SLACK_WEBHOOK_URL, DISCORD_WEBHOOK_URL,
// SPEED_DASHBOARD_URL and NOTIFY_TIMEOUT.
func LoadConfigFromEnv() Config {
	return Config{
		SlackWebhookURL:   config.GetEnvString("SLACK_WEBHOOK_URL", ""),
		DiscordWebhookURL: config.GetEnvString("DISCORD_WEBHOOK_URL", ""),
		DashboardURL:      config.GetEnvString("SPEED_DASHBOARD_URL", ""),
		Timeout:           config.GetEnvDuration("NOTIFY_TIMEOUT", 10*time.Second),
	}
}

// FromConfig builds one notifier per configured webhook.
// It returns a single NoOpNotifier when no webhook is set.
func FromConfig(cfg Config) []Notifier {
	var out []Notifier
	if cfg.SlackWebhookURL != "" {
		out = append(out, NewSlackNotifier(cfg))
	}
	if cfg.DiscordWebhookURL != "" {
		out = append(out, NewDiscordNotifier(cfg))
	}
	if len(out) == 0 {
		out = append(out, NewNoOpNotifier())
	}
	return out
}
