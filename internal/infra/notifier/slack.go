package notifier

import (
	"context"
	"fmt"
	"time"

	"speed/internal/domain/entity"
)

// SlackNotifier posts the digest to a Slack Incoming Webhook using Block Kit.
type SlackNotifier struct {
	client       *webhookClient
	dashboardURL string
}

// SlackWebhookPayload is the JSON body sent to the webhook.
type SlackWebhookPayload struct {
	Text   string       `json:"text"`
	Blocks []SlackBlock `json:"blocks"`
}

// SlackBlock is a Block Kit block.
type SlackBlock struct {
	Type     string            `json:"type"`
	Text     *SlackTextObject  `json:"text,omitempty"`
	Elements []SlackTextObject `json:"elements,omitempty"`
}

// SlackTextObject is a Block Kit text object.
type SlackTextObject struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

const (
	maxSlackSectionLength  = 3000
	maxSlackFallbackLength = 150
)

// NewSlackNotifier creates a Slack notifier limited to 1 request/second
// (the Incoming Webhook limit).
func NewSlackNotifier(cfg Config) *SlackNotifier {
	return &SlackNotifier{
		client:       newWebhookClient("slack", cfg.SlackWebhookURL, cfg.Timeout, NewRateLimiter(1.0, 1)),
		dashboardURL: cfg.DashboardURL,
	}
}

// Name implements Notifier.
func (s *SlackNotifier) Name() string { return "slack" }

// CircuitOpen implements CircuitReporter.
func (s *SlackNotifier) CircuitOpen() bool { return s.client.circuitOpen() }

// NotifyDigest implements Notifier.
func (s *SlackNotifier) NotifyDigest(ctx context.Context, d entity.QueueDigest) error {
	if err := s.client.post(ctx, s.buildPayload(d)); err != nil {
		return fmt.Errorf("slack digest: %w", err)
	}
	return nil
}

func (s *SlackNotifier) buildPayload(d entity.QueueDigest) SlackWebhookPayload {
	fallback := fmt.Sprintf("SPEED review backlog: %d awaiting moderation, %d awaiting analysis",
		d.Unmoderated, d.Moderated)

	section := fmt.Sprintf("*SPEED review backlog*\n• Awaiting moderation: *%d*\n• Awaiting analysis: *%d*",
		d.Unmoderated, d.Moderated)
	if s.dashboardURL != "" {
		section += fmt.Sprintf("\n<%s|Open the moderation queue>", s.dashboardURL)
	}

	footer := fmt.Sprintf("%d published • %d rejected • %s",
		d.Articles, d.Rejected, d.GeneratedAt.UTC().Format(time.RFC3339))

	return SlackWebhookPayload{
		Text: truncate(fallback, maxSlackFallbackLength),
		Blocks: []SlackBlock{
			{Type: "section", Text: &SlackTextObject{Type: "mrkdwn", Text: truncate(section, maxSlackSectionLength)}},
			{Type: "context", Elements: []SlackTextObject{{Type: "mrkdwn", Text: footer}}},
		},
	}
}
