package notifier

import (
	"context"
	"fmt"
	"time"

	"speed/internal/domain/entity"
)

// DiscordNotifier posts the digest to a Discord webhook as an embed.
type DiscordNotifier struct {
	client       *webhookClient
	dashboardURL string
}

// DiscordWebhookPayload is the JSON body sent to the webhook.
type DiscordWebhookPayload struct {
	Embeds []DiscordEmbed `json:"embeds"`
}

// DiscordEmbed is a Discord embed message.
type DiscordEmbed struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	URL         string              `json:"url,omitempty"`
	Color       int                 `json:"color"`
	Fields      []DiscordEmbedField `json:"fields"`
	Footer      DiscordEmbedFooter  `json:"footer"`
	Timestamp   string              `json:"timestamp"`
}

// DiscordEmbedField is one name/value pair in an embed.
type DiscordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// DiscordEmbedFooter is the footer of an embed.
type DiscordEmbedFooter struct {
	Text string `json:"text"`
}

const (
	// #5865F2
	discordBlueColor = 5793266
	// #FEE75C, used while anything waits for moderation
	discordYellowColor = 16705372
)

// NewDiscordNotifier creates a Discord notifier limited to 30 requests/minute.
func NewDiscordNotifier(cfg Config) *DiscordNotifier {
	return &DiscordNotifier{
		client:       newWebhookClient("discord", cfg.DiscordWebhookURL, cfg.Timeout, NewRateLimiter(0.5, 3)),
		dashboardURL: cfg.DashboardURL,
	}
}

// Name implements Notifier.
func (d *DiscordNotifier) Name() string { return "discord" }

func (d *DiscordNotifier) CircuitOpen() bool { return d.client.circuitOpen() }

// NotifyDigest implements Notifier.
func (d *DiscordNotifier) NotifyDigest(ctx context.Context, digest entity.QueueDigest) error {
	if err := d.client.post(ctx, d.buildPayload(digest)); err != nil {
		return fmt.Errorf("discord digest: %w", err)
	}
	return nil
}

func (d *DiscordNotifier) buildPayload(digest entity.QueueDigest) DiscordWebhookPayload {
	color := discordBlueColor
	if digest.Unmoderated > 0 {
		color = discordYellowColor
	}
	return DiscordWebhookPayload{
		Embeds: []DiscordEmbed{{
			Title:       "SPEED review backlog",
			Description: fmt.Sprintf("%d submissions are waiting for review.", digest.Backlog()),
			URL:         d.dashboardURL,
			Color:       color,
			Fields: []DiscordEmbedField{
				{Name: "Awaiting moderation", Value: fmt.Sprint(digest.Unmoderated), Inline: true},
				{Name: "Awaiting analysis", Value: fmt.Sprint(digest.Moderated), Inline: true},
			},
			Footer: DiscordEmbedFooter{
				Text: fmt.Sprintf("%d published, %d rejected", digest.Articles, digest.Rejected),
			},
			Timestamp: digest.GeneratedAt.UTC().Format(time.RFC3339),
		}},
	}
}
