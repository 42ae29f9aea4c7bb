package respond

import "regexp"

var (
	// DSN 内のパスワード
	dsnPasswordPattern = regexp.MustCompile(`://([^:/@]+):([^@]+)@`)

	// Slack / Discord の Webhook はパス自体がトークン
	slackWebhookPattern   = regexp.MustCompile(`hooks\.slack\.com/services/[A-Za-z0-9/_-]+`)
	discordWebhookPattern = regexp.MustCompile(`discord(?:app)?\.com/api/webhooks/[A-Za-z0-9/_-]+`)

	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9._~+/=-]+`)
)

// SanitizeError masks credentials that may appear in error messages.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = dsnPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = slackWebhookPattern.ReplaceAllString(msg, "hooks.slack.com/services/****")
	msg = discordWebhookPattern.ReplaceAllString(msg, "discord.com/api/webhooks/****")
	msg = bearerPattern.ReplaceAllString(msg, "Bearer ****")
	return msg
}
