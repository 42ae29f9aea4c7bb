package respond

import (
	"errors"
	"testing"
)

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name  string
		input error
		want  string
	}{
		{
			name:  "postgres DSN",
			input: errors.New("connect: postgres://speed:hunter2@db:5432/speed"),
			want:  "connect: postgres://speed:****@db:5432/speed",
		},
		{
			name:  "slack webhook",
			input: errors.New(`Post "https://hooks.slack.com/services/T000/B000/XXXX": timeout`),
			want:  `Post "https://hooks.slack.com/services/****": timeout`,
		},
		{
			name:  "discord webhook",
			input: errors.New("post https://discord.com/api/webhooks/123/abc-def failed"),
			want:  "post https://discord.com/api/webhooks/**** failed",
		},
		{
			name:  "bearer token",
			input: errors.New("upstream rejected Bearer eyJhbGciOi.eyJzdWIi.sig"),
			want:  "upstream rejected Bearer ****",
		},
		{
			name:  "nothing sensitive",
			input: errors.New("queued article not found"),
			want:  "queued article not found",
		},
		{
			name:  "nil",
			input: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeError(tt.input); got != tt.want {
				t.Errorf("SanitizeError() = %q, want %q", got, tt.want)
			}
		})
	}
}
