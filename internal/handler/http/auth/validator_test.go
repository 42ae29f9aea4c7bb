package auth

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPassword(t *testing.T) {
	tests := []struct {
		name    string
		pass    string
		wantErr string
	}{
		{"strong", "correct-horse-battery", ""},
		{"empty", "", "must not be empty"},
		{"short", "abc", "at least 12"},
		{"repeated", "aaaaaaaaaaaa", "numeric pattern"},
		{"ascending digits", "123456789012", "numeric pattern"},
		{"descending digits", "987654321098", "numeric pattern"},
		{"keyboard", "myqwertyuiop!", "keyboard"},
		{"reversed keyboard", "lkjhgfdsa-999", "keyboard"},
		{"weak prefix", "password12345", "common weak"},
		{"weak prefix but long", "password-with-enough-length", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPassword(tt.pass, 12, DefaultWeakPasswords)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateAccounts(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	in := []Account{
		{Username: "admin@speed.test", Password: "correct-horse-battery", Role: RoleAdmin},
		{Username: "mod@speed.test", Password: "short", Role: RoleModerator},
		{Username: "admin@speed.test", Password: "another-long-secret", Role: RoleAnalyst},
	}
	out, err := ValidateAccounts(in, 12, DefaultWeakPasswords, logger)
	require.NoError(t, err)
	assert.Equal(t, in[:1], out)
	assert.Contains(t, buf.String(), "MODERATOR_USER_PASSWORD rejected")
	assert.Contains(t, buf.String(), "ANALYST_USER duplicates another account")
}

func TestValidateAccounts_AdminRequired(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	_, err := ValidateAccounts(nil, 12, DefaultWeakPasswords, logger)
	assert.ErrorIs(t, err, ErrNoAdmin)

	_, err = ValidateAccounts([]Account{{Username: "a", Password: "admin", Role: RoleAdmin}}, 12, DefaultWeakPasswords, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADMIN_USER_PASSWORD")
}
