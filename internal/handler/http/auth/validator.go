package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// DefaultWeakPasswords are rejected outright and as prefixes of short passwords.
var DefaultWeakPasswords = []string{
	"admin",
	"password",
	"123456",
	"secret",
	"admin123",
	"password123",
	"123456789",
	"12345678",
	"qwerty",
	"abc123",
	"letmein",
	"welcome",
	"monkey",
	"1234567890",
	"password1",
	"admin1",
	"test",
	"test123",
	"default",
	"root",
	"moderator",
	"analyst",
	"speed",
}

var keyboardPatterns = []string{
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
	"qwerty",
	"asdfgh",
	"zxcvb",
}

// ErrNoAdmin is returned when auth is enabled without an admin account.
var ErrNoAdmin = errors.New("ADMIN_USER must be configured when auth is enabled")

// CheckPassword applies the startup password policy to one password.
func CheckPassword(pass string, minLength int, weakPasswords []string) error {
	if pass == "" {
		return errors.New("password must not be empty")
	}
	if len(pass) < minLength {
		return fmt.Errorf("password must be at least %d characters (current length: %d)", minLength, len(pass))
	}
	if isRepeatedChar(pass) || isNumericSequence(pass) {
		return errors.New("password must not be a simple numeric pattern")
	}
	if isKeyboardPattern(pass) {
		return errors.New("password must not be a keyboard pattern")
	}

	lower := strings.ToLower(pass)
	for _, weak := range weakPasswords {
		if lower == weak {
			return errors.New("password must not be a weak password")
		}
		// admin1234567890 and friends
		if strings.HasPrefix(lower, weak) && len(pass) < minLength+5 {
			return errors.New("password must not be based on common weak passwords")
		}
	}
	return nil
}

// ValidateAccounts checks the configured accounts at startup.
// A bad admin account is fatal. A bad moderator or analyst account is dropped
// with a warning and the service keeps running without that role.
func ValidateAccounts(accounts []Account, minLength int, weakPasswords []string, logger *slog.Logger) ([]Account, error) {
	var (
		out      []Account
		hasAdmin bool
		seen     = map[string]string{}
	)
	for _, acc := range accounts {
		if acc.Role == RoleAdmin {
			if err := CheckPassword(acc.Password, minLength, weakPasswords); err != nil {
				return nil, fmt.Errorf("admin credentials validation failed: ADMIN_USER_PASSWORD: %w", err)
			}
			hasAdmin = true
			seen[acc.Username] = acc.Role
			out = append(out, acc)
			continue
		}

		envKey := strings.ToUpper(acc.Role) + "_USER"
		if role, dup := seen[acc.Username]; dup {
			logger.Warn(envKey+" duplicates another account - disabling role",
				slog.String("role", acc.Role), slog.String("existing_role", role))
			continue
		}
		if err := CheckPassword(acc.Password, minLength, weakPasswords); err != nil {
			logger.Warn(envKey+"_PASSWORD rejected - disabling role",
				slog.String("role", acc.Role), slog.String("reason", err.Error()))
			continue
		}
		seen[acc.Username] = acc.Role
		out = append(out, acc)
		logger.Info("role configured", slog.String("role", acc.Role), slog.String("user", acc.Username))
	}
	if !hasAdmin {
		return nil, ErrNoAdmin
	}
	return out, nil
}

func isRepeatedChar(pass string) bool {
	for i := 1; i < len(pass); i++ {
		if pass[i] != pass[0] {
			return false
		}
	}
	return len(pass) > 0
}

// isNumericSequence matches digit runs like 123456789012 or 987654321098.
func isNumericSequence(pass string) bool {
	if len(pass) < 2 {
		return false
	}
	for _, ch := range pass {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	asc, desc := true, true
	for i := 1; i < len(pass); i++ {
		diff := int(pass[i]) - int(pass[i-1])
		if diff != 1 && diff != -9 {
			asc = false
		}
		if diff != -1 && diff != 9 {
			desc = false
		}
	}
	return asc || desc
}

func isKeyboardPattern(pass string) bool {
	lower := strings.ToLower(pass)
	for _, pattern := range keyboardPatterns {
		if strings.Contains(lower, pattern) || strings.Contains(lower, reverse(pattern)) {
			return true
		}
	}
	return false
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
