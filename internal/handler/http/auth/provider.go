package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	authservice "speed/internal/service/auth"
)

// Account is one configured user.
type Account struct {
	Username string
	Password string
	Role     string
}

// accountEnv lists the environment variables that configure each role.
var accountEnv = []struct{ userKey, role string }{
	{"ADMIN_USER", RoleAdmin},
	{"MODERATOR_USER", RoleModerator},
	{"ANALYST_USER", RoleAnalyst},
}

// LoadAccounts reads ADMIN_USER, MODERATOR_USER and ANALYST_USER with their
// *_PASSWORD variables. Roles without a user are skipped.
func LoadAccounts(getenv func(string) string) []Account {
	var out []Account
	for _, e := range accountEnv {
		user := getenv(e.userKey)
		if user == "" {
			continue
		}
		out = append(out, Account{
			Username: user,
			Password: getenv(e.userKey + "_PASSWORD"),
			Role:     e.role,
		})
	}
	return out
}

// EnvProvider authenticates against accounts configured in the environment.
type EnvProvider struct {
	accounts          []Account
	minPasswordLength int
	weakPasswords     []string
}

func NewEnvProvider(accounts []Account, minPasswordLength int, weakPasswords []string) *EnvProvider {
	return &EnvProvider{
		accounts:          accounts,
		minPasswordLength: minPasswordLength,
		weakPasswords:     weakPasswords,
	}
}

// ValidateCredentials compares creds with every account in constant time.
func (p *EnvProvider) ValidateCredentials(_ context.Context, creds authservice.Credentials) error {
	if creds.Username == "" || creds.Password == "" {
		return authservice.ErrEmptyCredentials
	}
	if len(creds.Password) < p.minPasswordLength {
		return fmt.Errorf("password must be at least %d characters: %w", p.minPasswordLength, authservice.ErrWeakPassword)
	}
	lower := strings.ToLower(creds.Password)
	for _, weak := range p.weakPasswords {
		if lower == weak {
			return authservice.ErrWeakPassword
		}
	}

	matched := 0
	for _, acc := range p.accounts {
		userMatch := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(acc.Username))
		passMatch := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(acc.Password))
		matched |= userMatch & passMatch
	}
	if matched != 1 {
		return authservice.ErrInvalidCredentials
	}
	return nil
}

// IdentifyUser returns the role of username. The first configured role wins
// when the same user appears twice.
func (p *EnvProvider) IdentifyUser(_ context.Context, username string) (string, error) {
	if username == "" {
		return "", authservice.ErrEmptyCredentials
	}
	for _, acc := range p.accounts {
		if subtle.ConstantTimeCompare([]byte(username), []byte(acc.Username)) == 1 {
			return acc.Role, nil
		}
	}
	return "", authservice.ErrInvalidCredentials
}

func (p *EnvProvider) GetRequirements() authservice.CredentialRequirements {
	return authservice.CredentialRequirements{
		MinPasswordLength: p.minPasswordLength,
		WeakPasswords:     p.weakPasswords,
	}
}

func (p *EnvProvider) Name() string { return "env" }

// Roles returns the roles that have an account, in configuration order.
func (p *EnvProvider) Roles() []string {
	out := make([]string, 0, len(p.accounts))
	for _, acc := range p.accounts {
		out = append(out, acc.Role)
	}
	return out
}
