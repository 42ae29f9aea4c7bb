// Package auth holds the credential checks behind token issuance. It knows
// nothing about HTTP so the CLI can reuse it.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyCredentials is returned when the username or password is blank.
	ErrEmptyCredentials = errors.New("credentials must not be empty")
	// ErrInvalidCredentials is returned for any unknown user or wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrWeakPassword is returned when a submitted password fails the policy.
	ErrWeakPassword = errors.New("password does not meet requirements")
)

// Credentials represents authentication credentials.
type Credentials struct {
	Username string
	Password string
}

// CredentialRequirements defines password policy requirements.
type CredentialRequirements struct {
	MinPasswordLength int
	WeakPasswords     []string
}

// AuthProvider checks credentials and maps users to roles.
type AuthProvider interface {
	ValidateCredentials(ctx context.Context, creds Credentials) error
	// IdentifyUser returns the role of a known user.
	IdentifyUser(ctx context.Context, username string) (string, error)
	GetRequirements() CredentialRequirements
	Name() string
}

// AuthService handles authentication business logic.
type AuthService struct {
	provider        AuthProvider
	publicEndpoints []string
}

// NewAuthService creates a new authentication service.
func NewAuthService(provider AuthProvider, publicEndpoints []string) *AuthService {
	return &AuthService{
		provider:        provider,
		publicEndpoints: publicEndpoints,
	}
}

// ValidateCredentials validates user credentials via the configured provider.
func (s *AuthService) ValidateCredentials(ctx context.Context, creds Credentials) error {
	return s.provider.ValidateCredentials(ctx, creds)
}

// Authenticate validates creds and returns the user's role.
func (s *AuthService) Authenticate(ctx context.Context, creds Credentials) (string, error) {
	if err := s.provider.ValidateCredentials(ctx, creds); err != nil {
		return "", err
	}
	role, err := s.provider.IdentifyUser(ctx, creds.Username)
	if err != nil {
		return "", fmt.Errorf("identify user: %w", err)
	}
	return role, nil
}

// IsPublicEndpoint reports whether path can be reached without a token.
func (s *AuthService) IsPublicEndpoint(path string) bool {
	for _, endpoint := range s.publicEndpoints {
		if MatchEndpoint(path, endpoint) {
			return true
		}
	}
	return false
}

// PublicEndpoints returns a copy of the configured public endpoints.
func (s *AuthService) PublicEndpoints() []string {
	return append([]string(nil), s.publicEndpoints...)
}

// GetProvider returns the current authentication provider.
func (s *AuthService) GetProvider() AuthProvider {
	return s.provider
}

// MatchEndpoint matches a request path against one endpoint entry.
// Entries ending in '/' match by prefix (/swagger/ covers /swagger/index.html).
// Other entries match exactly or with one trailing slash, so /health does
// not cover /healthcheck or /health/detail.
func MatchEndpoint(path, endpoint string) bool {
	if endpoint == "" {
		return false
	}
	if strings.HasSuffix(endpoint, "/") {
		return strings.HasPrefix(path, endpoint)
	}
	return path == endpoint || path == endpoint+"/"
}
