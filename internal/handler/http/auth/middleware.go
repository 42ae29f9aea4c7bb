package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"speed/internal/handler/http/respond"
	"speed/internal/observability/logging"
	authservice "speed/internal/service/auth"
)

type ctxKey struct{}

// User is the authenticated caller stored in the request context.
type User struct {
	Subject string
	Role    string
}

// Claims are the JWT claims issued by TokenHandler.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

var (
	errMissingToken  = errors.New("missing bearer token")
	errInvalidClaims = errors.New("token is missing sub or role")
)

// UserFromContext returns the caller set by Authz.
func UserFromContext(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(ctxKey{}).(User)
	return u, ok
}

// Authz requires a valid bearer token whose role may use the requested
// method and path. Public endpoints pass through untouched.
// Missing or invalid tokens get 401, a role without access gets 403.
func Authz(svc *authservice.AuthService, secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if svc.IsPublicEndpoint(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			user, err := parseToken(r.Header.Get("Authorization"), secret, time.Now)
			if err != nil {
				authzCheckDuration.Observe(time.Since(start).Seconds())
				recordDenied("", r.Method, "unauthenticated")
				w.Header().Set("WWW-Authenticate", `Bearer realm="speed"`)
				respond.Error(w, http.StatusUnauthorized, "invalid or missing token")
				return
			}

			allowed := checkRolePermission(user.Role, r.Method, r.URL.Path)
			authzCheckDuration.Observe(time.Since(start).Seconds())
			if !allowed {
				recordDenied(user.Role, r.Method, "forbidden")
				logging.FromContext(r.Context()).Warn("forbidden",
					slog.String("user", user.Subject),
					slog.String("role", user.Role),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path))
				respond.Error(w, http.StatusForbidden, "insufficient role for this endpoint")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseToken(header string, secret []byte, now func() time.Time) (User, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return User{}, errMissingToken
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return User{}, fmt.Errorf("parse token: %w", err)
	}
	if claims.Subject == "" || claims.Role == "" {
		return User{}, errInvalidClaims
	}
	return User{Subject: claims.Subject, Role: claims.Role}, nil
}

// IssueToken signs an HS256 token for subject with the given role.
func IssueToken(secret []byte, subject, role string, now time.Time, ttl time.Duration) (string, error) {
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "speed",
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}
