package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"speed/internal/handler/http/respond"
	"speed/internal/observability/logging"
	authservice "speed/internal/service/auth"
)

type loginRequest struct {
	Username string `json:"username" example:"moderator@example.com"`
	// Email is accepted for older clients.
	Email    string `json:"email"`
	Password string `json:"password" example:"your_password"`
}

type tokenResponse struct {
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	Role      string    `json:"role" example:"moderator"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// TokenHandler authenticates a user and issues a JWT carrying their role.
type TokenHandler struct {
	Service *authservice.AuthService
	Secret  []byte
	TTL     time.Duration
	// Now is optional; it defaults to time.Now.
	Now func() time.Time
}

// ServeHTTP JWT トークン取得
// @Summary      JWT トークン取得
// @Description  ユーザー名とパスワードで認証し、ロール付きの JWT トークンを発行します
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body loginRequest true "ログイン情報"
// @Success      200 {object} tokenResponse "JWT トークン"
// @Failure      400 {object} respond.ErrorBody "リクエストが不正"
// @Failure      401 {object} respond.ErrorBody "認証失敗"
// @Failure      500 {object} respond.ErrorBody "トークン生成失敗"
// @Router       /auth/token [post]
func (h TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger := logging.FromContext(r.Context())

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		recordAuthRequest("unknown", "failure", time.Since(start).Seconds())
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	username := req.Username
	if username == "" {
		username = req.Email
	}

	role, err := h.Service.Authenticate(r.Context(), authservice.Credentials{Username: username, Password: req.Password})
	if err != nil {
		recordAuthRequest("unknown", "failure", time.Since(start).Seconds())
		logger.Warn("authentication failed", slog.String("reason", failureReason(err)))
		if errors.Is(err, authservice.ErrEmptyCredentials) {
			respond.Error(w, http.StatusBadRequest, "username and password are required")
			return
		}
		respond.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	now := time.Now()
	if h.Now != nil {
		now = h.Now()
	}
	signed, err := IssueToken(h.Secret, username, role, now, h.TTL)
	if err != nil {
		recordAuthRequest(role, "failure", time.Since(start).Seconds())
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	recordAuthRequest(role, "success", time.Since(start).Seconds())
	logger.Info("token issued", slog.String("user", username), slog.String("role", role))
	respond.JSON(w, http.StatusOK, tokenResponse{Token: signed, Role: role, ExpiresAt: now.Add(h.TTL).UTC()})
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, authservice.ErrEmptyCredentials):
		return "empty_credentials"
	case errors.Is(err, authservice.ErrWeakPassword):
		return "password_policy"
	default:
		return "invalid_credentials"
	}
}
