// Package respond writes JSON responses. Errors use the envelope the SPEED
// frontend already understands: {"statusCode", "message", "error"}.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// ErrorBody is the JSON error envelope.
type ErrorBody struct {
	StatusCode int               `json:"statusCode" example:"400"`
	Message    string            `json:"message" example:"Error: Article not created!"`
	Error      string            `json:"error" example:"Bad Request"`
	Fields     map[string]string `json:"fields,omitempty"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		// ヘッダ送信済みのためログのみ
		slog.Default().Error("failed to encode JSON response",
			slog.Int("status_code", code),
			slog.Any("error", err))
	}
}

// Error writes the error envelope with a caller-chosen message.
func Error(w http.ResponseWriter, code int, message string) {
	JSON(w, code, ErrorBody{
		StatusCode: code,
		Message:    message,
		Error:      http.StatusText(code),
	})
}

// ValidationError writes a 400 envelope that also lists the failing fields.
func ValidationError(w http.ResponseWriter, message string, fields map[string]string) {
	JSON(w, http.StatusBadRequest, ErrorBody{
		StatusCode: http.StatusBadRequest,
		Message:    message,
		Error:      http.StatusText(http.StatusBadRequest),
		Fields:     fields,
	})
}

// safeFragments mark error messages that are fine to show to clients.
var safeFragments = []string{
	"required",
	"invalid",
	"not found",
	"does not exist",
	"must be",
	"must not",
	"cannot be",
	"too large",
}

// SafeError writes err's message for 4xx errors that look user-facing.
// Everything else, and every 5xx, is logged (sanitized) and replaced by a
// generic message.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	msg := err.Error()
	if code < 500 && isSafe(msg) {
		Error(w, code, msg)
		return
	}

	slog.Default().Error("request failed",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	if code < 500 {
		Error(w, code, http.StatusText(code))
		return
	}
	Error(w, code, "Internal server error")
}

func isSafe(msg string) bool {
	lower := strings.ToLower(msg)
	for _, frag := range safeFragments {
		if strings.Contains(lower, frag) {
			return true
		}
	}
	return false
}
