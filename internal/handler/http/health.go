// Package http holds the HTTP middleware, operational endpoints (health,
// readiness, liveness, metrics) and the per-IP rate limiter shared by the
// article, moderator and analyst handlers.
package http

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"speed/internal/handler/http/respond"
	"speed/internal/resilience/circuitbreaker"
)

const (
	statusHealthy   = "healthy"
	statusDegraded  = "degraded"
	statusUnhealthy = "unhealthy"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus is the result of one health check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthHandler reports database connectivity and pool usage, plus the state
// of the rate limiters and circuit breakers when they are configured.
// Only an unhealthy database makes the endpoint return 503; degraded checks
// are informational.
type HealthHandler struct {
	DB           *sql.DB
	Version      string
	RateLimiters map[string]*RateLimiter
	Breakers     []*circuitbreaker.CircuitBreaker
	Now          func() time.Time
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := map[string]CheckStatus{"database": h.checkDatabase(ctx)}
	if len(h.RateLimiters) > 0 {
		checks["rate_limiter"] = h.checkRateLimiters()
	}
	if len(h.Breakers) > 0 {
		checks["circuit_breakers"] = h.checkBreakers()
	}

	status, code := statusHealthy, http.StatusOK
	if checks["database"].Status == statusUnhealthy {
		status, code = statusUnhealthy, http.StatusServiceUnavailable
	}

	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) CheckStatus {
	if h.DB == nil {
		return CheckStatus{Status: statusUnhealthy, Message: "not configured"}
	}
	if err := h.DB.PingContext(ctx); err != nil {
		return CheckStatus{Status: statusUnhealthy, Message: respond.SanitizeError(err)}
	}

	stats := h.DB.Stats()
	details := map[string]any{
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
	}
	// 0 は無制限
	if stats.MaxOpenConnections == 0 {
		return CheckStatus{Status: statusHealthy, Details: details}
	}

	utilization := float64(stats.InUse) / float64(stats.MaxOpenConnections) * 100
	details["utilization_percent"] = utilization
	// A single-connection pool (SQLite) is always fully used while serving this request.
	if stats.MaxOpenConnections > 1 && utilization >= 80.0 {
		return CheckStatus{
			Status:  statusDegraded,
			Message: "connection pool utilization above 80%",
			Details: details,
		}
	}
	return CheckStatus{Status: statusHealthy, Details: details}
}

func (h *HealthHandler) checkRateLimiters() CheckStatus {
	details := make(map[string]any, len(h.RateLimiters))
	for name, rl := range h.RateLimiters {
		details[name] = map[string]int{"active_keys": rl.ActiveKeys()}
	}
	return CheckStatus{Status: statusHealthy, Details: details}
}

func (h *HealthHandler) checkBreakers() CheckStatus {
	status := statusHealthy
	details := make(map[string]any, len(h.Breakers))
	for _, cb := range h.Breakers {
		details[cb.Name()] = cb.State().String()
		if cb.IsOpen() {
			status = statusDegraded
		}
	}
	return CheckStatus{Status: status, Details: details}
}

// ReadyHandler answers the readiness probe: 200 "ready" once the database responds.
type ReadyHandler struct {
	DB *sql.DB
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.DB == nil {
		writeText(w, http.StatusServiceUnavailable, "database not configured")
		return
	}
	if err := h.DB.PingContext(ctx); err != nil {
		writeText(w, http.StatusServiceUnavailable, "database not ready")
		return
	}
	writeText(w, http.StatusOK, "ready")
}

// LiveHandler answers the liveness probe.
type LiveHandler struct{}

func (LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, "alive")
}

func writeText(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}
