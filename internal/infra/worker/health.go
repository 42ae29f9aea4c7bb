package worker

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"speed/internal/infra/notifier"
)

// HealthServer serves the worker's probes and metrics:
//   - /health: liveness, always 200
//   - /health/ready: 200 once the scheduler is running, 503 before
//   - /health/channels: 503 while any notifier circuit is open
//   - /metrics: Prometheus
type HealthServer struct {
	addr      string
	logger    *slog.Logger
	isReady   atomic.Bool
	notifiers []notifier.Notifier
	server    *http.Server
}

type healthResponse struct {
	Status string `json:"status"`
}

// ChannelStatus is one entry of the /health/channels response.
type ChannelStatus struct {
	Name               string `json:"name"`
	CircuitBreakerOpen bool   `json:"circuit_breaker_open"`
}

// ChannelHealthResponse is the /health/channels body.
type ChannelHealthResponse struct {
	Healthy  bool            `json:"healthy"`
	Channels []ChannelStatus `json:"channels"`
}

// NewHealthServer creates a server that starts not ready.
func NewHealthServer(addr string, logger *slog.Logger, notifiers []notifier.Notifier) *HealthServer {
	return &HealthServer{addr: addr, logger: logger, notifiers: notifiers}
}

// Handler returns the probe mux.
func (h *HealthServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.handleLiveness)
	mux.HandleFunc("GET /health/ready", h.handleReadiness)
	mux.HandleFunc("GET /health/channels", h.handleChannels)
	mux.Handle("GET /metrics", promhttp.Handler())
	return mux
}

// Start serves until ctx is cancelled, then shuts down within 5 seconds.
// It returns http.ErrServerClosed after a graceful shutdown.
func (h *HealthServer) Start(ctx context.Context) error {
	h.server = &http.Server{
		Addr:         h.addr,
		Handler:      h.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		h.logger.Info("health server starting", slog.String("addr", h.addr))
		errChan <- h.server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.server.Shutdown(shutdownCtx); err != nil {
			h.logger.Error("health server shutdown failed", slog.Any("error", err))
			return err
		}
		h.logger.Info("health server stopped")
		return http.ErrServerClosed
	case err := <-errChan:
		if !errors.Is(err, http.ErrServerClosed) {
			h.logger.Error("health server failed", slog.Any("error", err))
		}
		return err
	}
}

// SetReady toggles the readiness probe.
func (h *HealthServer) SetReady(ready bool) {
	h.isReady.Store(ready)
	h.logger.Info("health server readiness changed", slog.Bool("ready", ready))
}

func (h *HealthServer) handleLiveness(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func (h *HealthServer) handleReadiness(w http.ResponseWriter, _ *http.Request) {
	if h.isReady.Load() {
		h.writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
		return
	}
	h.writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "not ready"})
}

func (h *HealthServer) handleChannels(w http.ResponseWriter, _ *http.Request) {
	resp := ChannelHealthResponse{Healthy: true, Channels: make([]ChannelStatus, 0, len(h.notifiers))}
	for _, n := range h.notifiers {
		status := ChannelStatus{Name: n.Name()}
		if cr, ok := n.(notifier.CircuitReporter); ok {
			status.CircuitBreakerOpen = cr.CircuitOpen()
		}
		if status.CircuitBreakerOpen {
			resp.Healthy = false
		}
		resp.Channels = append(resp.Channels, status)
	}

	code := http.StatusOK
	if !resp.Healthy {
		code = http.StatusServiceUnavailable
	}
	h.writeJSON(w, code, resp)
}

func (h *HealthServer) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode health response", slog.Any("error", err))
	}
}
