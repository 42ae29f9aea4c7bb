package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	authRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_requests_total",
			Help: "Token requests by role and result",
		},
		[]string{"role", "result"}, // result: success | failure
	)

	authDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "auth_duration_seconds",
			Help:    "Token request duration by role",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
		[]string{"role"},
	)

	authzCheckDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "authz_check_duration_seconds",
			Help:    "Authorization check duration",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)

	// authzDenied counts rejected requests. reason: unauthenticated | forbidden
	authzDenied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authz_denied_total",
			Help: "Requests denied by the authorization middleware",
		},
		[]string{"role", "method", "reason"},
	)
)

func recordAuthRequest(role, result string, seconds float64) {
	authRequestsTotal.WithLabelValues(role, result).Inc()
	authDuration.WithLabelValues(role).Observe(seconds)
}

func recordDenied(role, method, reason string) {
	switch {
	case role == "":
		role = "anonymous"
	case !IsKnownRole(role):
		role = "unknown"
	}
	authzDenied.WithLabelValues(role, method, reason).Inc()
}
