// Package metrics provides Prometheus metrics registry and recording utilities
// for the submission workflow.
//
// This package centralizes business metrics including:
//   - Submission, moderation, promotion and rejection counters
//   - Queue and store size gauges refreshed by the worker
//   - Event publishing and bulk import counters
//
// HTTP request metrics live with the HTTP middleware in internal/handler/http.
// All metrics are registered with the Prometheus default registry and exposed
// via the /metrics endpoint.
//
// Example usage:
//
//	start := time.Now()
//	// ... promote article ...
//	metrics.RecordPromotion()
//	metrics.RecordWorkflowDuration("promote", time.Since(start))
package metrics
