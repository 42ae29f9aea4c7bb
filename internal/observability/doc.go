// Package observability provides the logging, metrics and tracing used by the
// API server, the worker and speedctl.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus workflow metrics and recorders
//   - tracing: OpenTelemetry tracer setup and HTTP middleware
//
// Example usage:
//
//	import (
//	    "speed/internal/observability/logging"
//	    "speed/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("application started")
//
//	    metrics.RecordSubmission(metrics.ResultAccepted)
//	}
package observability
