// Package tracing provides OpenTelemetry tracing integration.
//
// Middleware creates a server span per HTTP request and StartSpan creates
// child spans for workflow operations. Spans go to the global tracer provider;
// without an SDK provider installed they are no-ops.
//
// Example usage:
//
//	func promote(ctx context.Context, id string) error {
//	    ctx, span := tracing.StartSpan(ctx, "workflow.Promote",
//	        attribute.String("article.id", id))
//	    defer span.End()
//	    // ...
//	}
package tracing
