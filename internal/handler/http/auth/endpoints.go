package auth

// DefaultPublicEndpoints are reachable without a token: probes, metrics,
// API docs, token issuance and the public article search.
// Entries ending in '/' match by prefix.
var DefaultPublicEndpoints = []string{
	"/health",
	"/ready",
	"/live",
	"/metrics",
	"/swagger/",
	"/auth/token",
	"/articles",
	"/articles/",
}
