// Package resilience groups the fault tolerance helpers used around external
// calls: circuit breakers for the chat webhooks and the event broker, and
// retry with backoff for webhook deliveries and the startup database ping.
package resilience
