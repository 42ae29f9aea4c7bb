package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"speed/internal/resilience/circuitbreaker"
	"speed/internal/resilience/retry"
)

const maxErrorBodyLength = 200

// webhookClient posts JSON payloads to a chat webhook. The URL embeds a secret
// token, so it never appears in errors or logs.
type webhookClient struct {
	url      string
	http     *http.Client
	limiter  *RateLimiter
	breaker  *circuitbreaker.CircuitBreaker
	retryCfg retry.Config
}

func newWebhookClient(name, webhookURL string, timeout time.Duration, limiter *RateLimiter) *webhookClient {
	return &webhookClient{
		url:      webhookURL,
		http:     &http.Client{Timeout: timeout},
		limiter:  limiter,
		breaker:  circuitbreaker.New(circuitbreaker.WebhookConfig(name)),
		retryCfg: retry.WebhookConfig(),
	}
}

func (c *webhookClient) post(ctx context.Context, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}
	if err := c.limiter.Allow(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}
	return c.breaker.Do(func() error {
		return retry.WithBackoff(ctx, c.retryCfg, func() error {
			return c.send(ctx, body)
		})
	})
}

func (c *webhookClient) circuitOpen() bool { return c.breaker.IsOpen() }

func (c *webhookClient) send(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// *url.Error repeats the full URL; keep only the cause.
		return fmt.Errorf("execute http request: %w", unwrapURLError(err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLength))
	return &retry.HTTPError{StatusCode: resp.StatusCode, Message: string(msg)}
}

func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

// truncate shortens s to at most max bytes, ending with "...".
func truncate(s string, max int) string {
	const suffix = "..."
	if len(s) <= max {
		return s
	}
	cut := max - len(suffix)
	if cut < 0 {
		cut = 0
	}
	return s[:cut] + suffix
}
