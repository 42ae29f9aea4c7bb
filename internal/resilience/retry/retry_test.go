package retry

import (
	"context"
	"errors"
	"fmt"
	"syscall"
	"testing"
	"time"
)

func fastConfig(attempts int) Config {
	return Config{
		MaxAttempts:    attempts,
		InitialDelay:   10 * time.Millisecond,
		MaxDelay:       50 * time.Millisecond,
		Multiplier:     2.0,
		JitterFraction: 0.1,
	}
}

func TestWithBackoff(t *testing.T) {
	serverErr := &HTTPError{StatusCode: 502, Message: "bad gateway"}
	clientErr := &HTTPError{StatusCode: 404, Message: "no_service"}

	tests := []struct {
		name         string
		failures     int
		err          error
		wantAttempts int
		wantErr      error
	}{
		{name: "first attempt succeeds", failures: 0, err: serverErr, wantAttempts: 1},
		{name: "succeeds after two server errors", failures: 2, err: serverErr, wantAttempts: 3},
		{name: "gives up after max attempts", failures: 10, err: serverErr, wantAttempts: 3, wantErr: serverErr},
		{name: "client error is not retried", failures: 10, err: clientErr, wantAttempts: 1, wantErr: clientErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attempts := 0
			err := WithBackoff(context.Background(), fastConfig(3), func() error {
				attempts++
				if attempts <= tt.failures {
					return tt.err
				}
				return nil
			})

			if attempts != tt.wantAttempts {
				t.Errorf("attempts = %d, want %d", attempts, tt.wantAttempts)
			}
			if tt.wantErr == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestWithBackoff_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	attempts := 0
	err := WithBackoff(ctx, fastConfig(5), func() error {
		attempts++
		if attempts == 2 {
			cancel()
		}
		return syscall.ECONNREFUSED
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if attempts != 2 {
		t.Errorf("expected 2 attempts, got %d", attempts)
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"nil", nil, false},
		{"canceled", context.Canceled, false},
		{"deadline", context.DeadlineExceeded, false},
		{"wrapped deadline", fmt.Errorf("post webhook: %w", context.DeadlineExceeded), false},
		{"500", &HTTPError{StatusCode: 500}, true},
		{"503", &HTTPError{StatusCode: 503}, true},
		{"429", &HTTPError{StatusCode: 429}, true},
		{"408", &HTTPError{StatusCode: 408}, true},
		{"400", &HTTPError{StatusCode: 400}, false},
		{"403", &HTTPError{StatusCode: 403}, false},
		{"wrapped 502", fmt.Errorf("slack: %w", &HTTPError{StatusCode: 502}), true},
		{"connection refused", syscall.ECONNREFUSED, true},
		{"connection reset", syscall.ECONNRESET, true},
		{"timed out", syscall.ETIMEDOUT, true},
		{"network unreachable", syscall.ENETUNREACH, true},
		{"plain error", errors.New("invalid payload"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.retryable {
				t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.retryable)
			}
		})
	}
}

func TestDBConnectConfig(t *testing.T) {
	cfg := DBConnectConfig()

	if cfg.MaxAttempts != 5 {
		t.Errorf("expected MaxAttempts=5, got %d", cfg.MaxAttempts)
	}
	if cfg.InitialDelay != 500*time.Millisecond {
		t.Errorf("expected InitialDelay=500ms, got %v", cfg.InitialDelay)
	}
}

func TestWebhookConfig(t *testing.T) {
	cfg := WebhookConfig()

	if cfg.MaxAttempts != 2 {
		t.Errorf("expected MaxAttempts=2, got %d", cfg.MaxAttempts)
	}
	if cfg.InitialDelay != 5*time.Second {
		t.Errorf("expected InitialDelay=5s, got %v", cfg.InitialDelay)
	}
}

func TestHTTPError_Error(t *testing.T) {
	err := &HTTPError{StatusCode: 500, Message: "Internal Server Error"}
	expected := "HTTP 500: Internal Server Error"

	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestAddJitter(t *testing.T) {
	duration := 100 * time.Millisecond
	jitterFraction := 0.2

	// Run multiple times to check jitter is random
	results := make(map[time.Duration]bool)
	for i := 0; i < 10; i++ {
		result := addJitter(duration, jitterFraction)

		// Result should be between duration and duration*(1+jitterFraction)
		minDuration := duration
		maxDuration := time.Duration(float64(duration) * 1.2)

		if result < minDuration || result > maxDuration {
			t.Errorf("expected result between %v and %v, got %v", minDuration, maxDuration, result)
		}

		results[result] = true
	}

	// Should have some variation (not all the same)
	if len(results) < 2 {
		t.Error("expected jitter to produce varied results")
	}
}

func TestAddJitter_ZeroFraction(t *testing.T) {
	duration := 100 * time.Millisecond
	result := addJitter(duration, 0.0)

	if result != duration {
		t.Errorf("expected no jitter with fraction=0, got %v instead of %v", result, duration)
	}
}
