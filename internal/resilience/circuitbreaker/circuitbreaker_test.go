package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
)

func testConfig() Config {
	return Config{
		Name:             "test-circuit",
		MaxRequests:      2,
		Interval:         10 * time.Second,
		Timeout:          100 * time.Millisecond,
		FailureThreshold: 0.6,
		MinRequests:      5,
	}
}

func TestNew(t *testing.T) {
	cb := New(testConfig())

	if cb.Name() != "test-circuit" {
		t.Errorf("expected name='test-circuit', got %q", cb.Name())
	}
	if cb.State() != gobreaker.StateClosed {
		t.Errorf("expected initial state=Closed, got %v", cb.State())
	}
}

func TestCircuitBreaker_Do_PassesError(t *testing.T) {
	cb := New(testConfig())
	hookErr := errors.New("webhook 500")

	if err := cb.Do(func() error { return hookErr }); !errors.Is(err, hookErr) {
		t.Errorf("expected webhook error, got %v", err)
	}
	if err := cb.Do(func() error { return nil }); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestCircuitBreaker_TripsOpenAndRecovers(t *testing.T) {
	cb := New(testConfig())
	brokerErr := errors.New("broker unreachable")

	for i := 0; i < 5; i++ {
		_ = cb.Do(func() error { return brokerErr })
	}
	if !cb.IsOpen() {
		t.Fatalf("expected open circuit, got %v", cb.State())
	}

	called := false
	err := cb.Do(func() error {
		called = true
		return nil
	})
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("expected ErrOpenState, got %v", err)
	}
	if called {
		t.Error("function must not run while the circuit is open")
	}

	// タイムアウト後は half-open で一件通す
	time.Sleep(150 * time.Millisecond)
	if err := cb.Do(func() error { return nil }); err != nil {
		t.Errorf("expected success in half-open state, got %v", err)
	}
	if cb.IsOpen() {
		t.Error("circuit should not be open after a successful probe")
	}
}

func TestCircuitBreaker_MinRequests(t *testing.T) {
	cb := New(testConfig())

	for i := 0; i < 4; i++ {
		_ = cb.Do(func() error { return errors.New("fail") })
	}
	if cb.State() != gobreaker.StateClosed {
		t.Errorf("expected Closed below MinRequests, got %v", cb.State())
	}
}

func TestWebhookConfig(t *testing.T) {
	cb := New(WebhookConfig("slack"))

	for i := 0; i < 2; i++ {
		_ = cb.Do(func() error { return errors.New("404 no_service") })
	}
	if !cb.IsOpen() {
		t.Errorf("expected webhook circuit to open after 2 failures, got %v", cb.State())
	}
}

func TestConfigs(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"webhook", WebhookConfig("discord")},
		{"broker", EventBrokerConfig()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.cfg.Name == "" {
				t.Error("expected a name")
			}
			if tt.cfg.MaxRequests == 0 || tt.cfg.MinRequests == 0 {
				t.Error("expected non-zero request limits")
			}
			if tt.cfg.FailureThreshold <= 0 || tt.cfg.FailureThreshold > 1 {
				t.Errorf("threshold out of range: %v", tt.cfg.FailureThreshold)
			}
			if tt.cfg.Timeout <= 0 {
				t.Error("expected positive timeout")
			}
		})
	}
}
