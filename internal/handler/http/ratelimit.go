package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"speed/internal/handler/http/pathutil"
	"speed/internal/handler/http/respond"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter is a per-client-IP token bucket. It guards the write endpoints
// (POST /articles/new, POST /analyst) and POST /auth/token.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
	now      func() time.Time
}

// NewRateLimiter allows burst requests per IP at once, refilled at rps.
// Buckets idle for longer than idleTTL are dropped by Cleanup.
func NewRateLimiter(rps float64, burst int, idleTTL time.Duration) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(rps),
		burst:    burst,
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

// Limit responds 429 with a Retry-After header once the client's bucket is empty.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := extractIP(r)
		if !rl.allow(ip) {
			httpRateLimitedTotal.WithLabelValues(pathutil.NormalizePath(r.URL.Path)).Inc()
			w.Header().Set("Retry-After", strconv.Itoa(rl.retryAfterSeconds()))
			respond.Error(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(ip string) bool {
	now := rl.now()

	rl.mu.Lock()
	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = now
	rl.mu.Unlock()

	return v.limiter.AllowN(now, 1)
}

func (rl *RateLimiter) retryAfterSeconds() int {
	if rl.limit <= 0 {
		return 60
	}
	secs := int(1/float64(rl.limit) + 0.999)
	return max(secs, 1)
}

// Cleanup removes buckets not used within idleTTL and returns how many were removed.
func (rl *RateLimiter) Cleanup() int {
	cutoff := rl.now().Add(-rl.idleTTL)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	removed := 0
	for ip, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, ip)
			removed++
		}
	}
	return removed
}

// ActiveKeys returns the number of tracked client IPs.
func (rl *RateLimiter) ActiveKeys() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}

// StartCleanup runs Cleanup every interval until ctx is cancelled.
func (rl *RateLimiter) StartCleanup(ctx context.Context, interval time.Duration, name string) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("rate limit cleanup stopped", slog.String("limiter", name))
			return
		case <-ticker.C:
			if n := rl.Cleanup(); n > 0 {
				slog.Debug("rate limit buckets evicted",
					slog.String("limiter", name), slog.Int("count", n))
			}
		}
	}
}
