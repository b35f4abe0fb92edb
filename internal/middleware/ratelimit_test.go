package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestLimiter(rate, burst int) *RateLimiter {
	return NewRateLimiter(RateLimitConfig{
		Rate:    rate,
		Window:  time.Minute,
		Burst:   burst,
		Cleanup: time.Hour,
	})
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	t.Parallel()

	rl := newTestLimiter(5, 0)
	defer rl.Stop()

	for i := 0; i < 5; i++ {
		allowed, _, _ := rl.Allow("key")
		if !allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	t.Parallel()

	rl := newTestLimiter(2, 0)
	defer rl.Stop()

	rl.Allow("key")
	rl.Allow("key")

	allowed, remaining, _ := rl.Allow("key")
	if allowed {
		t.Error("third request should be blocked")
	}
	if remaining != 0 {
		t.Errorf("expected 0 remaining, got %d", remaining)
	}
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	rl := newTestLimiter(1, 0)
	defer rl.Stop()

	rl.Allow("alice")

	allowed, _, _ := rl.Allow("bob")
	if !allowed {
		t.Error("bob should have his own bucket")
	}
}

func TestRateLimit_Middleware_SetsHeadersAnd429(t *testing.T) {
	t.Parallel()

	rl := newTestLimiter(1, 0)
	defer rl.Stop()

	handler := RateLimit(rl)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", rr.Code)
	}
	if rr.Header().Get("X-RateLimit-Limit") != "1" {
		t.Errorf("expected limit header '1', got %q", rr.Header().Get("X-RateLimit-Limit"))
	}

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", rr.Code)
	}
	if rr.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}
}
