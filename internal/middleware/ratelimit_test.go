package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	limiter := NewRateLimiter()

	for i := 0; i < 3; i++ {
		if !limiter.Allow("1.2.3.4", 3, time.Minute) {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if limiter.Allow("1.2.3.4", 3, time.Minute) {
		t.Error("request over the limit should be refused")
	}

	// Separate keys have separate budgets
	if !limiter.Allow("5.6.7.8", 3, time.Minute) {
		t.Error("different key should be allowed")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := NewRateLimiter()
	handler := RateLimit(limiter, ClientIP, 1, time.Minute)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	req := httptest.NewRequest(http.MethodPost, "/api/candidate/login", nil)
	req.RemoteAddr = "10.0.0.1:5555"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request got %d, want 429", rec.Code)
	}
}

func TestRateLimiterEvictsExpiredBuckets(t *testing.T) {
	limiter := NewRateLimiter()

	// A negative window creates a bucket that is already expired.
	limiter.Allow("stale-1", 3, -time.Minute)
	limiter.Allow("stale-2", 3, -time.Minute)

	// The next new key sweeps the expired ones out.
	limiter.Allow("fresh", 3, time.Minute)

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	if len(limiter.buckets) != 1 {
		t.Fatalf("expected 1 live bucket, got %d", len(limiter.buckets))
	}
	if _, ok := limiter.buckets["fresh"]; !ok {
		t.Error("live bucket was evicted")
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.10:42000"
	if got := ClientIP(req); got != "192.168.1.10" {
		t.Errorf("got %q", got)
	}

	// The header is client-controlled and must not shift the key
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	if got := ClientIP(req); got != "192.168.1.10" {
		t.Errorf("forwarded header must be ignored, got %q", got)
	}
}

func TestForwardedClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"

	if got := ForwardedClientIP(req); got != "10.0.0.1" {
		t.Errorf("without header expected the peer address, got %q", got)
	}

	// Only the hop appended by our own proxy counts
	req.Header.Set("X-Forwarded-For", "1.2.3.4, 203.0.113.9")
	if got := ForwardedClientIP(req); got != "203.0.113.9" {
		t.Errorf("expected the last hop, got %q", got)
	}
}
