package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Limiter decides whether a keyed request fits inside its window.
type Limiter interface {
	Allow(key string, limit int, window time.Duration) bool
}

// RateLimiter is an in-memory fixed-window limiter. One instance is
// shared across the routes that need throttling.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rateBucket
}

type rateBucket struct {
	count     int
	windowEnd time.Time
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{buckets: make(map[string]*rateBucket)}
}

func (r *RateLimiter) Allow(key string, limit int, window time.Duration) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	bucket, ok := r.buckets[key]
	if !ok || now.After(bucket.windowEnd) {
		if !ok {
			r.sweep(now)
		}
		r.buckets[key] = &rateBucket{count: 1, windowEnd: now.Add(window)}
		return true
	}
	if bucket.count >= limit {
		return false
	}
	bucket.count++
	return true
}

// sweep drops expired buckets so the map does not grow with every key
// ever seen. Called with the lock held, on new-key insertion only.
func (r *RateLimiter) sweep(now time.Time) {
	for key, bucket := range r.buckets {
		if now.After(bucket.windowEnd) {
			delete(r.buckets, key)
		}
	}
}

// RateLimit wraps a handler with per-key throttling. An empty key or a
// nil limiter passes the request through.
func RateLimit(limiter Limiter, keyFn func(*http.Request) string, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFn(r)
			if key == "" || limiter == nil {
				next.ServeHTTP(w, r)
				return
			}
			if !limiter.Allow(key, limit, window) {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP returns the peer address of the connection. Forwarding
// headers are ignored because anyone can set them; use
// ForwardedClientIP behind a trusted reverse proxy.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// ForwardedClientIP returns the last X-Forwarded-For hop, the one
// appended by the proxy in front of us. Earlier entries are
// client-controlled and not trusted. Without the header it falls back
// to the peer address.
func ForwardedClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		hops := strings.Split(forwarded, ",")
		if ip := strings.TrimSpace(hops[len(hops)-1]); ip != "" {
			return ip
		}
	}
	return ClientIP(r)
}
