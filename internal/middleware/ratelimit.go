package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/samber/lo"
)

const (
	windowDuration  = 1 * time.Minute
	cleanupInterval = 1 * time.Minute
)

// RateLimiter limits state-changing requests, form posts by default, per
// client IP address over a sliding one-minute window. Page views are never
// limited.
type RateLimiter struct {
	limit       int
	window      time.Duration
	methods     map[string]bool
	requests    map[string][]time.Time // IP -> request timestamps in the window
	mu          sync.Mutex
	now         func() time.Time
	onReject    func()
	cleanupDone chan struct{}
	closeOnce   sync.Once
}

// New creates a rate limiter allowing limit requests per minute for each of
// the given methods. With no methods, only POST is limited.
//
// Close must be called on shutdown to stop the cleanup goroutine.
func New(limit int, methods ...string) (*RateLimiter, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("rate limit must be positive, got %d", limit)
	}
	if len(methods) == 0 {
		methods = []string{http.MethodPost}
	}

	rl := &RateLimiter{
		limit:       limit,
		window:      windowDuration,
		methods:     lo.SliceToMap(methods, func(m string) (string, bool) { return m, true }),
		requests:    make(map[string][]time.Time),
		now:         time.Now,
		onReject:    func() {},
		cleanupDone: make(chan struct{}),
	}

	go rl.cleanupLoop()

	slog.Info("rate limiter initialized",
		"limit", limit,
		"window", windowDuration.String(),
		"methods", methods,
	)

	return rl, nil
}

// OnReject registers a callback run for every rejected request.
func (rl *RateLimiter) OnReject(fn func()) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.onReject = fn
}

// Middleware returns an http.Handler that wraps the next handler with rate limiting.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.methods[r.Method] {
			next.ServeHTTP(w, r)
			return
		}

		ip := ExtractIP(r)
		if ip == "" {
			slog.Warn("failed to extract IP from request", "path", r.URL.Path)
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}

		allowed, retryAfter := rl.allow(ip)
		if !allowed {
			slog.Debug("rate limit exceeded", "ip", ip, "method", r.Method, "path", r.URL.Path, "limit", rl.limit)

			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			http.Error(w, "Too many requests, please wait a minute and try again", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// allow records a request from ip. When the window is full it returns false
// and the whole seconds until the oldest request leaves the window, at least 1.
func (rl *RateLimiter) allow(ip string) (bool, int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	valid := filterValidTimestamps(rl.requests[ip], now.Add(-rl.window))

	if len(valid) >= rl.limit {
		rl.requests[ip] = valid
		rl.onReject()
		wait := int(valid[0].Add(rl.window).Sub(now).Seconds())
		return false, max(wait, 1)
	}

	rl.requests[ip] = append(valid, now)
	return true, 0
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.cleanupDone:
			return
		}
	}
}

// cleanup drops IPs with no request left in the window.
func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.window)
	for ip, timestamps := range rl.requests {
		valid := filterValidTimestamps(timestamps, cutoff)
		if len(valid) == 0 {
			delete(rl.requests, ip)
			continue
		}
		rl.requests[ip] = valid
	}
}

func filterValidTimestamps(timestamps []time.Time, cutoff time.Time) []time.Time {
	return lo.Filter(timestamps, func(ts time.Time, _ int) bool {
		return ts.After(cutoff)
	})
}

// Close stops the background cleanup goroutine. Safe to call multiple times.
func (rl *RateLimiter) Close() {
	rl.closeOnce.Do(func() {
		close(rl.cleanupDone)
	})
}
