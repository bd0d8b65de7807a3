package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a settable time source for the limiter.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter(t *testing.T, limit int, methods ...string) (*RateLimiter, *fakeClock) {
	t.Helper()
	rl, err := New(limit, methods...)
	require.NoError(t, err)
	t.Cleanup(rl.Close)

	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	rl.now = clock.Now
	return rl, clock
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func send(h http.Handler, method, path, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		methods []string
		wantErr bool
	}{
		{name: "valid limit", limit: 100},
		{name: "explicit methods", limit: 10, methods: []string{http.MethodPost, http.MethodPut}},
		{name: "zero limit", limit: 0, wantErr: true},
		{name: "negative limit", limit: -10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl, err := New(tt.limit, tt.methods...)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, rl)
				return
			}
			require.NoError(t, err)
			rl.Close()
		})
	}
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		expected   string
	}{
		{name: "remote addr with port", remoteAddr: "192.0.2.1:1234", expected: "192.0.2.1"},
		{name: "remote addr without port", remoteAddr: "192.0.2.1", expected: "192.0.2.1"},
		{name: "ipv6 remote addr", remoteAddr: "[2001:db8::1]:443", expected: "2001:db8::1"},
		{
			name:       "forwarded for single",
			remoteAddr: "10.0.0.1:80",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.5"},
			expected:   "203.0.113.5",
		},
		{
			name:       "forwarded for chain takes first",
			remoteAddr: "10.0.0.1:80",
			headers:    map[string]string{"X-Forwarded-For": " 203.0.113.5 , 10.0.0.2"},
			expected:   "203.0.113.5",
		},
		{
			name:       "blank forwarded for falls back to real ip",
			remoteAddr: "10.0.0.1:80",
			headers:    map[string]string{"X-Forwarded-For": " , 10.0.0.2", "X-Real-IP": "198.51.100.7"},
			expected:   "198.51.100.7",
		},
		{
			name:       "real ip",
			remoteAddr: "10.0.0.1:80",
			headers:    map[string]string{"X-Real-IP": " 198.51.100.7 "},
			expected:   "198.51.100.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, ExtractIP(req))
		})
	}
}

func TestRateLimiter_Middleware(t *testing.T) {
	tests := []struct {
		name          string
		limit         int
		method        string
		requestCount  int
		expectBlocked bool
	}{
		{name: "posts under limit", limit: 5, method: http.MethodPost, requestCount: 3},
		{name: "posts at limit", limit: 3, method: http.MethodPost, requestCount: 3},
		{name: "posts over limit", limit: 3, method: http.MethodPost, requestCount: 4, expectBlocked: true},
		{name: "page views never limited", limit: 1, method: http.MethodGet, requestCount: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl, _ := newTestLimiter(t, tt.limit)
			h := rl.Middleware(okHandler())

			var last *httptest.ResponseRecorder
			for range tt.requestCount {
				last = send(h, tt.method, "/contact", "192.0.2.1:1234")
			}

			if tt.expectBlocked {
				assert.Equal(t, http.StatusTooManyRequests, last.Code)
				assert.NotEmpty(t, last.Header().Get("Retry-After"))
				assert.True(t, strings.Contains(last.Body.String(), "Too many requests"))
			} else {
				assert.Equal(t, http.StatusOK, last.Code)
				assert.Empty(t, last.Header().Get("Retry-After"))
			}
		})
	}
}

func TestRateLimiter_SlidingWindow(t *testing.T) {
	rl, clock := newTestLimiter(t, 2)
	h := rl.Middleware(okHandler())

	assert.Equal(t, http.StatusOK, send(h, http.MethodPost, "/contact", "192.0.2.1:1").Code)
	clock.Advance(20 * time.Second)
	assert.Equal(t, http.StatusOK, send(h, http.MethodPost, "/contact", "192.0.2.1:1").Code)

	rec := send(h, http.MethodPost, "/contact", "192.0.2.1:1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "40", rec.Header().Get("Retry-After"))

	clock.Advance(41 * time.Second)
	assert.Equal(t, http.StatusOK, send(h, http.MethodPost, "/contact", "192.0.2.1:1").Code)
}

func TestRateLimiter_RetryAfterAtLeastOneSecond(t *testing.T) {
	rl, clock := newTestLimiter(t, 1)
	h := rl.Middleware(okHandler())

	send(h, http.MethodPost, "/contact", "192.0.2.1:1")
	clock.Advance(59*time.Second + 900*time.Millisecond)

	rec := send(h, http.MethodPost, "/contact", "192.0.2.1:1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestRateLimiter_DifferentIPs(t *testing.T) {
	rl, _ := newTestLimiter(t, 1)
	h := rl.Middleware(okHandler())

	assert.Equal(t, http.StatusOK, send(h, http.MethodPost, "/contact", "192.0.2.1:1").Code)
	assert.Equal(t, http.StatusOK, send(h, http.MethodPost, "/contact", "192.0.2.2:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, send(h, http.MethodPost, "/contact", "192.0.2.1:1").Code)
}

func TestRateLimiter_OnReject(t *testing.T) {
	rl, _ := newTestLimiter(t, 1)
	var rejected atomic.Int32
	rl.OnReject(func() { rejected.Add(1) })
	h := rl.Middleware(okHandler())

	for range 3 {
		send(h, http.MethodPost, "/services/license", "192.0.2.1:1")
	}
	assert.Equal(t, int32(2), rejected.Load())
}

func TestRateLimiter_EmptyIP(t *testing.T) {
	rl, _ := newTestLimiter(t, 5)
	h := rl.Middleware(okHandler())

	assert.Equal(t, http.StatusBadRequest, send(h, http.MethodPost, "/contact", "").Code)
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl, clock := newTestLimiter(t, 5)
	h := rl.Middleware(okHandler())

	send(h, http.MethodPost, "/contact", "192.0.2.1:1")
	clock.Advance(30 * time.Second)
	send(h, http.MethodPost, "/contact", "192.0.2.2:1")
	clock.Advance(31 * time.Second)

	rl.cleanup()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.requests, "192.0.2.1")
	assert.Len(t, rl.requests["192.0.2.2"], 1)
}

func TestRateLimiter_ConcurrentAccess(t *testing.T) {
	rl, _ := newTestLimiter(t, 50)
	h := rl.Middleware(okHandler())

	var wg sync.WaitGroup
	var allowed atomic.Int32
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if send(h, http.MethodPost, "/contact", "192.0.2.1:1").Code == http.StatusOK {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(50), allowed.Load())
}

func TestRateLimiter_MultipleClose(t *testing.T) {
	rl, err := New(10)
	require.NoError(t, err)
	rl.Close()
	rl.Close()
}
