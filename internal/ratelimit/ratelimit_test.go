// File: internal/ratelimit/ratelimit_test.go
package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(t *testing.T) (*SlidingWindowLimiter, *time.Time) {
	t.Helper()
	rl := NewSlidingWindowLimiter(GenerationConfig())
	t.Cleanup(rl.Close)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	return rl, &now
}

func TestSlidingWindowLimiter(t *testing.T) {
	t.Run("allows up to the limit", func(t *testing.T) {
		rl, _ := newTestLimiter(t)
		for i := 0; i < 3; i++ {
			assert.True(t, rl.Allow("user:1"), "request %d should pass", i+1)
		}
		assert.False(t, rl.Allow("user:1"))
	})

	t.Run("window is rolling, not fixed", func(t *testing.T) {
		rl, now := newTestLimiter(t)
		rl.Allow("user:1")
		*now = now.Add(30 * time.Second)
		rl.Allow("user:1")
		rl.Allow("user:1")
		assert.False(t, rl.Allow("user:1"))

		// 31s later the first request has aged out; one slot frees up.
		*now = now.Add(31 * time.Second)
		assert.True(t, rl.Allow("user:1"))
		assert.False(t, rl.Allow("user:1"))
	})

	t.Run("denied requests do not extend the window", func(t *testing.T) {
		rl, now := newTestLimiter(t)
		for i := 0; i < 5; i++ {
			rl.Allow("user:1")
		}
		*now = now.Add(61 * time.Second)
		assert.True(t, rl.Allow("user:1"), "all recorded requests aged out")
	})

	t.Run("identifiers are independent", func(t *testing.T) {
		rl, _ := newTestLimiter(t)
		for i := 0; i < 3; i++ {
			rl.Allow("user:1")
		}
		assert.False(t, rl.Allow("user:1"))
		assert.True(t, rl.Allow("user:2"))
	})

	t.Run("retry after reports time until a slot frees", func(t *testing.T) {
		rl, now := newTestLimiter(t)
		assert.Zero(t, rl.RetryAfter("user:1"))

		for i := 0; i < 3; i++ {
			rl.Allow("user:1")
		}
		*now = now.Add(20 * time.Second)
		assert.Equal(t, 40*time.Second, rl.RetryAfter("user:1"))
	})

	t.Run("cleanup drops idle identifiers", func(t *testing.T) {
		rl, now := newTestLimiter(t)
		rl.Allow("user:1")
		*now = now.Add(2 * time.Minute)
		rl.cleanup()

		rl.mu.Lock()
		defer rl.mu.Unlock()
		assert.NotContains(t, rl.requests, "user:1")
	})
}

func TestGetClientIP(t *testing.T) {
	t.Run("prefers X-Forwarded-For", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
		r.RemoteAddr = "10.0.0.2:4567"
		assert.Equal(t, "203.0.113.9", GetClientIP(r))
	})

	t.Run("falls back to X-Real-IP", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Real-IP", "203.0.113.7")
		assert.Equal(t, "203.0.113.7", GetClientIP(r))
	})

	t.Run("falls back to remote address", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = "192.0.2.4:1234"
		assert.Equal(t, "192.0.2.4", GetClientIP(r))
	})
}
