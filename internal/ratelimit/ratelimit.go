// File: internal/ratelimit/ratelimit.go
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Config holds rate limiting configuration
type Config struct {
	WindowSize    time.Duration // Rolling window for rate limiting
	MaxRequests   int           // Maximum requests per window
	CleanupPeriod time.Duration // How often to clean up old entries
}

// GenerationConfig returns the limits for LLM generation endpoints
func GenerationConfig() *Config {
	return &Config{
		WindowSize:    time.Minute,
		MaxRequests:   3,
		CleanupPeriod: 5 * time.Minute,
	}
}

// DefaultAuthConfig returns sensible defaults for auth endpoints
func DefaultAuthConfig() *Config {
	return &Config{
		WindowSize:    15 * time.Minute,
		MaxRequests:   5,
		CleanupPeriod: 30 * time.Minute,
	}
}

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Allow(identifier string) bool
}

// SlidingWindowLimiter tracks request timestamps per identifier and
// allows a request only when fewer than MaxRequests fall inside the
// rolling window ending now.
type SlidingWindowLimiter struct {
	config   *Config
	requests map[string][]time.Time
	mu       sync.Mutex
	stopCh   chan struct{}

	now func() time.Time // injectable for tests
}

// NewSlidingWindowLimiter creates a limiter and starts its cleanup goroutine.
func NewSlidingWindowLimiter(config *Config) *SlidingWindowLimiter {
	limiter := &SlidingWindowLimiter{
		config:   config,
		requests: make(map[string][]time.Time),
		stopCh:   make(chan struct{}),
		now:      time.Now,
	}
	go limiter.cleanupLoop()
	return limiter
}

// Allow reports whether the identifier may make a request now. A denied
// request is not recorded, so it does not extend the window.
func (rl *SlidingWindowLimiter) Allow(identifier string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.config.WindowSize)

	recent := rl.requests[identifier][:0]
	for _, t := range rl.requests[identifier] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= rl.config.MaxRequests {
		rl.requests[identifier] = recent
		return false
	}

	rl.requests[identifier] = append(recent, now)
	return true
}

// RetryAfter returns how long the identifier must wait before its next
// request could be allowed. Zero means a request would be allowed now.
func (rl *SlidingWindowLimiter) RetryAfter(identifier string) time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.config.WindowSize)

	recent := make([]time.Time, 0, len(rl.requests[identifier]))
	for _, t := range rl.requests[identifier] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	if len(recent) < rl.config.MaxRequests {
		return 0
	}
	// Oldest in-window request falling out of the window frees a slot.
	return recent[0].Add(rl.config.WindowSize).Sub(now)
}

func (rl *SlidingWindowLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.config.CleanupPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCh:
			return
		}
	}
}

// cleanup removes identifiers with no in-window requests
func (rl *SlidingWindowLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.config.WindowSize)
	for identifier, timestamps := range rl.requests {
		live := false
		for _, t := range timestamps {
			if t.After(cutoff) {
				live = true
				break
			}
		}
		if !live {
			delete(rl.requests, identifier)
		}
	}
}

// Close stops the cleanup goroutine
func (rl *SlidingWindowLimiter) Close() {
	close(rl.stopCh)
}

// GetClientIP extracts the real client IP from request
func GetClientIP(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		if ip := parseFirstIP(forwarded); ip != "" {
			return ip
		}
	}

	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// parseFirstIP extracts the first IP from a comma-separated list
func parseFirstIP(forwarded string) string {
	ips := strings.Split(forwarded, ",")
	if len(ips) > 0 {
		return strings.TrimSpace(ips[0])
	}
	return ""
}
