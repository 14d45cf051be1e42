// File: internal/middleware/ratelimit.go
package middleware

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"

	"github.com/traza-ai/trainhub/internal/ratelimit"
)

// RateLimitMiddleware throttles requests per authenticated user. Requests
// without a user in context fall back to the client IP as identifier.
func RateLimitMiddleware(limiter *ratelimit.SlidingWindowLimiter, name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identifier := ratelimit.GetClientIP(r)
			if userID, ok := UserIDFrom(r.Context()); ok {
				identifier = fmt.Sprintf("user:%d", userID)
			}

			if !limiter.Allow(identifier) {
				retryAfter := limiter.RetryAfter(identifier)
				log.Printf("[RateLimit] Blocked %s request for %s", name, identifier)

				if retryAfter > 0 {
					w.Header().Set("Retry-After", fmt.Sprintf("%d", int(math.Ceil(retryAfter.Seconds()))))
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "Too many requests. Wait a minute and try again.",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Flush passes through so SSE handlers keep streaming when wrapped.
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
