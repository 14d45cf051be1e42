// File: internal/middleware/middleware_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traza-ai/trainhub/internal/auth"
	"github.com/traza-ai/trainhub/internal/ratelimit"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestJWTMiddleware(t *testing.T) {
	secret := []byte("test-secret")
	protected := NewJWTMiddleware(secret)(okHandler)

	t.Run("missing cookie on API route is a JSON 401", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/theory", nil)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
		assert.Contains(t, rec.Body.String(), "Authentication required")
	})

	t.Run("missing cookie on page route redirects to login", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/chat", nil)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})

	t.Run("valid token passes and sets the user in context", func(t *testing.T) {
		token, err := auth.GenerateJWT(9, secret)
		require.NoError(t, err)

		var gotUserID uint
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUserID, _ = UserIDFrom(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/api/theory", nil)
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
		rec := httptest.NewRecorder()
		NewJWTMiddleware(secret)(inner).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, uint(9), gotUserID)
	})

	t.Run("invalid token is cleared and rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/theory", nil)
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: "garbage"})
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "auth_token", cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := ratelimit.NewSlidingWindowLimiter(ratelimit.GenerationConfig())
	t.Cleanup(limiter.Close)

	limited := RateLimitMiddleware(limiter, "generate-theory")(okHandler)

	req := func() *http.Request {
		r := httptest.NewRequest("POST", "/api/generate-theory", nil)
		r.RemoteAddr = "192.0.2.1:5000"
		return r
	}

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req())
		require.Equal(t, http.StatusOK, rec.Code, "request %d should pass", i+1)
	}

	rec := httptest.NewRecorder()
	limited.ServeHTTP(rec, req())
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "Too many requests")

	t.Run("different client is unaffected", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/api/generate-theory", nil)
		r.RemoteAddr = "192.0.2.2:5000"
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, r)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
