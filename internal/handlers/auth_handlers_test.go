// File: internal/handlers/auth_handlers_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traza-ai/trainhub/internal/services"
)

func newAuthFixture() *AuthHandler {
	return NewAuthHandler(services.NewUserService(newMemoryUserRepo(), "secret"))
}

func TestRegister(t *testing.T) {
	h := newAuthFixture()

	t.Run("creates a user", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/auth/register",
			strings.NewReader(`{"username":"alice","password":"supersecret"}`))
		rec := httptest.NewRecorder()
		h.Register(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	})

	t.Run("rejects a duplicate username", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/auth/register",
			strings.NewReader(`{"username":"alice","password":"supersecret"}`))
		rec := httptest.NewRecorder()
		h.Register(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("rejects a short password", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/auth/register",
			strings.NewReader(`{"username":"bob","password":"short"}`))
		rec := httptest.NewRecorder()
		h.Register(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "at least 8 characters")
	})

	t.Run("rejects an invalid username", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/auth/register",
			strings.NewReader(`{"username":"a b!","password":"supersecret"}`))
		rec := httptest.NewRecorder()
		h.Register(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	h := newAuthFixture()
	req := httptest.NewRequest("POST", "/api/auth/register",
		strings.NewReader(`{"username":"carol","password":"supersecret"}`))
	h.Register(httptest.NewRecorder(), req)

	t.Run("valid credentials set the session cookie", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/auth/login",
			strings.NewReader(`{"username":"carol","password":"supersecret"}`))
		rec := httptest.NewRecorder()
		h.Login(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "auth_token", cookies[0].Name)
		assert.NotEmpty(t, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("wrong password is a 401", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/auth/login",
			strings.NewReader(`{"username":"carol","password":"wrongwrong"}`))
		rec := httptest.NewRecorder()
		h.Login(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown user is a 401", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/auth/login",
			strings.NewReader(`{"username":"nobody","password":"supersecret"}`))
		rec := httptest.NewRecorder()
		h.Login(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestLogout(t *testing.T) {
	h := newAuthFixture()
	req := httptest.NewRequest("POST", "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.True(t, cookies[0].Expires.Before(time.Now()))
}
