// File: internal/handlers/auth_handlers.go
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/traza-ai/trainhub/internal/domain"
	"github.com/traza-ai/trainhub/internal/services"
)

var (
	usernameRegex     = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)
	passwordMinLength = 8
)

// AuthHandler holds the dependencies for authentication handlers.
type AuthHandler struct {
	UserService *services.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service *services.UserService) *AuthHandler {
	return &AuthHandler{UserService: service}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// validateCredentials ensures username and password meet basic rules.
func validateCredentials(username, password string) (string, string, string) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	var errMsg string
	switch {
	case !usernameRegex.MatchString(username):
		errMsg = "Username must be 3-20 characters, alphanumeric or underscore."
	case len(password) < passwordMinLength:
		errMsg = "Password must be at least 8 characters."
	}
	return username, password, errMsg
}

// Register handles new user registrations.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	username, password, errMsg := validateCredentials(req.Username, req.Password)
	if errMsg != "" {
		writeError(w, errMsg, http.StatusBadRequest)
		return
	}

	created, err := h.UserService.RegisterUser(r.Context(), &domain.User{Username: username}, password)
	if err != nil {
		log.Printf("Registration error: %v", err)
		writeError(w, err.Error(), http.StatusConflict)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":       created.ID,
		"username": created.Username,
	})
}

// Login validates user credentials and sets the session cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)
	if username == "" || password == "" {
		writeError(w, "Username and password are required.", http.StatusBadRequest)
		return
	}

	token, err := h.UserService.Login(r.Context(), username, password)
	if err != nil {
		log.Printf("Login error: %v", err)
		writeError(w, "Invalid username or password.", http.StatusUnauthorized)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		Secure:   true,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    "",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   true,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
