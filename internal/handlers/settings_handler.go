// File: internal/handlers/settings_handler.go
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/traza-ai/trainhub/internal/services"
	"github.com/traza-ai/trainhub/internal/services/ai"
)

// SettingsHandler manages the per-user Anthropic API key override.
type SettingsHandler struct {
	UserService *services.UserService
	Provider    ai.CompletionProvider
	// ServerKeySet reports whether the server has its own upstream key.
	ServerKeySet bool
}

func NewSettingsHandler(us *services.UserService, provider ai.CompletionProvider, serverKeySet bool) *SettingsHandler {
	return &SettingsHandler{UserService: us, Provider: provider, ServerKeySet: serverKeySet}
}

// GetAPIKeyStatus probes the effective key upstream and reports its source.
// The key itself is never returned.
func (h *SettingsHandler) GetAPIKeyStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	userKey, err := h.UserService.ResolveAPIKey(r.Context(), userID)
	if err != nil {
		writeError(w, "Could not load user settings", http.StatusInternalServerError)
		return
	}

	source := "none"
	switch {
	case userKey != "":
		source = "custom"
	case h.ServerKeySet:
		source = "server"
	}

	valid := false
	if source != "none" {
		if err := h.Provider.Probe(r.Context(), userKey); err != nil {
			log.Printf("[SettingsHandler] API key probe failed: %v", err)
		} else {
			valid = true
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"valid":  valid,
		"source": source,
	})
}

// SetAPIKey stores a user-supplied key after a format check.
func (h *SettingsHandler) SetAPIKey(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req struct {
		APIKey string `json:"apiKey"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	key := strings.TrimSpace(req.APIKey)
	if !strings.HasPrefix(key, "sk-ant-") {
		writeError(w, "API key must start with sk-ant-", http.StatusBadRequest)
		return
	}

	if err := h.UserService.SetAPIKey(r.Context(), userID, key); err != nil {
		writeError(w, "Could not save API key", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// DeleteAPIKey clears the override so the server key applies again.
func (h *SettingsHandler) DeleteAPIKey(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	if err := h.UserService.SetAPIKey(r.Context(), userID, ""); err != nil {
		writeError(w, "Could not remove API key", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
