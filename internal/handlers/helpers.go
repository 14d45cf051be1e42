// File: internal/handlers/helpers.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/traza-ai/trainhub/internal/domain"
	"github.com/traza-ai/trainhub/internal/middleware"
)

// writeJSON is a helper for sending JSON responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError is a helper for sending JSON error responses.
func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, map[string]string{"error": message})
}

// currentUserID pulls the authenticated user from the request context.
func currentUserID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

// chatTypeVar validates the {type} route variable.
func chatTypeVar(w http.ResponseWriter, r *http.Request) (domain.ChatType, bool) {
	t := mux.Vars(r)["type"]
	if !domain.IsValidChatType(t) {
		writeError(w, "Invalid chat type", http.StatusBadRequest)
		return "", false
	}
	return domain.ChatType(t), true
}
