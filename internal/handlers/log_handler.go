// File: internal/handlers/log_handler.go
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// FrontendLogPayload is the shape of log events posted by the browser client.
type FrontendLogPayload struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Context any    `json:"context,omitempty"`
}

// LogFrontendEvent ingests client-side log events into the server log.
func LogFrontendEvent(w http.ResponseWriter, r *http.Request) {
	var payload FrontendLogPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	log.Printf("[ClientLog] level=%s message=%q context=%v", payload.Level, payload.Message, payload.Context)

	w.WriteHeader(http.StatusNoContent)
}
