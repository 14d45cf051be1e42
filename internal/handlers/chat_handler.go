// File: internal/handlers/chat_handler.go
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/traza-ai/trainhub/internal/domain"
	"github.com/traza-ai/trainhub/internal/services"
	"github.com/traza-ai/trainhub/internal/services/ai"
	"github.com/traza-ai/trainhub/internal/store"
)

// MaxHistoryMessages bounds how much history is sent upstream per request.
const MaxHistoryMessages = 30

type ChatHandler struct {
	Provider    ai.CompletionProvider
	PromptStore *store.PromptStore
	ChatStore   *store.ChatStore
	UserService *services.UserService
}

func NewChatHandler(provider ai.CompletionProvider, ps *store.PromptStore, cs *store.ChatStore, us *services.UserService) *ChatHandler {
	return &ChatHandler{
		Provider:    provider,
		PromptStore: ps,
		ChatStore:   cs,
		UserService: us,
	}
}

type chatRequest struct {
	ID       string             `json:"id"`
	Messages []domain.UIMessage `json:"messages"`
	Model    string             `json:"model,omitempty"`
}

// StreamChat streams an assistant reply over SSE and persists the settled
// conversation once the stream ends. Client cancellation keeps whatever
// text arrived before the disconnect.
func (h *ChatHandler) StreamChat(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	chatType, ok := chatTypeVar(w, r)
	if !ok {
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if len(req.Messages) == 0 {
		writeError(w, "Messages are required", http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	apiKey, err := h.UserService.ResolveAPIKey(r.Context(), userID)
	if err != nil {
		writeError(w, "Could not load user settings", http.StatusInternalServerError)
		return
	}

	model := req.Model
	if !services.IsAllowedModel(model) {
		model = h.PromptStore.GetSelectedModel(r.Context(), userID)
	}

	system := h.PromptStore.GetFullSystemPrompt(r.Context(), userID, chatType)

	history := req.Messages
	if len(history) > MaxHistoryMessages {
		history = history[len(history)-MaxHistoryMessages:]
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	assistantID := uuid.NewString()
	var assistantText string

	streamErr := h.Provider.StreamChatCompletion(r.Context(), apiKey, model, system,
		ai.ChatMessagesFromUI(history), func(delta string) error {
			assistantText += delta
			payload, _ := json.Marshal(map[string]string{
				"type":  "text-delta",
				"id":    assistantID,
				"delta": delta,
			})
			if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				return err
			}
			flusher.Flush()
			return nil
		})

	if streamErr != nil && assistantText == "" {
		payload, _ := json.Marshal(map[string]string{
			"type":  "error",
			"error": streamErrorMessage(streamErr),
		})
		fmt.Fprintf(w, "data: %s\n\n", payload)
		flusher.Flush()
		log.Printf("[ChatHandler] Stream failed before first token: %v", streamErr)
		return
	}

	// Settle point: persist the full exchange, partial replies included.
	settled := req.Messages
	if assistantText != "" {
		settled = append(settled, domain.UIMessage{
			ID:    assistantID,
			Role:  domain.RoleAssistant,
			Parts: []domain.MessagePart{{Type: "text", Text: assistantText}},
		})
	}
	// Persist with a fresh context so a client disconnect cannot abort the write.
	h.ChatStore.SaveMessages(context.WithoutCancel(r.Context()), userID, chatType, settled)

	fmt.Fprint(w, "data: [DONE]\n\n")
	flusher.Flush()

	if streamErr != nil {
		log.Printf("[ChatHandler] Stream ended early: %v", streamErr)
	}
}

func streamErrorMessage(err error) string {
	switch ai.UpstreamStatus(err) {
	case http.StatusTooManyRequests:
		return "The AI service is rate limited. Wait a moment and try again."
	case 529:
		return "The AI service is overloaded. Try again shortly."
	case http.StatusUnauthorized, http.StatusForbidden:
		return "The server's AI credentials are not configured correctly."
	default:
		return "Something went wrong while generating a response."
	}
}

// GetMessages returns the persisted conversation for a chat type.
func (h *ChatHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	chatType, ok := chatTypeVar(w, r)
	if !ok {
		return
	}

	messages := h.ChatStore.LoadMessages(r.Context(), userID, chatType)
	if messages == nil {
		messages = []domain.UIMessage{}
	}
	writeJSON(w, http.StatusOK, messages)
}

// ClearChat archives the current conversation (unless archive=false) and
// clears the live slot.
func (h *ChatHandler) ClearChat(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	chatType, ok := chatTypeVar(w, r)
	if !ok {
		return
	}

	if r.URL.Query().Get("archive") != "false" {
		if messages := h.ChatStore.LoadMessages(r.Context(), userID, chatType); len(messages) > 0 {
			h.ChatStore.ArchiveChat(r.Context(), userID, chatType, messages)
		}
	}
	h.ChatStore.ClearMessages(r.Context(), userID, chatType)

	w.WriteHeader(http.StatusNoContent)
}

// GetArchives lists archived conversations, newest first.
func (h *ChatHandler) GetArchives(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	chatType, ok := chatTypeVar(w, r)
	if !ok {
		return
	}

	archives := h.ChatStore.GetArchives(r.Context(), userID, chatType)
	if archives == nil {
		archives = []domain.ChatArchive{}
	}
	writeJSON(w, http.StatusOK, archives)
}

// RestoreArchive loads an archived conversation back into the live slot.
func (h *ChatHandler) RestoreArchive(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	chatType, ok := chatTypeVar(w, r)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]
	messages := h.ChatStore.RestoreArchive(r.Context(), userID, chatType, id)
	if messages == nil {
		writeError(w, "Archive not found", http.StatusNotFound)
		return
	}

	h.ChatStore.SaveMessages(r.Context(), userID, chatType, messages)
	writeJSON(w, http.StatusOK, messages)
}

// DeleteArchive removes one archived conversation.
func (h *ChatHandler) DeleteArchive(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	chatType, ok := chatTypeVar(w, r)
	if !ok {
		return
	}

	h.ChatStore.DeleteArchive(r.Context(), userID, chatType, mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}
