// File: internal/handlers/prompt_handler.go
package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/traza-ai/trainhub/internal/services"
	"github.com/traza-ai/trainhub/internal/store"
)

type PromptHandler struct {
	PromptStore *store.PromptStore
}

func NewPromptHandler(ps *store.PromptStore) *PromptHandler {
	return &PromptHandler{PromptStore: ps}
}

// GetPrompt returns the effective system prompt and whether it was customized.
func (h *PromptHandler) GetPrompt(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	chatType, ok := chatTypeVar(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"prompt":     h.PromptStore.GetSystemPrompt(r.Context(), userID, chatType),
		"customized": h.PromptStore.IsPromptCustomized(r.Context(), userID, chatType),
	})
}

// SetPrompt stores a custom system prompt. Blank input is ignored and the
// effective prompt is returned unchanged.
func (h *PromptHandler) SetPrompt(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	chatType, ok := chatTypeVar(w, r)
	if !ok {
		return
	}

	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := h.PromptStore.SetSystemPrompt(r.Context(), userID, chatType, req.Prompt); err != nil {
		writeError(w, "Could not save prompt", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"prompt": h.PromptStore.GetSystemPrompt(r.Context(), userID, chatType),
	})
}

// ResetPrompt removes the customization so the built-in default applies.
func (h *PromptHandler) ResetPrompt(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	chatType, ok := chatTypeVar(w, r)
	if !ok {
		return
	}

	if err := h.PromptStore.ResetSystemPrompt(r.Context(), userID, chatType); err != nil {
		writeError(w, "Could not reset prompt", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"prompt": h.PromptStore.GetSystemPrompt(r.Context(), userID, chatType),
	})
}

func (h *PromptHandler) GetSuggested(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	chatType, ok := chatTypeVar(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, h.PromptStore.GetSuggestedPrompts(r.Context(), userID, chatType))
}

func (h *PromptHandler) SetSuggested(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	chatType, ok := chatTypeVar(w, r)
	if !ok {
		return
	}

	var list []string
	if err := json.NewDecoder(r.Body).Decode(&list); err != nil {
		writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.PromptStore.SetSuggestedPrompts(r.Context(), userID, chatType, list); err != nil {
		writeError(w, "Could not save suggested prompts", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *PromptHandler) ResetSuggested(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	chatType, ok := chatTypeVar(w, r)
	if !ok {
		return
	}

	if err := h.PromptStore.ResetSuggestedPrompts(r.Context(), userID, chatType); err != nil {
		writeError(w, "Could not reset suggested prompts", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, h.PromptStore.GetSuggestedPrompts(r.Context(), userID, chatType))
}

func (h *PromptHandler) GetContext(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	chatType, ok := chatTypeVar(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"context": h.PromptStore.GetContext(r.Context(), userID, chatType),
	})
}

func (h *PromptHandler) SetContext(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	chatType, ok := chatTypeVar(w, r)
	if !ok {
		return
	}

	var req struct {
		Context string `json:"context"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.PromptStore.SetContext(r.Context(), userID, chatType, req.Context); err != nil {
		writeError(w, "Could not save context", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"context": h.PromptStore.GetContext(r.Context(), userID, chatType),
	})
}

func (h *PromptHandler) ResetContext(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	chatType, ok := chatTypeVar(w, r)
	if !ok {
		return
	}

	if err := h.PromptStore.ResetContext(r.Context(), userID, chatType); err != nil {
		writeError(w, "Could not reset context", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetModel returns the selected model and the allowlist.
func (h *PromptHandler) GetModel(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"model":   h.PromptStore.GetSelectedModel(r.Context(), userID),
		"options": services.AnthropicModels,
	})
}

func (h *PromptHandler) SetModel(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req struct {
		Model string `json:"model"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if !services.IsAllowedModel(req.Model) {
		writeError(w, "Unknown model", http.StatusBadRequest)
		return
	}
	if err := h.PromptStore.SetSelectedModel(r.Context(), userID, req.Model); err != nil {
		writeError(w, "Could not save model selection", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"model": req.Model})
}

// ExportPrompts returns all customized prompt settings as a JSON document.
func (h *PromptHandler) ExportPrompts(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	doc, err := h.PromptStore.ExportAllPrompts(r.Context(), userID)
	if err != nil {
		writeError(w, "Could not export prompts", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="traza-prompts.json"`)
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, doc)
}

// ImportPrompts applies a previously exported document. Unrecognized keys
// are ignored; malformed documents are rejected without partial writes.
func (h *PromptHandler) ImportPrompts(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	doc, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		writeError(w, "Could not read request body", http.StatusBadRequest)
		return
	}

	result := h.PromptStore.ImportAllPrompts(r.Context(), userID, string(doc))
	if !result.Success {
		writeError(w, result.Error, http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
