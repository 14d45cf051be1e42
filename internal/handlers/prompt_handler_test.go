// File: internal/handlers/prompt_handler_test.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traza-ai/trainhub/internal/domain"
	"github.com/traza-ai/trainhub/internal/prompts"
	"github.com/traza-ai/trainhub/internal/repository/kv"
	"github.com/traza-ai/trainhub/internal/services"
	"github.com/traza-ai/trainhub/internal/store"
)

func newPromptFixture() (*PromptHandler, *store.PromptStore) {
	promptStore := store.NewPromptStore(kv.NewMemoryKVRepository(), &services.NoOpLogger{})
	return NewPromptHandler(promptStore), promptStore
}

func promptRouter(h *PromptHandler) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/prompts/export", h.ExportPrompts).Methods("GET")
	r.HandleFunc("/api/prompts/import", h.ImportPrompts).Methods("POST")
	r.HandleFunc("/api/prompts/{type}", h.GetPrompt).Methods("GET")
	r.HandleFunc("/api/prompts/{type}", h.SetPrompt).Methods("PUT")
	r.HandleFunc("/api/prompts/{type}", h.ResetPrompt).Methods("DELETE")
	r.HandleFunc("/api/prompts/{type}/suggested", h.GetSuggested).Methods("GET")
	r.HandleFunc("/api/prompts/{type}/context", h.SetContext).Methods("PUT")
	r.HandleFunc("/api/model", h.GetModel).Methods("GET")
	r.HandleFunc("/api/model", h.SetModel).Methods("PUT")
	return withUser(r)
}

func TestPromptEndpoints(t *testing.T) {
	h, _ := newPromptFixture()
	router := promptRouter(h)

	t.Run("get returns the built-in default", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/prompts/domain", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, prompts.SystemPrompt(domain.ChatTypeDomain), got["prompt"])
		assert.Equal(t, false, got["customized"])
	})

	t.Run("put then get round trip", func(t *testing.T) {
		req := httptest.NewRequest("PUT", "/api/prompts/domain", strings.NewReader(`{"prompt":"custom"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		req = httptest.NewRequest("GET", "/api/prompts/domain", nil)
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "custom", got["prompt"])
		assert.Equal(t, true, got["customized"])
	})

	t.Run("blank put leaves the prompt unchanged", func(t *testing.T) {
		req := httptest.NewRequest("PUT", "/api/prompts/domain", strings.NewReader(`{"prompt":"  "}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "custom", got["prompt"])
	})

	t.Run("delete restores the default", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/prompts/domain", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, prompts.SystemPrompt(domain.ChatTypeDomain), got["prompt"])
	})

	t.Run("invalid chat type is a 400", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/prompts/bogus", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("suggested prompts default list", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/prompts/pricing/suggested", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		var got []string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, prompts.SuggestedPrompts[domain.ChatTypePricing], got)
	})
}

func TestModelEndpoints(t *testing.T) {
	h, _ := newPromptFixture()
	router := promptRouter(h)

	t.Run("default model and options", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/model", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got struct {
			Model   string                 `json:"model"`
			Options []services.ModelOption `json:"options"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, services.DefaultModelID, got.Model)
		assert.Len(t, got.Options, len(services.AnthropicModels))
	})

	t.Run("set allowed model", func(t *testing.T) {
		req := httptest.NewRequest("PUT", "/api/model", strings.NewReader(`{"model":"claude-haiku-4-5-20251001"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("reject model off the allowlist", func(t *testing.T) {
		req := httptest.NewRequest("PUT", "/api/model", strings.NewReader(`{"model":"gpt-4"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestExportImportEndpoints(t *testing.T) {
	h, promptStore := newPromptFixture()
	router := promptRouter(h)
	ctx := context.Background()

	require.NoError(t, promptStore.SetSystemPrompt(ctx, testUserID, domain.ChatTypeDomain, "exported"))

	req := httptest.NewRequest("GET", "/api/prompts/export", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	exported := rec.Body.String()

	t.Run("import restores into a fresh store", func(t *testing.T) {
		h2, store2 := newPromptFixture()
		req := httptest.NewRequest("POST", "/api/prompts/import", strings.NewReader(exported))
		rec := httptest.NewRecorder()
		promptRouter(h2).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "exported", store2.GetSystemPrompt(ctx, testUserID, domain.ChatTypeDomain))
	})

	t.Run("malformed import is a 400", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/prompts/import", strings.NewReader("{broken"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid JSON")
	})
}
