// File: internal/handlers/theory_handler.go
package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/traza-ai/trainhub/internal/domain"
	"github.com/traza-ai/trainhub/internal/prompts"
	"github.com/traza-ai/trainhub/internal/services"
	"github.com/traza-ai/trainhub/internal/services/ai"
	"github.com/traza-ai/trainhub/internal/services/theory"
	"github.com/traza-ai/trainhub/internal/store"
)

var theoryMarkdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

type TheoryHandler struct {
	TheoryService *theory.Service
	PromptStore   *store.PromptStore
	UserService   *services.UserService
}

func NewTheoryHandler(ts *theory.Service, ps *store.PromptStore, us *services.UserService) *TheoryHandler {
	return &TheoryHandler{TheoryService: ts, PromptStore: ps, UserService: us}
}

// GenerateTheory creates theory content for a new domain and rebuilds all
// three templated system prompts from it.
func (h *TheoryHandler) GenerateTheory(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req struct {
		Domain string `json:"domain"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if len(strings.TrimSpace(req.Domain)) < 2 || len(req.Domain) > 100 {
		writeError(w, "Domain must be 2-100 characters", http.StatusBadRequest)
		return
	}

	apiKey, err := h.UserService.ResolveAPIKey(r.Context(), userID)
	if err != nil {
		writeError(w, "Could not load user settings", http.StatusInternalServerError)
		return
	}

	data, err := h.TheoryService.Generate(r.Context(), apiKey, req.Domain)
	if err != nil {
		h.writeGenerationError(w, err)
		return
	}

	if err := h.PromptStore.UpdateAllDomainPrompts(r.Context(), userID, *data); err != nil {
		log.Printf("[TheoryHandler] Failed to persist domain prompts: %v", err)
		writeError(w, "Failed to save generated content", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, data)
}

// writeGenerationError maps upstream provider failures to client responses.
func (h *TheoryHandler) writeGenerationError(w http.ResponseWriter, err error) {
	switch ai.UpstreamStatus(err) {
	case http.StatusTooManyRequests:
		w.Header().Set("Retry-After", "30")
		writeError(w, "The AI service is rate limited. Wait a moment and try again.", http.StatusTooManyRequests)
	case 529:
		w.Header().Set("Retry-After", "10")
		writeError(w, "The AI service is overloaded. Try again shortly.", http.StatusServiceUnavailable)
	case http.StatusUnauthorized, http.StatusForbidden:
		writeError(w, "The server's AI credentials are not configured correctly.", http.StatusInternalServerError)
	default:
		writeError(w, "Failed to generate theory. Please try again.", http.StatusInternalServerError)
	}
}

// GetTheory returns the user's active domain content, falling back to the
// built-in default domain.
func (h *TheoryHandler) GetTheory(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	if data := h.PromptStore.GetCachedDomainData(r.Context(), userID); data != nil {
		writeJSON(w, http.StatusOK, data)
		return
	}
	writeJSON(w, http.StatusOK, prompts.DefaultDomain)
}

// GetTheoryHTML renders the active domain content as an HTML fragment.
func (h *TheoryHandler) GetTheoryHTML(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	data := h.PromptStore.GetCachedDomainData(r.Context(), userID)
	if data == nil {
		d := prompts.DefaultDomain
		data = &d
	}

	var html bytes.Buffer
	if err := theoryMarkdown.Convert([]byte(theoryToMarkdown(*data)), &html); err != nil {
		log.Printf("[TheoryHandler] Markdown render failed: %v", err)
		writeError(w, "Could not render theory content", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(html.Bytes())
}

// ResetTheory drops the generated domain and restores the default prompts.
func (h *TheoryHandler) ResetTheory(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	if err := h.PromptStore.ResetAllDomainPrompts(r.Context(), userID); err != nil {
		writeError(w, "Could not reset theory", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// theoryToMarkdown flattens structured theory content into a markdown document.
func theoryToMarkdown(d domain.DomainTheoryData) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n## %s\n\n", d.DomainName, d.Overview.Title)
	for _, p := range d.Overview.Paragraphs {
		b.WriteString(p)
		b.WriteString("\n\n")
	}

	b.WriteString("## Key Vocabulary\n\n")
	for _, v := range d.Vocabulary {
		fmt.Fprintf(&b, "- **%s**: %s _(%s)_\n", v.Term, v.Definition, v.Example)
	}

	b.WriteString("\n## Workflow Lifecycle\n\n")
	for _, step := range d.Lifecycle {
		fmt.Fprintf(&b, "%d. **%s**: %s\n", step.Step, step.Name, step.Description)
	}

	b.WriteString("\n## Where AI Fits\n\n")
	for _, uc := range d.AIUseCases {
		fmt.Fprintf(&b, "- **%s**: %s _(%s)_\n", uc.Area, uc.Description, uc.Impact)
	}

	if len(d.Sources) > 0 {
		b.WriteString("\n## Sources\n\n")
		for _, src := range d.Sources {
			fmt.Fprintf(&b, "- [%s](%s)\n", src.Title, src.URL)
		}
	}

	return b.String()
}
