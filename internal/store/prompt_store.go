// File: internal/store/prompt_store.go
package store

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/traza-ai/trainhub/internal/domain"
	"github.com/traza-ai/trainhub/internal/prompts"
	"github.com/traza-ai/trainhub/internal/repository/kv"
	"github.com/traza-ai/trainhub/internal/services"
)

// PromptStore is the single source of truth for what prompt and chat
// configuration is in effect for a (user, chat type) pair right now.
// Precedence is always: stored override if present, else built-in default.
// Storage failures never surface: every getter degrades to the built-in
// value, so a broken store can never block chat usage.
type PromptStore struct {
	kv     kv.KVRepository
	logger services.Logger
}

func NewPromptStore(kvRepo kv.KVRepository, logger services.Logger) *PromptStore {
	if logger == nil {
		logger = &services.NoOpLogger{}
	}
	return &PromptStore{kv: kvRepo, logger: logger}
}

// --- System prompts ---

// GetSystemPrompt returns the stored override for the chat type if one
// exists, else the built-in constant. Never fails.
func (s *PromptStore) GetSystemPrompt(ctx context.Context, userID uint, t domain.ChatType) string {
	custom, err := s.kv.Get(ctx, userID, promptKey(t))
	if err != nil {
		return prompts.SystemPrompt(t)
	}
	return custom
}

// SetSystemPrompt persists an override. Blank input is a no-op; oversized
// input is truncated to MaxPromptLength.
func (s *PromptStore) SetSystemPrompt(ctx context.Context, userID uint, t domain.ChatType, prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return nil
	}
	return s.kv.Set(ctx, userID, promptKey(t), truncate(prompt, MaxPromptLength))
}

// ResetSystemPrompt deletes the override. Resetting an already-default slot
// is a no-op.
func (s *PromptStore) ResetSystemPrompt(ctx context.Context, userID uint, t domain.ChatType) error {
	return s.kv.Delete(ctx, userID, promptKey(t))
}

// IsPromptCustomized reports whether an override exists for the chat type.
func (s *PromptStore) IsPromptCustomized(ctx context.Context, userID uint, t domain.ChatType) bool {
	exists, err := s.kv.Exists(ctx, userID, promptKey(t))
	return err == nil && exists
}

// --- Suggested prompts ---

// GetSuggestedPrompts returns the user's override list, or the built-in
// list when no override is stored or the stored value is not a JSON array
// of strings.
func (s *PromptStore) GetSuggestedPrompts(ctx context.Context, userID uint, t domain.ChatType) []string {
	if list, ok := readJSON[[]string](ctx, s.kv, userID, suggestedKey(t), nil); ok {
		return *list
	}
	return prompts.SuggestedPrompts[t]
}

func (s *PromptStore) SetSuggestedPrompts(ctx context.Context, userID uint, t domain.ChatType, list []string) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, userID, suggestedKey(t), string(raw))
}

func (s *PromptStore) ResetSuggestedPrompts(ctx context.Context, userID uint, t domain.ChatType) error {
	return s.kv.Delete(ctx, userID, suggestedKey(t))
}

// --- Context notes ---

// GetContext returns the user-authored context note, or "" when unset.
func (s *PromptStore) GetContext(ctx context.Context, userID uint, t domain.ChatType) string {
	value, err := s.kv.Get(ctx, userID, contextKey(t))
	if err != nil {
		return ""
	}
	return value
}

// SetContext persists a context note. Unlike system prompts an empty
// context is valid; it simply contributes nothing to the full prompt.
func (s *PromptStore) SetContext(ctx context.Context, userID uint, t domain.ChatType, note string) error {
	return s.kv.Set(ctx, userID, contextKey(t), truncate(note, MaxContextLength))
}

func (s *PromptStore) ResetContext(ctx context.Context, userID uint, t domain.ChatType) error {
	return s.kv.Delete(ctx, userID, contextKey(t))
}

// --- Model selection ---

// GetSelectedModel returns the user's chosen model, falling back to the
// default when unset or no longer on the allowlist.
func (s *PromptStore) GetSelectedModel(ctx context.Context, userID uint) string {
	value, err := s.kv.Get(ctx, userID, modelKey)
	if err != nil || !services.IsAllowedModel(value) {
		return services.DefaultModelID
	}
	return value
}

func (s *PromptStore) SetSelectedModel(ctx context.Context, userID uint, modelID string) error {
	return s.kv.Set(ctx, userID, modelKey, modelID)
}

// --- Full prompt assembly ---

// GetFullSystemPrompt resolves the prompt actually sent to the chat
// transport: the effective system prompt with the context note appended
// under a labeled section when the note is non-blank.
func (s *PromptStore) GetFullSystemPrompt(ctx context.Context, userID uint, t domain.ChatType) string {
	base := s.GetSystemPrompt(ctx, userID, t)
	note := s.GetContext(ctx, userID, t)
	if strings.TrimSpace(note) == "" {
		return base
	}
	return base + "\n\n## User Context\n" + note
}

// --- Domain data management ---

// GetActiveDomain returns the name of the last successfully generated
// domain, or the built-in default when none.
func (s *PromptStore) GetActiveDomain(ctx context.Context, userID uint) string {
	name, err := s.kv.Get(ctx, userID, activeDomainKey)
	if err != nil {
		return prompts.DefaultDomainName
	}
	return name
}

// GetCachedDomainData returns the last generated dataset, or nil when none
// was cached or the cached value is corrupt.
func (s *PromptStore) GetCachedDomainData(ctx context.Context, userID uint) *domain.DomainTheoryData {
	data, ok := readJSON[domain.DomainTheoryData](ctx, s.kv, userID, cachedDomainKey, nil)
	if !ok {
		return nil
	}
	return data
}

// UpdateAllDomainPrompts makes a generation result live: it records the
// active-domain name, caches the dataset, and overrides all three templated
// system prompts. The writes are sequential single-key writes; a crash
// mid-sequence can leave partial state, which is accepted for this data.
func (s *PromptStore) UpdateAllDomainPrompts(ctx context.Context, userID uint, data domain.DomainTheoryData) error {
	if err := s.kv.Set(ctx, userID, activeDomainKey, data.DomainName); err != nil {
		return err
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, userID, cachedDomainKey, string(raw)); err != nil {
		return err
	}

	for _, t := range domain.TemplatedChatTypes {
		if err := s.SetSystemPrompt(ctx, userID, t, prompts.BuildPrompt(t, data)); err != nil {
			return err
		}
	}
	s.logger.Info("domain prompts updated", "user_id", userID, "domain", data.DomainName)
	return nil
}

// ResetAllDomainPrompts clears the active domain, the cached dataset, and
// every templated prompt override, restoring built-in defaults.
func (s *PromptStore) ResetAllDomainPrompts(ctx context.Context, userID uint) error {
	if err := s.kv.Delete(ctx, userID, activeDomainKey); err != nil {
		return err
	}
	if err := s.kv.Delete(ctx, userID, cachedDomainKey); err != nil {
		return err
	}
	for _, t := range domain.TemplatedChatTypes {
		if err := s.ResetSystemPrompt(ctx, userID, t); err != nil {
			return err
		}
	}
	s.logger.Info("domain prompts reset", "user_id", userID)
	return nil
}

// --- Export / import ---

// ImportResult is the structured outcome of an import; import never panics
// or throws on malformed documents.
type ImportResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ExportAllPrompts serializes every currently-set override (and only those)
// into a flat JSON document suitable for download. Keys follow the
// prompt-{type}/suggested-{type}/context-{type} convention.
func (s *PromptStore) ExportAllPrompts(ctx context.Context, userID uint) (string, error) {
	out := make(map[string]string)
	for _, t := range domain.TemplatedChatTypes {
		if v, err := s.kv.Get(ctx, userID, promptKey(t)); err == nil && v != "" {
			out["prompt-"+string(t)] = v
		}
		if v, err := s.kv.Get(ctx, userID, suggestedKey(t)); err == nil && v != "" {
			out["suggested-"+string(t)] = v
		}
		if v, err := s.kv.Get(ctx, userID, contextKey(t)); err == nil && v != "" {
			out["context-"+string(t)] = v
		}
	}
	raw, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// ImportAllPrompts applies a previously exported document. Recognized keys
// with string values are written to their slots; unrecognized keys are
// skipped silently. A malformed or non-object document yields a structured
// failure, never an error.
func (s *PromptStore) ImportAllPrompts(ctx context.Context, userID uint, doc string) ImportResult {
	var data map[string]json.RawMessage
	if err := json.Unmarshal([]byte(doc), &data); err != nil {
		return ImportResult{Success: false, Error: "Invalid JSON"}
	}
	if data == nil {
		return ImportResult{Success: false, Error: "Invalid format: expected JSON object"}
	}

	for key, raw := range data {
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			continue
		}
		if strings.HasPrefix(key, "prompt-") || strings.HasPrefix(key, "suggested-") || strings.HasPrefix(key, "context-") {
			if err := s.kv.Set(ctx, userID, "traza-"+key, value); err != nil {
				s.logger.Warn("import write failed", "key", key, "error", err)
			}
		}
	}
	return ImportResult{Success: true}
}
