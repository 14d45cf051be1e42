// File: internal/store/keys.go
package store

import "github.com/traza-ai/trainhub/internal/domain"

// Storage key layout, one key per logical slot. The "traza-" prefix is kept
// from the original client-side layout so exported settings documents stay
// interchangeable.
const (
	promptKeyPrefix    = "traza-prompt-"
	suggestedKeyPrefix = "traza-suggested-"
	contextKeyPrefix   = "traza-context-"
	chatKeyPrefix      = "traza-chat-"
	archiveKeyPrefix   = "traza-archives-"
	backupKeyPrefix    = "traza-backup-"

	activeDomainKey = "traza-active-domain"
	cachedDomainKey = "traza-custom-domain"
	modelKey        = "traza-model"
)

// Caps applied on write. Oversized input is truncated, not rejected.
const (
	MaxPromptLength  = 10_000
	MaxContextLength = 2_000
)

func promptKey(t domain.ChatType) string    { return promptKeyPrefix + string(t) }
func suggestedKey(t domain.ChatType) string { return suggestedKeyPrefix + string(t) }
func contextKey(t domain.ChatType) string   { return contextKeyPrefix + string(t) }
func chatKey(t domain.ChatType) string      { return chatKeyPrefix + string(t) }
func archiveKey(t domain.ChatType) string   { return archiveKeyPrefix + string(t) }
func backupKey(t domain.ChatType) string    { return backupKeyPrefix + string(t) }

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	// Cut on a rune boundary so truncation never produces invalid UTF-8.
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
