// File: internal/services/models.go
package services

// ModelOption describes one selectable model.
type ModelOption struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AnthropicModels is the model allowlist offered in settings. Requests
// naming anything else fall back to DefaultModelID.
var AnthropicModels = []ModelOption{
	{ID: "claude-haiku-4-5-20251001", Name: "Haiku 4.5", Description: "Fast & affordable"},
	{ID: "claude-sonnet-4-20250514", Name: "Sonnet 4", Description: "Balanced (default)"},
	{ID: "claude-opus-4-20250514", Name: "Opus 4", Description: "Most capable"},
}

const DefaultModelID = "claude-sonnet-4-20250514"

// IsAllowedModel reports whether id is on the allowlist.
func IsAllowedModel(id string) bool {
	for _, m := range AnthropicModels {
		if m.ID == id {
			return true
		}
	}
	return false
}
