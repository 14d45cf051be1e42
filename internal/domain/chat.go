// File: internal/domain/chat.go
package domain

import "encoding/json"

// ChatType identifies one of the independently-addressable chat contexts.
// Each type owns its own system prompt, context note, suggested prompts,
// message history, and archive.
type ChatType string

const (
	ChatTypeDomain     ChatType = "domain"
	ChatTypeFramework  ChatType = "framework"
	ChatTypeSimulation ChatType = "simulation"
	// ChatTypePricing is a deployment variant whose prompt is a static
	// constant, not template-generated.
	ChatTypePricing ChatType = "pricing"
)

// TemplatedChatTypes are the chat types whose system prompts are rendered
// from a DomainTheoryData dataset.
var TemplatedChatTypes = []ChatType{ChatTypeDomain, ChatTypeFramework, ChatTypeSimulation}

// AllChatTypes includes the static pricing variant.
var AllChatTypes = []ChatType{ChatTypeDomain, ChatTypeFramework, ChatTypeSimulation, ChatTypePricing}

// IsValidChatType reports whether s names a known chat type.
func IsValidChatType(s string) bool {
	for _, t := range AllChatTypes {
		if string(t) == s {
			return true
		}
	}
	return false
}

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// MessagePart is one structured content part of a chat message. Only text
// parts are produced today; the shape leaves room for other part types.
type MessagePart struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// UIMessage is a chat message in the current structured format.
type UIMessage struct {
	ID    string        `json:"id"`
	Role  string        `json:"role"`
	Parts []MessagePart `json:"parts"`
}

// Text returns the concatenated text content of the message.
func (m UIMessage) Text() string {
	var out string
	for _, p := range m.Parts {
		if p.Type == "text" {
			out += p.Text
		}
	}
	return out
}

// legacyProbe captures just enough of a stored message to decide whether it
// was written by an older version that used a flat string content field.
type legacyProbe struct {
	Content json.RawMessage `json:"content"`
	Parts   json.RawMessage `json:"parts"`
}

// IsLegacyMessage reports whether raw is a message in the obsolete format:
// a direct string "content" field and no structured "parts".
func IsLegacyMessage(raw json.RawMessage) bool {
	var probe legacyProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	if probe.Parts != nil {
		return false
	}
	var content string
	return probe.Content != nil && json.Unmarshal(probe.Content, &content) == nil
}

// ChatArchive is one previously cleared conversation, tagged for display in
// the archive list.
type ChatArchive struct {
	ID           string      `json:"id"`
	Timestamp    int64       `json:"timestamp"`
	Messages     []UIMessage `json:"messages"`
	MessageCount int         `json:"messageCount"`
	Preview      string      `json:"preview"`
}
