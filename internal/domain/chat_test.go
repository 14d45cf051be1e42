// File: internal/domain/chat_test.go
package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidChatType(t *testing.T) {
	for _, ct := range AllChatTypes {
		assert.True(t, IsValidChatType(string(ct)))
	}
	assert.False(t, IsValidChatType(""))
	assert.False(t, IsValidChatType("Domain"))
	assert.False(t, IsValidChatType("interview"))
}

func TestUIMessageText(t *testing.T) {
	m := UIMessage{
		Role: RoleAssistant,
		Parts: []MessagePart{
			{Type: "text", Text: "first"},
			{Type: "reasoning", Text: "ignored"},
			{Type: "text", Text: " second"},
		},
	}
	assert.Equal(t, "first second", m.Text())
	assert.Empty(t, UIMessage{}.Text())
}

func TestIsLegacyMessage(t *testing.T) {
	t.Run("flat string content is legacy", func(t *testing.T) {
		raw := json.RawMessage(`{"id":"1","role":"user","content":"hello"}`)
		assert.True(t, IsLegacyMessage(raw))
	})

	t.Run("parts format is modern", func(t *testing.T) {
		raw := json.RawMessage(`{"id":"1","role":"user","parts":[{"type":"text","text":"hello"}]}`)
		assert.False(t, IsLegacyMessage(raw))
	})

	t.Run("content alongside parts counts as modern", func(t *testing.T) {
		raw := json.RawMessage(`{"id":"1","role":"user","content":"x","parts":[]}`)
		assert.False(t, IsLegacyMessage(raw))
	})

	t.Run("unparseable is not legacy", func(t *testing.T) {
		assert.False(t, IsLegacyMessage(json.RawMessage(`{{`)))
	})

	t.Run("non-string content is not legacy", func(t *testing.T) {
		raw := json.RawMessage(`{"id":"1","role":"user","content":{"nested":true}}`)
		assert.False(t, IsLegacyMessage(raw))
	})
}
