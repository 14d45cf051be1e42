// File: internal/services/ai/interface.go
package ai

import (
	"context"

	"github.com/traza-ai/trainhub/internal/domain"
)

// ChatMessage is a single turn handed to the completion provider.
type ChatMessage struct {
	Role    string
	Content string
}

// CompletionProvider handles chat completions against an Anthropic-compatible API.
// An empty apiKey means the server-configured key is used.
type CompletionProvider interface {
	GetCompletion(ctx context.Context, apiKey, model, system, prompt string) (string, error)
	StreamChatCompletion(ctx context.Context, apiKey, model, system string, messages []ChatMessage, onDelta func(string) error) error
	Probe(ctx context.Context, apiKey string) error
}

// ChatMessagesFromUI flattens stored UI messages into provider turns.
func ChatMessagesFromUI(msgs []domain.UIMessage) []ChatMessage {
	out := make([]ChatMessage, 0, len(msgs))
	for _, m := range msgs {
		text := m.Text()
		if text == "" {
			continue
		}
		out = append(out, ChatMessage{Role: m.Role, Content: text})
	}
	return out
}
