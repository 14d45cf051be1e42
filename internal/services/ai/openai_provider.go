// File: internal/services/ai/openai_provider.go
package ai

import (
	"context"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// AnthropicProvider talks to Anthropic's OpenAI-compatible endpoint.
// Clients are built per call so a user-supplied API key can override
// the server key without sharing client state between users.
type AnthropicProvider struct {
	config *Config
}

func NewAnthropicProvider(config *Config) *AnthropicProvider {
	return &AnthropicProvider{config: config}
}

func (p *AnthropicProvider) clientFor(apiKey string) *openai.Client {
	key := apiKey
	if key == "" {
		key = p.config.ServerKey
	}
	cfg := openai.DefaultConfig(key)
	cfg.BaseURL = p.config.BaseURL
	return openai.NewClientWithConfig(cfg)
}

func (p *AnthropicProvider) GetCompletion(ctx context.Context, apiKey, model, system, prompt string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	resp, err := p.clientFor(apiKey).CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: p.config.Temperature,
		MaxTokens:   p.config.MaxResponseTokens,
	})
	if err != nil {
		return "", NewProviderError("completion", "failed to create completion", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &AIError{
			Type:      ErrTypeProvider,
			Operation: "completion",
			Message:   "empty completion response",
		}
	}
	return resp.Choices[0].Message.Content, nil
}

func (p *AnthropicProvider) StreamChatCompletion(ctx context.Context, apiKey, model, system string, history []ChatMessage, onDelta func(string) error) error {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	for _, m := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	stream, err := p.clientFor(apiKey).CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: p.config.Temperature,
		MaxTokens:   p.config.MaxResponseTokens,
	})
	if err != nil {
		return NewProviderError("streaming", "failed to create stream", err)
	}
	defer stream.Close()

	for {
		response, err := stream.Recv()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return NewProviderError("streaming", "stream receive error", err)
		}
		if len(response.Choices) > 0 {
			delta := response.Choices[0].Delta.Content
			if delta != "" && onDelta != nil {
				if cbErr := onDelta(delta); cbErr != nil {
					return cbErr
				}
			}
		}
	}
}

// Probe issues a minimal completion to verify the key is accepted upstream.
func (p *AnthropicProvider) Probe(ctx context.Context, apiKey string) error {
	_, err := p.clientFor(apiKey).CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: DefaultProbeModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: "ping"},
		},
		MaxTokens: 1,
	})
	if err != nil {
		return NewProviderError("probe", "API key validation failed", err)
	}
	return nil
}
