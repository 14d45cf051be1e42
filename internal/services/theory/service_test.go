// File: internal/services/theory/service_test.go
package theory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traza-ai/trainhub/internal/domain"
	"github.com/traza-ai/trainhub/internal/services/ai"
)

// stubProvider cans the completion response for tests.
type stubProvider struct {
	response string
	err      error

	gotAPIKey string
	gotModel  string
	gotPrompt string
}

func (s *stubProvider) GetCompletion(_ context.Context, apiKey, model, system, prompt string) (string, error) {
	s.gotAPIKey = apiKey
	s.gotModel = model
	s.gotPrompt = prompt
	return s.response, s.err
}

func (s *stubProvider) StreamChatCompletion(context.Context, string, string, string, []ai.ChatMessage, func(string) error) error {
	return nil
}

func (s *stubProvider) Probe(context.Context, string) error { return nil }

func validTheoryJSON(t *testing.T) string {
	t.Helper()
	d := domain.DomainTheoryData{
		DomainName: "Port Operations",
		Overview: domain.Overview{
			Title:      "What is Port Operations?",
			Paragraphs: []string{"Moving cargo through seaports."},
		},
	}
	for i := 0; i < domain.MinVocabularyItems; i++ {
		d.Vocabulary = append(d.Vocabulary, domain.VocabularyItem{
			Term: fmt.Sprintf("Term %d", i), Definition: "def", Example: "ex",
		})
	}
	for i := 0; i < domain.MinLifecycleSteps; i++ {
		d.Lifecycle = append(d.Lifecycle, domain.LifecycleStep{Step: i + 1, Name: fmt.Sprintf("Step %d", i+1)})
	}
	for i := 0; i < domain.MinAIUseCases; i++ {
		d.AIUseCases = append(d.AIUseCases, domain.AIUseCase{Area: fmt.Sprintf("Area %d", i)})
	}
	raw, err := json.Marshal(d)
	require.NoError(t, err)
	return string(raw)
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("parses and validates the model output", func(t *testing.T) {
		provider := &stubProvider{response: validTheoryJSON(t)}
		svc := NewService(provider, nil)

		data, err := svc.Generate(ctx, "sk-ant-user", "  Port Operations  ")
		require.NoError(t, err)
		assert.Equal(t, "Port Operations", data.DomainName)
		assert.Equal(t, "sk-ant-user", provider.gotAPIKey)
		assert.Equal(t, generationModel, provider.gotModel)
		assert.Contains(t, provider.gotPrompt, `"Port Operations"`, "domain name is trimmed before prompting")
	})

	t.Run("tolerates fenced output", func(t *testing.T) {
		provider := &stubProvider{response: "```json\n" + validTheoryJSON(t) + "\n```"}
		svc := NewService(provider, nil)

		data, err := svc.Generate(ctx, "", "Port Operations")
		require.NoError(t, err)
		assert.Equal(t, "Port Operations", data.DomainName)
	})

	t.Run("rejects non-JSON output", func(t *testing.T) {
		provider := &stubProvider{response: "Sorry, I cannot help with that."}
		svc := NewService(provider, nil)

		_, err := svc.Generate(ctx, "", "Port Operations")
		assert.Error(t, err)
	})

	t.Run("rejects output that fails schema validation", func(t *testing.T) {
		provider := &stubProvider{response: `{"domainName":"X"}`}
		svc := NewService(provider, nil)

		_, err := svc.Generate(ctx, "", "Port Operations")
		assert.Error(t, err)
	})

	t.Run("propagates provider errors", func(t *testing.T) {
		upstream := errors.New("boom")
		provider := &stubProvider{err: upstream}
		svc := NewService(provider, nil)

		_, err := svc.Generate(ctx, "", "Port Operations")
		assert.ErrorIs(t, err, upstream)
	})
}
