// File: internal/services/theory/service.go
package theory

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/traza-ai/trainhub/internal/domain"
	"github.com/traza-ai/trainhub/internal/services"
	"github.com/traza-ai/trainhub/internal/services/ai"
)

const generationModel = "claude-sonnet-4-20250514"

const systemPrompt = `You are an expert at creating educational content for industry training.
Given a domain/industry, generate a comprehensive theory module with:

1. overview: A title (format: "What is {Domain}?") and 2 explanatory paragraphs
2. vocabulary: 10-12 key terms with clear definitions and relatable real-world examples
3. lifecycle: 7-9 sequential steps in the typical end-to-end workflow
4. aiUseCases: 4 specific areas where AI/automation adds measurable value

Make content practical, specific, and grounded in real industry knowledge. Avoid generic filler.

Respond with a single JSON object only, no prose and no code fences, matching this shape:
{
  "domainName": string,
  "overview": {"title": string, "paragraphs": [string]},
  "vocabulary": [{"term": string, "definition": string, "example": string}],
  "lifecycle": [{"step": number, "name": string, "description": string}],
  "aiUseCases": [{"area": string, "description": string, "impact": string}],
  "sources": [{"title": string, "url": string}]
}`

// Service generates structured domain theory content via the LLM provider.
type Service struct {
	provider ai.CompletionProvider
	logger   services.Logger
}

func NewService(provider ai.CompletionProvider, logger services.Logger) *Service {
	if logger == nil {
		logger = &services.NoOpLogger{}
	}
	return &Service{provider: provider, logger: logger}
}

// Generate produces validated theory content for the given domain name.
// The apiKey overrides the server key when non-empty.
func (s *Service) Generate(ctx context.Context, apiKey, domainName string) (*domain.DomainTheoryData, error) {
	name := strings.TrimSpace(domainName)
	prompt := fmt.Sprintf("Generate comprehensive training theory content for the domain: %q", name)

	raw, err := s.provider.GetCompletion(ctx, apiKey, generationModel, systemPrompt, prompt)
	if err != nil {
		s.logger.Error("[TheoryService] Generation failed", "domain", name, "error", err)
		return nil, err
	}

	var data domain.DomainTheoryData
	if err := json.Unmarshal([]byte(stripFences(raw)), &data); err != nil {
		s.logger.Error("[TheoryService] Malformed generation output", "domain", name, "error", err)
		return nil, fmt.Errorf("malformed generation output: %w", err)
	}
	if err := data.Validate(); err != nil {
		s.logger.Error("[TheoryService] Generated content failed validation", "domain", name, "error", err)
		return nil, fmt.Errorf("generated content failed validation: %w", err)
	}

	s.logger.Info("[TheoryService] Theory generated", "domain", data.DomainName,
		"vocabulary", len(data.Vocabulary), "lifecycle", len(data.Lifecycle))
	return &data, nil
}

// stripFences tolerates models that wrap JSON in a markdown code block.
func stripFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
