// File: internal/prompts/templates_test.go
package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traza-ai/trainhub/internal/domain"
)

func customDomain() domain.DomainTheoryData {
	return domain.DomainTheoryData{
		DomainName: "Maritime Insurance",
		Overview: domain.Overview{
			Title:      "What is Maritime Insurance?",
			Paragraphs: []string{"Covers vessels and cargo against loss at sea."},
		},
		Vocabulary: []domain.VocabularyItem{
			{Term: "Hull Cover", Definition: "Insurance on the vessel itself", Example: "A tanker insured for $40M"},
			{Term: "P&I Club", Definition: "Mutual liability pool", Example: "Shipowners sharing third-party risk"},
		},
		Lifecycle: []domain.LifecycleStep{
			{Step: 1, Name: "Quote", Description: "Broker requests terms"},
			{Step: 2, Name: "Bind", Description: "Cover is bound"},
			{Step: 3, Name: "Claim", Description: "Loss is notified"},
		},
		AIUseCases: []domain.AIUseCase{
			{Area: "Claims Triage", Description: "Classify incoming claims", Impact: "Faster settlement"},
			{Area: "Risk Scoring", Description: "Score vessels from history", Impact: "Better pricing"},
		},
	}
}

func TestBuildDomainPrompt_Default(t *testing.T) {
	got := BuildDomainPrompt(DefaultDomain)

	assert.Contains(t, got, "senior industry expert in freight forwarding and supply chain operations")
	assert.Contains(t, got, "Traza AI, a startup building AI Workers for freight forwarders")
	assert.Contains(t, got, "Key vocabulary to cover:")
	assert.Contains(t, got, "- **Freight Forwarder**:")
	assert.Contains(t, got, "Workflow lifecycle:")
	assert.Contains(t, got, "Where AI fits:")
	assert.Contains(t, got, "Language: Respond in the same language the user writes in.")
	assert.False(t, strings.HasSuffix(got, "\n"), "prompt must not end with a newline")
}

func TestBuildDomainPrompt_CustomDomain(t *testing.T) {
	got := BuildDomainPrompt(customDomain())

	assert.Contains(t, got, "senior industry expert in Maritime Insurance")
	assert.Contains(t, got, "AI Workers for companies in Maritime Insurance")
	assert.Contains(t, got, "- **Hull Cover**: Insurance on the vessel itself (A tanker insured for $40M)")
	assert.NotContains(t, got, "freight forwarding and supply chain operations")
	assert.NotContains(t, got, "AI Workers for freight forwarders")
}

func TestBuildFrameworkPrompt(t *testing.T) {
	t.Run("fixed five steps survive any dataset", func(t *testing.T) {
		for _, d := range []domain.DomainTheoryData{DefaultDomain, customDomain()} {
			got := BuildFrameworkPrompt(d)
			assert.Contains(t, got, "The 5 steps are:")
			assert.Contains(t, got, "1. UNDERSTAND")
			assert.Contains(t, got, "5. BUSINESS IMPACT")
		}
	})

	t.Run("domain reference block follows dataset", func(t *testing.T) {
		got := BuildFrameworkPrompt(customDomain())
		assert.Contains(t, got, "Domain reference (Maritime Insurance):")
		assert.Contains(t, got, "- Key terms: Hull Cover, P&I Club")
		assert.Contains(t, got, "- Lifecycle: Quote → Bind → Claim")
	})
}

func TestBuildSimulationPrompt(t *testing.T) {
	t.Run("default client wording", func(t *testing.T) {
		got := BuildSimulationPrompt(DefaultDomain)
		assert.Contains(t, got, "(freight forwarder with a specific operational problem)")
	})

	t.Run("custom client wording and scenario types", func(t *testing.T) {
		got := BuildSimulationPrompt(customDomain())
		assert.Contains(t, got, "(a company in Maritime Insurance with a specific operational problem)")
		assert.Contains(t, got, "Scenario types: Claims Triage, Risk Scoring")
		assert.Contains(t, got, "Strong Hire / Hire / Lean No / No Hire")
	})
}

func TestBuildersAreDeterministic(t *testing.T) {
	d := customDomain()
	assert.Equal(t, BuildDomainPrompt(d), BuildDomainPrompt(d))
	assert.Equal(t, BuildFrameworkPrompt(d), BuildFrameworkPrompt(d))
	assert.Equal(t, BuildSimulationPrompt(d), BuildSimulationPrompt(d))
}

func TestBuildersTolerateSparseInput(t *testing.T) {
	sparse := domain.DomainTheoryData{DomainName: "Empty Industry"}

	assert.NotPanics(t, func() {
		assert.NotEmpty(t, BuildDomainPrompt(sparse))
		assert.NotEmpty(t, BuildFrameworkPrompt(sparse))
		assert.NotEmpty(t, BuildSimulationPrompt(sparse))
	})
}

// The shipped defaults must be exactly what the builders produce for the
// shipped dataset, so the two can never drift apart.
func TestSystemPromptsMatchBuilderOutput(t *testing.T) {
	require.Equal(t, BuildDomainPrompt(DefaultDomain), SystemPrompts[domain.ChatTypeDomain])
	require.Equal(t, BuildFrameworkPrompt(DefaultDomain), SystemPrompts[domain.ChatTypeFramework])
	require.Equal(t, BuildSimulationPrompt(DefaultDomain), SystemPrompts[domain.ChatTypeSimulation])
}

func TestBuildPrompt_Dispatch(t *testing.T) {
	d := customDomain()

	assert.Equal(t, BuildDomainPrompt(d), BuildPrompt(domain.ChatTypeDomain, d))
	assert.Equal(t, BuildFrameworkPrompt(d), BuildPrompt(domain.ChatTypeFramework, d))
	assert.Equal(t, BuildSimulationPrompt(d), BuildPrompt(domain.ChatTypeSimulation, d))
	assert.Equal(t, PricingSystemPrompt, BuildPrompt(domain.ChatTypePricing, d),
		"pricing prompt is static regardless of dataset")
	assert.Empty(t, BuildPrompt(domain.ChatType("bogus"), d))
}

func TestSuggestedPromptsCoverAllChatTypes(t *testing.T) {
	for _, ct := range domain.AllChatTypes {
		assert.NotEmpty(t, SuggestedPrompts[ct], "chat type %s has no suggested prompts", ct)
	}
}
