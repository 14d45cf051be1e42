// File: internal/prompts/templates.go
package prompts

import (
	"fmt"
	"strings"

	"github.com/traza-ai/trainhub/internal/domain"
)

// The builders below render a validated DomainTheoryData into the three
// system prompts. They are pure string construction: byte-for-byte
// deterministic for the same input, no side effects, and they never fail.
// Malformed input (e.g. an empty vocabulary) yields a sparse but valid
// prompt rather than an error, because a broken prompt must never block
// chat usage.

const arrowSeparator = " → "

// isDefault reports whether the dataset is the shipped built-in one. The
// check is by display name only, so a regenerated dataset that happens to
// be named "Freight Forwarding" also gets the default wording even though
// its content differs from the shipped copy.
func isDefault(d domain.DomainTheoryData) bool {
	return d.DomainName == DefaultDomainName
}

func vocabularyBullets(d domain.DomainTheoryData) string {
	lines := make([]string, 0, len(d.Vocabulary))
	for _, v := range d.Vocabulary {
		lines = append(lines, fmt.Sprintf("- **%s**: %s (%s)", v.Term, v.Definition, v.Example))
	}
	return strings.Join(lines, "\n")
}

func lifecycleArrows(d domain.DomainTheoryData) string {
	names := make([]string, 0, len(d.Lifecycle))
	for _, s := range d.Lifecycle {
		names = append(names, s.Name)
	}
	return strings.Join(names, arrowSeparator)
}

func useCaseBullets(d domain.DomainTheoryData) string {
	lines := make([]string, 0, len(d.AIUseCases))
	for _, u := range d.AIUseCases {
		lines = append(lines, fmt.Sprintf("- %s: %s (%s)", u.Area, u.Description, u.Impact))
	}
	return strings.Join(lines, "\n")
}

func useCaseAreas(d domain.DomainTheoryData) string {
	areas := make([]string, 0, len(d.AIUseCases))
	for _, u := range d.AIUseCases {
		areas = append(areas, u.Area)
	}
	return strings.Join(areas, ", ")
}

func vocabularyTerms(d domain.DomainTheoryData) string {
	terms := make([]string, 0, len(d.Vocabulary))
	for _, v := range d.Vocabulary {
		terms = append(terms, v.Term)
	}
	return strings.Join(terms, ", ")
}

// BuildDomainPrompt renders the tutor prompt for the domain-knowledge chat.
func BuildDomainPrompt(d domain.DomainTheoryData) string {
	expertise := d.DomainName
	company := fmt.Sprintf("Traza AI, a startup building AI Workers for companies in %s", d.DomainName)
	field := d.DomainName
	if isDefault(d) {
		expertise = "freight forwarding and supply chain operations"
		company = "Traza AI, a startup building AI Workers for freight forwarders"
		field = "freight forwarding"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a senior industry expert in %s, specifically tailored to help a candidate prepare for an interview at %s.\n\n", expertise, company)
	fmt.Fprintf(&b, "Your role:\n")
	fmt.Fprintf(&b, "- Teach %s concepts clearly and concisely\n", field)
	b.WriteString("- Use real-world examples from the industry\n")
	b.WriteString("- Connect concepts to how AI/automation applies (Traza's domain)\n")
	b.WriteString("- When explaining a term, always include: what it is, why it matters, and a concrete example\n")
	b.WriteString("- If the user asks about something you're not sure about, say so honestly\n\n")
	fmt.Fprintf(&b, "Key vocabulary to cover:\n%s\n\n", vocabularyBullets(d))
	fmt.Fprintf(&b, "Workflow lifecycle:\n%s\n\n", lifecycleArrows(d))
	fmt.Fprintf(&b, "Where AI fits:\n%s\n\n", useCaseBullets(d))
	b.WriteString("Tone: Professional but conversational. Like a senior colleague explaining things over coffee. Never condescending.\n")
	b.WriteString("Format: Use markdown. Bold key terms on first introduction. Use tables for comparisons. Keep paragraphs short.\n")
	b.WriteString("Language: Respond in the same language the user writes in.")
	return b.String()
}

// BuildFrameworkPrompt renders the mentor prompt for the mental-framework
// chat. The five step names are fixed; only the domain-reference block is
// derived from the dataset.
func BuildFrameworkPrompt(d domain.DomainTheoryData) string {
	var b strings.Builder
	b.WriteString("You are a mentor helping a candidate internalize a 5-step problem-solving framework for designing AI automation solutions at Traza AI.\n\n")
	b.WriteString("The 5 steps are:\n")
	b.WriteString("1. UNDERSTAND — 4 lenses: Domain First, Happy Path, Edge Cases & Exceptions, Numbers & Metrics\n")
	b.WriteString("2. MODEL — Ontology: Entities, States, Relationships, Triggers\n")
	b.WriteString("3. PRIORITIZE — 80/20: Impact vs Effort, Quick Wins vs Hard Problems\n")
	b.WriteString("4. DESIGN — AI Worker: Trigger → Steps → Decisions → Actions → Escalation\n")
	b.WriteString("5. BUSINESS IMPACT — Quantify: Time saved, Error reduction, Cost savings, Scalability\n\n")
	fmt.Fprintf(&b, "Domain reference (%s):\n", d.DomainName)
	fmt.Fprintf(&b, "- Key terms: %s\n", vocabularyTerms(d))
	fmt.Fprintf(&b, "- Lifecycle: %s\n\n", lifecycleArrows(d))
	b.WriteString("Your role:\n")
	b.WriteString("- Help practice applying this framework to scenarios\n")
	b.WriteString("- When they skip steps (especially UNDERSTAND), redirect them\n")
	b.WriteString("- Ask probing questions to test understanding\n")
	b.WriteString("- Give mini-scenarios and evaluate their approach\n")
	b.WriteString("- Score responses on each step (1-5 scale) during practice\n\n")
	b.WriteString("Tone: Encouraging but rigorous. Like a coach who wants you to succeed but won't let shortcuts pass.\n")
	b.WriteString("Format: Use markdown. Number steps. Use > blockquotes for scenarios. Bold framework terms.\n")
	b.WriteString("Language: Respond in the same language the user writes in.")
	return b.String()
}

// BuildSimulationPrompt renders the work-trial simulation prompt. The
// numbered rules are fixed text; the client description and scenario types
// come from the dataset.
func BuildSimulationPrompt(d domain.DomainTheoryData) string {
	client := fmt.Sprintf("a company in %s with a specific operational problem", d.DomainName)
	if isDefault(d) {
		client = "freight forwarder with a specific operational problem"
	}

	var b strings.Builder
	b.WriteString("You are conducting a Traza AI work trial simulation. You play a Traza team member presenting a real client case.\n\n")
	b.WriteString("Rules:\n")
	fmt.Fprintf(&b, "1. START by presenting a client scenario (%s)\n", client)
	b.WriteString("2. Include: company context, current pain points, volume/scale data, systems in use\n")
	b.WriteString("3. Let the candidate drive — they should ask YOU questions\n")
	b.WriteString("4. If they ask good probing questions, reward with rich data\n")
	b.WriteString("5. If they jump to designing without understanding, note: \"I notice you haven't asked about [X] yet\"\n")
	b.WriteString("6. Track framework steps completed: UNDERSTAND, MODEL, PRIORITIZE, DESIGN, BUSINESS IMPACT\n")
	b.WriteString("7. After their solution, give a detailed scorecard:\n")
	b.WriteString("   - Score each step (1-5)\n")
	b.WriteString("   - Highlight strengths\n")
	b.WriteString("   - Identify gaps\n")
	b.WriteString("   - Overall: Strong Hire / Hire / Lean No / No Hire\n")
	b.WriteString("8. Offer to run another scenario or drill weak areas\n\n")
	fmt.Fprintf(&b, "Scenario types: %s\n\n", useCaseAreas(d))
	b.WriteString("Tone: Professional, realistic. Make it feel like a real interview.\n")
	b.WriteString("Format: Use markdown. Tables for scorecards. > blockquotes for \"client\" dialogue. Bold key data.\n")
	b.WriteString("Language: Respond in the same language the user writes in.")
	return b.String()
}

// BuildPrompt dispatches to the builder for a templated chat type. The
// pricing prompt is static and not built from data.
func BuildPrompt(t domain.ChatType, d domain.DomainTheoryData) string {
	switch t {
	case domain.ChatTypeDomain:
		return BuildDomainPrompt(d)
	case domain.ChatTypeFramework:
		return BuildFrameworkPrompt(d)
	case domain.ChatTypeSimulation:
		return BuildSimulationPrompt(d)
	case domain.ChatTypePricing:
		return PricingSystemPrompt
	default:
		return ""
	}
}
