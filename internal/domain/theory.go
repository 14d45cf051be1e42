// File: internal/domain/theory.go
package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Bounds enforced on generated or imported theory datasets.
const (
	MinVocabularyItems = 8
	MaxVocabularyItems = 15
	MinLifecycleSteps  = 5
	MaxLifecycleSteps  = 12
	MinAIUseCases      = 3
	MaxAIUseCases      = 6
	MinOverviewParas   = 1
	MaxOverviewParas   = 3
)

// VocabularyItem is a single term in a domain's glossary.
type VocabularyItem struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Example    string `json:"example"`
}

// LifecycleStep is one step of a domain's end-to-end workflow.
type LifecycleStep struct {
	Step        int    `json:"step"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AIUseCase describes one area where AI/automation adds value in a domain.
type AIUseCase struct {
	Area        string `json:"area"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

// TheorySource is a citation attached to a generated dataset.
type TheorySource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Overview is the introductory block of a theory module.
type Overview struct {
	Title      string   `json:"title"`
	Paragraphs []string `json:"paragraphs"`
}

// DomainTheoryData is the unit of domain knowledge: everything the training
// hub knows about one industry. Instances are replaced wholesale, never
// partially mutated.
type DomainTheoryData struct {
	DomainName string           `json:"domainName"`
	Overview   Overview         `json:"overview"`
	Vocabulary []VocabularyItem `json:"vocabulary"`
	Lifecycle  []LifecycleStep  `json:"lifecycle"`
	AIUseCases []AIUseCase      `json:"aiUseCases"`
	Sources    []TheorySource   `json:"sources"`
}

// Validate checks the dataset against the schema bounds. It must be called
// wherever generated or imported data enters the system; an instance that
// fails here is rejected before being cached or rendered.
func (d *DomainTheoryData) Validate() error {
	if strings.TrimSpace(d.DomainName) == "" {
		return errors.New("domainName is required")
	}
	if strings.TrimSpace(d.Overview.Title) == "" {
		return errors.New("overview.title is required")
	}
	if n := len(d.Overview.Paragraphs); n < MinOverviewParas || n > MaxOverviewParas {
		return fmt.Errorf("overview.paragraphs must have %d-%d entries, got %d", MinOverviewParas, MaxOverviewParas, n)
	}
	if n := len(d.Vocabulary); n < MinVocabularyItems || n > MaxVocabularyItems {
		return fmt.Errorf("vocabulary must have %d-%d entries, got %d", MinVocabularyItems, MaxVocabularyItems, n)
	}
	for i, v := range d.Vocabulary {
		if v.Term == "" || v.Definition == "" {
			return fmt.Errorf("vocabulary[%d]: term and definition are required", i)
		}
	}
	if n := len(d.Lifecycle); n < MinLifecycleSteps || n > MaxLifecycleSteps {
		return fmt.Errorf("lifecycle must have %d-%d entries, got %d", MinLifecycleSteps, MaxLifecycleSteps, n)
	}
	for i, s := range d.Lifecycle {
		if s.Step <= 0 {
			return fmt.Errorf("lifecycle[%d]: step must be a positive integer", i)
		}
		if s.Name == "" {
			return fmt.Errorf("lifecycle[%d]: name is required", i)
		}
	}
	if n := len(d.AIUseCases); n < MinAIUseCases || n > MaxAIUseCases {
		return fmt.Errorf("aiUseCases must have %d-%d entries, got %d", MinAIUseCases, MaxAIUseCases, n)
	}
	for i, u := range d.AIUseCases {
		if u.Area == "" {
			return fmt.Errorf("aiUseCases[%d]: area is required", i)
		}
	}
	// Sources are optional; nil normalizes to an empty list for datasets
	// produced before the field existed.
	if d.Sources == nil {
		d.Sources = []TheorySource{}
	}
	for i, src := range d.Sources {
		if src.URL == "" {
			return fmt.Errorf("sources[%d]: url is required", i)
		}
		u, err := url.Parse(src.URL)
		if err != nil || !u.IsAbs() || u.Host == "" {
			return fmt.Errorf("sources[%d]: url must be a valid absolute URL", i)
		}
	}
	return nil
}
