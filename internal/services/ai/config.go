// File: internal/services/ai/config.go
package ai

import (
	"fmt"
	"time"
)

// DefaultProbeModel is the cheapest allowed model, used for key validation.
const DefaultProbeModel = "claude-haiku-4-5-20251001"

type Config struct {
	// Provider Configuration. BaseURL points at an OpenAI-compatible
	// endpoint; the default is Anthropic's compatibility surface.
	BaseURL   string
	ServerKey string

	// Performance Configuration
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration

	// Model Parameters
	Temperature       float32
	MaxResponseTokens int
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("AI_BASE_URL is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.MaxResponseTokens <= 0 {
		return fmt.Errorf("max response tokens must be positive")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:           "https://api.anthropic.com/v1",
		Timeout:           2 * time.Minute,
		MaxRetries:        3,
		RetryDelay:        2 * time.Second,
		Temperature:       0.7,
		MaxResponseTokens: 2048,
	}
}
