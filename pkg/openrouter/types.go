package openrouter

import (
	"fmt"

	"github.com/openai/openai-go/v3"
)

// Config holds OpenRouter client configuration.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openrouter: APIKey is required")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	return nil
}

// Request represents a streaming generation request.
type Request struct {
	// Instructions is the system-level instruction set, one rule per entry.
	Instructions []string

	// Prompt is the free-text generation instruction.
	Prompt string
}

// openRouterImpl is the internal implementation of IOpenRouter.
type openRouterImpl struct {
	client openai.Client
	model  string
}
