package openrouter

import "context"

// IOpenRouter defines the interface for the OpenRouter LLM client.
// Implementations are safe for concurrent use.
type IOpenRouter interface {
	// StreamGenerate sends a generation request and invokes onFragment for
	// every incremental text fragment in arrival order. Accumulation is the
	// caller's responsibility.
	StreamGenerate(ctx context.Context, req *Request, onFragment func(fragment string) error) error

	// Model returns the model being used.
	Model() string
}

// New creates a new OpenRouter client with the given configuration.
func New(cfg Config) (IOpenRouter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOpenRouterImpl(cfg), nil
}
