package serper

import "context"

// ISerper defines the interface for the Serper.dev search client.
// Implementations are safe for concurrent use.
type ISerper interface {
	// Search returns contextual text for the query. Failures degrade to a
	// human-readable string; callers never receive an error.
	Search(ctx context.Context, query string) string
}

// New creates a new Serper client with the given configuration.
func New(cfg Config) (ISerper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newSerperImpl(cfg)
}
