package openrouter

const (
	// DefaultBaseURL is the OpenRouter OpenAI-compatible endpoint.
	DefaultBaseURL = "https://openrouter.ai/api/v1"

	// DefaultModel is the default generation model.
	DefaultModel = "google/gemini-2.0-flash-001"
)
