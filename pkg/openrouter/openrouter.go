package openrouter

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// newOpenRouterImpl creates a new OpenRouter implementation.
func newOpenRouterImpl(cfg Config) *openRouterImpl {
	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
	)
	return &openRouterImpl{
		client: client,
		model:  cfg.Model,
	}
}

// StreamGenerate streams a chat completion and forwards text deltas to
// onFragment in arrival order. A non-nil callback error stops the stream.
func (o *openRouterImpl) StreamGenerate(ctx context.Context, req *Request, onFragment func(fragment string) error) error {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(o.model),
		Messages: buildMessages(req),
	}

	stream := o.client.Chat.Completions.NewStreaming(ctx, params)
	defer stream.Close()

	for stream.Next() {
		chunk := stream.Current()
		for _, choice := range chunk.Choices {
			if choice.Delta.Content == "" {
				continue
			}
			if err := onFragment(choice.Delta.Content); err != nil {
				return fmt.Errorf("openrouter: fragment callback: %w", err)
			}
		}
	}

	if err := stream.Err(); err != nil {
		return fmt.Errorf("openrouter: stream failed: %w", err)
	}

	return nil
}

// Model returns the model being used.
func (o *openRouterImpl) Model() string {
	return o.model
}

// buildMessages joins the instruction set into one system message followed by
// the user prompt.
func buildMessages(req *Request) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if len(req.Instructions) > 0 {
		messages = append(messages, openai.SystemMessage(strings.Join(req.Instructions, "\n")))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))
	return messages
}
