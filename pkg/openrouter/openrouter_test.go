package openrouter_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"travel-planner/pkg/openrouter"
)

// sseChunk formats one chat-completion delta as a server-sent event.
func sseChunk(content string) string {
	return fmt.Sprintf("data: {\"id\":\"c1\",\"object\":\"chat.completion.chunk\",\"choices\":[{\"index\":0,\"delta\":{\"content\":%q}}]}\n\n", content)
}

func TestStreamGenerate(t *testing.T) {
	t.Run("Fragments Arrive In Order", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Header().Set("Content-Type", "text/event-stream")
			fmt.Fprint(w, sseChunk("Day 1: "))
			fmt.Fprint(w, sseChunk("arrive and "))
			fmt.Fprint(w, sseChunk("explore."))
			fmt.Fprint(w, "data: [DONE]\n\n")
		}))
		defer ts.Close()

		client := newClient(t, ts.URL)

		var got strings.Builder
		err := client.StreamGenerate(context.Background(), &openrouter.Request{
			Instructions: []string{"You are an expert travel agent."},
			Prompt:       "Plan Day 1 to Day 3",
		}, func(fragment string) error {
			got.WriteString(fragment)
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.String() != "Day 1: arrive and explore." {
			t.Errorf("unexpected accumulated text: %q", got.String())
		}
	})

	t.Run("Provider Error Surfaces", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"message":"model overloaded"}}`))
		}))
		defer ts.Close()

		client := newClient(t, ts.URL)
		err := client.StreamGenerate(context.Background(), &openrouter.Request{Prompt: "x"}, func(string) error {
			t.Error("callback should not fire on provider error")
			return nil
		})
		if err == nil {
			t.Error("expected error from failing provider")
		}
	})

	t.Run("Callback Error Stops Stream", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/event-stream")
			fmt.Fprint(w, sseChunk("one"))
			fmt.Fprint(w, sseChunk("two"))
			fmt.Fprint(w, "data: [DONE]\n\n")
		}))
		defer ts.Close()

		client := newClient(t, ts.URL)
		calls := 0
		err := client.StreamGenerate(context.Background(), &openrouter.Request{Prompt: "x"}, func(string) error {
			calls++
			return errors.New("stop")
		})
		if err == nil {
			t.Error("expected callback error to propagate")
		}
		if calls != 1 {
			t.Errorf("expected stream to stop after first fragment, got %d calls", calls)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("Missing API Key", func(t *testing.T) {
		_, err := openrouter.New(openrouter.Config{})
		if err == nil {
			t.Error("expected error for missing API key")
		}
	})

	t.Run("Defaults Applied", func(t *testing.T) {
		cfg := openrouter.Config{APIKey: "k"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.BaseURL != openrouter.DefaultBaseURL {
			t.Errorf("expected default base URL, got %s", cfg.BaseURL)
		}
		if cfg.Model != openrouter.DefaultModel {
			t.Errorf("expected default model, got %s", cfg.Model)
		}
	})
}

func newClient(t *testing.T, baseURL string) openrouter.IOpenRouter {
	t.Helper()
	client, err := openrouter.New(openrouter.Config{
		APIKey:  "test-key",
		BaseURL: baseURL,
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}
