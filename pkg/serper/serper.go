package serper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// newSerperImpl creates a new Serper implementation.
func newSerperImpl(cfg Config) (*serperImpl, error) {
	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("serper: failed to create cache: %w", err)
	}
	return &serperImpl{
		apiKey:      cfg.APIKey,
		endpoint:    cfg.Endpoint,
		retries:     cfg.Retries,
		resultCount: cfg.ResultCount,
		httpClient:  cfg.HTTPClient,
		cache:       cache,
	}, nil
}

// Search looks up the query, serving repeats from the cache. Transport and
// provider failures are retried up to the configured attempt count; if every
// attempt fails the failure description is returned as content so callers can
// embed it like any other search text.
func (s *serperImpl) Search(ctx context.Context, query string) string {
	if cached, ok := s.cache.Get(query); ok {
		return cached
	}

	var lastErr error
	for attempt := 0; attempt < s.retries; attempt++ {
		result, err := s.searchOnce(ctx, query)
		if err != nil {
			lastErr = err
			continue
		}
		s.cache.Add(query, result)
		return result
	}

	return fmt.Sprintf("Search failed after %d attempts: %v", s.retries, lastErr)
}

// searchOnce issues a single Serper.dev request.
func (s *serperImpl) searchOnce(ctx context.Context, query string) (string, error) {
	body, err := json.Marshal(searchRequest{Query: query, Num: s.resultCount})
	if err != nil {
		return "", fmt.Errorf("serper: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("serper: failed to create request: %w", err)
	}
	httpReq.Header.Set("X-API-KEY", s.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("serper: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("serper: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("serper: failed to decode response: %w", err)
	}

	return formatResults(result.Organic, s.resultCount), nil
}

// formatResults concatenates title/snippet/link triples into plain text.
func formatResults(organic []organicResult, limit int) string {
	snippets := make([]string, 0, len(organic))
	for _, item := range organic {
		snippets = append(snippets, fmt.Sprintf("%s\n%s\n%s", item.Title, item.Snippet, item.Link))
		if len(snippets) >= limit {
			break
		}
	}
	return strings.Join(snippets, "\n\n")
}
