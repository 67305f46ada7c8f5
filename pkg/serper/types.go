package serper

import (
	"fmt"
	"net/http"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Config holds Serper client configuration.
type Config struct {
	APIKey      string
	Endpoint    string
	Retries     int
	ResultCount int
	HTTPClient  *http.Client
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("serper: APIKey is required")
	}
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.Retries <= 0 {
		c.Retries = DefaultRetries
	}
	if c.ResultCount <= 0 {
		c.ResultCount = DefaultResultCount
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// serperImpl is the internal implementation of ISerper.
type serperImpl struct {
	apiKey      string
	endpoint    string
	retries     int
	resultCount int
	httpClient  *http.Client
	cache       *lru.Cache[string, string]
}

// searchRequest is the Serper.dev request body.
type searchRequest struct {
	Query string `json:"q"`
	Num   int    `json:"num"`
}

// searchResponse is the subset of the Serper.dev response we consume.
type searchResponse struct {
	Organic []organicResult `json:"organic"`
}

// organicResult is a standard (non-ad) search hit.
type organicResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}
