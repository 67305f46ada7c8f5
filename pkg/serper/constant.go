package serper

import "time"

const (
	// DefaultEndpoint is the Serper.dev search endpoint.
	DefaultEndpoint = "https://google.serper.dev/search"

	// DefaultTimeout bounds a single search HTTP call.
	DefaultTimeout = 10 * time.Second

	// DefaultRetries is the total number of attempts per query.
	DefaultRetries = 2

	// DefaultResultCount caps organic results per query.
	DefaultResultCount = 3

	// cacheSize bounds the in-process query cache.
	cacheSize = 128
)
