package middleware

import (
	"golang.org/x/time/rate"

	"travel-planner/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rate.Limiter
}

// New creates the shared middleware set. requestsPerMin bounds the routes
// that call paid upstream APIs; zero or negative disables the limit.
func New(l log.Logger, requestsPerMin int) Middleware {
	var limiter *rate.Limiter
	if requestsPerMin > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(requestsPerMin)/60.0), requestsPerMin)
	}
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
