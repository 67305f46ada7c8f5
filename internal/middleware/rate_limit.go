package middleware

import (
	"github.com/gin-gonic/gin"

	"travel-planner/pkg/response"
)

// RateLimit rejects requests above the configured rate with 429. The limit
// is global, not per client; every generation costs real upstream quota.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}
		if !m.limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit hit: %s %s", c.Request.Method, c.Request.URL.Path)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
