package http

import (
	"github.com/gin-gonic/gin"

	"travel-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Generation and sync hit paid upstream APIs, so both are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	plans := rg.Group("/plans")
	{
		plans.POST("", mw.RateLimit(), h.Generate)
		plans.GET("/:id", h.Detail)
		plans.GET("/:id/calendar", h.ExportCalendar)
		plans.POST("/:id/calendar/sync", mw.RateLimit(), h.SyncCalendar)
	}
}
