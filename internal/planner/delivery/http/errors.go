package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"travel-planner/internal/planner"
	"travel-planner/pkg/response"
)

// respondError translates domain errors into HTTP responses. Unknown errors
// hide their message behind a generic 500.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrPlanNotFound):
		response.NotFound(c, err)
	case errors.Is(err, planner.ErrMissingDestination),
		errors.Is(err, planner.ErrInvalidDayCount),
		errors.Is(err, planner.ErrInvalidStyle),
		errors.Is(err, planner.ErrInvalidSearchMode),
		errors.Is(err, planner.ErrNoCalendarData),
		errors.Is(err, planner.ErrCalendarNotConfigured):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
