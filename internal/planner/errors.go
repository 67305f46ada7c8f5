package planner

import "errors"

// Domain-specific errors for the planner package.
var (
	ErrMissingDestination    = errors.New("destination is required")
	ErrInvalidDayCount       = errors.New("day count out of range")
	ErrInvalidStyle          = errors.New("unknown travel style")
	ErrInvalidSearchMode     = errors.New("unknown search mode")
	ErrPlanNotFound          = errors.New("plan not found")
	ErrGenerationFailed      = errors.New("itinerary generation failed")
	ErrNoCalendarData        = errors.New("no calendar data")
	ErrCalendarNotConfigured = errors.New("google calendar is not configured")
)
