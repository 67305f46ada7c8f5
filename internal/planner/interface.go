package planner

import "context"

// UseCase is the trip planning business logic.
type UseCase interface {
	// GeneratePlan runs the full pipeline: optional web search, chunked
	// LLM generation, and plan storage. Any chunk failure aborts the whole
	// generation; nothing is stored.
	GeneratePlan(ctx context.Context, input GeneratePlanInput) (GeneratePlanOutput, error)

	// GetPlan returns a stored plan by ID.
	GetPlan(ctx context.Context, id string) (Plan, error)

	// ExportCalendar derives calendar events from the stored itinerary and
	// renders them as an ICS file. Derivation happens fresh on every call.
	ExportCalendar(ctx context.Context, id string) (ExportCalendarOutput, error)

	// SyncCalendar inserts the derived events into the configured Google
	// Calendar.
	SyncCalendar(ctx context.Context, id string) (SyncCalendarOutput, error)
}
