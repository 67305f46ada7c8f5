package repository

import (
	"context"

	"travel-planner/internal/planner"
)

// PlanRepository is the interface for plan storage.
// Plans are session artifacts: stored once after generation, read many
// times for display and calendar export, never mutated in place.
type PlanRepository interface {
	Save(ctx context.Context, plan planner.Plan) error
	Get(ctx context.Context, id string) (planner.Plan, error)
}
