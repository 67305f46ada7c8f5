package memory

import (
	"context"

	"travel-planner/internal/planner"
	"travel-planner/internal/planner/repository"
)

// Save stores the plan under its ID.
func (s *planStore) Save(ctx context.Context, plan planner.Plan) error {
	if evicted := s.cache.Add(plan.ID, plan); evicted {
		s.l.Debugf(ctx, "plan store at capacity, evicted oldest entry")
	}
	return nil
}

// Get returns the stored plan or repository.ErrNotFound.
func (s *planStore) Get(ctx context.Context, id string) (planner.Plan, error) {
	plan, ok := s.cache.Get(id)
	if !ok {
		return planner.Plan{}, repository.ErrNotFound
	}
	return plan, nil
}
