package memory

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"travel-planner/internal/planner"
	"travel-planner/internal/planner/repository"
	"travel-planner/pkg/log"
)

// DefaultCapacity bounds the number of retained plans.
const DefaultCapacity = 256

type planStore struct {
	l     log.Logger
	cache *lru.Cache[string, planner.Plan]
}

var _ repository.PlanRepository = (*planStore)(nil)

// New creates an in-memory, bounded plan store. The LRU cache is safe for
// concurrent use; the oldest plan is evicted when capacity is exceeded.
func New(l log.Logger, capacity int) (*planStore, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	cache, err := lru.New[string, planner.Plan](capacity)
	if err != nil {
		return nil, fmt.Errorf("memory: failed to create plan cache: %w", err)
	}
	return &planStore{l: l, cache: cache}, nil
}
