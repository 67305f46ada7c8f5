package usecase

import (
	"context"

	"travel-planner/internal/planner"
	"travel-planner/internal/planner/repository"
	"travel-planner/pkg/gcalendar"
	"travel-planner/pkg/log"
	"travel-planner/pkg/openrouter"
	"travel-planner/pkg/serper"
)

// CalendarClient is the slice of the Google Calendar client this usecase needs.
type CalendarClient interface {
	InsertAllDayEvent(ctx context.Context, req gcalendar.InsertAllDayEventRequest) (*gcalendar.Event, error)
}

// Config bounds the planning pipeline.
type Config struct {
	ChunkSize  int
	MaxDays    int
	CalendarID string
}

type implUseCase struct {
	l        log.Logger
	search   serper.ISerper // optional; nil skips the pre-generation search
	llm      openrouter.IOpenRouter
	repo     repository.PlanRepository
	calendar CalendarClient // optional; nil disables calendar sync
	cfg      Config
}

var _ planner.UseCase = (*implUseCase)(nil)

// New creates a new planner UseCase instance.
func New(
	l log.Logger,
	search serper.ISerper,
	llm openrouter.IOpenRouter,
	repo repository.PlanRepository,
	calendar CalendarClient,
	cfg Config,
) *implUseCase {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.MaxDays <= 0 {
		cfg.MaxDays = DefaultMaxDays
	}
	return &implUseCase{
		l:        l,
		search:   search,
		llm:      llm,
		repo:     repo,
		calendar: calendar,
		cfg:      cfg,
	}
}
