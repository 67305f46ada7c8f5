package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"travel-planner/internal/planner"
	"travel-planner/pkg/openrouter"
)

// GeneratePlan runs the full pipeline: essentials search, chunked streaming
// generation, and plan storage. Chunks are generated strictly sequentially;
// a later chunk's request is only issued after the previous chunk's text is
// fully assembled. Any chunk failure discards everything accumulated so far.
func (uc *implUseCase) GeneratePlan(ctx context.Context, input planner.GeneratePlanInput) (planner.GeneratePlanOutput, error) {
	if err := validateInput(input, uc.cfg.MaxDays); err != nil {
		return planner.GeneratePlanOutput{}, err
	}

	searchText := ""
	if uc.search != nil {
		query := fmt.Sprintf(essentialQueryTemplate, input.Destination)
		searchText = uc.search.Search(ctx, query)
		uc.l.Debugf(ctx, "search context for %q: %d bytes", input.Destination, len(searchText))
	}

	ranges := dayRanges(input.Days, uc.cfg.ChunkSize)
	uc.l.Infof(ctx, "generating %d-day plan for %q in %d chunk(s)", input.Days, input.Destination, len(ranges))

	var full strings.Builder
	for i, r := range ranges {
		prompt := buildChunkPrompt(input, r, i == 0, searchText)

		var chunk strings.Builder
		err := uc.llm.StreamGenerate(ctx, &openrouter.Request{
			Instructions: plannerInstructions,
			Prompt:       prompt,
		}, func(fragment string) error {
			chunk.WriteString(fragment)
			return nil
		})
		if err != nil {
			uc.l.Errorf(ctx, "chunk for days %d-%d failed: %v", r.Start, r.End, err)
			return planner.GeneratePlanOutput{}, fmt.Errorf("%w: days %d-%d: %v",
				planner.ErrGenerationFailed, r.Start, r.End, err)
		}

		full.WriteString(chunk.String())
		full.WriteString("\n\n")
	}

	plan := planner.Plan{
		ID:          uuid.NewString(),
		Destination: input.Destination,
		Days:        input.Days,
		Style:       input.Style,
		SearchMode:  input.SearchMode,
		ArrivalDate: input.ArrivalDate,
		Itinerary:   full.String(),
		CreatedAt:   time.Now(),
	}

	if err := uc.repo.Save(ctx, plan); err != nil {
		return planner.GeneratePlanOutput{}, fmt.Errorf("failed to store plan: %w", err)
	}

	uc.l.Infof(ctx, "stored plan %s (%d bytes)", plan.ID, len(plan.Itinerary))
	return planner.GeneratePlanOutput{Plan: plan}, nil
}

// GetPlan returns a stored plan by ID.
func (uc *implUseCase) GetPlan(ctx context.Context, id string) (planner.Plan, error) {
	plan, err := uc.repo.Get(ctx, id)
	if err != nil {
		return planner.Plan{}, planner.ErrPlanNotFound
	}
	return plan, nil
}

// validateInput rejects bad requests before any network call.
func validateInput(input planner.GeneratePlanInput, maxDays int) error {
	if strings.TrimSpace(input.Destination) == "" {
		return planner.ErrMissingDestination
	}
	if input.Days < 1 || input.Days > maxDays {
		return fmt.Errorf("%w: %d (allowed 1-%d)", planner.ErrInvalidDayCount, input.Days, maxDays)
	}
	if !input.Style.Valid() {
		return fmt.Errorf("%w: %q", planner.ErrInvalidStyle, input.Style)
	}
	if !input.SearchMode.Valid() {
		return fmt.Errorf("%w: %q", planner.ErrInvalidSearchMode, input.SearchMode)
	}
	return nil
}
