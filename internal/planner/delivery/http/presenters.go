package http

import (
	"fmt"
	"time"

	"travel-planner/internal/planner"
)

const arrivalDateFormat = "2006-01-02"

// --- Request DTOs ---

type generateReq struct {
	Destination string `json:"destination"  binding:"required,min=1,max=255"`
	Days        int    `json:"days"         binding:"required,min=1,max=14"`
	Style       string `json:"style"        binding:"omitempty,oneof=Balanced Luxury Budget Adventure"`
	SearchMode  string `json:"search_mode"  binding:"omitempty,oneof=always smart"`
	ArrivalDate string `json:"arrival_date" binding:"omitempty"`
}

func (r generateReq) validate() error {
	if r.ArrivalDate != "" {
		if _, err := time.Parse(arrivalDateFormat, r.ArrivalDate); err != nil {
			return fmt.Errorf("arrival_date must be YYYY-MM-DD: %w", err)
		}
	}
	return nil
}

func (r generateReq) toInput() planner.GeneratePlanInput {
	style := planner.TravelStyle(r.Style)
	if r.Style == "" {
		style = planner.StyleBalanced
	}
	mode := planner.SearchMode(r.SearchMode)
	if r.SearchMode == "" {
		mode = planner.SearchAlways
	}
	arrival := time.Now().UTC().Truncate(24 * time.Hour)
	if r.ArrivalDate != "" {
		arrival, _ = time.Parse(arrivalDateFormat, r.ArrivalDate)
	}
	return planner.GeneratePlanInput{
		Destination: r.Destination,
		Days:        r.Days,
		Style:       style,
		SearchMode:  mode,
		ArrivalDate: arrival,
	}
}

// --- Response DTOs ---

type planResp struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	Days        int       `json:"days"`
	Style       string    `json:"style"`
	SearchMode  string    `json:"search_mode"`
	ArrivalDate string    `json:"arrival_date"`
	Itinerary   string    `json:"itinerary"`
	CreatedAt   time.Time `json:"created_at"`
}

func newPlanResp(plan planner.Plan) planResp {
	return planResp{
		ID:          plan.ID,
		Destination: plan.Destination,
		Days:        plan.Days,
		Style:       string(plan.Style),
		SearchMode:  string(plan.SearchMode),
		ArrivalDate: plan.ArrivalDate.Format(arrivalDateFormat),
		Itinerary:   plan.Itinerary,
		CreatedAt:   plan.CreatedAt,
	}
}

type generateResp struct {
	Plan planResp `json:"plan"`
}

func (h *handler) newGenerateResp(out planner.GeneratePlanOutput) generateResp {
	return generateResp{Plan: newPlanResp(out.Plan)}
}

type detailResp struct {
	Plan planResp `json:"plan"`
}

func (h *handler) newDetailResp(plan planner.Plan) detailResp {
	return detailResp{Plan: newPlanResp(plan)}
}

type syncResp struct {
	Inserted int      `json:"inserted"`
	Links    []string `json:"links"`
}

func (h *handler) newSyncResp(out planner.SyncCalendarOutput) syncResp {
	return syncResp{
		Inserted: out.Inserted,
		Links:    out.Links,
	}
}
