package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"travel-planner/internal/planner"
	"travel-planner/pkg/gcalendar"
	"travel-planner/pkg/ics"
)

// calendarProdID identifies generated calendar files.
const calendarProdID = "-//Global AI Travel Planner//"

// dayMarkerPattern matches an optional markdown heading, the word "Day", a
// day number, and trailing separators. A day's description runs from the end
// of its marker to the start of the next marker (or end of text).
var dayMarkerPattern = regexp.MustCompile(`(?i)(?:##\s*)?Day\s*(\d+)[\s–:]*`)

// ExportCalendar derives events from the stored itinerary and renders an ICS
// file named "<destination>_trip.ics" (spaces replaced by underscores).
func (uc *implUseCase) ExportCalendar(ctx context.Context, id string) (planner.ExportCalendarOutput, error) {
	plan, err := uc.GetPlan(ctx, id)
	if err != nil {
		return planner.ExportCalendarOutput{}, err
	}

	events, err := uc.deriveEvents(ctx, plan)
	if err != nil {
		return planner.ExportCalendarOutput{}, err
	}

	icsEvents := make([]ics.Event, len(events))
	for i, ev := range events {
		icsEvents[i] = ics.Event{
			Summary:     ev.Summary,
			Description: ev.Description,
			Start:       ev.Start,
			End:         ev.End,
		}
	}

	fileName := strings.ReplaceAll(plan.Destination, " ", "_") + "_trip.ics"
	return planner.ExportCalendarOutput{
		FileName: fileName,
		Content:  ics.Encode(calendarProdID, icsEvents),
	}, nil
}

// SyncCalendar inserts the derived events into the configured Google Calendar.
func (uc *implUseCase) SyncCalendar(ctx context.Context, id string) (planner.SyncCalendarOutput, error) {
	if uc.calendar == nil {
		return planner.SyncCalendarOutput{}, planner.ErrCalendarNotConfigured
	}

	plan, err := uc.GetPlan(ctx, id)
	if err != nil {
		return planner.SyncCalendarOutput{}, err
	}

	events, err := uc.deriveEvents(ctx, plan)
	if err != nil {
		return planner.SyncCalendarOutput{}, err
	}

	out := planner.SyncCalendarOutput{}
	for _, ev := range events {
		created, err := uc.calendar.InsertAllDayEvent(ctx, gcalendar.InsertAllDayEventRequest{
			CalendarID:  uc.cfg.CalendarID,
			Summary:     ev.Summary,
			Description: ev.Description,
			Start:       ev.Start,
			End:         ev.End,
		})
		if err != nil {
			return planner.SyncCalendarOutput{}, fmt.Errorf("failed to sync day %d: %w", ev.Day, err)
		}
		out.Inserted++
		out.Links = append(out.Links, created.HtmlLink)
	}

	uc.l.Infof(ctx, "synced %d event(s) from plan %s to google calendar", out.Inserted, plan.ID)
	return out, nil
}

// deriveEvents runs the extraction and maps failures and marker-less text to
// ErrNoCalendarData. The stored itinerary is never touched.
func (uc *implUseCase) deriveEvents(ctx context.Context, plan planner.Plan) ([]planner.CalendarEvent, error) {
	events, err := extractEvents(plan.Itinerary, plan.ArrivalDate, plan.Destination)
	if err != nil {
		uc.l.Warnf(ctx, "calendar extraction failed for plan %s: %v", plan.ID, err)
		return nil, fmt.Errorf("%w: %v", planner.ErrNoCalendarData, err)
	}
	if len(events) == 0 {
		return nil, planner.ErrNoCalendarData
	}
	return events, nil
}

// extractEvents scans the itinerary for "Day N" markers and emits one all-day
// event per marker. Day numbers are taken verbatim: duplicates and gaps pass
// through unmodified. Text without markers yields an empty slice, not an
// error.
func extractEvents(itinerary string, startDate time.Time, destination string) ([]planner.CalendarEvent, error) {
	matches := dayMarkerPattern.FindAllStringSubmatchIndex(itinerary, -1)
	if len(matches) == 0 {
		return nil, nil
	}

	startDay := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)

	events := make([]planner.CalendarEvent, 0, len(matches))
	for i, m := range matches {
		dayNum, err := strconv.Atoi(itinerary[m[2]:m[3]])
		if err != nil {
			return nil, fmt.Errorf("unparseable day number %q: %w", itinerary[m[2]:m[3]], err)
		}

		descEnd := len(itinerary)
		if i+1 < len(matches) {
			descEnd = matches[i+1][0]
		}
		description := strings.TrimSpace(itinerary[m[1]:descEnd])

		start := startDay.AddDate(0, 0, dayNum-1)
		events = append(events, planner.CalendarEvent{
			Day:         dayNum,
			Summary:     fmt.Sprintf("Day %d in %s", dayNum, destination),
			Description: description,
			Start:       start,
			End:         start.AddDate(0, 0, 1),
		})
	}

	return events, nil
}
