package ics_test

import (
	"strings"
	"testing"
	"time"

	"travel-planner/pkg/ics"
)

func TestEncode(t *testing.T) {
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	events := []ics.Event{
		{
			Summary:     "Day 1 in Tokyo",
			Description: "Visit museum",
			Start:       start,
			End:         start.AddDate(0, 0, 1),
		},
		{
			Summary:     "Day 2 in Tokyo",
			Description: "Relax",
			Start:       start.AddDate(0, 0, 1),
			End:         start.AddDate(0, 0, 2),
		},
	}

	out := string(ics.Encode("-//Global AI Travel Planner//", events))

	t.Run("Calendar Envelope", func(t *testing.T) {
		if !strings.HasPrefix(out, "BEGIN:VCALENDAR") {
			t.Errorf("missing VCALENDAR prefix: %q", out[:min(40, len(out))])
		}
		if !strings.Contains(out, "PRODID:-//Global AI Travel Planner//") {
			t.Error("missing PRODID")
		}
		if !strings.Contains(out, "VERSION:2.0") {
			t.Error("missing VERSION")
		}
	})

	t.Run("All Day Events", func(t *testing.T) {
		if got := strings.Count(out, "BEGIN:VEVENT"); got != 2 {
			t.Errorf("expected 2 events, got %d", got)
		}
		if !strings.Contains(out, "SUMMARY:Day 1 in Tokyo") {
			t.Error("missing first summary")
		}
		if !strings.Contains(out, "DTSTART;VALUE=DATE:20260310") {
			t.Error("missing date-only DTSTART for day 1")
		}
		if !strings.Contains(out, "DTEND;VALUE=DATE:20260311") {
			t.Error("missing date-only DTEND for day 1")
		}
	})

	t.Run("Empty Event List", func(t *testing.T) {
		empty := string(ics.Encode("-//Global AI Travel Planner//", nil))
		if strings.Contains(empty, "BEGIN:VEVENT") {
			t.Error("expected no VEVENT blocks")
		}
	})
}
