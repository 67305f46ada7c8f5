// Package ics renders all-day calendar events as an iCalendar file.
package ics

import (
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

// Event is one all-day calendar entry. Start and End are date-only; End is
// exclusive per the iCalendar all-day convention.
type Event struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
}

// Encode serializes the events into a single VCALENDAR.
func Encode(prodID string, events []Event) []byte {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)
	cal.SetVersion("2.0")

	now := time.Now().UTC()
	for _, ev := range events {
		e := cal.AddEvent(uuid.NewString())
		e.SetDtStampTime(now)
		e.SetSummary(ev.Summary)
		e.SetDescription(ev.Description)
		e.SetAllDayStartAt(ev.Start)
		e.SetAllDayEndAt(ev.End)
	}

	return []byte(cal.Serialize())
}
