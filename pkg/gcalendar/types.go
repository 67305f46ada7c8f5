package gcalendar

import "time"

// InsertAllDayEventRequest is the input for creating an all-day event.
// Start is the event date; End is exclusive (the following date for a
// one-day event).
type InsertAllDayEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	Start       time.Time
	End         time.Time
}
