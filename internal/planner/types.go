package planner

import "time"

// TravelStyle shapes the tone of the generated itinerary.
type TravelStyle string

const (
	StyleBalanced  TravelStyle = "Balanced"
	StyleLuxury    TravelStyle = "Luxury"
	StyleBudget    TravelStyle = "Budget"
	StyleAdventure TravelStyle = "Adventure"
)

// Valid reports whether the style is one of the supported values.
func (s TravelStyle) Valid() bool {
	switch s {
	case StyleBalanced, StyleLuxury, StyleBudget, StyleAdventure:
		return true
	}
	return false
}

// SearchMode controls when the web search runs before generation.
type SearchMode string

const (
	SearchAlways SearchMode = "always"
	SearchSmart  SearchMode = "smart"
)

// Valid reports whether the mode is one of the supported values.
func (m SearchMode) Valid() bool {
	return m == SearchAlways || m == SearchSmart
}

// DayRange is a 1-indexed inclusive window of itinerary days.
type DayRange struct {
	Start int
	End   int
}

// Plan is a generated itinerary. Itinerary is opaque prose; the only
// structure relied upon downstream is the "Day N" marker convention.
type Plan struct {
	ID          string
	Destination string
	Days        int
	Style       TravelStyle
	SearchMode  SearchMode
	ArrivalDate time.Time
	Itinerary   string
	CreatedAt   time.Time
}

// CalendarEvent is one all-day event derived from the itinerary text.
// Day is taken verbatim from the text and may repeat or skip numbers.
type CalendarEvent struct {
	Day         int
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
}

// --- UseCase Inputs / Outputs ---

type GeneratePlanInput struct {
	Destination string
	Days        int
	Style       TravelStyle
	SearchMode  SearchMode
	ArrivalDate time.Time
}

type GeneratePlanOutput struct {
	Plan Plan
}

type ExportCalendarOutput struct {
	FileName string
	Content  []byte
}

type SyncCalendarOutput struct {
	Inserted int
	Links    []string
}
