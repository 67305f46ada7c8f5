package usecase

const (
	// DefaultChunkSize is the number of itinerary days per generation request.
	DefaultChunkSize = 3

	// DefaultMaxDays caps the trip length.
	DefaultMaxDays = 14
)

// plannerInstructions is the system-level instruction set for the itinerary
// model, one rule per entry.
var plannerInstructions = []string{
	"You are an expert travel agent. Provide a full, detailed 2026-specific itinerary.",
	"Include Essential Info, Weather, and Day-by-Day Itinerary in one continuous document.",
	"For each day, give main activities, attractions, hotels, local tips, and cultural notes.",
	"Do NOT give hour-by-hour breakdowns or micro-schedules.",
	"Do NOT include code snippets, API calls, or function calls.",
	"Keep the itinerary concise but informative - slightly more detail than just titles.",
	"Format URLs as plain text.",
	"Use 'Day 1:', 'Day 2:' etc. for each day.",
}

const (
	// essentialQueryTemplate is the pre-generation search query.
	essentialQueryTemplate = "Weather, visa rules, top attractions for %s in 2026"

	// firstChunkTemplate carries trip essentials, weather framing, and the
	// search result text. Args: startDay, endDay, totalDays, style,
	// destination, arrivalDate, searchText.
	firstChunkTemplate = "Plan Day %d to Day %d of a %d-day %s trip to %s starting %s. Include Essential Info and Weather. Use these search results:\n%s"

	// laterChunkTemplate excludes essentials and weather. Args: startDay,
	// endDay, totalDays, style, destination, arrivalDate.
	laterChunkTemplate = "Plan Day %d to Day %d of a %d-day %s trip to %s starting %s. Only include Day-by-Day Itinerary, skip Essential Info and Weather."

	// arrivalDateFormat is how the arrival date appears in prompts.
	arrivalDateFormat = "2006-01-02"
)
