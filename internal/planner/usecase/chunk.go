package usecase

import (
	"fmt"

	"travel-planner/internal/planner"
)

// dayRanges partitions [1, numDays] into contiguous windows of at most
// chunkSize days. The final window ends at numDays even when numDays is not
// a multiple of chunkSize.
func dayRanges(numDays, chunkSize int) []planner.DayRange {
	ranges := make([]planner.DayRange, 0, (numDays+chunkSize-1)/chunkSize)
	for start := 1; start <= numDays; start += chunkSize {
		end := start + chunkSize - 1
		if end > numDays {
			end = numDays
		}
		ranges = append(ranges, planner.DayRange{Start: start, End: end})
	}
	return ranges
}

// buildChunkPrompt renders the generation request for one day range. The
// first chunk additionally asks for trip essentials and weather and embeds
// the search result text; later chunks explicitly exclude them.
func buildChunkPrompt(input planner.GeneratePlanInput, r planner.DayRange, first bool, searchText string) string {
	arrival := input.ArrivalDate.Format(arrivalDateFormat)
	if first {
		return fmt.Sprintf(firstChunkTemplate,
			r.Start, r.End, input.Days, input.Style, input.Destination, arrival, searchText)
	}
	return fmt.Sprintf(laterChunkTemplate,
		r.Start, r.End, input.Days, input.Style, input.Destination, arrival)
}
