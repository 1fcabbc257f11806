package schedule

// FilterMode selects whether the caller gets the whole week or a single
// day. Filtering is a display concern: conflicts are always computed
// over the full week.
type FilterMode string

const (
	FilterWeek      FilterMode = "week"
	FilterSingleDay FilterMode = "single_day"
)

// GenerateRecommendation synthesizes and consolidates the full weekly
// schedule from the priorities document, audits it for residual
// conflicts, and optionally reduces the block list to the selected day.
// It is a pure function and never fails: worst case it returns empty
// slices.
func GenerateRecommendation(p Priorities, mode FilterMode, selectedDay string) ([]Block, []Conflict) {
	var blocks []Block
	for _, day := range Weekdays {
		blocks = append(blocks, ConsolidateDay(SynthesizeDay(p, day))...)
	}

	conflicts := DetectConflicts(blocks)

	if mode == FilterSingleDay {
		day, ok := ParseWeekday(selectedDay)
		filtered := make([]Block, 0, len(blocks))
		if ok {
			for _, b := range blocks {
				if b.Day == day {
					filtered = append(filtered, b)
				}
			}
		}
		blocks = filtered
	}

	return blocks, conflicts
}
