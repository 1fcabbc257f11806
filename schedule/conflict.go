package schedule

import (
	"fmt"
	"strings"
)

// DetectConflicts audits a finalized weekly schedule for adjacent
// same-day pairs that still overlap after consolidation. This should be
// rare; it signals contradictory inputs rather than a consolidator bug,
// and it only reports, never fails.
func DetectConflicts(blocks []Block) []Conflict {
	sorted := make([]Block, len(blocks))
	copy(sorted, blocks)
	sortBlocks(sorted)

	var conflicts []Conflict
	for i := 0; i+1 < len(sorted); i++ {
		cur, next := sorted[i], sorted[i+1]
		if cur.Day != next.Day {
			continue
		}
		if effectiveEnd(cur) > secondsOfDay(ParseClock(next.Start)) {
			conflicts = append(conflicts, Conflict{
				Day:    cur.Day,
				First:  fmt.Sprintf("%s (%s-%s)", cur.Activity, cur.Start, cur.End),
				Second: fmt.Sprintf("%s (%s-%s)", next.Activity, next.Start, next.End),
			})
		}
	}
	return conflicts
}

// effectiveEnd recomputes a block's end on the day's timeline, applying
// the same midnight-wrap rule the consolidator uses. Sleep blocks are
// recognized by their label prefix since kind information is gone after
// consolidation.
func effectiveEnd(b Block) int {
	start := ParseClock(b.Start)
	end := ParseClock(b.End)
	if isSleepLabel(b.Activity) && start.Hour() >= 12 && end.Hour() < 12 {
		return secondsOfDay(end) + daySeconds
	}
	return secondsOfDay(end)
}

func isSleepLabel(activity string) bool {
	return strings.HasPrefix(activity, "Sleep") || strings.HasPrefix(activity, "Dormir")
}
