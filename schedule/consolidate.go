package schedule

import (
	"math"
	"time"
)

const daySeconds = 24 * 3600

// ConsolidateDay turns one day's raw candidate events into final,
// non-overlapping blocks: sort, truncate each event's end against the
// next event's start, drop what collapses to nothing, and compute
// durations. Later blocks in the sorted order yield to earlier ones,
// so the synthesizer's emission order is the priority mechanism.
func ConsolidateDay(events []Event) []Block {
	sortEvents(events)

	var blocks []Block
	for i, ev := range events {
		switch ev.Kind {
		case KindFixed, KindMain, KindExtra, KindSleep:
		default:
			continue
		}

		start := ParseClock(ev.Start)
		startSec := secondsOfDay(start)
		endSec := nominalEnd(ev, start)

		// The next event's start is the hard boundary; lower-precedence
		// blocks are truncated, not shifted.
		if i+1 < len(events) {
			nextSec := secondsOfDay(ParseClock(events[i+1].Start))
			if endSec > nextSec {
				endSec = nextSec
			}
		}

		if endSec <= startSec {
			continue
		}

		duration := roundHours(float64(endSec-startSec) / 3600)
		if duration <= 0 {
			continue
		}

		blocks = append(blocks, Block{
			Day:      ev.Day,
			Start:    formatClock12(start),
			End:      formatClock12(clockFromSeconds(endSec)),
			Activity: ev.Activity,
			Category: ev.Category,
			Duration: duration,
		})
	}

	return blocks
}

// nominalEnd computes the event's untruncated end in seconds since the
// day's midnight. A sleep block whose start is in the afternoon/evening
// and whose wake time is in the morning crosses midnight, so the wake
// time counts on the next day's timeline.
func nominalEnd(ev Event, start time.Time) int {
	end := ParseClock(ev.End)
	if ev.Kind == KindSleep && start.Hour() >= 12 && end.Hour() < 12 {
		return secondsOfDay(end) + daySeconds
	}
	return secondsOfDay(end)
}

func roundHours(h float64) float64 {
	return math.Round(h*10) / 10
}
