package schedule

import (
	"fmt"
	"sort"
)

// Kind governs how the consolidator treats an event. Sleep gets the
// midnight-wrap end computation; every kind participates in truncation.
type Kind string

const (
	KindFixed Kind = "fixed"
	KindMain  Kind = "main"
	KindExtra Kind = "extra"
	KindSleep Kind = "sleep"
)

// Event is a raw candidate produced by the synthesizer, before
// consolidation. Start and End are kept as strings so that malformed
// values survive until the parser absorbs them.
type Event struct {
	Day      Weekday
	Start    string
	End      string
	Activity string
	Category string
	Kind     Kind
}

// Block is a finalized, non-overlapping schedule entry. JSON field
// names match what the Angular frontend renders.
type Block struct {
	Day      Weekday `json:"dia"`
	Start    string  `json:"hora_inicio"`
	End      string  `json:"hora_fin"`
	Activity string  `json:"actividad"`
	Category string  `json:"categoria"`
	Duration float64 `json:"duracion"`
}

// Conflict reports a residual overlap between two chronologically
// adjacent blocks on the same day. It is a diagnostic, never an error.
type Conflict struct {
	Day    Weekday `json:"dia"`
	First  string  `json:"actividad_1"`
	Second string  `json:"actividad_2"`
}

// orderKey builds the composite day-major, time-minor sort key:
// zero-padded day index concatenated with zero-padded seconds since
// midnight. Ties are broken by input order through stable sorting.
func orderKey(day Weekday, start string) string {
	return fmt.Sprintf("%02d%05d", day.Index(), secondsOfDay(ParseClock(start)))
}

func sortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return orderKey(events[i].Day, events[i].Start) < orderKey(events[j].Day, events[j].Start)
	})
}

func sortBlocks(blocks []Block) {
	sort.SliceStable(blocks, func(i, j int) bool {
		return orderKey(blocks[i].Day, blocks[i].Start) < orderKey(blocks[j].Day, blocks[j].Start)
	})
}
