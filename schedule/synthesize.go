package schedule

import (
	"fmt"
	"strings"
)

// Fixed daily blocks. Lunch applies every day; the weekend slot covers
// Saturday's flexible time and Sunday's rest/planning time.
const (
	lunchStart   = "12:00pm"
	lunchEnd     = "1:00pm"
	weekendStart = "10:00am"
	weekendEnd   = "12:00pm"
)

// academicKeywords classify an ad-hoc activity as Academic instead of
// Leisure when its name contains one of them. Spanish "examen" already
// matches through "exam".
var academicKeywords = []string{"exam", "appointment", "conference", "cita", "conferencia"}

const defaultSleepHours = 8.0

// mainActivities are emitted on workdays, in this order. Emission order
// encodes truncation precedence for same-start ties (stable sort keeps
// earlier entries first).
var mainActivities = []struct {
	activity Activity
	label    string
	category string
}{
	{ActivityStudy, "Study", "Estudio"},
	{ActivityExercise, "Exercise", "Ejercicio"},
	{ActivityWork, "Work", "Trabajo"},
}

// SynthesizeDay builds the day's raw candidate events: wake and sleep
// markers, the workday main blocks with their per-day overrides, lunch,
// and any applicable ad-hoc activities. Missing time fields simply omit
// the block; nothing here fails.
func SynthesizeDay(p Priorities, day Weekday) []Event {
	var events []Event

	sleepStart, wake := p.WindowFor(ActivitySleep, day)
	if wake != "" {
		events = append(events, Event{
			Day: day, Start: wake, End: wake,
			Activity: "Wake Up", Category: "Fija", Kind: KindFixed,
		})
	}
	if sleepStart != "" {
		hours := p.SleepHours
		if hours <= 0 {
			hours = defaultSleepHours
		}
		// The nominal end is the NEXT day's wake time; the consolidator
		// applies the midnight-wrap rule.
		_, nextWake := p.WindowFor(ActivitySleep, day.Next())
		events = append(events, Event{
			Day: day, Start: sleepStart, End: nextWake,
			Activity: fmt.Sprintf("Sleep (%gh)", hours), Category: "Sueño", Kind: KindSleep,
		})
	}

	switch {
	case day.IsWorkday():
		for _, m := range mainActivities {
			start, end := p.WindowFor(m.activity, day)
			if start == "" || end == "" {
				continue
			}
			events = append(events, Event{
				Day: day, Start: start, End: end,
				Activity: m.label, Category: m.category, Kind: KindMain,
			})
		}
		events = append(events, lunch(day))
		for _, o := range p.OtherActivities {
			if !o.appliesOn(day) || o.Start == "" || o.End == "" {
				continue
			}
			events = append(events, Event{
				Day: day, Start: o.Start, End: o.End,
				Activity: o.Name, Category: classifyExtra(o.Name), Kind: KindExtra,
			})
		}
	case day == Saturday:
		events = append(events, Event{
			Day: day, Start: weekendStart, End: weekendEnd,
			Activity: "Flexible Time", Category: "Flexible", Kind: KindMain,
		})
		events = append(events, lunch(day))
	default: // Sunday
		events = append(events, Event{
			Day: day, Start: weekendStart, End: weekendEnd,
			Activity: "Rest & Planning", Category: "Descanso", Kind: KindMain,
		})
		events = append(events, lunch(day))
	}

	return events
}

func lunch(day Weekday) Event {
	return Event{
		Day: day, Start: lunchStart, End: lunchEnd,
		Activity: "Lunch", Category: "Fija", Kind: KindFixed,
	}
}

func classifyExtra(name string) string {
	lower := strings.ToLower(name)
	for _, kw := range academicKeywords {
		if strings.Contains(lower, kw) {
			return "Academic"
		}
	}
	return "Leisure"
}
