package schedule

import (
	"strings"
	"time"

	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/config"
)

// clockLayouts are tried in order: 12-hour with am/pm suffix first,
// then 24-hour.
var clockLayouts = []string{"3:04pm", "15:04"}

// endOfDay is the sentinel for unparseable time strings. It sorts last
// and can never claim to end before it starts, so malformed upstream
// data degrades instead of aborting the schedule.
var endOfDay = time.Date(0, time.January, 1, 23, 59, 59, 0, time.UTC)

// ParseClock parses a free-form time-of-day string ("08:00am", " 8:00 AM",
// "20:00") into a value carrying only hour/minute/second. Unparseable
// input maps to the end-of-day sentinel; no error ever escapes.
func ParseClock(s string) time.Time {
	cleaned := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return time.Date(0, time.January, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
		}
	}
	config.Logger.Warnf("unparseable time %q, treating as end of day", s)
	return endOfDay
}

// ParseClockStrict is ParseClock without the sentinel fallback, for
// callers that must skip malformed input instead of degrading it.
func ParseClockStrict(s string) (time.Time, bool) {
	cleaned := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return time.Date(0, time.January, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// secondsOfDay converts a clock value to seconds since midnight.
func secondsOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// formatClock12 renders a clock value in lowercase 12-hour form, e.g.
// "8:00am", matching what the frontend displays.
func formatClock12(t time.Time) string {
	return strings.ToLower(t.Format("3:04pm"))
}

// clockFromSeconds is the inverse of secondsOfDay, modulo one day.
func clockFromSeconds(secs int) time.Time {
	secs %= 24 * 3600
	if secs < 0 {
		secs += 24 * 3600
	}
	return time.Date(0, time.January, 1, secs/3600, (secs%3600)/60, secs%60, 0, time.UTC)
}
