package schedule

import (
	"fmt"
	"strings"
)

// Activity names the four built-in scheduled activities. The string
// value doubles as the key prefix in the day-override map.
type Activity string

const (
	ActivityStudy    Activity = "study"
	ActivityWork     Activity = "work"
	ActivityExercise Activity = "exercise"
	ActivitySleep    Activity = "sleep"
)

// OtherActivity is a user-declared ad-hoc block (gym class, club,
// medical appointment). ApplicableDays is one of "All", a weekday name
// (English or Spanish) or "Monday-Friday"/"Lunes-Viernes", matched
// case-insensitively.
type OtherActivity struct {
	Name           string `json:"name"`
	Start          string `json:"start,omitempty"`
	End            string `json:"end,omitempty"`
	ApplicableDays string `json:"applicable_days,omitempty"`
}

// Priorities is the persisted user-preference document driving schedule
// synthesis. Every time field is either a parseable time string or
// empty; empty falls back along the override chain: day-specific value,
// then weekly default, then the activity is omitted for that day.
type Priorities struct {
	StudyHours      float64 `json:"study_hours,omitempty"`
	WorkHours       float64 `json:"work_hours,omitempty"`
	ExerciseMinutes float64 `json:"exercise_minutes,omitempty"`
	SleepHours      float64 `json:"sleep_hours,omitempty"`

	StudyStart    string `json:"study_start,omitempty"`
	StudyEnd      string `json:"study_end,omitempty"`
	WorkStart     string `json:"work_start,omitempty"`
	WorkEnd       string `json:"work_end,omitempty"`
	ExerciseStart string `json:"exercise_start,omitempty"`
	ExerciseEnd   string `json:"exercise_end,omitempty"`
	SleepStart    string `json:"sleep_start,omitempty"`
	SleepEnd      string `json:"sleep_end,omitempty"`

	// DayOverrides holds day-specific windows keyed
	// "<activity>_<start|end>_<weekday>", e.g. "study_end_wednesday".
	// An override takes precedence over the weekly default.
	DayOverrides map[string]string `json:"day_overrides,omitempty"`

	OtherActivities []OtherActivity `json:"other_activities,omitempty"`
}

func (p Priorities) defaultWindow(a Activity) (start, end string) {
	switch a {
	case ActivityStudy:
		return p.StudyStart, p.StudyEnd
	case ActivityWork:
		return p.WorkStart, p.WorkEnd
	case ActivityExercise:
		return p.ExerciseStart, p.ExerciseEnd
	case ActivitySleep:
		return p.SleepStart, p.SleepEnd
	}
	return "", ""
}

// overrideFor looks up the day-specific value for one edge of an
// activity's window. Empty means no override.
func (p Priorities) overrideFor(a Activity, edge string, day Weekday) string {
	if len(p.DayOverrides) == 0 {
		return ""
	}
	return p.DayOverrides[fmt.Sprintf("%s_%s_%s", a, edge, strings.ToLower(string(day)))]
}

// WindowFor resolves an activity's start/end for a given day through
// the override chain. Either value may come back empty, which means the
// activity is omitted for that day.
func (p Priorities) WindowFor(a Activity, day Weekday) (start, end string) {
	defStart, defEnd := p.defaultWindow(a)
	start = p.overrideFor(a, "start", day)
	if start == "" {
		start = defStart
	}
	end = p.overrideFor(a, "end", day)
	if end == "" {
		end = defEnd
	}
	return start, end
}

// Merge layers patch on top of base: non-zero numbers and non-empty
// strings win, day overrides merge key-wise, and a non-empty activity
// list replaces the old one. Used to fold LLM-extracted updates into
// the last persisted document.
func Merge(base, patch Priorities) Priorities {
	out := base

	mergeFloat(&out.StudyHours, patch.StudyHours)
	mergeFloat(&out.WorkHours, patch.WorkHours)
	mergeFloat(&out.ExerciseMinutes, patch.ExerciseMinutes)
	mergeFloat(&out.SleepHours, patch.SleepHours)

	mergeStr(&out.StudyStart, patch.StudyStart)
	mergeStr(&out.StudyEnd, patch.StudyEnd)
	mergeStr(&out.WorkStart, patch.WorkStart)
	mergeStr(&out.WorkEnd, patch.WorkEnd)
	mergeStr(&out.ExerciseStart, patch.ExerciseStart)
	mergeStr(&out.ExerciseEnd, patch.ExerciseEnd)
	mergeStr(&out.SleepStart, patch.SleepStart)
	mergeStr(&out.SleepEnd, patch.SleepEnd)

	if len(patch.DayOverrides) > 0 {
		if out.DayOverrides == nil {
			out.DayOverrides = make(map[string]string, len(patch.DayOverrides))
		} else {
			merged := make(map[string]string, len(out.DayOverrides)+len(patch.DayOverrides))
			for k, v := range base.DayOverrides {
				merged[k] = v
			}
			out.DayOverrides = merged
		}
		for k, v := range patch.DayOverrides {
			out.DayOverrides[k] = v
		}
	}

	if len(patch.OtherActivities) > 0 {
		out.OtherActivities = patch.OtherActivities
	}

	return out
}

func mergeFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}

func mergeStr(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// appliesOn reports whether the ad-hoc activity is scheduled on the
// given day.
func (o OtherActivity) appliesOn(day Weekday) bool {
	label := NormalizeDayName(o.ApplicableDays)
	switch label {
	case "", "all", "todos":
		return true
	case "monday-friday", "lunes-viernes":
		return day.IsWorkday()
	}
	if d, ok := ParseWeekday(label); ok {
		return d == day
	}
	return false
}
