package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowFor_OverridePrecedence(t *testing.T) {
	p := Priorities{
		StudyStart: "9:00am",
		StudyEnd:   "11:00am",
		DayOverrides: map[string]string{
			"study_end_wednesday": "10:00am",
		},
	}

	for _, day := range Weekdays {
		start, end := p.WindowFor(ActivityStudy, day)
		assert.Equal(t, "9:00am", start, "start is never overridden here")
		if day == Wednesday {
			assert.Equal(t, "10:00am", end, "wednesday override wins")
		} else {
			assert.Equal(t, "11:00am", end, "other days keep the weekly default")
		}
	}
}

func TestWindowFor_AbsentFields(t *testing.T) {
	p := Priorities{StudyStart: "9:00am"}
	start, end := p.WindowFor(ActivityStudy, Monday)
	assert.Equal(t, "9:00am", start)
	assert.Empty(t, end, "missing default with no override stays empty")

	start, end = p.WindowFor(ActivityWork, Monday)
	assert.Empty(t, start)
	assert.Empty(t, end)
}

func TestMerge_PatchWins(t *testing.T) {
	base := Priorities{
		StudyHours: 10,
		StudyStart: "9:00am",
		StudyEnd:   "11:00am",
		SleepStart: "10:00pm",
		SleepEnd:   "6:00am",
		DayOverrides: map[string]string{
			"study_end_wednesday": "10:00am",
		},
		OtherActivities: []OtherActivity{{Name: "Gym", Start: "5:00pm", End: "6:00pm", ApplicableDays: "All"}},
	}
	patch := Priorities{
		StudyHours: 12,
		StudyEnd:   "12:00pm",
		DayOverrides: map[string]string{
			"work_start_thursday": "10:00am",
		},
	}

	got := Merge(base, patch)

	assert.Equal(t, 12.0, got.StudyHours)
	assert.Equal(t, "12:00pm", got.StudyEnd)
	assert.Equal(t, "9:00am", got.StudyStart, "untouched fields keep base values")
	assert.Equal(t, "10:00am", got.DayOverrides["study_end_wednesday"], "override maps merge key-wise")
	assert.Equal(t, "10:00am", got.DayOverrides["work_start_thursday"])
	assert.Len(t, got.OtherActivities, 1, "empty patch list keeps the base list")

	// Merge must not mutate the base document.
	assert.Equal(t, 10.0, base.StudyHours)
	_, hasNew := base.DayOverrides["work_start_thursday"]
	assert.False(t, hasNew)
}

func TestOtherActivity_AppliesOn(t *testing.T) {
	cases := []struct {
		name string
		days string
		day  Weekday
		want bool
	}{
		{"all matches weekend", "All", Sunday, true},
		{"all case-insensitive", "aLL", Monday, true},
		{"specific day match", "Wednesday", Wednesday, true},
		{"specific day spanish", "Miércoles", Wednesday, true},
		{"specific day mismatch", "Wednesday", Thursday, false},
		{"weekday range hits friday", "Monday-Friday", Friday, true},
		{"weekday range spanish", "Lunes-Viernes", Tuesday, true},
		{"weekday range misses saturday", "Monday-Friday", Saturday, false},
		{"empty means all", "", Saturday, true},
		{"garbage never matches", "Whenever", Monday, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := OtherActivity{Name: "x", ApplicableDays: tc.days}
			assert.Equal(t, tc.want, o.appliesOn(tc.day))
		})
	}
}
