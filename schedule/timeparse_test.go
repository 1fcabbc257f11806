package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock_Formats(t *testing.T) {
	cases := []struct {
		name  string
		input string
		hour  int
		min   int
	}{
		{"12-hour lowercase", "8:00am", 8, 0},
		{"12-hour uppercase with spaces", " 8:00 AM", 8, 0},
		{"12-hour evening", "10:30pm", 22, 30},
		{"24-hour", "20:00", 20, 0},
		{"24-hour morning", "06:15", 6, 15},
		{"noon", "12:00pm", 12, 0},
		{"midnight", "12:00am", 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseClock(tc.input)
			assert.Equal(t, tc.hour, got.Hour())
			assert.Equal(t, tc.min, got.Minute())
		})
	}
}

func TestParseClock_UnparseableMapsToEndOfDay(t *testing.T) {
	for _, input := range []string{"", "noon", "25:61", "holaaa"} {
		got := ParseClock(input)
		assert.Equal(t, 23, got.Hour(), "input %q", input)
		assert.Equal(t, 59, got.Minute(), "input %q", input)
		assert.Equal(t, 59, got.Second(), "input %q", input)
	}
}

func TestParseClockStrict(t *testing.T) {
	got, ok := ParseClockStrict("10:30pm")
	assert.True(t, ok)
	assert.Equal(t, 22, got.Hour())

	_, ok = ParseClockStrict("no idea")
	assert.False(t, ok)
}

func TestFormatClock12(t *testing.T) {
	assert.Equal(t, "8:00am", formatClock12(ParseClock("08:00")))
	assert.Equal(t, "10:30pm", formatClock12(ParseClock("22:30")))
	assert.Equal(t, "12:00pm", formatClock12(ParseClock("12:00")))
}

func TestClockFromSeconds_WrapsPastMidnight(t *testing.T) {
	// 30h -> 6am next day on the clock face.
	got := clockFromSeconds(30 * 3600)
	assert.Equal(t, 6, got.Hour())
	assert.Equal(t, 0, got.Minute())
}
