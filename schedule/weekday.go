package schedule

import "strings"

// Weekday is the canonical day name used everywhere inside the core.
// Raw user input (Spanish names, diacritics, mixed case) is normalized
// once at the boundary via ParseWeekday and never compared again as a
// raw string.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays is the fixed week order, also the primary sort key.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// unknownDayIndex sorts events with an unrecognized day label last.
const unknownDayIndex = 99

var dayAliases = map[string]Weekday{
	"monday": Monday, "lunes": Monday,
	"tuesday": Tuesday, "martes": Tuesday,
	"wednesday": Wednesday, "miercoles": Wednesday,
	"thursday": Thursday, "jueves": Thursday,
	"friday": Friday, "viernes": Friday,
	"saturday": Saturday, "sabado": Saturday,
	"sunday": Sunday, "domingo": Sunday,
}

var diacritics = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ü", "u", "Ñ", "n",
)

// NormalizeDayName lowercases a day label and strips Spanish diacritics,
// so "Miércoles" and "miercoles" compare equal.
func NormalizeDayName(s string) string {
	return diacritics.Replace(strings.ToLower(strings.TrimSpace(s)))
}

// ParseWeekday resolves an English or Spanish day name to the canonical
// weekday. The second return value reports whether the label was known.
func ParseWeekday(s string) (Weekday, bool) {
	d, ok := dayAliases[NormalizeDayName(s)]
	return d, ok
}

// Index returns the position of the day in the week, or unknownDayIndex
// for labels outside the enumeration.
func (d Weekday) Index() int {
	for i, w := range Weekdays {
		if w == d {
			return i
		}
	}
	return unknownDayIndex
}

var spanishNames = map[Weekday]string{
	Monday: "lunes", Tuesday: "martes", Wednesday: "miércoles",
	Thursday: "jueves", Friday: "viernes", Saturday: "sábado", Sunday: "domingo",
}

// SpanishName renders the day for user-facing Spanish text.
func (d Weekday) SpanishName() string {
	if name, ok := spanishNames[d]; ok {
		return name
	}
	return string(d)
}

// IsWorkday reports whether the day falls Monday through Friday.
func (d Weekday) IsWorkday() bool {
	idx := d.Index()
	return idx >= 0 && idx <= 4
}

// Next returns the following day, wrapping Sunday back to Monday.
func (d Weekday) Next() Weekday {
	idx := d.Index()
	if idx == unknownDayIndex {
		return d
	}
	return Weekdays[(idx+1)%len(Weekdays)]
}
