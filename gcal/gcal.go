package gcal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/config"
	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/schedule"
	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/store"
)

const (
	eventsEndpoint = "https://www.googleapis.com/calendar/v3/calendars/primary/events"
	timeZone       = "America/Lima"
)

// Google Calendar color ids, one per block category so the synced
// week is readable at a glance.
var categoryColors = map[string]string{
	"Estudio":   "9",  // blueberry
	"Trabajo":   "8",  // graphite
	"Ejercicio": "10", // basil
	"Sueño":     "1",  // lavender
	"Examen":    "11", // tomato
	"Crisis":    "11",
	"Academic":  "5", // banana
}

// Client syncs the weekly plan to the user's Google Calendar using
// the REST API directly. Tokens live next to the other user data on
// disk.
type Client struct {
	http         *http.Client
	store        *store.Store
	clientID     string
	clientSecret string
	redirectURI  string
}

func New(st *store.Store) *Client {
	return &Client{
		http:         &http.Client{Timeout: 30 * time.Second},
		store:        st,
		clientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		clientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		redirectURI:  config.GetEnv("GOOGLE_REDIRECT_URI", "http://localhost:4200/google/callback"),
	}
}

// Configured reports whether OAuth credentials were provided at all.
func (c *Client) Configured() bool {
	return c.clientID != "" && c.clientSecret != ""
}

// Connected reports whether the user has already linked their account.
func (c *Client) Connected() bool {
	return c.store.HasGoogleToken()
}

// Disconnect removes the stored token.
func (c *Client) Disconnect() error {
	return c.store.DeleteGoogleToken()
}

type calendarEvent struct {
	Summary   string        `json:"summary"`
	ColorID   string        `json:"colorId,omitempty"`
	Start     eventTime     `json:"start"`
	End       eventTime     `json:"end"`
	Reminders eventReminder `json:"reminders"`
}

type eventTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

type eventReminder struct {
	UseDefault bool            `json:"useDefault"`
	Overrides  []reminderEntry `json:"overrides,omitempty"`
}

type reminderEntry struct {
	Method  string `json:"method"`
	Minutes int    `json:"minutes"`
}

// SyncWeek pushes every block of the plan as a calendar event on its
// next occurrence. It returns how many events were created; blocks
// whose day or times cannot be resolved are skipped with a warning.
func (c *Client) SyncWeek(blocks []schedule.Block) (int, error) {
	token, err := c.accessToken()
	if err != nil {
		return 0, err
	}

	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		loc = time.FixedZone("PET", -5*60*60)
	}
	now := time.Now().In(loc)

	created := 0
	for _, block := range blocks {
		event, ok := c.eventFor(block, now, loc)
		if !ok {
			config.Logger.WithField("activity", block.Activity).Warn("Skipping block with unresolvable day or time")
			continue
		}
		if err := c.insertEvent(token, event); err != nil {
			return created, fmt.Errorf("failed to create event %q: %w", block.Activity, err)
		}
		created++
	}
	return created, nil
}

func (c *Client) eventFor(block schedule.Block, now time.Time, loc *time.Location) (calendarEvent, bool) {
	day, ok := schedule.ParseWeekday(string(block.Day))
	if !ok {
		return calendarEvent{}, false
	}

	date := nextOccurrence(now, day)
	start := atClock(date, block.Start, loc)
	end := atClock(date, block.End, loc)
	if start.IsZero() || end.IsZero() {
		return calendarEvent{}, false
	}
	// Overnight blocks end on the following day.
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}

	return calendarEvent{
		Summary: block.Activity,
		ColorID: categoryColors[block.Category],
		Start:   eventTime{DateTime: start.Format(time.RFC3339), TimeZone: timeZone},
		End:     eventTime{DateTime: end.Format(time.RFC3339), TimeZone: timeZone},
		Reminders: eventReminder{
			UseDefault: false,
			Overrides:  []reminderEntry{{Method: "popup", Minutes: 15}},
		},
	}, true
}

func (c *Client) insertEvent(token string, event calendarEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", eventsEndpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("calendar API returned status %d", resp.StatusCode)
	}
	return nil
}

// nextOccurrence returns the next date falling on the given weekday,
// counting today as a valid occurrence.
func nextOccurrence(now time.Time, day schedule.Weekday) time.Time {
	current := (int(now.Weekday()) + 6) % 7 // Monday = 0
	offset := (day.Index() - current + 7) % 7
	return now.AddDate(0, 0, offset)
}

// atClock combines a date with a parsed clock string. The zero time
// signals an unparseable clock.
func atClock(date time.Time, clock string, loc *time.Location) time.Time {
	t, ok := schedule.ParseClockStrict(clock)
	if !ok {
		return time.Time{}
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, loc)
}
