package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/config"
	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/gcal"
	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/mlmodel"
	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/schedule"
	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/store"
	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/types"
)

// newTestHandler wires everything except the LLM client, which the
// endpoints under test never touch.
func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	dir := t.TempDir()
	st, err := store.New(dir)
	require.NoError(t, err)
	model := mlmodel.New(filepath.Join(dir, "historial.csv"))
	return New(st, nil, model, gcal.New(st))
}

func postJSON(t *testing.T, h http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(data))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func getJSON(t *testing.T, h http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestCheckProfile(t *testing.T) {
	h := newTestHandler(t)

	rec := getJSON(t, h.CheckProfile)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"existe": false}`, rec.Body.String())

	require.NoError(t, h.Store.SaveUserProfile(types.UserProfile{Name: "Lucía"}))

	rec = getJSON(t, h.CheckProfile)
	assert.JSONEq(t, `{"existe": true}`, rec.Body.String())
}

func TestGetProfile_NotFound(t *testing.T) {
	h := newTestHandler(t)
	rec := getJSON(t, h.GetProfile)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateProfile_RequiresName(t *testing.T) {
	h := newTestHandler(t)
	rec := postJSON(t, h.CreateProfile, types.UserProfile{Career: "Ingeniería de Sistemas"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProfile_SeedsScheduleAndChat(t *testing.T) {
	h := newTestHandler(t)

	rec := postJSON(t, h.CreateProfile, types.UserProfile{
		Name:       "Lucía",
		Works:      true,
		WorkStart:  "2:00pm",
		WorkEnd:    "6:00pm",
		Chronotype: "Noche (Búho)",
		SleepHours: 7,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var welcome types.ChatMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &welcome))
	assert.Equal(t, "assistant", welcome.Role)
	require.NotNil(t, welcome.Schedule)
	assert.NotEmpty(t, welcome.Schedule.WeeklyPlan)

	profile, err := h.Store.LoadUserProfile()
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Lucía", profile.Name)

	priorities, found, err := h.Store.LoadLastPriorities()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "2:00pm", priorities.WorkStart)
	assert.Equal(t, 7.0, priorities.SleepHours)
	assert.Equal(t, "8:00pm", priorities.StudyStart)

	history, err := h.Store.LoadChatHistory()
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.NotNil(t, history[0].Schedule)
}

func TestResetProfile(t *testing.T) {
	h := newTestHandler(t)
	require.NoError(t, h.Store.SaveUserProfile(types.UserProfile{Name: "Lucía"}))
	require.NoError(t, h.Store.SaveChatHistory([]types.ChatMessage{{Role: "user", Text: "hola"}}))

	rec := postJSON(t, h.ResetProfile, struct{}{})
	require.Equal(t, http.StatusOK, rec.Code)

	profile, err := h.Store.LoadUserProfile()
	require.NoError(t, err)
	assert.Nil(t, profile)

	history, err := h.Store.LoadChatHistory()
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestRegisterHistory_Validation(t *testing.T) {
	h := newTestHandler(t)

	cases := []struct {
		name string
		req  types.FeedbackRequest
	}{
		{"missing subject", types.FeedbackRequest{Difficulty: "media", Hours: 2, Grade: 8}},
		{"unknown difficulty", types.FeedbackRequest{Subject: "Cálculo", Difficulty: "imposible", Hours: 2, Grade: 8}},
		{"zero hours", types.FeedbackRequest{Subject: "Cálculo", Difficulty: "media", Hours: 0, Grade: 8}},
		{"grade out of range", types.FeedbackRequest{Subject: "Cálculo", Difficulty: "media", Hours: 2, Grade: 11}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postJSON(t, h.RegisterHistory, tc.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestRegisterHistory_AppendsAndAcceptsAccents(t *testing.T) {
	h := newTestHandler(t)

	rec := postJSON(t, h.RegisterHistory, types.FeedbackRequest{
		Subject:    "Cálculo",
		Difficulty: "Difícil",
		Hours:      3.5,
		Grade:      8,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	records, err := h.Model.LoadRecords()
	require.NoError(t, err)
	last := records[len(records)-1]
	assert.Equal(t, "Cálculo", last.Subject)
	assert.Equal(t, 9.0, last.Difficulty)
	assert.Equal(t, 3.5, last.Hours)
	assert.Equal(t, config.SessionManual, last.Session, "missing session type defaults to manual")
}

func TestRegisterHistory_RecordsSessionType(t *testing.T) {
	h := newTestHandler(t)

	rec := postJSON(t, h.RegisterHistory, types.FeedbackRequest{
		Subject:     "Redes",
		Difficulty:  "media",
		Hours:       1.5,
		Grade:       9,
		SessionType: "pomodoro",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	records, err := h.Model.LoadRecords()
	require.NoError(t, err)
	assert.Equal(t, config.SessionPomodoro, records[len(records)-1].Session)
}

func TestUpdateMilestones_RecomputesProgress(t *testing.T) {
	h := newTestHandler(t)
	require.NoError(t, h.Store.SaveProjects([]types.Project{{
		ID:   "p1",
		Name: "Tesis",
		Milestones: []types.Milestone{
			{Title: "Marco teórico", Weight: 60},
			{Title: "Entrega", Weight: 40},
		},
	}}))

	rec := postJSON(t, h.UpdateMilestones, types.UpdateMilestonesRequest{
		ProjectID: "p1",
		Milestones: []types.Milestone{
			{Title: "Marco teórico", Weight: 60, Completed: true},
			{Title: "Entrega", Weight: 40},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var project types.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &project))
	assert.Equal(t, 60, project.Progress)
}

func TestUpdateMilestones_UnknownProject(t *testing.T) {
	h := newTestHandler(t)
	rec := postJSON(t, h.UpdateMilestones, types.UpdateMilestonesRequest{ProjectID: "nope"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProject(t *testing.T) {
	h := newTestHandler(t)
	require.NoError(t, h.Store.SaveProjects([]types.Project{{ID: "p1"}, {ID: "p2"}}))

	// The frontend identifies the project with "id".
	rec := postJSON(t, h.DeleteProject, map[string]string{"id": "p1"})
	require.Equal(t, http.StatusOK, rec.Code)

	projects, err := h.Store.LoadProjects()
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "p2", projects[0].ID)

	rec = postJSON(t, h.DeleteProject, map[string]string{"id": "p1"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProject_AcceptsProjectIDKey(t *testing.T) {
	h := newTestHandler(t)
	require.NoError(t, h.Store.SaveProjects([]types.Project{{ID: "p1"}}))

	rec := postJSON(t, h.DeleteProject, map[string]string{"project_id": "p1"})
	require.Equal(t, http.StatusOK, rec.Code)

	projects, err := h.Store.LoadProjects()
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestSubjects_ReturnsBareArray(t *testing.T) {
	h := newTestHandler(t)

	// The frontend assigns the body straight to its suggestion list,
	// so the response must decode as a plain string array.
	rec := getJSON(t, h.Subjects)
	require.Equal(t, http.StatusOK, rec.Code)

	var subjects []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &subjects))
	assert.Contains(t, subjects, "ML")
}

func TestGoogleStatus_Disconnected(t *testing.T) {
	h := newTestHandler(t)
	rec := getJSON(t, h.GoogleStatus)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"conectado": false}`, rec.Body.String())
}

func TestGoogleSync_WithoutSchedule(t *testing.T) {
	h := newTestHandler(t)
	rec := postJSON(t, h.GoogleSync, struct{}{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGoogleSync_UsesPostedSchedule(t *testing.T) {
	h := newTestHandler(t)

	// No stored priorities: with an empty body this request would be
	// rejected, so reaching the sync stage (which fails on the missing
	// Google token) proves the posted plan is the one being synced.
	body := map[string]any{
		"horario": types.SchedulePayload{
			WeeklyPlan: []schedule.Block{{
				Day: schedule.Monday, Start: "4:00pm", End: "6:00pm",
				Activity: "Repaso de Cálculo", Category: "Examen", Duration: 2,
			}},
		},
	}
	rec := postJSON(t, h.GoogleSync, body)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestWantsSchedule(t *testing.T) {
	assert.True(t, wantsSchedule(nil, "Quiero planificar mi semana"))
	assert.True(t, wantsSchedule(nil, "dame un HORARIO nuevo"))
	assert.False(t, wantsSchedule(nil, "¿cómo estuvo tu día?"))

	// A mention right after the assistant delivered a schedule is
	// conversation about it, not a new request.
	history := []types.ChatMessage{
		{Role: "assistant", Schedule: &types.SchedulePayload{}},
		{Role: "user", Text: "me gusta este horario"},
	}
	assert.False(t, wantsSchedule(history, "me gusta este horario"))
}

func TestDetectDayFilter(t *testing.T) {
	mode, day := detectDayFilter("muéstrame solo el miércoles")
	assert.Equal(t, schedule.FilterSingleDay, mode)
	assert.Equal(t, "Wednesday", day)

	mode, _ = detectDayFilter("quiero planificar toda mi semana")
	assert.Equal(t, schedule.FilterWeek, mode)
}

func TestComputeProgress(t *testing.T) {
	weighted := []types.Milestone{
		{Weight: 70, Completed: true},
		{Weight: 30},
	}
	assert.Equal(t, 70, computeProgress(weighted))

	unweighted := []types.Milestone{
		{Completed: true},
		{Completed: true},
		{},
		{},
	}
	assert.Equal(t, 50, computeProgress(unweighted))

	assert.Equal(t, 0, computeProgress(nil))
}

func TestPrioritiesFromProfile(t *testing.T) {
	p := prioritiesFromProfile(types.UserProfile{
		Name:       "Lucía",
		Works:      true,
		WorkStart:  "9:00am",
		WorkEnd:    "1:00pm",
		Chronotype: "Mañana (Alondra)",
	})
	assert.Equal(t, "9:00am", p.WorkStart)
	assert.Equal(t, "10:00pm", p.SleepStart)
	assert.Equal(t, "8:00am", p.StudyStart)
	assert.Equal(t, 8.0, p.SleepHours)

	owl := prioritiesFromProfile(types.UserProfile{Name: "Marco", Chronotype: "Noche (Búho)", SleepHours: 6})
	assert.Equal(t, "12:00am", owl.SleepStart)
	assert.Equal(t, "8:00pm", owl.StudyStart)
	assert.Equal(t, 6.0, owl.SleepHours)

	golden := prioritiesFromProfile(types.UserProfile{Name: "Ana", GoldenHour: "5:00am"})
	assert.Equal(t, "5:00am", golden.StudyStart)
	assert.Equal(t, "8:00am", golden.StudyEnd)
}
