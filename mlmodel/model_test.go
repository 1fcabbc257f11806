package mlmodel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/config"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "historial.csv"))
}

func TestLoadRecords_SeedsMissingFile(t *testing.T) {
	m := newTestModel(t)

	records, err := m.LoadRecords()
	require.NoError(t, err)
	require.Len(t, records, len(seedRecords))
	assert.Equal(t, "ML", records[0].Subject)

	// A second load reads the file it just created.
	again, err := m.LoadRecords()
	require.NoError(t, err)
	assert.Equal(t, records, again)
}

func TestAppend_PersistsRecord(t *testing.T) {
	m := newTestModel(t)

	rec := Record{Subject: "Redes", Difficulty: 6, Hours: 3.5, Grade: 8, Session: config.SessionPomodoro}
	require.NoError(t, m.Append(rec))

	records, err := m.LoadRecords()
	require.NoError(t, err)
	require.Len(t, records, len(seedRecords)+1)
	assert.Equal(t, rec, records[len(records)-1])
}

func TestLoadRecords_SessionDefaultsToManual(t *testing.T) {
	m := newTestModel(t)

	// Rows written without a session type (older files) read back as
	// manual entries.
	require.NoError(t, os.WriteFile(m.csvPath, []byte(
		"Materia,Dificultad_Escala,Horas_Estudio_Total,Calificacion\nRedes,6,3.5,8\n"), 0o644))

	records, err := m.LoadRecords()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, config.SessionManual, records[0].Session)
}

func TestPredictStudyHours_UntrainedUsesDefault(t *testing.T) {
	m := newTestModel(t)
	assert.False(t, m.Trained())
	assert.Equal(t, DefaultRecommendation, m.PredictStudyHours(5, 20, 8))
}

func TestPredictStudyHours_ClampsToAvailability(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, 6.0, m.PredictStudyHours(5, 6, 8), "never recommend more than available")
	assert.Equal(t, DefaultRecommendation, m.PredictStudyHours(5, 0, 8), "zero availability disables the clamp")
}

func TestTrain_FitsLinearHistory(t *testing.T) {
	m := newTestModel(t)

	// Exactly linear data: hours = 1*difficulty + 0*grade.
	require.NoError(t, m.writeRecords([]Record{
		{Subject: "A", Difficulty: 2, Hours: 2, Grade: 6},
		{Subject: "B", Difficulty: 4, Hours: 4, Grade: 7},
		{Subject: "C", Difficulty: 6, Hours: 6, Grade: 8},
		{Subject: "D", Difficulty: 8, Hours: 8, Grade: 9},
		{Subject: "E", Difficulty: 5, Hours: 5, Grade: 6},
	}))
	require.NoError(t, m.Train())
	require.True(t, m.Trained())

	assert.InDelta(t, 7.0, m.PredictStudyHours(7, 40, 8), 0.2)
	assert.InDelta(t, 3.0, m.PredictStudyHours(3, 40, 7), 0.2)
}

func TestTrain_DegenerateHistoryStaysUntrained(t *testing.T) {
	m := newTestModel(t)

	// Same difficulty and grade everywhere: singular normal equations.
	require.NoError(t, m.writeRecords([]Record{
		{Subject: "A", Difficulty: 5, Hours: 2, Grade: 8},
		{Subject: "B", Difficulty: 5, Hours: 4, Grade: 8},
		{Subject: "C", Difficulty: 5, Hours: 6, Grade: 8},
		{Subject: "D", Difficulty: 5, Hours: 8, Grade: 8},
	}))
	require.NoError(t, m.Train())
	assert.False(t, m.Trained())
	assert.Equal(t, DefaultRecommendation, m.PredictStudyHours(5, 20, 8))
}

func TestTrain_TooFewRecords(t *testing.T) {
	m := newTestModel(t)
	require.NoError(t, m.writeRecords([]Record{
		{Subject: "A", Difficulty: 2, Hours: 2, Grade: 6},
	}))
	require.NoError(t, m.Train())
	assert.False(t, m.Trained())
}

func TestDashboardStats(t *testing.T) {
	m := newTestModel(t)
	require.NoError(t, m.writeRecords([]Record{
		{Subject: "ML", Difficulty: 8, Hours: 5, Grade: 9},
		{Subject: "ML", Difficulty: 7, Hours: 3, Grade: 7},
		{Subject: "Tesis", Difficulty: 9, Hours: 10, Grade: 8},
	}))

	stats, err := m.DashboardStats()
	require.NoError(t, err)
	assert.Equal(t, 18.0, stats.TotalHours)
	assert.Equal(t, 3, stats.TotalSessions)
	assert.Equal(t, 8.0, stats.AverageGrade)
	require.Len(t, stats.SubjectsChart, 2)
	assert.Equal(t, "ML", stats.SubjectsChart[0].Subject)
	assert.Equal(t, 8.0, stats.SubjectsChart[0].Hours)
}

func TestSubjects_DistinctSorted(t *testing.T) {
	m := newTestModel(t)
	require.NoError(t, m.writeRecords([]Record{
		{Subject: "Tesis", Difficulty: 9, Hours: 10, Grade: 8},
		{Subject: "ML", Difficulty: 8, Hours: 5, Grade: 9},
		{Subject: "ML", Difficulty: 7, Hours: 3, Grade: 7},
	}))

	subjects, err := m.Subjects()
	require.NoError(t, err)
	assert.Equal(t, []string{"ML", "Tesis"}, subjects)
}
