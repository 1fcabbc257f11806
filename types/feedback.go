package types

// FeedbackRequest is a completed study session the user reports so the
// recommendation model can retrain.
type FeedbackRequest struct {
	Subject     string  `json:"materia"`
	Difficulty  string  `json:"dificultad"` // fácil | media | difícil
	Hours       float64 `json:"horas_dedicadas"`
	Grade       float64 `json:"calificacion"`
	SessionType string  `json:"tipo_sesion,omitempty"` // Manual | Pomodoro
}

// DashboardStats aggregates the study history for the dashboard view.
type DashboardStats struct {
	TotalHours    float64       `json:"total_horas"`
	TotalSessions int           `json:"sesiones_totales"`
	AverageGrade  float64       `json:"promedio_calificacion"`
	SubjectsChart []SubjectStat `json:"materias_chart"`
}

type SubjectStat struct {
	Subject string  `json:"materia"`
	Hours   float64 `json:"horas"`
}
