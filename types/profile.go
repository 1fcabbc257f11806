package types

// UserProfile is the onboarding questionnaire the frontend submits.
// JSON field names match the Angular client.
type UserProfile struct {
	Name           string  `json:"nombre"`
	Career         string  `json:"carrera"`
	Modality       string  `json:"modalidad"` // Presencial | Virtual | Híbrido
	Works          bool    `json:"trabaja"`
	WorkStart      string  `json:"horario_trabajo_inicio,omitempty"`
	WorkEnd        string  `json:"horario_trabajo_fin,omitempty"`
	CommuteMinutes int     `json:"tiempo_transporte"`
	CommuteType    string  `json:"transporte_tipo"`
	DomesticLoad   string  `json:"carga_domestica"`
	Chronotype     string  `json:"cronotipo"` // Mañana (Alondra) | Tarde | Noche (Búho)
	SleepHours     float64 `json:"horas_sueno"`
	StudyEndurance string  `json:"resistencia_estudio"`
	GoldenHour     string  `json:"hora_dorada,omitempty"`
}
