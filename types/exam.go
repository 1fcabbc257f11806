package types

// ExamItem describes an upcoming exam the user wants a study plan for.
type ExamItem struct {
	Subject    string `json:"materia"`
	Date       string `json:"fecha"` // YYYY-MM-DD
	Time       string `json:"hora"`
	Duration   int    `json:"duracion"`
	Topics     string `json:"temas"`
	Difficulty string `json:"dificultad"` // Alta | Media | Baja
	Format     string `json:"formato"`
	Confidence int    `json:"confianza"`
}

type ExamPlanRequest struct {
	Exams []ExamItem `json:"examenes"`
}
