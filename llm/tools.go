package llm

import "google.golang.org/genai"

// planSemanalTool declares the function the model invokes when the
// user asks for a schedule. Field names mirror the JSON encoding of
// schedule.Priorities so the call args decode directly into it.
func planSemanalTool() *genai.FunctionDeclaration {
	timeField := func(desc string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeString, Description: desc + ` en formato de 12 horas, por ejemplo "8:00am" o "10:30pm"`}
	}

	return &genai.FunctionDeclaration{
		Name:        "PlanSemanal",
		Description: "Registra las preferencias de horario del estudiante para generar su plan semanal. Incluye solo los campos que el estudiante mencionó.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"study_hours":      {Type: genai.TypeNumber, Description: "Horas de estudio diarias deseadas"},
				"work_hours":       {Type: genai.TypeNumber, Description: "Horas de trabajo diarias"},
				"exercise_minutes": {Type: genai.TypeNumber, Description: "Minutos de ejercicio diarios"},
				"sleep_hours":      {Type: genai.TypeNumber, Description: "Horas de sueño por noche"},
				"study_start":      timeField("Hora de inicio de estudio"),
				"study_end":        timeField("Hora de fin de estudio"),
				"work_start":       timeField("Hora de inicio de trabajo"),
				"work_end":         timeField("Hora de fin de trabajo"),
				"exercise_start":   timeField("Hora de inicio de ejercicio"),
				"exercise_end":     timeField("Hora de fin de ejercicio"),
				"sleep_start":      timeField("Hora de dormir"),
				"sleep_end":        timeField("Hora de despertar"),
				"day_overrides": {
					Type:        genai.TypeObject,
					Description: `Ajustes para un día concreto. Clave "<actividad>_<start|end>_<día en inglés>", por ejemplo "study_end_wednesday", valor la hora en formato de 12 horas. Usar solo cuando el estudiante pide algo distinto para un día específico.`,
				},
				"other_activities": {
					Type:        genai.TypeArray,
					Description: "Actividades adicionales fuera de estudio, trabajo y ejercicio",
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"name":  {Type: genai.TypeString, Description: "Nombre de la actividad"},
							"start": timeField("Hora de inicio"),
							"end":   timeField("Hora de fin"),
							"applicable_days": {
								Type:        genai.TypeString,
								Description: `Días en que aplica: "All", "Monday-Friday", o el nombre de un día en inglés o español`,
							},
						},
						Required: []string{"name", "start", "end"},
					},
				},
			},
		},
	}
}
