package llm

import (
	"fmt"
	"strings"
	"time"

	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/types"
)

const chatSystemInstruction = `Eres el asistente virtual de estudios de la Universidad Privada del Norte (UPN).
Ayudas a estudiantes a organizar su semana, preparar exámenes y mantener buenos hábitos de estudio.
Responde siempre en español, con un tono cercano y breve. No inventes datos académicos del estudiante.`

// planSystemInstruction steers the model toward the PlanSemanal tool
// and injects the regression model's hour recommendation so the plan
// reflects the student's real history.
func planSystemInstruction(recommendedHours float64) string {
	var b strings.Builder
	b.WriteString(`Eres un planificador de horarios experto para estudiantes de la UPN.
Cuando el estudiante pida organizar su semana, invoca la función PlanSemanal con las preferencias que mencione.
Incluye únicamente los campos que el estudiante dijo; los demás se completan con su configuración anterior.
Las horas van en formato de 12 horas, por ejemplo "8:00am" o "10:30pm".`)
	if recommendedHours > 0 {
		fmt.Fprintf(&b, "\nSegún su historial académico, se recomiendan %.1f horas de estudio semanales. Úsalo como referencia si el estudiante no indica cuántas horas quiere estudiar.", recommendedHours)
	}
	return b.String()
}

func milestonePrompt(profile *types.UserProfile, req types.CreateProjectRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, `Genera los hitos para un proyecto académico.

Proyecto: %s
Descripción: %s
Fecha de entrega: %s
Fecha de hoy: %s
`, req.Name, req.Description, req.DueDate, time.Now().Format("2006-01-02"))
	if profile != nil {
		fmt.Fprintf(&b, "Estudiante: %s, carrera %s, modalidad %s.\n", profile.Name, profile.Career, profile.Modality)
		if profile.Works {
			b.WriteString("El estudiante trabaja, distribuye los hitos considerando tiempo limitado entre semana.\n")
		}
	}
	b.WriteString(`
Devuelve SOLO un arreglo JSON de 4 a 6 hitos, sin texto adicional, con esta forma:
[{"titulo": "...", "descripcion": "...", "fecha_limite": "YYYY-MM-DD", "completado": false, "peso": 20}]
Los pesos deben sumar 100 y las fechas repartirse entre hoy y la entrega.`)
	return b.String()
}

func examPlanPrompt(profile *types.UserProfile, exams []types.ExamItem, crisis bool) string {
	var b strings.Builder
	if crisis {
		b.WriteString("Genera un plan de estudio de emergencia: quedan muy pocos días, prioriza sesiones intensivas sobre los temas de mayor peso.\n\n")
	} else {
		b.WriteString("Genera un plan de estudio para los próximos exámenes, con sesiones repartidas y repasos espaciados.\n\n")
	}
	fmt.Fprintf(&b, "Fecha de hoy: %s\nExámenes:\n", time.Now().Format("2006-01-02"))
	for _, e := range exams {
		fmt.Fprintf(&b, "- %s el %s a las %s, dificultad %s, temas: %s, confianza del estudiante %d/10\n",
			e.Subject, e.Date, e.Time, e.Difficulty, e.Topics, e.Confidence)
	}
	if profile != nil && profile.Chronotype != "" {
		fmt.Fprintf(&b, "Cronotipo del estudiante: %s. Coloca las sesiones en sus horas de mejor rendimiento.\n", profile.Chronotype)
	}
	b.WriteString(`
Devuelve SOLO un arreglo JSON de bloques de estudio, sin texto adicional, con esta forma:
[{"dia": "Monday", "hora_inicio": "4:00pm", "hora_fin": "6:00pm", "actividad": "Repaso de Cálculo: derivadas", "categoria": "Examen", "duracion": 2.0}]
El campo "dia" usa el nombre del día en inglés y las horas el formato de 12 horas.`)
	return b.String()
}
