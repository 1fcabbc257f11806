package config

// Keywords that signal the user is asking for a schedule instead of a
// regular chat reply.
var PlanningKeywords = []string{"planificar", "horario", "plan", "programar"}

// Difficulty labels accepted by the feedback endpoint, mapped to the
// 1-10 scale the regression model trains on.
var DifficultyScale = map[string]float64{
	"fácil":   3,
	"facil":   3,
	"media":   6,
	"difícil": 9,
	"dificil": 9,
}

// Session types recorded in the study history.
const (
	SessionManual   = "Manual"
	SessionPomodoro = "Pomodoro"
)
