package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/config"
	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/types"
)

// PlanExams generates a spaced study plan for the submitted exams.
func (h *Handler) PlanExams(w http.ResponseWriter, r *http.Request) {
	h.examPlan(w, r, false)
}

// PlanCrisis is the last-minute variant: fewer days, intensive
// sessions on the highest-impact topics.
func (h *Handler) PlanCrisis(w http.ResponseWriter, r *http.Request) {
	h.examPlan(w, r, true)
}

func (h *Handler) examPlan(w http.ResponseWriter, r *http.Request, crisis bool) {
	var req types.ExamPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Cuerpo JSON inválido", http.StatusBadRequest)
		return
	}
	if len(req.Exams) == 0 {
		writeError(w, "Debes indicar al menos un examen", http.StatusBadRequest)
		return
	}

	profile, err := h.Store.LoadUserProfile()
	if err != nil {
		config.Logger.Warn("Failed to load profile for exam prompt: ", err)
	}

	blocks, err := h.LLM.GenerateExamPlan(r.Context(), profile, req.Exams, crisis)
	if err != nil {
		config.Logger.Error("Exam plan generation failed: ", err)
		writeError(w, "No se pudo generar el plan de estudio, inténtalo de nuevo", http.StatusBadGateway)
		return
	}

	text := "Aquí tienes tu plan de estudio para los exámenes."
	if crisis {
		text = "Plan de emergencia listo. Concéntrate en estas sesiones."
	}
	reply := types.ChatMessage{
		Role:     "assistant",
		Text:     text,
		Schedule: &types.SchedulePayload{WeeklyPlan: blocks},
	}

	history, err := h.Store.LoadChatHistory()
	if err != nil {
		config.Logger.Error("Failed to load chat history: ", err)
	} else {
		if err := h.Store.SaveChatHistory(append(history, reply)); err != nil {
			config.Logger.Error("Failed to persist chat history: ", err)
		}
	}

	writeJSON(w, http.StatusOK, reply)
}
