package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/config"
	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/mlmodel"
	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/types"
)

// RegisterHistory validates a reported study session, appends it to
// the dataset and retrains the recommendation model in place.
func (h *Handler) RegisterHistory(w http.ResponseWriter, r *http.Request) {
	var req types.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Cuerpo JSON inválido", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Subject) == "" {
		writeError(w, "La materia es obligatoria", http.StatusBadRequest)
		return
	}
	difficulty, ok := config.DifficultyScale[strings.ToLower(strings.TrimSpace(req.Difficulty))]
	if !ok {
		writeError(w, "La dificultad debe ser fácil, media o difícil", http.StatusBadRequest)
		return
	}
	if req.Hours <= 0 {
		writeError(w, "Las horas dedicadas deben ser mayores a cero", http.StatusBadRequest)
		return
	}
	if req.Grade < 1 || req.Grade > 10 {
		writeError(w, "La calificación debe estar entre 1 y 10", http.StatusBadRequest)
		return
	}

	rec := mlmodel.Record{
		Subject:    req.Subject,
		Difficulty: difficulty,
		Hours:      req.Hours,
		Grade:      req.Grade,
		Session:    sessionTypeOf(req.SessionType),
	}
	if err := h.Model.Append(rec); err != nil {
		config.Logger.Error("Failed to append study record: ", err)
		writeError(w, "No se pudo guardar la sesión", http.StatusInternalServerError)
		return
	}

	// A failed retrain keeps the previous coefficients; the session
	// itself is already saved.
	if err := h.Model.Train(); err != nil {
		config.Logger.Warn("Model retrain failed: ", err)
	}

	writeJSON(w, http.StatusCreated, types.MessageResponse{Message: "Sesión registrada"})
}

// sessionTypeOf maps the reported tracking mode to its canonical
// label, defaulting to a manual entry.
func sessionTypeOf(label string) string {
	if strings.EqualFold(strings.TrimSpace(label), config.SessionPomodoro) {
		return config.SessionPomodoro
	}
	return config.SessionManual
}

func (h *Handler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Model.DashboardStats()
	if err != nil {
		config.Logger.Error("Failed to compute dashboard stats: ", err)
		writeError(w, "No se pudieron calcular las estadísticas", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) Subjects(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.Model.Subjects()
	if err != nil {
		config.Logger.Error("Failed to list subjects: ", err)
		writeError(w, "No se pudieron listar las materias", http.StatusInternalServerError)
		return
	}
	// The frontend assigns the response directly to its suggestion
	// list, so this must stay a bare array.
	writeJSON(w, http.StatusOK, subjects)
}
