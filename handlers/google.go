package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/config"
	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/schedule"
	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/types"
)

func (h *Handler) GoogleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"conectado": h.Calendar.Connected()})
}

// GoogleConnectURL hands the frontend the consent page to redirect to.
func (h *Handler) GoogleConnectURL(w http.ResponseWriter, r *http.Request) {
	if !h.Calendar.Configured() {
		writeError(w, "La integración con Google Calendar no está configurada", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"auth_url": h.Calendar.ConsentURL()})
}

// GoogleExchangeCode finishes the OAuth dance with the code the
// consent page redirected back with.
func (h *Handler) GoogleExchangeCode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		writeError(w, "Falta el código de autorización", http.StatusBadRequest)
		return
	}

	if err := h.Calendar.Exchange(req.Code); err != nil {
		config.Logger.Error("OAuth code exchange failed: ", err)
		writeError(w, "No se pudo conectar con Google", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, types.MessageResponse{Message: "Cuenta de Google conectada"})
}

// GoogleSync pushes a schedule to the user's calendar. The frontend
// posts whatever plan is on screen (weekly, exam or crisis); when the
// body carries no blocks the stored weekly plan is synced instead.
func (h *Handler) GoogleSync(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Schedule types.SchedulePayload `json:"horario"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeError(w, "Cuerpo JSON inválido", http.StatusBadRequest)
		return
	}

	blocks := req.Schedule.WeeklyPlan
	if len(blocks) == 0 {
		priorities, found, err := h.Store.LoadLastPriorities()
		if err != nil {
			config.Logger.Error("Failed to load priorities: ", err)
			writeError(w, "No se pudo cargar tu configuración", http.StatusInternalServerError)
			return
		}
		if !found {
			writeError(w, "Todavía no tienes un horario generado", http.StatusBadRequest)
			return
		}
		blocks, _ = schedule.GenerateRecommendation(priorities, schedule.FilterWeek, "")
	}

	created, err := h.Calendar.SyncWeek(blocks)
	if err != nil {
		config.Logger.Error("Calendar sync failed: ", err)
		writeError(w, "No se pudo sincronizar con Google Calendar", http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"mensaje":         fmt.Sprintf("Se crearon %d eventos en tu calendario", created),
		"eventos_creados": created,
	})
}
