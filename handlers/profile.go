package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/config"
	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/schedule"
	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/types"
)

func (h *Handler) CheckProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Store.LoadUserProfile()
	if err != nil {
		config.Logger.Error("Failed to load profile: ", err)
		writeError(w, "No se pudo leer el perfil", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"existe": profile != nil})
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Store.LoadUserProfile()
	if err != nil {
		config.Logger.Error("Failed to load profile: ", err)
		writeError(w, "No se pudo leer el perfil", http.StatusInternalServerError)
		return
	}
	if profile == nil {
		writeError(w, "Aún no has creado tu perfil", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// CreateProfile stores the onboarding answers, derives the first
// priorities document from them and seeds the chat with a welcome
// message carrying the initial weekly plan.
func (h *Handler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var profile types.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, "Cuerpo JSON inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(profile.Name) == "" {
		writeError(w, "El nombre es obligatorio", http.StatusBadRequest)
		return
	}

	if err := h.Store.SaveUserProfile(profile); err != nil {
		config.Logger.Error("Failed to save profile: ", err)
		writeError(w, "No se pudo guardar el perfil", http.StatusInternalServerError)
		return
	}

	priorities := prioritiesFromProfile(profile)
	if err := h.Store.SaveLastPriorities(priorities); err != nil {
		config.Logger.Error("Failed to persist initial priorities: ", err)
	}

	blocks, conflicts := schedule.GenerateRecommendation(priorities, schedule.FilterWeek, "")
	welcome := types.ChatMessage{
		Role: "assistant",
		Text: fmt.Sprintf("¡Hola %s! Armé un primer horario semanal a partir de tu perfil. Dime si quieres ajustarlo.", profile.Name),
		Schedule: &types.SchedulePayload{
			WeeklyPlan: blocks,
			Conflicts:  conflicts,
		},
	}
	if err := h.Store.SaveChatHistory([]types.ChatMessage{welcome}); err != nil {
		config.Logger.Error("Failed to seed chat history: ", err)
	}

	writeJSON(w, http.StatusCreated, welcome)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var profile types.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, "Cuerpo JSON inválido", http.StatusBadRequest)
		return
	}
	if err := h.Store.SaveUserProfile(profile); err != nil {
		config.Logger.Error("Failed to save profile: ", err)
		writeError(w, "No se pudo guardar el perfil", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, types.MessageResponse{Message: "Perfil actualizado"})
}

// ResetProfile wipes the profile, the conversation and the Google
// link so onboarding starts over.
func (h *Handler) ResetProfile(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteUserProfile(); err != nil {
		config.Logger.Error("Failed to delete profile: ", err)
		writeError(w, "No se pudo reiniciar el perfil", http.StatusInternalServerError)
		return
	}
	if err := h.Store.SaveChatHistory([]types.ChatMessage{}); err != nil {
		config.Logger.Error("Failed to clear chat history: ", err)
	}
	if err := h.Store.DeleteGoogleToken(); err != nil {
		config.Logger.Error("Failed to delete google token: ", err)
	}
	writeJSON(w, http.StatusOK, types.MessageResponse{Message: "Perfil reiniciado"})
}

// prioritiesFromProfile maps onboarding answers to the first schedule
// configuration. The chat can refine it later, this only has to be a
// reasonable starting point.
func prioritiesFromProfile(profile types.UserProfile) schedule.Priorities {
	p := schedule.Priorities{SleepHours: profile.SleepHours}
	if p.SleepHours == 0 {
		p.SleepHours = 8
	}

	if profile.Works && profile.WorkStart != "" && profile.WorkEnd != "" {
		p.WorkStart = profile.WorkStart
		p.WorkEnd = profile.WorkEnd
	}

	switch chronotypeOf(profile.Chronotype) {
	case "noche":
		p.SleepStart, p.SleepEnd = "12:00am", "8:00am"
		p.StudyStart, p.StudyEnd = "8:00pm", "11:00pm"
	case "tarde":
		p.SleepStart, p.SleepEnd = "11:00pm", "7:00am"
		p.StudyStart, p.StudyEnd = "3:00pm", "6:00pm"
	default: // morning lark
		p.SleepStart, p.SleepEnd = "10:00pm", "6:00am"
		p.StudyStart, p.StudyEnd = "8:00am", "11:00am"
	}

	// The golden hour, when given, beats the chronotype default.
	if start, ok := schedule.ParseClockStrict(profile.GoldenHour); ok {
		p.StudyStart = profile.GoldenHour
		p.StudyEnd = strings.ToLower(start.Add(3 * time.Hour).Format("3:04pm"))
	}

	return p
}

// chronotypeOf reduces labels like "Noche (Búho)" to their family.
func chronotypeOf(label string) string {
	normalized := schedule.NormalizeDayName(label)
	switch {
	case strings.Contains(normalized, "noche"), strings.Contains(normalized, "buho"):
		return "noche"
	case strings.Contains(normalized, "tarde"):
		return "tarde"
	default:
		return "manana"
	}
}
