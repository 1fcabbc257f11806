package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/config"
	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/schedule"
	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/types"
)

// Conversar is the main chat endpoint. The frontend sends the entire
// conversation; planning requests go through the PlanSemanal tool and
// the schedule core, everything else is a plain Gemini continuation.
func (h *Handler) Conversar(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Cuerpo JSON inválido", http.StatusBadRequest)
		return
	}

	userText := lastUserText(req.History)
	if userText == "" {
		writeError(w, "La conversación no tiene un mensaje del usuario", http.StatusBadRequest)
		return
	}

	var reply types.ChatMessage
	if wantsSchedule(req.History, userText) {
		reply = h.planReply(r, userText)
	} else {
		reply = h.chatReply(r, req.History)
	}

	history := append(req.History, reply)
	if err := h.Store.SaveChatHistory(history); err != nil {
		config.Logger.Error("Failed to persist chat history: ", err)
	}

	writeJSON(w, http.StatusOK, reply)
}

// ChatHistory returns the persisted conversation so the frontend can
// restore it after a reload.
func (h *Handler) ChatHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.Store.LoadChatHistory()
	if err != nil {
		config.Logger.Error("Failed to load chat history: ", err)
		writeError(w, "No se pudo cargar el historial", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

// planReply runs the full planning pipeline: extract priority updates
// from the prompt, merge them over the saved configuration, generate
// the week and attach it to the assistant message.
func (h *Handler) planReply(r *http.Request, userText string) types.ChatMessage {
	recommended := h.Model.PredictStudyHours(6, 0, 8)

	patch, invoked, err := h.LLM.ExtractPriorities(r.Context(), userText, recommended)
	if err != nil {
		config.Logger.Error("Priority extraction failed: ", err)
		return fallbackMessage()
	}
	if !invoked {
		// The model judged this was not a planning request after all.
		text, chatErr := h.LLM.Chat(r.Context(), []types.ChatMessage{{Role: "user", Text: userText}})
		if chatErr != nil {
			return fallbackMessage()
		}
		return types.ChatMessage{Role: "assistant", Text: text}
	}

	base, _, err := h.Store.LoadLastPriorities()
	if err != nil {
		config.Logger.Error("Failed to load saved priorities: ", err)
	}
	merged := schedule.Merge(base, patch)
	if err := h.Store.SaveLastPriorities(merged); err != nil {
		config.Logger.Error("Failed to persist priorities: ", err)
	}

	mode, day := detectDayFilter(userText)
	blocks, conflicts := schedule.GenerateRecommendation(merged, mode, day)

	text := "¡Listo! Aquí tienes tu horario semanal actualizado."
	if mode == schedule.FilterSingleDay {
		if d, ok := schedule.ParseWeekday(day); ok {
			text = fmt.Sprintf("¡Listo! Aquí tienes tu horario para el %s.", d.SpanishName())
		}
	}
	if len(conflicts) > 0 {
		text += fmt.Sprintf(" Encontré %d conflicto(s) que quizá quieras revisar.", len(conflicts))
	}

	return types.ChatMessage{
		Role: "assistant",
		Text: text,
		Schedule: &types.SchedulePayload{
			WeeklyPlan: blocks,
			Conflicts:  conflicts,
		},
	}
}

func (h *Handler) chatReply(r *http.Request, history []types.ChatMessage) types.ChatMessage {
	text, err := h.LLM.Chat(r.Context(), history)
	if err != nil {
		config.Logger.Error("Chat completion failed: ", err)
		return fallbackMessage()
	}
	return types.ChatMessage{Role: "assistant", Text: text}
}

// wantsSchedule detects planning intent by keyword. A mention right
// after the assistant just delivered a schedule is treated as
// conversation about that schedule, not a new request.
func wantsSchedule(history []types.ChatMessage, userText string) bool {
	if len(history) >= 2 {
		prev := history[len(history)-2]
		if prev.Role == "assistant" && prev.Schedule != nil {
			return false
		}
	}

	normalized := schedule.NormalizeDayName(userText)
	for _, kw := range config.PlanningKeywords {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}

// detectDayFilter scans the prompt for a day name. Mentioning one
// narrows the response to that day; conflicts still cover the week.
func detectDayFilter(userText string) (schedule.FilterMode, string) {
	for _, word := range strings.FieldsFunc(userText, func(r rune) bool {
		return !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r >= 0x80)
	}) {
		if day, ok := schedule.ParseWeekday(word); ok {
			return schedule.FilterSingleDay, string(day)
		}
	}
	return schedule.FilterWeek, ""
}

func lastUserText(history []types.ChatMessage) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == "user" {
			return strings.TrimSpace(history[i].Text)
		}
	}
	return ""
}

func fallbackMessage() types.ChatMessage {
	return types.ChatMessage{
		Role: "assistant",
		Text: "Lo siento, tuve un problema procesando tu mensaje. ¿Puedes intentarlo de nuevo?",
	}
}
