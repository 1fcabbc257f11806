package routes

import (
	"net/http"

	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/handlers"
)

// RegisterChatRoutes registers the conversation endpoints
func RegisterChatRoutes(mux *http.ServeMux, h *handlers.Handler) {
	mux.HandleFunc("POST /api/conversar", h.Conversar)
	mux.HandleFunc("GET /api/chat_history", h.ChatHistory)
}
