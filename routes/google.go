package routes

import (
	"net/http"

	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/handlers"
)

// RegisterGoogleRoutes registers the Google Calendar integration endpoints
func RegisterGoogleRoutes(mux *http.ServeMux, h *handlers.Handler) {
	mux.HandleFunc("GET /api/google/status", h.GoogleStatus)
	mux.HandleFunc("GET /api/google/connect", h.GoogleConnectURL)
	mux.HandleFunc("POST /api/google/connect", h.GoogleExchangeCode)
	mux.HandleFunc("POST /api/google/sync", h.GoogleSync)
}
