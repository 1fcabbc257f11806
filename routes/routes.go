package routes

import (
	"net/http"

	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/handlers"
)

// RegisterAllRoutes registers all application routes
func RegisterAllRoutes(mux *http.ServeMux, h *handlers.Handler) {
	RegisterChatRoutes(mux, h)
	RegisterProfileRoutes(mux, h)
	RegisterStudyRoutes(mux, h)
	RegisterProjectRoutes(mux, h)
	RegisterGoogleRoutes(mux, h)
}
