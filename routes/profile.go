package routes

import (
	"net/http"

	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/handlers"
)

// RegisterProfileRoutes registers the onboarding and profile endpoints
func RegisterProfileRoutes(mux *http.ServeMux, h *handlers.Handler) {
	mux.HandleFunc("GET /api/check_perfil", h.CheckProfile)
	mux.HandleFunc("GET /api/obtener_perfil", h.GetProfile)
	mux.HandleFunc("POST /api/crear_perfil", h.CreateProfile)
	mux.HandleFunc("POST /api/actualizar_perfil", h.UpdateProfile)
	mux.HandleFunc("POST /api/reset_perfil", h.ResetProfile)
}
