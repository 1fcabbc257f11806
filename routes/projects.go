package routes

import (
	"net/http"

	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/handlers"
)

// RegisterProjectRoutes registers the project tracker endpoints
func RegisterProjectRoutes(mux *http.ServeMux, h *handlers.Handler) {
	mux.HandleFunc("GET /api/proyectos", h.ListProjects)
	mux.HandleFunc("POST /api/crear_proyecto", h.CreateProject)
	mux.HandleFunc("POST /api/actualizar_hitos", h.UpdateMilestones)
	mux.HandleFunc("POST /api/eliminar_proyecto", h.DeleteProject)
}
