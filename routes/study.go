package routes

import (
	"net/http"

	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/handlers"
)

// RegisterStudyRoutes registers exam planning and study-history endpoints
func RegisterStudyRoutes(mux *http.ServeMux, h *handlers.Handler) {
	mux.HandleFunc("POST /api/planificar_examenes", h.PlanExams)
	mux.HandleFunc("POST /api/planificar_crisis", h.PlanCrisis)
	mux.HandleFunc("POST /api/registrar_historial", h.RegisterHistory)
	mux.HandleFunc("GET /api/dashboard_stats", h.DashboardStats)
	mux.HandleFunc("GET /api/materias", h.Subjects)
}
