package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/config"
	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/types"
)

func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Store.LoadProjects()
	if err != nil {
		config.Logger.Error("Failed to load projects: ", err)
		writeError(w, "No se pudieron cargar los proyectos", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

// CreateProject persists a new project with LLM-generated milestones.
// When generation fails the project still gets a generic plan so the
// user is never left with nothing.
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req types.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Cuerpo JSON inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.DueDate) == "" {
		writeError(w, "El nombre y la fecha de entrega son obligatorios", http.StatusBadRequest)
		return
	}

	profile, err := h.Store.LoadUserProfile()
	if err != nil {
		config.Logger.Warn("Failed to load profile for milestone prompt: ", err)
	}

	milestones, err := h.LLM.GenerateMilestones(r.Context(), profile, req)
	if err != nil || len(milestones) == 0 {
		config.Logger.Warn("Milestone generation failed, using generic plan: ", err)
		milestones = genericMilestones(req.DueDate)
	}

	project := types.Project{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		DueDate:     req.DueDate,
		Progress:    0,
		Milestones:  milestones,
	}

	projects, err := h.Store.LoadProjects()
	if err != nil {
		config.Logger.Error("Failed to load projects: ", err)
		writeError(w, "No se pudieron cargar los proyectos", http.StatusInternalServerError)
		return
	}
	projects = append(projects, project)
	if err := h.Store.SaveProjects(projects); err != nil {
		config.Logger.Error("Failed to save projects: ", err)
		writeError(w, "No se pudo guardar el proyecto", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, project)
}

// UpdateMilestones replaces a project's milestone list and recomputes
// its progress percentage.
func (h *Handler) UpdateMilestones(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateMilestonesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Cuerpo JSON inválido", http.StatusBadRequest)
		return
	}

	projects, err := h.Store.LoadProjects()
	if err != nil {
		config.Logger.Error("Failed to load projects: ", err)
		writeError(w, "No se pudieron cargar los proyectos", http.StatusInternalServerError)
		return
	}

	for i := range projects {
		if projects[i].ID != req.ProjectID {
			continue
		}
		projects[i].Milestones = req.Milestones
		projects[i].Progress = computeProgress(req.Milestones)
		if err := h.Store.SaveProjects(projects); err != nil {
			config.Logger.Error("Failed to save projects: ", err)
			writeError(w, "No se pudo guardar el proyecto", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, projects[i])
		return
	}

	writeError(w, "Proyecto no encontrado", http.StatusNotFound)
}

func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	// The frontend sends {"id": ...}; "project_id" is accepted for
	// symmetry with the milestones endpoint.
	var req struct {
		ID        string `json:"id"`
		ProjectID string `json:"project_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Cuerpo JSON inválido", http.StatusBadRequest)
		return
	}
	id := req.ID
	if id == "" {
		id = req.ProjectID
	}

	projects, err := h.Store.LoadProjects()
	if err != nil {
		config.Logger.Error("Failed to load projects: ", err)
		writeError(w, "No se pudieron cargar los proyectos", http.StatusInternalServerError)
		return
	}

	kept := projects[:0]
	for _, p := range projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(projects) {
		writeError(w, "Proyecto no encontrado", http.StatusNotFound)
		return
	}
	if err := h.Store.SaveProjects(kept); err != nil {
		config.Logger.Error("Failed to save projects: ", err)
		writeError(w, "No se pudo eliminar el proyecto", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.MessageResponse{Message: "Proyecto eliminado"})
}

// computeProgress weighs completed milestones. When weights are
// missing every milestone counts the same.
func computeProgress(milestones []types.Milestone) int {
	if len(milestones) == 0 {
		return 0
	}

	totalWeight, doneWeight := 0, 0
	for _, m := range milestones {
		totalWeight += m.Weight
		if m.Completed {
			doneWeight += m.Weight
		}
	}
	if totalWeight > 0 {
		return doneWeight * 100 / totalWeight
	}

	done := 0
	for _, m := range milestones {
		if m.Completed {
			done++
		}
	}
	return done * 100 / len(milestones)
}

// genericMilestones is the offline fallback plan: four equal phases
// spread between today and the due date.
func genericMilestones(dueDate string) []types.Milestone {
	titles := []string{
		"Investigación y recopilación de fuentes",
		"Desarrollo del borrador",
		"Revisión y correcciones",
		"Entrega final",
	}

	now := time.Now()
	due, err := time.Parse("2006-01-02", dueDate)
	span := due.Sub(now)
	if err != nil || span <= 0 {
		span = 4 * 7 * 24 * time.Hour
	}

	milestones := make([]types.Milestone, 0, len(titles))
	for i, title := range titles {
		deadline := now.Add(span * time.Duration(i+1) / time.Duration(len(titles)))
		milestones = append(milestones, types.Milestone{
			Title:    title,
			Deadline: deadline.Format("2006-01-02"),
			Weight:   25,
		})
	}
	return milestones
}
