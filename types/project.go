package types

// Milestone is a single step of a project plan, generated by the LLM
// and checked off by the user.
type Milestone struct {
	Title     string `json:"titulo"`
	Details   string `json:"descripcion"`
	Deadline  string `json:"fecha_limite"`
	Completed bool   `json:"completado"`
	Weight    int    `json:"peso,omitempty"`
}

type Project struct {
	ID          string      `json:"id"`
	Name        string      `json:"nombre"`
	Description string      `json:"descripcion"`
	DueDate     string      `json:"fecha_fin"`
	Progress    int         `json:"progreso"`
	Milestones  []Milestone `json:"hitos"`
}

type CreateProjectRequest struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	DueDate     string `json:"fecha_fin"`
}

type UpdateMilestonesRequest struct {
	ProjectID  string      `json:"project_id"`
	Milestones []Milestone `json:"hitos"`
}
