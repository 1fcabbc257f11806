package types

import "github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/schedule"

// SchedulePayload is the structured plan attached to an assistant
// message when a schedule was generated.
type SchedulePayload struct {
	WeeklyPlan []schedule.Block    `json:"planSemanal"`
	Conflicts  []schedule.Conflict `json:"conflictos,omitempty"`
}

// ChatMessage mirrors the frontend's message shape: plain text plus
// optional schedule or milestone attachments.
type ChatMessage struct {
	Role     string           `json:"role"` // user | assistant
	Text     string           `json:"text"`
	Schedule *SchedulePayload `json:"horario,omitempty"`
	Hitos    []Milestone      `json:"hitos,omitempty"`
}

// ChatRequest carries the full conversation so far; the backend keeps
// no session state of its own.
type ChatRequest struct {
	History []ChatMessage `json:"history"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"mensaje"`
}
