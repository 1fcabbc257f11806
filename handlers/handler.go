package handlers

import (
	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/gcal"
	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/llm"
	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/mlmodel"
	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/store"
)

// Handler bundles the services every endpoint needs. All state lives
// behind these objects; the handlers themselves are stateless.
type Handler struct {
	Store    *store.Store
	LLM      *llm.Client
	Model    *mlmodel.Model
	Calendar *gcal.Client
}

func New(st *store.Store, client *llm.Client, model *mlmodel.Model, calendar *gcal.Client) *Handler {
	return &Handler{
		Store:    st,
		LLM:      client,
		Model:    model,
		Calendar: calendar,
	}
}
