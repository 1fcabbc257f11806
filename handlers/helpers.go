package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/belkinGarcia/Asistente-virtual-para-alumnos-de-la-UPN/types"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, types.ErrorResponse{Error: message})
}
