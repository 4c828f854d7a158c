package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Field string `json:"field,omitempty"`
}

// writeError mapeia o taxonomy de erro do usecase para HTTP:
// VALIDATION_ERROR 400, NOT_FOUND 404, CONFLICT 409, STORE_UNAVAILABLE 503.
func writeError(w http.ResponseWriter, err error) {
	var de *usecase.DomainError
	if errors.As(err, &de) {
		status := http.StatusInternalServerError
		switch de.Code {
		case usecase.CodeValidation:
			status = http.StatusBadRequest
		case usecase.CodeNotFound:
			status = http.StatusNotFound
		case usecase.CodeConflict:
			status = http.StatusConflict
		}
		writeJSON(w, status, errorResponse{Error: de.Message, Code: de.Code, Field: de.Field})
		return
	}

	var te *usecase.TechnicalError
	if errors.As(err, &te) {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service temporarily unavailable", Code: te.Code})
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
