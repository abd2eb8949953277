package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"dojolog/internal/services"
	"dojolog/internal/validation"
)

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps service errors onto 401/400/404. Anything else is a
// storage or crypto fault: it is logged and reported as fallback with a 500.
func writeServiceError(w http.ResponseWriter, logger *zap.Logger, err error, fallback string) {
	var vErr *validation.Error
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.As(err, &vErr):
		writeError(w, http.StatusBadRequest, vErr.Message)
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, "Entry not found.")
	default:
		logger.Error(fallback, zap.Error(err))
		writeError(w, http.StatusInternalServerError, fallback)
	}
}
