// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/voltpoint/voltpoint/internal/handler/dto"
	"github.com/voltpoint/voltpoint/internal/service"
)

// Handler wraps application-level fallback handlers.
type Handler struct{}

// New creates a new Handler instance.
func New() *Handler {
	return &Handler{}
}

// Hello is a simple info endpoint.
// GET /
func (h *Handler) Hello(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"message": "Voltpoint charging network API",
		"version": "0.1.0",
	}
	writeJSON(w, http.StatusOK, response)
}

// NotFound handles 404 responses.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"error": "resource not found",
	}
	writeJSON(w, http.StatusNotFound, response)
}

// MethodNotAllowed handles 405 responses.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"error": "method not allowed",
	}
	writeJSON(w, http.StatusMethodNotAllowed, response)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		_ = err
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// writeServiceError maps service errors to HTTP responses.
// Store-level failures surface as a generic 500; the wrapped cause is
// logged, never sent to the caller.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		writeError(w, http.StatusBadRequest, "MISSING_FIELDS", "All required fields must be provided")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	case errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusBadRequest, "DUPLICATE_EMAIL", "Email already registered")
	case errors.Is(err, service.ErrPlateTaken):
		writeError(w, http.StatusBadRequest, "DUPLICATE_PLATE", "License plate already registered")
	case errors.Is(err, service.ErrInvalidVehicle):
		writeError(w, http.StatusBadRequest, "INVALID_VEHICLE", "Invalid vehicle")
	case errors.Is(err, service.ErrInvalidStation):
		writeError(w, http.StatusBadRequest, "INVALID_STATION", "Invalid station")
	case errors.Is(err, service.ErrInvalidWindow):
		writeError(w, http.StatusBadRequest, "INVALID_WINDOW", "End time must be after start time")
	case errors.Is(err, service.ErrSlotConflict):
		writeError(w, http.StatusBadRequest, "SLOT_CONFLICT", "Station not available in this time slot")
	default:
		logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
