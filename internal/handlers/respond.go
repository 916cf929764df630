package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"journal-ai/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse represents a simple confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, ErrorResponse{Error: message})
}

// writeServiceError maps a service layer error to an HTTP response.
// Validation failures and not-found pass through; everything else becomes a
// generic 500 so internal detail never leaks to the client.
func writeServiceError(w http.ResponseWriter, err error, internalMsg string) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "Entry not found")
	default:
		writeError(w, http.StatusInternalServerError, internalMsg)
	}
}
