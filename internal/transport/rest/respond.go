// Package rest is the HTTP surface of the service: the event form,
// its draft, the collaborator roster, and the notification feed.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Strawberry-Team/calendula-client/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// errorBody is the error payload for validation failures: a message
// plus the offending fields.
type errorBody struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

// handleError maps domain errors to HTTP statuses. Validation-class
// errors carry their field list into the body.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrIncompleteSchedule), errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorBody{
			Error:  err.Error(),
			Fields: domain.FieldErrors(err),
		})
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrOwnerInvariant):
		writeError(w, http.StatusConflict, "owner cannot be removed or demoted")
	case errors.Is(err, domain.ErrSubmissionInFlight):
		writeError(w, http.StatusConflict, "submission already in progress")
	case errors.Is(err, domain.ErrExternalCall):
		writeError(w, http.StatusBadGateway, "upstream unavailable")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
