package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrValidation         = errors.New("validation error")
	ErrIncompleteSchedule = errors.New("incomplete schedule")
	ErrOwnerInvariant     = errors.New("owner invariant violation")
	ErrSubmissionInFlight = errors.New("submission already in flight")
	ErrExternalCall       = errors.New("external call failure")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
// It unwraps to a sentinel so callers can classify it with errors.Is:
// ErrIncompleteSchedule when the schedule fields are at fault,
// ErrValidation otherwise.
type ValidationError struct {
	Errors   []FieldError
	sentinel error
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error {
	if e.sentinel != nil {
		return e.sentinel
	}
	return ErrValidation
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// NewIncompleteScheduleError creates a ValidationError that classifies
// as ErrIncompleteSchedule.
func NewIncompleteScheduleError(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs, sentinel: ErrIncompleteSchedule}
}

// FieldErrors extracts field-level errors from err if it carries any.
func FieldErrors(err error) []FieldError {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Errors
	}
	return nil
}
