package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation a field is missing or malformed
	ErrValidation = errors.New("validation failed")

	// ErrInvalidTransition the appointment status change is not allowed
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrNotFound a referenced appointment or engineer does not exist
	ErrNotFound = errors.New("not found")

	// ErrExternalService the verification or notification collaborator failed
	ErrExternalService = errors.New("external service error")
)

// FieldError describes one failing field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every failing field of a request
type ValidationError struct {
	Fields []FieldError
}

// Add appends a failing field
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any field failed
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// Err returns e when it has failing fields, nil otherwise
func (e *ValidationError) Err() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

// FieldNames returns the names of failing fields in order
func (e *ValidationError) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return names
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError builds a single-field ValidationError
func NewValidationError(field, message string) *ValidationError {
	e := &ValidationError{}
	e.Add(field, message)
	return e
}

// InvalidTransitionError a status change outside the allowed set
type InvalidTransitionError struct {
	From AppointmentStatus
	To   AppointmentStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%v: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// NotFoundError a referenced entity is absent
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q %v", e.Entity, e.ID, ErrNotFound)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ExternalServiceError a collaborator call failed
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrExternalService, e.Service, e.Err)
}

// Unwrap exposes both the sentinel and the cause
func (e *ExternalServiceError) Unwrap() []error {
	return []error{ErrExternalService, e.Err}
}
