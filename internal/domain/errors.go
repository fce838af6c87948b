package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")

	// ErrNoDataAvailable means the sentence corpus is empty and no quiz can be built.
	ErrNoDataAvailable = errors.New("no data available")
	// ErrGenerationFailed means quiz assembly failed unexpectedly.
	ErrGenerationFailed = errors.New("generation failed")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

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

// GenerationError reports the assembly stage at which quiz generation failed.
// errors.Is(err, ErrGenerationFailed) holds for every GenerationError.
type GenerationError struct {
	Stage string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed at %s: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() []error { return []error{ErrGenerationFailed, e.Err} }

// NewGenerationError wraps err with the stage it occurred in.
func NewGenerationError(stage string, err error) *GenerationError {
	return &GenerationError{Stage: stage, Err: err}
}
