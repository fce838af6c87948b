package domain

import (
	"errors"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("corpus.source", "must be file or postgres")

	if got := err.Error(); got != "validation: corpus.source: must be file or postgres" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "text", Message: "required"},
		{Field: "verb.form", Message: "required"},
	})

	if got := err.Error(); got != "validation: 2 errors" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
	if len(err.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Errors))
	}
}

func TestGenerationError_WrapsSentinelAndCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := NewGenerationError("options", cause)

	if got := err.Error(); got != "generation failed at options: boom" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatal("errors.Is(err, ErrGenerationFailed) = false")
	}
	if !errors.Is(err, cause) {
		t.Fatal("errors.Is(err, cause) = false")
	}
	if errors.Is(err, ErrNoDataAvailable) {
		t.Fatal("GenerationError must not match ErrNoDataAvailable")
	}

	var genErr *GenerationError
	if !errors.As(err, &genErr) || genErr.Stage != "options" {
		t.Fatalf("errors.As did not expose stage: %+v", genErr)
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrNotFound, ErrAlreadyExists, ErrValidation, ErrNoDataAvailable, ErrGenerationFailed,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel errors %d and %d should not match", i, j)
			}
		}
	}
}
