package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jsamuelsen11/blog-posts-api/internal/domain"
)

func TestValidationError_ErrorsIs(t *testing.T) {
	t.Parallel()

	verr := domain.NewValidationError("title", domain.MsgRequired)

	if !errors.Is(verr, domain.ErrValidation) {
		t.Error("errors.Is(ValidationError, ErrValidation) = false, want true")
	}

	wrapped := fmt.Errorf("operation failed: %w", verr)
	if !errors.Is(wrapped, domain.ErrValidation) {
		t.Error("errors.Is(wrapped ValidationError, ErrValidation) = false, want true")
	}
}

func TestValidationError_ErrorsAs(t *testing.T) {
	t.Parallel()

	original := &domain.ValidationError{Fields: map[string]string{
		"title":   domain.MsgRequired,
		"content": domain.MsgMustNotBeBlank,
	}}

	wrapped := fmt.Errorf("operation failed: %w", original)

	var verr *domain.ValidationError
	if !errors.As(wrapped, &verr) {
		t.Fatal("errors.As(wrapped, *ValidationError) = false, want true")
	}
	if len(verr.Fields) != 2 {
		t.Errorf("ValidationError.Fields has %d entries, want 2", len(verr.Fields))
	}
	if verr.Fields["content"] != domain.MsgMustNotBeBlank {
		t.Errorf("Fields[\"content\"] = %q, want %q", verr.Fields["content"], domain.MsgMustNotBeBlank)
	}
}

func TestValidationError_Error_IsDeterministic(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"title":   domain.MsgRequired,
		"author":  domain.MsgRequired,
		"content": domain.MsgRequired,
	}}

	want := "validation error: author: is required; content: is required; title: is required"
	for range 5 {
		if got := verr.Error(); got != want {
			t.Fatalf("Error() = %q, want %q", got, want)
		}
	}
}

func TestSentinelErrors(t *testing.T) {
	t.Parallel()

	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", domain.ErrNotFound},
		{"ErrValidation", domain.ErrValidation},
		{"ErrConflict", domain.ErrConflict},
		{"ErrForbidden", domain.ErrForbidden},
		{"ErrUnauthorized", domain.ErrUnauthorized},
		{"ErrUnavailable", domain.ErrUnavailable},
	}

	for _, tt := range sentinels {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			wrapped := fmt.Errorf("context: %w", tt.err)
			if !errors.Is(wrapped, tt.err) {
				t.Errorf("errors.Is(wrapped, %s) = false", tt.name)
			}
		})
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a.err, b.err) {
				t.Errorf("%s and %s should be distinct", a.name, b.name)
			}
		}
	}
}
