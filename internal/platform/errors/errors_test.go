package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	apperrors "chorely/internal/platform/errors"
)

func TestValidationErrorMatchesInvalidInput(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("commit session: %w", apperrors.Invalid("chores", "select at least 1 chore"))
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("wrapped validation error should match ErrInvalidInput")
	}
	if errors.Is(err, apperrors.ErrInsufficientFunds) {
		t.Fatalf("validation error must not match insufficient funds")
	}
	var verr apperrors.ValidationError
	if !errors.As(err, &verr) || verr.Field != "chores" {
		t.Fatalf("expected to unwrap validation error, got %v", err)
	}
	if got := apperrors.Invalid("", "bare reason").Error(); got != "bare reason" {
		t.Fatalf("unexpected message %q", got)
	}
}
