package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppErrorUnwrapsToSentinel(t *testing.T) {
	err := fmt.Errorf("register: %w", Conflict("user with email a@b.c probably already exists", ErrUserAlreadyExists))

	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("expected wrapped sentinel to be found")
	}
	if !HasCode(err, CodeConflict) {
		t.Fatalf("expected conflict code")
	}
	if HasCode(err, CodeBadInput) {
		t.Fatalf("did not expect bad input code")
	}
}

func TestAppErrorMessage(t *testing.T) {
	if got := NewAppError(CodeBadInput, "bad", nil).Error(); got != "bad" {
		t.Fatalf("Error() = %q", got)
	}
	if got := BadInput("bad", ErrActivationInvalid).Error(); got != "bad: data for account activation is not correct" {
		t.Fatalf("Error() = %q", got)
	}
}
