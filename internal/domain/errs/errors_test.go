package errs

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
)

func TestNotFoundError_Message(t *testing.T) {
	id := uuid.New()
	err := NotFound("patient", id)
	want := fmt.Sprintf("patient not found: %s", id)
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestIsNotFound(t *testing.T) {
	err := NotFound("physician", uuid.New())
	if !IsNotFound(err) {
		t.Error("expected IsNotFound to be true for NotFoundError")
	}
	wrapped := fmt.Errorf("resolving physician: %w", err)
	if !IsNotFound(wrapped) {
		t.Error("expected IsNotFound to see through wrapping")
	}
	if IsNotFound(fmt.Errorf("boom")) {
		t.Error("expected IsNotFound to be false for unrelated error")
	}
}

func TestNotFoundKey(t *testing.T) {
	err := NotFoundKey("patient", "12345678900")
	if err.Error() != "patient not found: 12345678900" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}
