package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	cause := errors.New("connection reset by peer")

	tests := []struct {
		name string
		err  error
		kind ErrorKind
	}{
		{"validation", NewValidationError("bad"), KindValidation},
		{"not found", NewNotFoundError("User not found"), KindNotFound},
		{"conflict", NewConflictError("Email already exists", cause), KindConflict},
		{"database", NewDatabaseError("Failed to fetch users", cause), KindInfrastructure},
		{"wrapped", fmt.Errorf("get user: %w", NewNotFoundError("User not found")), KindNotFound},
		{"plain", errors.New("boom"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.kind {
				t.Errorf("Expected kind %q, got %q", tt.kind, got)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("driver failure")
	err := NewDatabaseError("Failed to create post", cause)

	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to find the wrapped cause")
	}
	if err.Error() != "infrastructure: Failed to create post: driver failure" {
		t.Errorf("Unexpected error string %q", err.Error())
	}
	if NewNotFoundError("Post not found").Error() != "not_found: Post not found" {
		t.Error("Unexpected error string for error without cause")
	}
}
