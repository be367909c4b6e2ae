package store

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"generic error", errors.New("some error"), false},
		{"ErrNotFound", ErrNotFound, true},
		{"ErrProjectNotFound", ErrProjectNotFound, true},
		{"wrapped ErrTaskNotFound", fmt.Errorf("failed to find task: %w", ErrTaskNotFound), true},
		{"store error wrapping not found", NewStoreError("task", "get", "lookup failed", ErrTaskNotFound), true},
		{"duplicate", ErrDuplicate, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFoundError(tt.err); got != tt.expected {
				t.Errorf("IsNotFoundError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"ErrDuplicate", ErrDuplicate, true},
		{"wrapped ErrDuplicate", fmt.Errorf("insert: %w", ErrDuplicate), true},
		{"not found", ErrProjectNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDuplicateError(tt.err); got != tt.expected {
				t.Errorf("IsDuplicateError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection reset")

	err := NewStoreError("project", "create", "insert failed", cause)
	if got, want := err.Error(), "create operation on project failed: insert failed: connection reset"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, cause) {
		t.Error("expected StoreError to unwrap to its cause")
	}

	bare := NewStoreError("task", "update", "no rows", nil)
	if got, want := bare.Error(), "update operation on task failed: no rows"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestEntityNotFoundMessages(t *testing.T) {
	if got := ErrTaskNotFound.Error(); got != "entity not found: task" {
		t.Errorf("unexpected message %q", got)
	}
	if got := ErrProjectNotFound.Error(); got != "entity not found: project" {
		t.Errorf("unexpected message %q", got)
	}
}
