package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/taskdeck-api/internal/domain"
	"github.com/phrazzld/taskdeck-api/internal/store"
)

// Service sentinel errors. Callers check them with errors.Is; the API layer
// maps them to HTTP status codes.
var (
	// ErrProjectNotFound indicates that the project does not exist.
	ErrProjectNotFound = errors.New("project not found")

	// ErrTaskNotFound indicates that the task does not exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskCompleted indicates an operation on a task that is already done.
	ErrTaskCompleted = errors.New("task is already completed")
)

// ServiceError wraps unexpected failures with the operation that produced them.
type ServiceError struct {
	// Service is the name of the failing service (e.g., "task").
	Service string
	// Operation is the operation that failed (e.g., "assign_task").
	Operation string
	// Message is a human-readable description of the error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// newServiceError maps known store and domain errors to service sentinels and
// wraps everything else. Validation errors are wrapped so that they stay
// detectable through domain.ErrValidation.
func newServiceError(service, operation, message string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrProjectNotFound), errors.Is(err, store.ErrProjectNotFound):
		return ErrProjectNotFound
	case errors.Is(err, ErrTaskNotFound), errors.Is(err, store.ErrTaskNotFound):
		return ErrTaskNotFound
	case errors.Is(err, domain.ErrTaskAlreadyCompleted):
		return ErrTaskCompleted
	}

	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// validationError marks a domain validation failure.
func validationError(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrValidation, err)
}
