package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/domain"
)

// TaskMutator changes a task in place. Returning an error aborts the
// surrounding Modify without persisting anything.
type TaskMutator func(task *domain.Task) error

// TaskStore defines the interface for task persistence.
type TaskStore interface {
	// Create saves a new task. Returns ErrForeignKey if the project does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// Update saves changes to an existing task.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Modify loads the task under a row lock, applies fn and saves the result,
	// all in one transaction. It returns the saved task, or fn's error
	// unchanged if fn fails.
	Modify(ctx context.Context, id uuid.UUID, fn TaskMutator) (*domain.Task, error)

	// ListByProject returns the tasks of a project, oldest first. An empty
	// slice is returned when the project has no tasks.
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error)
}
