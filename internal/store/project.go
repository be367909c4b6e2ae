package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/domain"
)

// ProjectStore defines the interface for project persistence.
type ProjectStore interface {
	// Create saves a new project. Returns ErrInvalidEntity wrapping the
	// domain validation error if the project is invalid.
	Create(ctx context.Context, project *domain.Project) error

	// GetByID retrieves a project by its unique ID.
	// Returns ErrProjectNotFound if the project does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
}
