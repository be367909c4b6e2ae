package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/domain"
)

// ActivityStore defines the interface for the append-only activity trail.
type ActivityStore interface {
	// Create appends an entry.
	Create(ctx context.Context, entry *domain.ActivityEntry) error

	// ListBySubject returns up to limit entries for a project or task,
	// newest first.
	ListBySubject(ctx context.Context, subjectID uuid.UUID, limit int) ([]*domain.ActivityEntry, error)
}
