package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/domain"
	"github.com/phrazzld/taskdeck-api/internal/platform/logger"
	"github.com/phrazzld/taskdeck-api/internal/redact"
	"github.com/phrazzld/taskdeck-api/internal/store"
)

// PostgresProjectStore implements store.ProjectStore on PostgreSQL.
type PostgresProjectStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.ProjectStore = (*PostgresProjectStore)(nil)

// NewPostgresProjectStore creates a project store over db, which may be a
// connection pool or a transaction. If logger is nil, the default logger is used.
func NewPostgresProjectStore(db store.DBTX, log *slog.Logger) *PostgresProjectStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &PostgresProjectStore{
		db:     db,
		logger: log.With(slog.String("component", "project_store")),
	}
}

// Create implements store.ProjectStore.Create.
func (s *PostgresProjectStore) Create(ctx context.Context, project *domain.Project) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := project.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO projects (id, name, description, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(ctx, query,
		project.ID,
		project.Name,
		project.Description,
		project.OwnerID,
		project.CreatedAt,
		project.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create project",
			slog.String("error", redact.Error(err)),
			slog.String("project_id", project.ID.String()))
		return store.NewStoreError("project", "create", "insert failed", MapError(err))
	}

	log.Debug("project created", slog.String("project_id", project.ID.String()))
	return nil
}

// GetByID implements store.ProjectStore.GetByID.
func (s *PostgresProjectStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, description, owner_id, created_at, updated_at
		FROM projects
		WHERE id = $1
	`

	var p domain.Project
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.OwnerID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrProjectNotFound
		}
		log.Error("failed to get project",
			slog.String("error", redact.Error(err)),
			slog.String("project_id", id.String()))
		return nil, store.NewStoreError("project", "get", "query failed", MapError(err))
	}

	return &p, nil
}
