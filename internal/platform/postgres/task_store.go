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

const taskColumns = `id, project_id, title, description, status, assignee_id,
		created_by, completed_at, created_at, updated_at`

// PostgresTaskStore implements store.TaskStore on PostgreSQL.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.TaskStore = (*PostgresTaskStore)(nil)

// NewPostgresTaskStore creates a task store over db, which may be a
// connection pool or a transaction. If logger is nil, the default logger is used.
func NewPostgresTaskStore(db store.DBTX, log *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &PostgresTaskStore{
		db:     db,
		logger: log.With(slog.String("component", "task_store")),
	}
}

// WithTx returns a store bound to tx.
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) *PostgresTaskStore {
	return &PostgresTaskStore{db: tx, logger: s.logger}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		t           domain.Task
		status      string
		completedAt sql.NullTime
	)
	err := row.Scan(
		&t.ID,
		&t.ProjectID,
		&t.Title,
		&t.Description,
		&status,
		&t.AssigneeID,
		&t.CreatedBy,
		&completedAt,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Status = domain.TaskStatus(status)
	if completedAt.Valid {
		at := completedAt.Time.UTC()
		t.CompletedAt = &at
	}
	return &t, nil
}

// nullTime converts an optional timestamp into a driver value.
func nullTime(t *domain.Task) sql.NullTime {
	if t.CompletedAt == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t.CompletedAt, Valid: true}
}

// Create implements store.TaskStore.Create.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(ctx, query,
		task.ID,
		task.ProjectID,
		task.Title,
		task.Description,
		string(task.Status),
		task.AssigneeID,
		task.CreatedBy,
		nullTime(task),
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to create task",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", task.ID.String()),
			slog.String("project_id", task.ProjectID.String()))
		return store.NewStoreError("task", "create", "insert failed", MapError(err))
	}

	log.Debug("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("project_id", task.ProjectID.String()))
	return nil
}

// GetByID implements store.TaskStore.GetByID.
func (s *PostgresTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	return s.get(ctx, id, false)
}

func (s *PostgresTaskStore) get(ctx context.Context, id uuid.UUID, forUpdate bool) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get task",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", id.String()))
		return nil, store.NewStoreError("task", "get", "query failed", MapError(err))
	}
	return task, nil
}

// Update implements store.TaskStore.Update.
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE tasks
		SET title = $1, description = $2, status = $3, assignee_id = $4,
			completed_at = $5, updated_at = $6
		WHERE id = $7
	`
	result, err := s.db.ExecContext(ctx, query,
		task.Title,
		task.Description,
		string(task.Status),
		task.AssigneeID,
		nullTime(task),
		task.UpdatedAt,
		task.ID,
	)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to update task",
			slog.String("error", redact.Error(err)),
			slog.String("task_id", task.ID.String()))
		return store.NewStoreError("task", "update", "update failed", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrTaskNotFound)
}

// Modify implements store.TaskStore.Modify. When the store is already bound
// to a transaction the caller's transaction is used.
func (s *PostgresTaskStore) Modify(ctx context.Context, id uuid.UUID, fn store.TaskMutator) (*domain.Task, error) {
	db, ok := s.db.(*sql.DB)
	if !ok {
		return s.modify(ctx, id, fn)
	}

	var out *domain.Task
	err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		task, err := s.WithTx(tx).modify(ctx, id, fn)
		out = task
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresTaskStore) modify(ctx context.Context, id uuid.UUID, fn store.TaskMutator) (*domain.Task, error) {
	task, err := s.get(ctx, id, true)
	if err != nil {
		return nil, err
	}

	if err := fn(task); err != nil {
		return nil, err
	}

	if err := s.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// ListByProject implements store.TaskStore.ListByProject.
func (s *PostgresTaskStore) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + taskColumns + `
		FROM tasks
		WHERE project_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		log.Error("failed to list tasks",
			slog.String("error", redact.Error(err)),
			slog.String("project_id", projectID.String()))
		return nil, store.NewStoreError("task", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, store.NewStoreError("task", "list", "scan failed", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("task", "list", "iteration failed", MapError(err))
	}

	return tasks, nil
}
