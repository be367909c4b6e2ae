package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/domain"
	"github.com/phrazzld/taskdeck-api/internal/platform/logger"
	"github.com/phrazzld/taskdeck-api/internal/redact"
	"github.com/phrazzld/taskdeck-api/internal/store"
)

// PostgresActivityStore implements store.ActivityStore on PostgreSQL.
type PostgresActivityStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.ActivityStore = (*PostgresActivityStore)(nil)

// NewPostgresActivityStore creates an activity store over db.
// If logger is nil, the default logger is used.
func NewPostgresActivityStore(db store.DBTX, log *slog.Logger) *PostgresActivityStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &PostgresActivityStore{
		db:     db,
		logger: log.With(slog.String("component", "activity_store")),
	}
}

// Create implements store.ActivityStore.Create.
func (s *PostgresActivityStore) Create(ctx context.Context, entry *domain.ActivityEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO activity_entries (id, event_kind, subject_id, actor_id, payload, occurred_at, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query,
		entry.ID,
		entry.EventKind,
		entry.SubjectID,
		entry.ActorID,
		string(entry.Payload),
		entry.OccurredAt,
		entry.RecordedAt,
	)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to record activity",
			slog.String("error", redact.Error(err)),
			slog.String("event_kind", entry.EventKind),
			slog.String("subject_id", entry.SubjectID.String()))
		return store.NewStoreError("activity", "create", "insert failed", MapError(err))
	}
	return nil
}

// ListBySubject implements store.ActivityStore.ListBySubject.
func (s *PostgresActivityStore) ListBySubject(
	ctx context.Context,
	subjectID uuid.UUID,
	limit int,
) ([]*domain.ActivityEntry, error) {
	query := `
		SELECT id, event_kind, subject_id, actor_id, payload, occurred_at, recorded_at
		FROM activity_entries
		WHERE subject_id = $1
		ORDER BY occurred_at DESC, recorded_at DESC
		LIMIT $2
	`
	rows, err := s.db.QueryContext(ctx, query, subjectID, limit)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list activity",
			slog.String("error", redact.Error(err)),
			slog.String("subject_id", subjectID.String()))
		return nil, store.NewStoreError("activity", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	entries := make([]*domain.ActivityEntry, 0)
	for rows.Next() {
		var (
			e       domain.ActivityEntry
			payload []byte
		)
		if err := rows.Scan(&e.ID, &e.EventKind, &e.SubjectID, &e.ActorID, &payload,
			&e.OccurredAt, &e.RecordedAt); err != nil {
			return nil, store.NewStoreError("activity", "list", "scan failed", err)
		}
		e.Payload = json.RawMessage(payload)
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("activity", "list", "iteration failed", MapError(err))
	}

	return entries, nil
}
