package listeners

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/domain"
	"github.com/phrazzld/taskdeck-api/internal/events"
	"github.com/phrazzld/taskdeck-api/internal/store"
)

// AuditPriority places the audit listener ahead of every other listener.
const AuditPriority = 100

// AuditListener records every event it receives as an activity entry.
type AuditListener struct {
	activity store.ActivityStore
	logger   *slog.Logger
}

var (
	_ events.Listener = (*AuditListener)(nil)
	_ events.Named    = (*AuditListener)(nil)
)

// NewAuditListener creates an AuditListener backed by activity.
func NewAuditListener(activity store.ActivityStore, log *slog.Logger) (*AuditListener, error) {
	if activity == nil {
		return nil, fmt.Errorf("audit listener: activity store cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &AuditListener{
		activity: activity,
		logger:   log.With(slog.String("component", "audit_listener")),
	}, nil
}

// Name implements events.Named.
func (l *AuditListener) Name() string { return "audit" }

// Handle implements events.Listener.
func (l *AuditListener) Handle(ctx context.Context, evt events.Event) error {
	subjectID, actorID, err := subjectAndActor(evt)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(evt.Payload())
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", evt.Kind(), err)
	}

	entry, err := domain.NewActivityEntry(string(evt.Kind()), subjectID, actorID, payload, evt.OccurredAt())
	if err != nil {
		return fmt.Errorf("invalid activity entry for %s: %w", evt.Kind(), err)
	}

	if err := l.activity.Create(ctx, entry); err != nil {
		return fmt.Errorf("failed to record %s: %w", evt.Kind(), err)
	}

	l.logger.Debug("activity recorded",
		slog.String("event_kind", string(evt.Kind())),
		slog.String("subject_id", subjectID.String()))
	return nil
}

// subjectAndActor returns the entity an event is about and the user who
// caused it.
func subjectAndActor(evt events.Event) (subject, actor uuid.UUID, err error) {
	switch e := evt.(type) {
	case *events.ProjectCreated:
		return e.ProjectID(), e.OwnerID(), nil
	case *events.TaskCreated:
		return e.TaskID(), e.CreatedBy(), nil
	case *events.TaskAssigned:
		return e.TaskID(), e.AssignedBy(), nil
	case *events.TaskCompleted:
		return e.TaskID(), e.CompletedBy(), nil
	default:
		return uuid.Nil, uuid.Nil, fmt.Errorf("audit listener: unsupported event %T", evt)
	}
}
