package listeners

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskdeck-api/internal/events"
	"github.com/phrazzld/taskdeck-api/internal/notify"
	"github.com/phrazzld/taskdeck-api/internal/store"
)

// Deps holds what the listeners need.
type Deps struct {
	Activity      store.ActivityStore
	Notifications notify.Enqueuer
	Logger        *slog.Logger
}

// Register attaches the application listeners to d:
//
//   - audit on every kind, priority 100
//   - assignment notification on task.assigned, priority 0
//   - completion log on task.completed, priority 0
func Register(d *events.Dispatcher, deps Deps) error {
	if d == nil {
		return fmt.Errorf("register listeners: dispatcher cannot be nil")
	}

	audit, err := NewAuditListener(deps.Activity, deps.Logger)
	if err != nil {
		return err
	}
	for _, kind := range events.Kinds() {
		if err := d.Listen(kind, audit, AuditPriority); err != nil {
			return fmt.Errorf("register audit listener for %s: %w", kind, err)
		}
	}

	notifications, err := NewNotificationListener(deps.Notifications, deps.Logger)
	if err != nil {
		return err
	}
	if err := d.Listen(events.KindTaskAssigned, notifications, NotificationPriority); err != nil {
		return fmt.Errorf("register notification listener: %w", err)
	}

	if err := events.ListenType[completionLogListener](d, events.KindTaskCompleted, 0); err != nil {
		return fmt.Errorf("register completion listener: %w", err)
	}

	return nil
}
