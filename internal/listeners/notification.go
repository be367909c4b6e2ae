package listeners

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskdeck-api/internal/events"
	"github.com/phrazzld/taskdeck-api/internal/notify"
)

// NotificationPriority is the default listener priority.
const NotificationPriority = 0

// NotificationListener tells a user that a task was assigned to them. It only
// enqueues; delivery happens on the notify worker pool.
type NotificationListener struct {
	queue  notify.Enqueuer
	logger *slog.Logger
}

var (
	_ events.Listener = (*NotificationListener)(nil)
	_ events.Named    = (*NotificationListener)(nil)
)

// NewNotificationListener creates a NotificationListener writing to queue.
func NewNotificationListener(queue notify.Enqueuer, log *slog.Logger) (*NotificationListener, error) {
	if queue == nil {
		return nil, fmt.Errorf("notification listener: queue cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &NotificationListener{
		queue:  queue,
		logger: log.With(slog.String("component", "notification_listener")),
	}, nil
}

// Name implements events.Named.
func (l *NotificationListener) Name() string { return "assignment_notification" }

// Handle implements events.Listener. Events other than task.assigned are
// ignored.
func (l *NotificationListener) Handle(ctx context.Context, evt events.Event) error {
	assigned, ok := evt.(*events.TaskAssigned)
	if !ok {
		return nil
	}

	n, err := notify.NewNotification(
		assigned.UserID(),
		notify.KindTaskAssigned,
		fmt.Sprintf("Task %s has been assigned to you", assigned.TaskID()),
		assigned.TaskID(),
	)
	if err != nil {
		return fmt.Errorf("failed to build assignment notification: %w", err)
	}

	if err := l.queue.Enqueue(*n); err != nil {
		return fmt.Errorf("failed to enqueue assignment notification: %w", err)
	}

	l.logger.Debug("assignment notification enqueued",
		slog.String("task_id", assigned.TaskID().String()),
		slog.String("recipient_id", assigned.UserID().String()))
	return nil
}
