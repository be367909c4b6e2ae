package listeners

import (
	"context"
	"log/slog"

	"github.com/phrazzld/taskdeck-api/internal/events"
	"github.com/phrazzld/taskdeck-api/internal/platform/logger"
)

// completionLogListener writes a log line for every completed task. It is
// registered by type, so each dispatch gets a fresh zero value and the logger
// comes from the request context.
type completionLogListener struct{}

// Handle implements events.Listener.
func (l *completionLogListener) Handle(ctx context.Context, evt events.Event) error {
	completed, ok := evt.(*events.TaskCompleted)
	if !ok {
		return nil
	}

	logger.FromContext(ctx).Info("task completed",
		slog.String("task_id", completed.TaskID().String()),
		slog.String("project_id", completed.ProjectID().String()),
		slog.String("completed_by", completed.CompletedBy().String()),
		slog.Time("occurred_at", completed.OccurredAt()))
	return nil
}
