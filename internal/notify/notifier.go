package notify

import (
	"context"
	"log/slog"

	"github.com/phrazzld/taskdeck-api/internal/platform/logger"
)

// Notifier delivers a notification to its recipient.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, n Notification) error

// Notify implements Notifier.
func (f NotifierFunc) Notify(ctx context.Context, n Notification) error {
	return f(ctx, n)
}

// LogNotifier delivers notifications by writing them to the log. It is the
// default Notifier until a mail or push channel exists.
type LogNotifier struct {
	logger *slog.Logger
}

var _ Notifier = (*LogNotifier)(nil)

// NewLogNotifier creates a LogNotifier. A nil logger uses slog.Default.
func NewLogNotifier(log *slog.Logger) *LogNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &LogNotifier{logger: log.With(slog.String("component", "log_notifier"))}
}

// Notify implements Notifier.
func (l *LogNotifier) Notify(ctx context.Context, n Notification) error {
	logger.FromContextOrDefault(ctx, l.logger).Info("notification delivered",
		slog.String("notification_id", n.ID.String()),
		slog.String("recipient_id", n.RecipientID.String()),
		slog.String("kind", string(n.Kind)),
		slog.String("subject_id", n.SubjectID.String()),
		slog.String("message", n.Message))
	return nil
}
