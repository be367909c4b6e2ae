package notify

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Common errors returned by the Queue
var (
	ErrQueueClosed = errors.New("notification queue is closed")
	ErrQueueFull   = errors.New("notification queue is full")
)

// Enqueuer accepts notifications for background delivery.
type Enqueuer interface {
	Enqueue(n Notification) error
}

// Queue is a bounded, non-blocking notification buffer.
type Queue struct {
	items  chan Notification
	logger *slog.Logger

	mu     sync.RWMutex
	closed bool
}

var _ Enqueuer = (*Queue)(nil)

// NewQueue creates a queue that holds at most size notifications.
// A size below 1 is raised to 1.
func NewQueue(size int, log *slog.Logger) *Queue {
	if size < 1 {
		size = 1
	}
	if log == nil {
		log = slog.Default()
	}
	return &Queue{
		items:  make(chan Notification, size),
		logger: log.With(slog.String("component", "notification_queue")),
	}
}

// Enqueue adds n to the queue without blocking.
// Returns an error if the queue is full or closed
func (q *Queue) Enqueue(n Notification) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.items <- n:
		q.logger.Debug("notification enqueued",
			slog.String("notification_id", n.ID.String()),
			slog.String("kind", string(n.Kind)),
			slog.Int("queue_len", len(q.items)),
			slog.Int("queue_cap", cap(q.items)))
		return nil
	default:
		return fmt.Errorf("%w: queue capacity %d reached", ErrQueueFull, cap(q.items))
	}
}

// Close stops accepting notifications. Buffered notifications remain
// readable from Channel. Close is idempotent.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.closed {
		q.closed = true
		close(q.items)
		q.logger.Info("notification queue closed")
	}
}

// Channel returns a read-only channel for consuming notifications.
func (q *Queue) Channel() <-chan Notification {
	return q.items
}

// Len returns the number of buffered notifications.
func (q *Queue) Len() int {
	return len(q.items)
}
