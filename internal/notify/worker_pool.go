package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/phrazzld/taskdeck-api/internal/redact"
)

// WorkerPool delivers queued notifications on a fixed number of goroutines.
type WorkerPool struct {
	queue       *Queue
	notifier    Notifier
	workerCount int
	timeout     time.Duration

	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
	logger *slog.Logger

	startOnce sync.Once
	stopOnce  sync.Once

	// errorHandler is called when a delivery fails or panics.
	// If nil, errors are only logged
	errorHandler func(n Notification, err error)
}

// WorkerPoolConfig holds configuration options for the worker pool
type WorkerPoolConfig struct {
	// WorkerCount determines how many concurrent workers to start.
	// If zero or negative, defaults to 1
	WorkerCount int

	// DeliveryTimeout bounds a single Notify call. Zero means no limit.
	DeliveryTimeout time.Duration
}

// DefaultWorkerPoolConfig returns a WorkerPoolConfig with reasonable defaults
func DefaultWorkerPoolConfig() WorkerPoolConfig {
	return WorkerPoolConfig{
		WorkerCount:     2,
		DeliveryTimeout: 10 * time.Second,
	}
}

// NewWorkerPool creates a worker pool that drains queue into notifier.
func NewWorkerPool(queue *Queue, notifier Notifier, config WorkerPoolConfig, log *slog.Logger) *WorkerPool {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(slog.String("component", "notification_workers"))

	workerCount := config.WorkerCount
	if workerCount <= 0 {
		workerCount = 1
		log.Warn("invalid worker count specified, using default",
			slog.Int("specified_count", config.WorkerCount),
			slog.Int("default_count", 1))
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &WorkerPool{
		queue:       queue,
		notifier:    notifier,
		workerCount: workerCount,
		timeout:     config.DeliveryTimeout,
		ctx:         ctx,
		cancel:      cancel,
		logger:      log,
	}
}

// SetErrorHandler sets a handler for failed deliveries. It must be called
// before Start.
func (p *WorkerPool) SetErrorHandler(handler func(n Notification, err error)) {
	p.errorHandler = handler
}

// Start launches the workers. Calling Start more than once has no effect.
func (p *WorkerPool) Start() {
	p.startOnce.Do(func() {
		p.logger.Info("starting notification workers", slog.Int("worker_count", p.workerCount))
		for i := 0; i < p.workerCount; i++ {
			p.wg.Add(1)
			go p.worker(i)
		}
	})
}

// Stop closes the queue and waits for the workers to deliver what is
// buffered. If ctx ends first, in-flight deliveries are cancelled and
// ctx.Err() is returned.
func (p *WorkerPool) Stop(ctx context.Context) error {
	var err error
	p.stopOnce.Do(func() {
		p.queue.Close()

		done := make(chan struct{})
		go func() {
			p.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			p.logger.Info("notification workers stopped")
		case <-ctx.Done():
			p.cancel()
			<-done
			p.logger.Warn("notification workers stopped before queue was drained",
				slog.Int("dropped", p.queue.Len()))
			err = ctx.Err()
		}
		p.cancel()
	})
	return err
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case n, ok := <-p.queue.Channel():
			if !ok {
				return
			}
			if err := p.deliver(n); err != nil {
				p.logger.Error("notification delivery failed",
					slog.Int("worker_id", id),
					slog.String("notification_id", n.ID.String()),
					slog.String("kind", string(n.Kind)),
					slog.String("error", redact.Error(err)))
				if p.errorHandler != nil {
					p.errorHandler(n, err)
				}
			}
		}
	}
}

func (p *WorkerPool) deliver(n Notification) (err error) {
	ctx := p.ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("notifier panicked: %v", r)
		}
	}()

	return p.notifier.Notify(ctx, n)
}
