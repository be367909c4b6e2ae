package service_test

import (
	"context"
	"sync"

	"github.com/phrazzld/taskdeck-api/internal/events"
	"github.com/stretchr/testify/mock"
)

// MockEventDispatcher is a testify mock of service.EventDispatcher.
type MockEventDispatcher struct {
	mock.Mock
}

func (m *MockEventDispatcher) Dispatch(ctx context.Context, evt events.Event) {
	m.Called(ctx, evt)
}

// eventRecorder is a listener that keeps every event it receives.
type eventRecorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *eventRecorder) Handle(ctx context.Context, evt events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	return nil
}

func (r *eventRecorder) received() []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.Event(nil), r.events...)
}

// newRecordingDispatcher returns a real dispatcher with rec listening to kinds.
func newRecordingDispatcher(kinds ...events.Kind) (*events.Dispatcher, *eventRecorder) {
	d := events.NewDispatcher(nil)
	rec := &eventRecorder{}
	for _, k := range kinds {
		_ = d.Listen(k, rec, 0)
	}
	return d, rec
}
