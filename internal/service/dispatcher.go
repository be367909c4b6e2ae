package service

import (
	"context"

	"github.com/phrazzld/taskdeck-api/internal/events"
)

// EventDispatcher delivers events to registered listeners.
// *events.Dispatcher satisfies it.
type EventDispatcher interface {
	Dispatch(ctx context.Context, evt events.Event)
}

var _ EventDispatcher = (*events.Dispatcher)(nil)
