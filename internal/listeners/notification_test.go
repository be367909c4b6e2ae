package listeners

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/events"
	"github.com/phrazzld/taskdeck-api/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationListener(t *testing.T) {
	queue := notify.NewQueue(4, nil)
	listener, err := NewNotificationListener(queue, nil)
	require.NoError(t, err)
	taskID, assignee := uuid.New(), uuid.New()

	require.NoError(t, listener.Handle(context.Background(), events.NewTaskAssigned(taskID, assignee, uuid.New())))

	require.Equal(t, 1, queue.Len())
	n := <-queue.Channel()
	assert.Equal(t, assignee, n.RecipientID)
	assert.Equal(t, taskID, n.SubjectID)
	assert.Equal(t, notify.KindTaskAssigned, n.Kind)
	assert.Contains(t, n.Message, taskID.String())
}

func TestNotificationListenerIgnoresOtherKinds(t *testing.T) {
	queue := notify.NewQueue(4, nil)
	listener, err := NewNotificationListener(queue, nil)
	require.NoError(t, err)

	require.NoError(t, listener.Handle(context.Background(), events.NewTaskCompleted(uuid.New(), uuid.New(), uuid.New())))
	assert.Zero(t, queue.Len())
}

func TestNotificationListenerQueueFull(t *testing.T) {
	queue := notify.NewQueue(1, nil)
	listener, err := NewNotificationListener(queue, nil)
	require.NoError(t, err)
	evt := events.NewTaskAssigned(uuid.New(), uuid.New(), uuid.New())

	require.NoError(t, listener.Handle(context.Background(), evt))
	err = listener.Handle(context.Background(), evt)

	assert.ErrorIs(t, err, notify.ErrQueueFull)
}
