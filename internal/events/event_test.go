package events_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/events"
	"github.com/stretchr/testify/assert"
)

func TestTaskAssigned(t *testing.T) {
	taskID, userID, assignedBy := uuid.New(), uuid.New(), uuid.New()
	before := time.Now().UTC()

	evt := events.NewTaskAssigned(taskID, userID, assignedBy)

	assert.Equal(t, events.KindTaskAssigned, evt.Kind())
	assert.Equal(t, taskID, evt.TaskID())
	assert.Equal(t, userID, evt.UserID())
	assert.Equal(t, assignedBy, evt.AssignedBy())
	assert.False(t, evt.OccurredAt().Before(before))

	payload := evt.Payload()
	assert.Len(t, payload, 3)
	assert.Equal(t, taskID, payload[events.KeyTaskID])
	assert.Equal(t, userID, payload[events.KeyUserID])
	assert.Equal(t, assignedBy, payload[events.KeyAssignedBy])
}

func TestPayloadIsCopy(t *testing.T) {
	taskID := uuid.New()
	evt := events.NewTaskCompleted(taskID, uuid.New(), uuid.New())

	payload := evt.Payload()
	payload[events.KeyTaskID] = "tampered"
	delete(payload, events.KeyProjectID)

	assert.Equal(t, taskID, evt.Payload()[events.KeyTaskID])
	assert.Len(t, evt.Payload(), 3)
}

func TestGet(t *testing.T) {
	projectID, ownerID := uuid.New(), uuid.New()
	evt := events.NewProjectCreated(projectID, "Roadmap", ownerID)

	assert.Equal(t, "Roadmap", evt.Get(events.KeyProjectName, nil))
	assert.Equal(t, ownerID, evt.Get(events.KeyOwnerID, nil))
	assert.Equal(t, "fallback", evt.Get("missing", "fallback"))
	assert.Nil(t, evt.Get("missing", nil))
}

func TestEventKinds(t *testing.T) {
	tests := []struct {
		name     string
		evt      events.Event
		kind     events.Kind
		keyCount int
	}{
		{"project created", events.NewProjectCreated(uuid.New(), "p", uuid.New()), events.KindProjectCreated, 3},
		{"task created", events.NewTaskCreated(uuid.New(), uuid.New(), "t", uuid.New()), events.KindTaskCreated, 4},
		{"task assigned", events.NewTaskAssigned(uuid.New(), uuid.New(), uuid.New()), events.KindTaskAssigned, 3},
		{"task completed", events.NewTaskCompleted(uuid.New(), uuid.New(), uuid.New()), events.KindTaskCompleted, 3},
	}

	kinds := events.Kinds()
	assert.Len(t, kinds, len(tests))

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Contains(t, kinds, tc.kind)
			assert.Equal(t, tc.kind, tc.evt.Kind())
			assert.Len(t, tc.evt.Payload(), tc.keyCount)
			assert.False(t, tc.evt.OccurredAt().IsZero())
		})
	}
}
