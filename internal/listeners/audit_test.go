package listeners

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/domain"
	"github.com/phrazzld/taskdeck-api/internal/events"
	"github.com/phrazzld/taskdeck-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditListener(t *testing.T) {
	projectID, taskID, actorID := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name      string
		evt       events.Event
		subjectID uuid.UUID
	}{
		{"project created", events.NewProjectCreated(projectID, "Roadmap", actorID), projectID},
		{"task created", events.NewTaskCreated(taskID, projectID, "Write docs", actorID), taskID},
		{"task assigned", events.NewTaskAssigned(taskID, uuid.New(), actorID), taskID},
		{"task completed", events.NewTaskCompleted(taskID, projectID, actorID), taskID},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			activity := mocks.NewMockActivityStore()
			audit, err := NewAuditListener(activity, nil)
			require.NoError(t, err)

			require.NoError(t, audit.Handle(context.Background(), tc.evt))

			entries := activity.Entries()
			require.Len(t, entries, 1)
			entry := entries[0]
			assert.Equal(t, string(tc.evt.Kind()), entry.EventKind)
			assert.Equal(t, tc.subjectID, entry.SubjectID)
			assert.Equal(t, uuid.NullUUID{UUID: actorID, Valid: true}, entry.ActorID)
			assert.True(t, tc.evt.OccurredAt().Equal(entry.OccurredAt))

			var payload map[string]any
			require.NoError(t, json.Unmarshal(entry.Payload, &payload))
			assert.Len(t, payload, len(tc.evt.Payload()))
			for key, value := range tc.evt.Payload() {
				assert.Equal(t, valueString(value), payload[key], key)
			}
		})
	}
}

func valueString(v any) any {
	if id, ok := v.(uuid.UUID); ok {
		return id.String()
	}
	return v
}

func TestAuditListenerStoreFailure(t *testing.T) {
	activity := mocks.NewMockActivityStore()
	activity.CreateFn = func(context.Context, *domain.ActivityEntry) error {
		return errors.New("connection reset")
	}
	audit, err := NewAuditListener(activity, nil)
	require.NoError(t, err)

	err = audit.Handle(context.Background(), events.NewTaskCompleted(uuid.New(), uuid.New(), uuid.New()))

	assert.ErrorContains(t, err, "failed to record task.completed")
}

func TestNewAuditListenerRequiresStore(t *testing.T) {
	_, err := NewAuditListener(nil, nil)
	assert.Error(t, err)
}
