package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewActivityEntry(t *testing.T) {
	t.Parallel()
	subjectID, actorID := uuid.New(), uuid.New()
	occurredAt := time.Now().Add(-time.Minute)

	entry, err := NewActivityEntry("task.assigned", subjectID, actorID,
		json.RawMessage(`{"task_id":"x"}`), occurredAt)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if entry.ID == uuid.Nil {
		t.Error("Expected non-nil ID")
	}

	if !entry.ActorID.Valid || entry.ActorID.UUID != actorID {
		t.Errorf("Expected actor %s, got %+v", actorID, entry.ActorID)
	}

	if !entry.OccurredAt.Equal(occurredAt) {
		t.Errorf("Expected OccurredAt %v, got %v", occurredAt, entry.OccurredAt)
	}

	if entry.RecordedAt.Before(entry.OccurredAt) {
		t.Error("Expected RecordedAt after OccurredAt")
	}
}

func TestNewActivityEntryWithoutActor(t *testing.T) {
	t.Parallel()

	entry, err := NewActivityEntry("project.created", uuid.New(), uuid.Nil,
		json.RawMessage(`{}`), time.Now())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if entry.ActorID.Valid {
		t.Error("Expected NULL actor")
	}
}

func TestActivityEntryValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		kind    string
		subject uuid.UUID
		payload string
		wantErr error
	}{
		{"empty kind", "", uuid.New(), `{}`, ErrEmptyActivityKind},
		{"nil subject", "task.created", uuid.Nil, `{}`, ErrEmptyActivitySubject},
		{"empty payload", "task.created", uuid.New(), ``, ErrInvalidActivityData},
		{"array payload", "task.created", uuid.New(), `[1,2]`, ErrInvalidActivityData},
		{"null payload", "task.created", uuid.New(), `null`, ErrInvalidActivityData},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewActivityEntry(tc.kind, tc.subject, uuid.New(), json.RawMessage(tc.payload), time.Now())
			if err != tc.wantErr {
				t.Errorf("Expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}
