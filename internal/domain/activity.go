package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ActivityEntry is one row of the audit trail. It records that an event of
// EventKind happened to SubjectID (a project or task), caused by ActorID.
type ActivityEntry struct {
	ID         uuid.UUID       `json:"id"`
	EventKind  string          `json:"event_kind"`
	SubjectID  uuid.UUID       `json:"subject_id"`
	ActorID    uuid.NullUUID   `json:"actor_id"`
	Payload    json.RawMessage `json:"payload"`
	OccurredAt time.Time       `json:"occurred_at"`
	RecordedAt time.Time       `json:"recorded_at"`
}

// NewActivityEntry creates a validated ActivityEntry. A nil actorID is
// stored as NULL. payload must encode a JSON object.
func NewActivityEntry(
	eventKind string,
	subjectID, actorID uuid.UUID,
	payload json.RawMessage,
	occurredAt time.Time,
) (*ActivityEntry, error) {
	entry := &ActivityEntry{
		ID:         uuid.New(),
		EventKind:  eventKind,
		SubjectID:  subjectID,
		ActorID:    uuid.NullUUID{UUID: actorID, Valid: actorID != uuid.Nil},
		Payload:    payload,
		OccurredAt: occurredAt.UTC(),
		RecordedAt: time.Now().UTC(),
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate checks if the ActivityEntry has valid data.
func (a *ActivityEntry) Validate() error {
	if a.EventKind == "" {
		return ErrEmptyActivityKind
	}

	if a.SubjectID == uuid.Nil {
		return ErrEmptyActivitySubject
	}

	var obj map[string]json.RawMessage
	if len(a.Payload) == 0 || json.Unmarshal(a.Payload, &obj) != nil || obj == nil {
		return ErrInvalidActivityData
	}

	return nil
}
