package notify

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Kind identifies what a notification is about.
type Kind string

// Notification kinds.
const (
	KindTaskAssigned Kind = "task_assigned"
)

// Validation errors returned by NewNotification.
var (
	ErrEmptyRecipient = errors.New("notification recipient cannot be empty")
	ErrEmptyKind      = errors.New("notification kind cannot be empty")
	ErrEmptyMessage   = errors.New("notification message cannot be empty")
)

// Notification is a message for a single user.
type Notification struct {
	ID          uuid.UUID
	RecipientID uuid.UUID
	Kind        Kind
	Message     string
	// SubjectID is the project or task the notification refers to.
	SubjectID uuid.UUID
	CreatedAt time.Time
}

// NewNotification creates a validated Notification.
func NewNotification(recipientID uuid.UUID, kind Kind, message string, subjectID uuid.UUID) (*Notification, error) {
	switch {
	case recipientID == uuid.Nil:
		return nil, ErrEmptyRecipient
	case kind == "":
		return nil, ErrEmptyKind
	case message == "":
		return nil, ErrEmptyMessage
	}

	return &Notification{
		ID:          uuid.New(),
		RecipientID: recipientID,
		Kind:        kind,
		Message:     message,
		SubjectID:   subjectID,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
