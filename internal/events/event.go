package events

import (
	"time"

	"github.com/google/uuid"
)

// Kind identifies a concrete event type.
type Kind string

// Event kinds fired by the domain services.
const (
	KindProjectCreated Kind = "project.created"
	KindTaskCreated    Kind = "task.created"
	KindTaskAssigned   Kind = "task.assigned"
	KindTaskCompleted  Kind = "task.completed"
)

// Kinds returns every kind fired by the domain services.
func Kinds() []Kind {
	return []Kind{KindProjectCreated, KindTaskCreated, KindTaskAssigned, KindTaskCompleted}
}

// Payload keys populated by the concrete event kinds.
const (
	KeyProjectID   = "project_id"
	KeyProjectName = "project_name"
	KeyOwnerID     = "owner_id"
	KeyTaskID      = "task_id"
	KeyTitle       = "title"
	KeyCreatedBy   = "created_by"
	KeyUserID      = "user_id"
	KeyAssignedBy  = "assigned_by"
	KeyCompletedBy = "completed_by"
)

// Event is an immutable record of a completed domain action.
//
// The set of implementations is closed: only the concrete kinds in this package
// satisfy the interface, and each of them is created exclusively through its
// constructor.
type Event interface {
	// Kind returns the discriminator of the concrete event.
	Kind() Kind

	// OccurredAt returns the time the event was constructed.
	OccurredAt() time.Time

	// Payload returns a fresh copy of the event data keyed by field name.
	Payload() map[string]any

	// Get returns the payload value stored under key, or def if absent.
	Get(key string, def any) any

	sealed()
}

// base carries the fields shared by every concrete kind.
type base struct {
	kind       Kind
	occurredAt time.Time
}

func newBase(kind Kind) base {
	return base{kind: kind, occurredAt: time.Now().UTC()}
}

func (b base) Kind() Kind            { return b.kind }
func (b base) OccurredAt() time.Time { return b.occurredAt }
func (b base) sealed()               {}

// lookup implements Event.Get over a payload map.
func lookup(payload map[string]any, key string, def any) any {
	if v, ok := payload[key]; ok {
		return v
	}
	return def
}

// ProjectCreated is fired after a project has been persisted.
type ProjectCreated struct {
	base
	projectID   uuid.UUID
	projectName string
	ownerID     uuid.UUID
}

// NewProjectCreated creates a ProjectCreated event.
func NewProjectCreated(projectID uuid.UUID, projectName string, ownerID uuid.UUID) *ProjectCreated {
	return &ProjectCreated{
		base:        newBase(KindProjectCreated),
		projectID:   projectID,
		projectName: projectName,
		ownerID:     ownerID,
	}
}

func (e *ProjectCreated) ProjectID() uuid.UUID { return e.projectID }
func (e *ProjectCreated) ProjectName() string  { return e.projectName }
func (e *ProjectCreated) OwnerID() uuid.UUID   { return e.ownerID }

// Payload implements Event.
func (e *ProjectCreated) Payload() map[string]any {
	return map[string]any{
		KeyProjectID:   e.projectID,
		KeyProjectName: e.projectName,
		KeyOwnerID:     e.ownerID,
	}
}

// Get implements Event.
func (e *ProjectCreated) Get(key string, def any) any { return lookup(e.Payload(), key, def) }

// TaskCreated is fired after a task has been added to a project.
type TaskCreated struct {
	base
	taskID    uuid.UUID
	projectID uuid.UUID
	title     string
	createdBy uuid.UUID
}

// NewTaskCreated creates a TaskCreated event.
func NewTaskCreated(taskID, projectID uuid.UUID, title string, createdBy uuid.UUID) *TaskCreated {
	return &TaskCreated{
		base:      newBase(KindTaskCreated),
		taskID:    taskID,
		projectID: projectID,
		title:     title,
		createdBy: createdBy,
	}
}

func (e *TaskCreated) TaskID() uuid.UUID    { return e.taskID }
func (e *TaskCreated) ProjectID() uuid.UUID { return e.projectID }
func (e *TaskCreated) Title() string        { return e.title }
func (e *TaskCreated) CreatedBy() uuid.UUID { return e.createdBy }

// Payload implements Event.
func (e *TaskCreated) Payload() map[string]any {
	return map[string]any{
		KeyTaskID:    e.taskID,
		KeyProjectID: e.projectID,
		KeyTitle:     e.title,
		KeyCreatedBy: e.createdBy,
	}
}

// Get implements Event.
func (e *TaskCreated) Get(key string, def any) any { return lookup(e.Payload(), key, def) }

// TaskAssigned is fired after a task has been assigned to a user.
type TaskAssigned struct {
	base
	taskID     uuid.UUID
	userID     uuid.UUID
	assignedBy uuid.UUID
}

// NewTaskAssigned creates a TaskAssigned event for userID, assigned by assignedBy.
func NewTaskAssigned(taskID, userID, assignedBy uuid.UUID) *TaskAssigned {
	return &TaskAssigned{
		base:       newBase(KindTaskAssigned),
		taskID:     taskID,
		userID:     userID,
		assignedBy: assignedBy,
	}
}

func (e *TaskAssigned) TaskID() uuid.UUID     { return e.taskID }
func (e *TaskAssigned) UserID() uuid.UUID     { return e.userID }
func (e *TaskAssigned) AssignedBy() uuid.UUID { return e.assignedBy }

// Payload implements Event.
func (e *TaskAssigned) Payload() map[string]any {
	return map[string]any{
		KeyTaskID:     e.taskID,
		KeyUserID:     e.userID,
		KeyAssignedBy: e.assignedBy,
	}
}

// Get implements Event.
func (e *TaskAssigned) Get(key string, def any) any { return lookup(e.Payload(), key, def) }

// TaskCompleted is fired after a task has been marked done.
type TaskCompleted struct {
	base
	taskID      uuid.UUID
	projectID   uuid.UUID
	completedBy uuid.UUID
}

// NewTaskCompleted creates a TaskCompleted event.
func NewTaskCompleted(taskID, projectID, completedBy uuid.UUID) *TaskCompleted {
	return &TaskCompleted{
		base:        newBase(KindTaskCompleted),
		taskID:      taskID,
		projectID:   projectID,
		completedBy: completedBy,
	}
}

func (e *TaskCompleted) TaskID() uuid.UUID      { return e.taskID }
func (e *TaskCompleted) ProjectID() uuid.UUID   { return e.projectID }
func (e *TaskCompleted) CompletedBy() uuid.UUID { return e.completedBy }

// Payload implements Event.
func (e *TaskCompleted) Payload() map[string]any {
	return map[string]any{
		KeyTaskID:      e.taskID,
		KeyProjectID:   e.projectID,
		KeyCompletedBy: e.completedBy,
	}
}

// Get implements Event.
func (e *TaskCompleted) Get(key string, def any) any { return lookup(e.Payload(), key, def) }

// Compile-time checks that every concrete kind is an Event.
var (
	_ Event = (*ProjectCreated)(nil)
	_ Event = (*TaskCreated)(nil)
	_ Event = (*TaskAssigned)(nil)
	_ Event = (*TaskCompleted)(nil)
)

