package domain

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// TaskStatus represents the progress of a task.
type TaskStatus string

// Possible task status values.
const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// MaxTaskTitleLength bounds Task.Title in runes.
const MaxTaskTitleLength = 500

// Task is a unit of work inside a project.
type Task struct {
	ID          uuid.UUID     `json:"id"`
	ProjectID   uuid.UUID     `json:"project_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      TaskStatus    `json:"status"`
	AssigneeID  uuid.NullUUID `json:"assignee_id"`
	CreatedBy   uuid.UUID     `json:"created_by"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// NewTask creates a validated, unassigned Task in the todo state.
func NewTask(projectID, createdBy uuid.UUID, title, description string) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		ProjectID:   projectID,
		Title:       title,
		Description: description,
		Status:      TaskStatusTodo,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}

	if t.ProjectID == uuid.Nil {
		return ErrEmptyTaskProjectID
	}

	if t.CreatedBy == uuid.Nil {
		return ErrEmptyTaskCreatedBy
	}

	if t.Title == "" {
		return ErrEmptyTaskTitle
	}

	if utf8.RuneCountInString(t.Title) > MaxTaskTitleLength {
		return ErrTaskTitleTooLong
	}

	if !isValidTaskStatus(t.Status) {
		return ErrInvalidTaskStatus
	}

	return nil
}

// Assign hands the task to userID. A todo task moves to in_progress;
// reassigning an in-progress task keeps its status. Completed tasks cannot be
// reassigned.
func (t *Task) Assign(userID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrEmptyAssigneeID
	}

	if t.Status == TaskStatusDone {
		return ErrTaskAlreadyCompleted
	}

	t.AssigneeID = uuid.NullUUID{UUID: userID, Valid: true}
	if t.Status == TaskStatusTodo {
		t.Status = TaskStatusInProgress
	}
	t.UpdatedAt = time.Now().UTC()
	return nil
}

// Complete marks the task done at now.
func (t *Task) Complete(now time.Time) error {
	if t.Status == TaskStatusDone {
		return ErrTaskAlreadyCompleted
	}

	completedAt := now.UTC()
	t.Status = TaskStatusDone
	t.CompletedAt = &completedAt
	t.UpdatedAt = completedAt
	return nil
}

// IsCompleted reports whether the task is done.
func (t *Task) IsCompleted() bool {
	return t.Status == TaskStatusDone
}

// isValidTaskStatus checks if the given status is a valid TaskStatus.
func isValidTaskStatus(status TaskStatus) bool {
	switch status {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	default:
		return false
	}
}
