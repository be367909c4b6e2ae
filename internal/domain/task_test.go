package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestTask(t *testing.T) *Task {
	t.Helper()
	task, err := NewTask(uuid.New(), uuid.New(), "Write release notes", "")
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}
	return task
}

func TestNewTask(t *testing.T) {
	t.Parallel()
	projectID, createdBy := uuid.New(), uuid.New()

	task, err := NewTask(projectID, createdBy, "Write release notes", "for v1.2")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.Status != TaskStatusTodo {
		t.Errorf("Expected status %s, got %s", TaskStatusTodo, task.Status)
	}

	if task.AssigneeID.Valid {
		t.Error("Expected new task to be unassigned")
	}

	if task.CompletedAt != nil {
		t.Error("Expected nil CompletedAt")
	}

	if task.ProjectID != projectID || task.CreatedBy != createdBy {
		t.Error("Expected project and creator to be set")
	}

	if _, err := NewTask(uuid.Nil, createdBy, "x", ""); err != ErrEmptyTaskProjectID {
		t.Errorf("Expected %v, got %v", ErrEmptyTaskProjectID, err)
	}

	if _, err := NewTask(projectID, uuid.Nil, "x", ""); err != ErrEmptyTaskCreatedBy {
		t.Errorf("Expected %v, got %v", ErrEmptyTaskCreatedBy, err)
	}

	if _, err := NewTask(projectID, createdBy, "", ""); err != ErrEmptyTaskTitle {
		t.Errorf("Expected %v, got %v", ErrEmptyTaskTitle, err)
	}
}

func TestTaskValidateStatus(t *testing.T) {
	t.Parallel()
	task := newTestTask(t)
	task.Status = "blocked"

	if err := task.Validate(); err != ErrInvalidTaskStatus {
		t.Errorf("Expected %v, got %v", ErrInvalidTaskStatus, err)
	}
}

func TestTaskAssign(t *testing.T) {
	t.Parallel()

	t.Run("todo moves to in progress", func(t *testing.T) {
		task := newTestTask(t)
		userID := uuid.New()

		if err := task.Assign(userID); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if !task.AssigneeID.Valid || task.AssigneeID.UUID != userID {
			t.Errorf("Expected assignee %s, got %+v", userID, task.AssigneeID)
		}
		if task.Status != TaskStatusInProgress {
			t.Errorf("Expected status %s, got %s", TaskStatusInProgress, task.Status)
		}
	})

	t.Run("reassign keeps status", func(t *testing.T) {
		task := newTestTask(t)
		_ = task.Assign(uuid.New())
		other := uuid.New()

		if err := task.Assign(other); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if task.AssigneeID.UUID != other || task.Status != TaskStatusInProgress {
			t.Errorf("Unexpected state after reassign: %+v", task)
		}
	})

	t.Run("nil user", func(t *testing.T) {
		task := newTestTask(t)
		if err := task.Assign(uuid.Nil); err != ErrEmptyAssigneeID {
			t.Errorf("Expected %v, got %v", ErrEmptyAssigneeID, err)
		}
	})

	t.Run("completed task", func(t *testing.T) {
		task := newTestTask(t)
		_ = task.Complete(time.Now())
		if err := task.Assign(uuid.New()); !errors.Is(err, ErrTaskAlreadyCompleted) {
			t.Errorf("Expected %v, got %v", ErrTaskAlreadyCompleted, err)
		}
	})
}

func TestTaskComplete(t *testing.T) {
	t.Parallel()
	task := newTestTask(t)
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.FixedZone("CET", 3600))

	if err := task.Complete(now); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !task.IsCompleted() {
		t.Error("Expected task to be completed")
	}

	if task.CompletedAt == nil || !task.CompletedAt.Equal(now) {
		t.Errorf("Expected CompletedAt %v, got %v", now, task.CompletedAt)
	}

	if task.CompletedAt.Location() != time.UTC {
		t.Error("Expected CompletedAt in UTC")
	}

	if err := task.Complete(now.Add(time.Hour)); err != ErrTaskAlreadyCompleted {
		t.Errorf("Expected %v, got %v", ErrTaskAlreadyCompleted, err)
	}

	if !task.CompletedAt.Equal(now) {
		t.Error("Second Complete must not move CompletedAt")
	}
}
