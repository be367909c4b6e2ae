package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/domain"
	"github.com/phrazzld/taskdeck-api/internal/events"
	"github.com/phrazzld/taskdeck-api/internal/platform/logger"
	"github.com/phrazzld/taskdeck-api/internal/redact"
	"github.com/phrazzld/taskdeck-api/internal/store"
)

// TaskService provides task operations. Every state change is stored first
// and then dispatched as an event.
type TaskService interface {
	// CreateTask adds a task to an existing project and dispatches task.created.
	CreateTask(ctx context.Context, projectID, createdBy uuid.UUID, title, description string) (*domain.Task, error)

	// AssignTask assigns the task to assigneeID and dispatches task.assigned.
	AssignTask(ctx context.Context, taskID, assigneeID, assignedBy uuid.UUID) (*domain.Task, error)

	// CompleteTask marks the task done and dispatches task.completed.
	// Completing a task twice returns ErrTaskCompleted.
	CompleteTask(ctx context.Context, taskID, completedBy uuid.UUID) (*domain.Task, error)

	// GetTask retrieves a task by ID.
	GetTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error)

	// ListTasks returns the tasks of an existing project.
	ListTasks(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error)
}

type taskServiceImpl struct {
	projects   store.ProjectStore
	tasks      store.TaskStore
	dispatcher EventDispatcher
	logger     *slog.Logger
	now        func() time.Time
}

// NewTaskService creates a TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(
	projects store.ProjectStore,
	tasks store.TaskStore,
	dispatcher EventDispatcher,
	log *slog.Logger,
) (TaskService, error) {
	if projects == nil {
		return nil, &ServiceError{Service: "task", Operation: "create_service", Message: "projects cannot be nil"}
	}
	if tasks == nil {
		return nil, &ServiceError{Service: "task", Operation: "create_service", Message: "tasks cannot be nil"}
	}
	if dispatcher == nil {
		return nil, &ServiceError{Service: "task", Operation: "create_service", Message: "dispatcher cannot be nil"}
	}
	if log == nil {
		log = slog.Default()
	}

	return &taskServiceImpl{
		projects:   projects,
		tasks:      tasks,
		dispatcher: dispatcher,
		logger:     log.With(slog.String("component", "task_service")),
		now:        time.Now,
	}, nil
}

// CreateTask implements TaskService.CreateTask.
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	projectID, createdBy uuid.UUID,
	title, description string,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, newServiceError("task", "create_task", "failed to load project", err)
	}

	task, err := domain.NewTask(projectID, createdBy, title, description)
	if err != nil {
		return nil, validationError(err)
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		if errors.Is(err, store.ErrForeignKey) {
			// Project deleted between the lookup and the insert.
			return nil, ErrProjectNotFound
		}
		log.Error("failed to create task",
			slog.String("error", redact.Error(err)),
			slog.String("project_id", projectID.String()))
		return nil, newServiceError("task", "create_task", "failed to save task", err)
	}

	s.dispatcher.Dispatch(ctx, events.NewTaskCreated(task.ID, task.ProjectID, task.Title, task.CreatedBy))

	log.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("project_id", projectID.String()))
	return task, nil
}

// AssignTask implements TaskService.AssignTask.
func (s *taskServiceImpl) AssignTask(
	ctx context.Context,
	taskID, assigneeID, assignedBy uuid.UUID,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.tasks.Modify(ctx, taskID, func(t *domain.Task) error {
		return t.Assign(assigneeID)
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmptyAssigneeID) {
			return nil, validationError(err)
		}
		return nil, s.operationError(log, "assign_task", "failed to assign task", taskID, err)
	}

	s.dispatcher.Dispatch(ctx, events.NewTaskAssigned(task.ID, assigneeID, assignedBy))

	log.Info("task assigned",
		slog.String("task_id", task.ID.String()),
		slog.String("assignee_id", assigneeID.String()))
	return task, nil
}

// CompleteTask implements TaskService.CompleteTask.
func (s *taskServiceImpl) CompleteTask(
	ctx context.Context,
	taskID, completedBy uuid.UUID,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.tasks.Modify(ctx, taskID, func(t *domain.Task) error {
		return t.Complete(s.now())
	})
	if err != nil {
		return nil, s.operationError(log, "complete_task", "failed to complete task", taskID, err)
	}

	s.dispatcher.Dispatch(ctx, events.NewTaskCompleted(task.ID, task.ProjectID, completedBy))

	log.Info("task completed",
		slog.String("task_id", task.ID.String()),
		slog.String("completed_by", completedBy.String()))
	return task, nil
}

// GetTask implements TaskService.GetTask.
func (s *taskServiceImpl) GetTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		log := logger.FromContextOrDefault(ctx, s.logger)
		return nil, s.operationError(log, "get_task", "failed to retrieve task", taskID, err)
	}
	return task, nil
}

// ListTasks implements TaskService.ListTasks.
func (s *taskServiceImpl) ListTasks(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, newServiceError("task", "list_tasks", "failed to load project", err)
	}

	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list tasks",
			slog.String("error", redact.Error(err)),
			slog.String("project_id", projectID.String()))
		return nil, newServiceError("task", "list_tasks", "failed to list tasks", err)
	}
	return tasks, nil
}

// operationError logs unexpected failures and converts err for the caller.
func (s *taskServiceImpl) operationError(
	log *slog.Logger,
	operation, message string,
	taskID uuid.UUID,
	err error,
) error {
	mapped := newServiceError("task", operation, message, err)

	var serviceErr *ServiceError
	if errors.As(mapped, &serviceErr) {
		log.Error(message,
			slog.String("error", redact.Error(err)),
			slog.String("task_id", taskID.String()))
	}
	return mapped
}
