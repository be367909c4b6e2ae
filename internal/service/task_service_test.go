package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/domain"
	"github.com/phrazzld/taskdeck-api/internal/events"
	"github.com/phrazzld/taskdeck-api/internal/mocks"
	"github.com/phrazzld/taskdeck-api/internal/service"
	"github.com/phrazzld/taskdeck-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taskFixture struct {
	project  *domain.Project
	projects *mocks.MockProjectStore
	tasks    *mocks.MockTaskStore
	rec      *eventRecorder
	svc      service.TaskService
}

func newTaskFixture(t *testing.T, seed ...*domain.Task) *taskFixture {
	t.Helper()
	project, err := domain.NewProject(uuid.New(), "Roadmap", "")
	require.NoError(t, err)

	f := &taskFixture{
		project:  project,
		projects: mocks.NewMockProjectStore(project),
		tasks:    mocks.NewMockTaskStore(seed...),
	}
	var d *events.Dispatcher
	d, f.rec = newRecordingDispatcher(events.KindTaskCreated, events.KindTaskAssigned, events.KindTaskCompleted)

	f.svc, err = service.NewTaskService(f.projects, f.tasks, d, nil)
	require.NoError(t, err)
	return f
}

func (f *taskFixture) seedTask(t *testing.T) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(f.project.ID, uuid.New(), "Write docs", "")
	require.NoError(t, err)
	require.NoError(t, f.tasks.Create(context.Background(), task))
	return task
}

func TestNewTaskService(t *testing.T) {
	_, err := service.NewTaskService(nil, mocks.NewMockTaskStore(), &MockEventDispatcher{}, nil)
	assert.Error(t, err)
	_, err = service.NewTaskService(mocks.NewMockProjectStore(), nil, &MockEventDispatcher{}, nil)
	assert.Error(t, err)
	_, err = service.NewTaskService(mocks.NewMockProjectStore(), mocks.NewMockTaskStore(), nil, nil)
	assert.Error(t, err)
}

func TestCreateTask(t *testing.T) {
	f := newTaskFixture(t)
	createdBy := uuid.New()

	task, err := f.svc.CreateTask(context.Background(), f.project.ID, createdBy, "Write docs", "")

	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusTodo, task.Status)

	received := f.rec.received()
	require.Len(t, received, 1)
	created := received[0].(*events.TaskCreated)
	assert.Equal(t, task.ID, created.TaskID())
	assert.Equal(t, f.project.ID, created.ProjectID())
	assert.Equal(t, "Write docs", created.Title())
	assert.Equal(t, createdBy, created.CreatedBy())
}

func TestCreateTaskUnknownProject(t *testing.T) {
	f := newTaskFixture(t)

	_, err := f.svc.CreateTask(context.Background(), uuid.New(), uuid.New(), "Write docs", "")

	assert.ErrorIs(t, err, service.ErrProjectNotFound)
	assert.Zero(t, f.tasks.CreateCalls)
	assert.Empty(t, f.rec.received())
}

func TestCreateTaskProjectRemovedConcurrently(t *testing.T) {
	f := newTaskFixture(t)
	f.tasks.CreateFn = func(context.Context, *domain.Task) error {
		return store.NewStoreError("task", "create", "insert failed", store.ErrForeignKey)
	}

	_, err := f.svc.CreateTask(context.Background(), f.project.ID, uuid.New(), "Write docs", "")

	assert.ErrorIs(t, err, service.ErrProjectNotFound)
}

func TestCreateTaskValidation(t *testing.T) {
	f := newTaskFixture(t)

	_, err := f.svc.CreateTask(context.Background(), f.project.ID, uuid.New(), "", "")

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorIs(t, err, domain.ErrEmptyTaskTitle)
	assert.Empty(t, f.rec.received())
}

func TestAssignTask(t *testing.T) {
	f := newTaskFixture(t)
	seeded := f.seedTask(t)
	assignee, assigner := uuid.New(), uuid.New()

	task, err := f.svc.AssignTask(context.Background(), seeded.ID, assignee, assigner)

	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusInProgress, task.Status)
	assert.Equal(t, assignee, task.AssigneeID.UUID)

	received := f.rec.received()
	require.Len(t, received, 1)
	assigned := received[0].(*events.TaskAssigned)
	assert.Equal(t, seeded.ID, assigned.TaskID())
	assert.Equal(t, assignee, assigned.UserID())
	assert.Equal(t, assigner, assigned.AssignedBy())
	assert.Len(t, assigned.Payload(), 3)
}

func TestAssignTaskErrors(t *testing.T) {
	t.Run("unknown task", func(t *testing.T) {
		f := newTaskFixture(t)
		_, err := f.svc.AssignTask(context.Background(), uuid.New(), uuid.New(), uuid.New())
		assert.ErrorIs(t, err, service.ErrTaskNotFound)
	})

	t.Run("nil assignee", func(t *testing.T) {
		f := newTaskFixture(t)
		seeded := f.seedTask(t)
		_, err := f.svc.AssignTask(context.Background(), seeded.ID, uuid.Nil, uuid.New())
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Empty(t, f.rec.received())
	})

	t.Run("completed task", func(t *testing.T) {
		f := newTaskFixture(t)
		seeded := f.seedTask(t)
		_, err := f.svc.CompleteTask(context.Background(), seeded.ID, uuid.New())
		require.NoError(t, err)

		_, err = f.svc.AssignTask(context.Background(), seeded.ID, uuid.New(), uuid.New())
		assert.ErrorIs(t, err, service.ErrTaskCompleted)
	})

	t.Run("store failure", func(t *testing.T) {
		f := newTaskFixture(t)
		f.tasks.ModifyFn = func(context.Context, uuid.UUID, store.TaskMutator) (*domain.Task, error) {
			return nil, errors.New("connection reset")
		}
		_, err := f.svc.AssignTask(context.Background(), uuid.New(), uuid.New(), uuid.New())

		var serviceErr *service.ServiceError
		require.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, "assign_task", serviceErr.Operation)
		assert.Empty(t, f.rec.received())
	})
}

func TestCompleteTask(t *testing.T) {
	f := newTaskFixture(t)
	seeded := f.seedTask(t)
	completedBy := uuid.New()

	task, err := f.svc.CompleteTask(context.Background(), seeded.ID, completedBy)

	require.NoError(t, err)
	assert.True(t, task.IsCompleted())
	require.NotNil(t, task.CompletedAt)

	received := f.rec.received()
	require.Len(t, received, 1)
	completed := received[0].(*events.TaskCompleted)
	assert.Equal(t, seeded.ID, completed.TaskID())
	assert.Equal(t, f.project.ID, completed.ProjectID())
	assert.Equal(t, completedBy, completed.CompletedBy())

	_, err = f.svc.CompleteTask(context.Background(), seeded.ID, completedBy)
	assert.ErrorIs(t, err, service.ErrTaskCompleted)
	assert.Len(t, f.rec.received(), 1, "a rejected completion dispatches nothing")
}

func TestCompleteTaskDispatchesOnce(t *testing.T) {
	project, err := domain.NewProject(uuid.New(), "Roadmap", "")
	require.NoError(t, err)
	task, err := domain.NewTask(project.ID, uuid.New(), "Write docs", "")
	require.NoError(t, err)

	dispatcher := &MockEventDispatcher{}
	dispatcher.On("Dispatch", mock.Anything, mock.AnythingOfType("*events.TaskCompleted")).Once()

	svc, err := service.NewTaskService(mocks.NewMockProjectStore(project), mocks.NewMockTaskStore(task), dispatcher, nil)
	require.NoError(t, err)

	_, err = svc.CompleteTask(context.Background(), task.ID, uuid.New())

	require.NoError(t, err)
	dispatcher.AssertExpectations(t)
}

func TestGetAndListTasks(t *testing.T) {
	f := newTaskFixture(t)
	first := f.seedTask(t)
	second := f.seedTask(t)

	got, err := f.svc.GetTask(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	_, err = f.svc.GetTask(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrTaskNotFound)

	tasks, err := f.svc.ListTasks(context.Background(), f.project.ID)
	require.NoError(t, err)
	ids := []uuid.UUID{tasks[0].ID, tasks[1].ID}
	assert.ElementsMatch(t, []uuid.UUID{first.ID, second.ID}, ids)

	_, err = f.svc.ListTasks(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrProjectNotFound)
}
