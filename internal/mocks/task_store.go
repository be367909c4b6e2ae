package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/domain"
	"github.com/phrazzld/taskdeck-api/internal/store"
)

// MockTaskStore is an in-memory store.TaskStore. Stored tasks are copied on
// the way in and out.
type MockTaskStore struct {
	CreateFn        func(ctx context.Context, task *domain.Task) error
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	UpdateFn        func(ctx context.Context, task *domain.Task) error
	ModifyFn        func(ctx context.Context, id uuid.UUID, fn store.TaskMutator) (*domain.Task, error)
	ListByProjectFn func(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error)

	mu    sync.Mutex
	tasks map[uuid.UUID]domain.Task

	CreateCalls int
	ModifyCalls int
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore creates a MockTaskStore seeded with tasks.
func NewMockTaskStore(tasks ...*domain.Task) *MockTaskStore {
	m := &MockTaskStore{tasks: make(map[uuid.UUID]domain.Task)}
	for _, t := range tasks {
		m.tasks[t.ID] = *t
	}
	return m
}

// Create implements store.TaskStore.
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	m.mu.Lock()
	m.CreateCalls++
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.tasks[task.ID]; exists {
		return store.ErrDuplicate
	}
	m.tasks[task.ID] = *task
	return nil
}

// GetByID implements store.TaskStore.
func (m *MockTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return &t, nil
}

// Update implements store.TaskStore.
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tasks[task.ID]; !ok {
		return store.ErrTaskNotFound
	}
	m.tasks[task.ID] = *task
	return nil
}

// Modify implements store.TaskStore. The mutation is applied to a copy and
// saved only when fn succeeds.
func (m *MockTaskStore) Modify(ctx context.Context, id uuid.UUID, fn store.TaskMutator) (*domain.Task, error) {
	m.mu.Lock()
	m.ModifyCalls++
	m.mu.Unlock()

	if m.ModifyFn != nil {
		return m.ModifyFn(ctx, id, fn)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	if err := fn(&t); err != nil {
		return nil, err
	}
	m.tasks[id] = t
	out := t
	return &out, nil
}

// ListByProject implements store.TaskStore.
func (m *MockTaskStore) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error) {
	if m.ListByProjectFn != nil {
		return m.ListByProjectFn(ctx, projectID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Task, 0)
	for _, t := range m.tasks {
		if t.ProjectID == projectID {
			task := t
			out = append(out, &task)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
