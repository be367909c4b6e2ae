package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/domain"
	"github.com/phrazzld/taskdeck-api/internal/store"
)

// MockProjectStore is an in-memory store.ProjectStore.
type MockProjectStore struct {
	CreateFn  func(ctx context.Context, project *domain.Project) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Project, error)

	mu       sync.Mutex
	projects map[uuid.UUID]domain.Project

	CreateCalls  int
	GetByIDCalls int
}

var _ store.ProjectStore = (*MockProjectStore)(nil)

// NewMockProjectStore creates an empty MockProjectStore seeded with projects.
func NewMockProjectStore(projects ...*domain.Project) *MockProjectStore {
	m := &MockProjectStore{projects: make(map[uuid.UUID]domain.Project)}
	for _, p := range projects {
		m.projects[p.ID] = *p
	}
	return m
}

// Create implements store.ProjectStore.
func (m *MockProjectStore) Create(ctx context.Context, project *domain.Project) error {
	m.mu.Lock()
	m.CreateCalls++
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, project)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.projects[project.ID]; exists {
		return store.ErrDuplicate
	}
	m.projects[project.ID] = *project
	return nil
}

// GetByID implements store.ProjectStore.
func (m *MockProjectStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	m.mu.Lock()
	m.GetByIDCalls++
	m.mu.Unlock()

	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.projects[id]
	if !ok {
		return nil, store.ErrProjectNotFound
	}
	return &p, nil
}
