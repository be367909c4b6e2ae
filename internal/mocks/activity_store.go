package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/domain"
	"github.com/phrazzld/taskdeck-api/internal/store"
)

// MockActivityStore is an in-memory store.ActivityStore.
type MockActivityStore struct {
	CreateFn        func(ctx context.Context, entry *domain.ActivityEntry) error
	ListBySubjectFn func(ctx context.Context, subjectID uuid.UUID, limit int) ([]*domain.ActivityEntry, error)

	mu      sync.Mutex
	entries []domain.ActivityEntry

	// LastLimit is the limit passed to the most recent ListBySubject call.
	LastLimit int
}

var _ store.ActivityStore = (*MockActivityStore)(nil)

// NewMockActivityStore creates an empty MockActivityStore.
func NewMockActivityStore() *MockActivityStore {
	return &MockActivityStore{}
}

// Create implements store.ActivityStore.
func (m *MockActivityStore) Create(ctx context.Context, entry *domain.ActivityEntry) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, entry)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, *entry)
	return nil
}

// ListBySubject implements store.ActivityStore. Entries are returned newest
// recorded first.
func (m *MockActivityStore) ListBySubject(
	ctx context.Context,
	subjectID uuid.UUID,
	limit int,
) ([]*domain.ActivityEntry, error) {
	m.mu.Lock()
	m.LastLimit = limit
	m.mu.Unlock()

	if m.ListBySubjectFn != nil {
		return m.ListBySubjectFn(ctx, subjectID, limit)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.ActivityEntry, 0)
	for i := len(m.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if m.entries[i].SubjectID == subjectID {
			e := m.entries[i]
			out = append(out, &e)
		}
	}
	return out, nil
}

// Entries returns a copy of every stored entry in insertion order.
func (m *MockActivityStore) Entries() []domain.ActivityEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.ActivityEntry(nil), m.entries...)
}
