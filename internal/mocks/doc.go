// Package mocks provides shared test doubles for the store and auth
// interfaces.
//
// The store doubles keep their data in memory, so a test can run a whole use
// case against them. Each method can be overridden with a function field, and
// every call is counted for verification:
//
//	tasks := mocks.NewMockTaskStore()
//	tasks.ModifyFn = func(ctx context.Context, id uuid.UUID, fn store.TaskMutator) (*domain.Task, error) {
//	    return nil, errors.New("connection reset")
//	}
package mocks
