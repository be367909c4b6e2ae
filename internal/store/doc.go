// Package store defines the persistence contracts for projects, tasks and the
// activity trail, plus the error vocabulary shared by every implementation.
// Services depend on these interfaces; internal/platform/postgres provides the
// production implementations.
package store
