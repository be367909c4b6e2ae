// Package service contains the project-management use cases. Each service
// persists through the interfaces in internal/store and, once a change is
// stored, announces it by dispatching an event from internal/events.
//
// Listener outcomes never influence a use case: dispatch has no error path,
// so a stored change is reported as successful even if every listener fails.
package service
