// Package domain contains the project-management entities (projects, tasks
// and the activity trail) together with their validation rules and state
// transitions. It has no knowledge of storage, transport or event delivery.
package domain
