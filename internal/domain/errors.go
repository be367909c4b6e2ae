// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)

// Project validation errors.
var (
	ErrEmptyProjectID      = errors.New("project ID cannot be empty")
	ErrEmptyProjectOwnerID = errors.New("project owner ID cannot be empty")
	ErrEmptyProjectName    = errors.New("project name cannot be empty")
	ErrProjectNameTooLong  = errors.New("project name is too long")
)

// Task validation and state errors.
var (
	ErrEmptyTaskID          = errors.New("task ID cannot be empty")
	ErrEmptyTaskProjectID   = errors.New("task project ID cannot be empty")
	ErrEmptyTaskCreatedBy   = errors.New("task creator ID cannot be empty")
	ErrEmptyTaskTitle       = errors.New("task title cannot be empty")
	ErrTaskTitleTooLong     = errors.New("task title is too long")
	ErrInvalidTaskStatus    = errors.New("invalid task status")
	ErrEmptyAssigneeID      = errors.New("assignee ID cannot be empty")
	ErrTaskAlreadyCompleted = errors.New("task is already completed")
)

// Activity validation errors.
var (
	ErrEmptyActivityKind    = errors.New("activity event kind cannot be empty")
	ErrEmptyActivitySubject = errors.New("activity subject ID cannot be empty")
	ErrInvalidActivityData  = errors.New("activity payload must be a JSON object")
)
