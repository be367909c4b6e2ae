package api

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/domain"
)

// CreateProjectRequest defines the payload for POST /api/projects.
type CreateProjectRequest struct {
	Name        string `json:"name"        validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

// CreateTaskRequest defines the payload for POST /api/projects/{id}/tasks.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required,max=500"`
	Description string `json:"description" validate:"max=5000"`
}

// AssignTaskRequest defines the payload for POST /api/tasks/{id}/assign.
type AssignTaskRequest struct {
	AssigneeID string `json:"assignee_id" validate:"required,uuid"`
}

// ProjectResponse is the API representation of a project.
type ProjectResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskResponse is the API representation of a task.
type TaskResponse struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	AssigneeID  *string    `json:"assignee_id"`
	CreatedBy   string     `json:"created_by"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ActivityResponse is the API representation of an activity entry.
type ActivityResponse struct {
	ID         string          `json:"id"`
	EventKind  string          `json:"event_kind"`
	SubjectID  string          `json:"subject_id"`
	ActorID    *string         `json:"actor_id"`
	Payload    json.RawMessage `json:"payload"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

func projectToResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID.String(),
		OwnerID:     p.OwnerID.String(),
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func taskToResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID.String(),
		ProjectID:   t.ProjectID.String(),
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		AssigneeID:  nullableID(t.AssigneeID),
		CreatedBy:   t.CreatedBy.String(),
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskToResponse(t))
	}
	return out
}

func activityToResponse(entries []*domain.ActivityEntry) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ActivityResponse{
			ID:         e.ID.String(),
			EventKind:  e.EventKind,
			SubjectID:  e.SubjectID.String(),
			ActorID:    nullableID(e.ActorID),
			Payload:    e.Payload,
			OccurredAt: e.OccurredAt,
		})
	}
	return out
}

func nullableID(id uuid.NullUUID) *string {
	if !id.Valid {
		return nil
	}
	s := id.UUID.String()
	return &s
}
