package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/api/shared"
	"github.com/phrazzld/taskdeck-api/internal/service"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	tasks    service.TaskService
	activity service.ActivityService
	logger   *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(tasks service.TaskService, activity service.ActivityService, log *slog.Logger) *TaskHandler {
	if log == nil {
		log = slog.Default()
	}
	return &TaskHandler{
		tasks:    tasks,
		activity: activity,
		logger:   log.With(slog.String("component", "task_handler")),
	}
}

// GetTask handles GET /api/tasks/{id}
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	_, taskID, ok := handleUserIDAndPathUUID(w, r, "id", h.logger)
	if !ok {
		return
	}

	task, err := h.tasks.GetTask(r.Context(), taskID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// AssignTask handles POST /api/tasks/{id}/assign
func (h *TaskHandler) AssignTask(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := handleUserIDAndPathUUID(w, r, "id", h.logger)
	if !ok {
		return
	}

	var req AssignTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	// Format already checked by the uuid validation tag.
	assigneeID := uuid.MustParse(req.AssigneeID)

	task, err := h.tasks.AssignTask(r.Context(), taskID, assigneeID, userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to assign task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// CompleteTask handles POST /api/tasks/{id}/complete
func (h *TaskHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	userID, taskID, ok := handleUserIDAndPathUUID(w, r, "id", h.logger)
	if !ok {
		return
	}

	task, err := h.tasks.CompleteTask(r.Context(), taskID, userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to complete task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// ListActivity handles GET /api/tasks/{id}/activity
func (h *TaskHandler) ListActivity(w http.ResponseWriter, r *http.Request) {
	_, taskID, ok := handleUserIDAndPathUUID(w, r, "id", h.logger)
	if !ok {
		return
	}

	limit, err := parseLimit(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if _, err := h.tasks.GetTask(r.Context(), taskID); err != nil {
		HandleAPIError(w, r, err, "Failed to get task")
		return
	}

	entries, err := h.activity.ListActivity(r.Context(), taskID, limit)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list activity")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, activityToResponse(entries))
}
