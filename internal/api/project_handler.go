package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskdeck-api/internal/api/shared"
	"github.com/phrazzld/taskdeck-api/internal/domain"
	"github.com/phrazzld/taskdeck-api/internal/platform/logger"
	"github.com/phrazzld/taskdeck-api/internal/service"
)

// ProjectHandler handles project-related HTTP requests
type ProjectHandler struct {
	projects service.ProjectService
	tasks    service.TaskService
	activity service.ActivityService
	logger   *slog.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(
	projects service.ProjectService,
	tasks service.TaskService,
	activity service.ActivityService,
	log *slog.Logger,
) *ProjectHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ProjectHandler{
		projects: projects,
		tasks:    tasks,
		activity: activity,
		logger:   log.With(slog.String("component", "project_handler")),
	}
}

// CreateProject handles POST /api/projects
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := shared.GetUserID(r.Context())
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	var req CreateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	project, err := h.projects.CreateProject(r.Context(), userID, req.Name, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create project")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, projectToResponse(project))
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	_, projectID, ok := handleUserIDAndPathUUID(w, r, "id", h.logger)
	if !ok {
		return
	}

	project, err := h.projects.GetProject(r.Context(), projectID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get project")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, projectToResponse(project))
}

// CreateTask handles POST /api/projects/{id}/tasks
func (h *ProjectHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	userID, projectID, ok := handleUserIDAndPathUUID(w, r, "id", h.logger)
	if !ok {
		return
	}

	var req CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	task, err := h.tasks.CreateTask(r.Context(), projectID, userID, req.Title, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create task")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("task created via API",
		slog.String("task_id", task.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// ListTasks handles GET /api/projects/{id}/tasks
func (h *ProjectHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	_, projectID, ok := handleUserIDAndPathUUID(w, r, "id", h.logger)
	if !ok {
		return
	}

	tasks, err := h.tasks.ListTasks(r.Context(), projectID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// ListActivity handles GET /api/projects/{id}/activity
func (h *ProjectHandler) ListActivity(w http.ResponseWriter, r *http.Request) {
	_, projectID, ok := handleUserIDAndPathUUID(w, r, "id", h.logger)
	if !ok {
		return
	}

	limit, err := parseLimit(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if _, err := h.projects.GetProject(r.Context(), projectID); err != nil {
		HandleAPIError(w, r, err, "Failed to get project")
		return
	}

	entries, err := h.activity.ListActivity(r.Context(), projectID, limit)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list activity")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, activityToResponse(entries))
}
