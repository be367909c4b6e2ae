package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/domain"
	"github.com/phrazzld/taskdeck-api/internal/events"
	"github.com/phrazzld/taskdeck-api/internal/platform/logger"
	"github.com/phrazzld/taskdeck-api/internal/redact"
	"github.com/phrazzld/taskdeck-api/internal/store"
)

// ProjectService provides project operations.
type ProjectService interface {
	// CreateProject stores a new project owned by ownerID and dispatches
	// project.created.
	CreateProject(ctx context.Context, ownerID uuid.UUID, name, description string) (*domain.Project, error)

	// GetProject retrieves a project by ID.
	GetProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error)
}

type projectServiceImpl struct {
	projects   store.ProjectStore
	dispatcher EventDispatcher
	logger     *slog.Logger
}

// NewProjectService creates a ProjectService.
// It returns an error if any of the required dependencies are nil.
func NewProjectService(
	projects store.ProjectStore,
	dispatcher EventDispatcher,
	log *slog.Logger,
) (ProjectService, error) {
	if projects == nil {
		return nil, &ServiceError{Service: "project", Operation: "create_service", Message: "projects cannot be nil"}
	}
	if dispatcher == nil {
		return nil, &ServiceError{Service: "project", Operation: "create_service", Message: "dispatcher cannot be nil"}
	}
	if log == nil {
		log = slog.Default()
	}

	return &projectServiceImpl{
		projects:   projects,
		dispatcher: dispatcher,
		logger:     log.With(slog.String("component", "project_service")),
	}, nil
}

// CreateProject implements ProjectService.CreateProject.
func (s *projectServiceImpl) CreateProject(
	ctx context.Context,
	ownerID uuid.UUID,
	name, description string,
) (*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	project, err := domain.NewProject(ownerID, name, description)
	if err != nil {
		log.Debug("project validation failed", slog.String("error", redact.Error(err)))
		return nil, validationError(err)
	}

	if err := s.projects.Create(ctx, project); err != nil {
		log.Error("failed to create project",
			slog.String("error", redact.Error(err)),
			slog.String("owner_id", ownerID.String()))
		return nil, newServiceError("project", "create_project", "failed to save project", err)
	}

	s.dispatcher.Dispatch(ctx, events.NewProjectCreated(project.ID, project.Name, project.OwnerID))

	log.Info("project created",
		slog.String("project_id", project.ID.String()),
		slog.String("owner_id", ownerID.String()))
	return project, nil
}

// GetProject implements ProjectService.GetProject.
func (s *projectServiceImpl) GetProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to retrieve project",
				slog.String("error", redact.Error(err)),
				slog.String("project_id", projectID.String()))
		}
		return nil, newServiceError("project", "get_project", "failed to retrieve project", err)
	}
	return project, nil
}
