package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/domain"
	"github.com/phrazzld/taskdeck-api/internal/platform/logger"
	"github.com/phrazzld/taskdeck-api/internal/redact"
	"github.com/phrazzld/taskdeck-api/internal/store"
)

// Activity page size bounds.
const (
	DefaultActivityLimit = 50
	MaxActivityLimit     = 200
)

// ActivityService reads the audit trail written by the audit listener.
type ActivityService interface {
	// ListActivity returns the newest entries for a project or task. A limit
	// outside 1..MaxActivityLimit is replaced by DefaultActivityLimit or
	// MaxActivityLimit.
	ListActivity(ctx context.Context, subjectID uuid.UUID, limit int) ([]*domain.ActivityEntry, error)
}

type activityServiceImpl struct {
	activity store.ActivityStore
	logger   *slog.Logger
}

// NewActivityService creates an ActivityService.
func NewActivityService(activity store.ActivityStore, log *slog.Logger) (ActivityService, error) {
	if activity == nil {
		return nil, &ServiceError{Service: "activity", Operation: "create_service", Message: "activity cannot be nil"}
	}
	if log == nil {
		log = slog.Default()
	}
	return &activityServiceImpl{
		activity: activity,
		logger:   log.With(slog.String("component", "activity_service")),
	}, nil
}

// ClampActivityLimit normalizes a requested page size.
func ClampActivityLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultActivityLimit
	case limit > MaxActivityLimit:
		return MaxActivityLimit
	default:
		return limit
	}
}

// ListActivity implements ActivityService.ListActivity.
func (s *activityServiceImpl) ListActivity(
	ctx context.Context,
	subjectID uuid.UUID,
	limit int,
) ([]*domain.ActivityEntry, error) {
	entries, err := s.activity.ListBySubject(ctx, subjectID, ClampActivityLimit(limit))
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list activity",
			slog.String("error", redact.Error(err)),
			slog.String("subject_id", subjectID.String()))
		return nil, newServiceError("activity", "list_activity", "failed to list activity", err)
	}
	return entries, nil
}
