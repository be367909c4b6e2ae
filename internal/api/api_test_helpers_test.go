package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/api/middleware"
	"github.com/phrazzld/taskdeck-api/internal/api/shared"
	"github.com/phrazzld/taskdeck-api/internal/events"
	"github.com/phrazzld/taskdeck-api/internal/listeners"
	"github.com/phrazzld/taskdeck-api/internal/mocks"
	"github.com/phrazzld/taskdeck-api/internal/notify"
	"github.com/phrazzld/taskdeck-api/internal/platform/logger"
	"github.com/phrazzld/taskdeck-api/internal/service"
	"github.com/stretchr/testify/require"
)

// testServer wires the real router, services, dispatcher and listeners on top
// of in-memory stores.
type testServer struct {
	router   http.Handler
	projects *mocks.MockProjectStore
	tasks    *mocks.MockTaskStore
	activity *mocks.MockActivityStore
	queue    *notify.Queue
	userID   uuid.UUID
	logBuf   *logger.TestLogBuffer
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	log, buf := logger.GetTestLogger(t)
	s := &testServer{
		projects: mocks.NewMockProjectStore(),
		tasks:    mocks.NewMockTaskStore(),
		activity: mocks.NewMockActivityStore(),
		queue:    notify.NewQueue(16, log),
		userID:   uuid.New(),
		logBuf:   buf,
	}

	d := events.NewDispatcher(log)
	require.NoError(t, listeners.Register(d, listeners.Deps{
		Activity:      s.activity,
		Notifications: s.queue,
		Logger:        log,
	}))

	projectSvc, err := service.NewProjectService(s.projects, d, log)
	require.NoError(t, err)
	taskSvc, err := service.NewTaskService(s.projects, s.tasks, d, log)
	require.NoError(t, err)
	activitySvc, err := service.NewActivityService(s.activity, log)
	require.NoError(t, err)

	authMiddleware := middleware.NewAuthMiddleware(mocks.NewMockJWTServiceForUser(s.userID))

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(logger.WithLogger(r.Context(), log)))
		})
	})
	r.Use(middleware.TraceMiddleware)
	r.Get("/health", HealthCheck)
	Mount(r,
		NewProjectHandler(projectSvc, taskSvc, activitySvc, log),
		NewTaskHandler(taskSvc, activitySvc, log),
		authMiddleware.Authenticate)

	s.router = r
	return s
}

// do sends an authenticated request. body may be nil, a string, or a value
// encoded as JSON.
func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	req := newRequest(t, method, path, body)
	req.Header.Set("Authorization", "Bearer test-token")
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func newRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeResponse[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	return decodeResponse[shared.ErrorResponse](t, rr)
}

func (s *testServer) createProject(t *testing.T) ProjectResponse {
	t.Helper()
	rr := s.do(t, http.MethodPost, "/api/projects", CreateProjectRequest{Name: "Roadmap"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decodeResponse[ProjectResponse](t, rr)
}

func (s *testServer) createTask(t *testing.T, projectID string) TaskResponse {
	t.Helper()
	rr := s.do(t, http.MethodPost, "/api/projects/"+projectID+"/tasks", CreateTaskRequest{Title: "Write docs"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decodeResponse[TaskResponse](t, rr)
}
