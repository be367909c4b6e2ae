package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/taskdeck-api/internal/api"
	apiMiddleware "github.com/phrazzld/taskdeck-api/internal/api/middleware"
	"github.com/phrazzld/taskdeck-api/internal/platform/logger"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(logger.WithLogger(r.Context(), app.logger)))
		})
	})
	r.Use(apiMiddleware.TraceMiddleware)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)
	projectHandler := api.NewProjectHandler(app.projectService, app.taskService, app.activityService, app.logger)
	taskHandler := api.NewTaskHandler(app.taskService, app.activityService, app.logger)

	api.Mount(r, projectHandler, taskHandler, authMiddleware.Authenticate)

	r.Get("/health", api.HealthCheck)

	return r
}
