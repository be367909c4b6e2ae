package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskdeck-api/internal/config"
	"github.com/phrazzld/taskdeck-api/internal/events"
	"github.com/phrazzld/taskdeck-api/internal/listeners"
	"github.com/phrazzld/taskdeck-api/internal/notify"
	"github.com/phrazzld/taskdeck-api/internal/platform/postgres"
	"github.com/phrazzld/taskdeck-api/internal/platform/telemetry"
	"github.com/phrazzld/taskdeck-api/internal/service"
	"github.com/phrazzld/taskdeck-api/internal/service/auth"
	"github.com/phrazzld/taskdeck-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	projectStore  store.ProjectStore
	taskStore     store.TaskStore
	activityStore store.ActivityStore

	jwtService      auth.JWTService
	projectService  service.ProjectService
	taskService     service.TaskService
	activityService service.ActivityService

	dispatcher      *events.Dispatcher
	notifications   *notify.Queue
	workers         *notify.WorkerPool
	metricsShutdown telemetry.ShutdownFunc
}

// newApplication wires stores, services, the event dispatcher and its
// listeners. The notification workers are started here and stopped by
// cleanup.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.projectStore = postgres.NewPostgresProjectStore(db, logger)
	app.taskStore = postgres.NewPostgresTaskStore(db, logger)
	app.activityStore = postgres.NewPostgresActivityStore(db, logger)

	var dispatcherOpts []events.Option
	if cfg.Events.MetricsEnabled {
		app.metricsShutdown = telemetry.Setup(logger, telemetry.DefaultExportInterval)
		dispatcherOpts = append(dispatcherOpts, events.WithMetrics(events.NewMetricsRecorder()))
	}
	app.dispatcher = events.NewDispatcher(logger, dispatcherOpts...)

	app.notifications = notify.NewQueue(cfg.Events.NotificationQueueSize, logger)
	app.workers = notify.NewWorkerPool(
		app.notifications,
		notify.NewLogNotifier(logger),
		notify.WorkerPoolConfig{
			WorkerCount:     cfg.Events.NotificationWorkers,
			DeliveryTimeout: notify.DefaultWorkerPoolConfig().DeliveryTimeout,
		},
		logger,
	)

	if err := listeners.Register(app.dispatcher, listeners.Deps{
		Activity:      app.activityStore,
		Notifications: app.notifications,
		Logger:        logger,
	}); err != nil {
		return nil, fmt.Errorf("failed to register event listeners: %w", err)
	}

	app.projectService, err = service.NewProjectService(app.projectStore, app.dispatcher, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create project service: %w", err)
	}
	app.taskService, err = service.NewTaskService(app.projectStore, app.taskStore, app.dispatcher, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}
	app.activityService, err = service.NewActivityService(app.activityStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity service: %w", err)
	}

	app.workers.Start()

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is cancelled.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup drains the notification queue and flushes metrics.
func (app *application) cleanup(ctx context.Context) {
	if app.workers != nil {
		if err := app.workers.Stop(ctx); err != nil {
			app.logger.Error("Notification workers did not drain", "error", err)
		}
	}

	if app.metricsShutdown != nil {
		if err := app.metricsShutdown(ctx); err != nil {
			app.logger.Error("Metrics shutdown failed", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
