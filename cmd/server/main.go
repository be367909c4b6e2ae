// Package main implements the entry point for the Taskdeck API server, which
// manages projects and tasks and reacts to their changes through in-process
// event listeners.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/taskdeck-api/internal/config"
	"github.com/phrazzld/taskdeck-api/internal/platform/logger"
	"github.com/phrazzld/taskdeck-api/internal/platform/postgres"
)

// options holds the command-line flags.
type options struct {
	configPath string
	migrate    string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

// parseFlags parses the command-line arguments.
func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.configPath, "config", "", "path to a YAML config file (default ./config.yaml if present)")
	fs.StringVar(&opts.migrate, "migrate", "", "run a migration command (up, down, status, version) and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

// run loads configuration, connects to the database and either runs a
// migration command or serves HTTP until ctx is cancelled.
func run(ctx context.Context, args []string) error {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	cfg, err := config.LoadFrom(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"notification_workers", cfg.Events.NotificationWorkers,
		"metrics_enabled", cfg.Events.MetricsEnabled)

	db, err := setupAppDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database connection", "error", err)
		}
	}()

	if opts.migrate != "" {
		return postgres.Migrate(ctx, db, opts.migrate, log)
	}
	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, db, "up", log); err != nil {
			return err
		}
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(ctx)
}
