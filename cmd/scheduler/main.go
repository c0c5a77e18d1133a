package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/intervalrain/scheduler/adapter/cli"
	"github.com/intervalrain/scheduler/adapter/cli/busy"
	"github.com/intervalrain/scheduler/adapter/cli/priority"
	"github.com/intervalrain/scheduler/adapter/cli/sprint"
	"github.com/intervalrain/scheduler/adapter/cli/task"
	"github.com/intervalrain/scheduler/adapter/cli/timeline"
	"github.com/intervalrain/scheduler/internal/app"
	"github.com/intervalrain/scheduler/pkg/config"
	"github.com/intervalrain/scheduler/pkg/observability"
)

func main() {
	// Setup logger
	logger := observability.LoggerFromEnv()

	// Create context with cancellation
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cli.SetLogger(logger)

	// Try to initialize the container
	var cliApp *cli.App
	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		if !cfg.IsDevelopment() {
			logger.Error("failed to initialize container", "error", err)
			os.Exit(1)
		}
		// In development, allow --help and version without a database
		logger.Warn("failed to initialize container, running in limited mode", "error", err)
	} else {
		defer container.Close()

		cliApp = cli.NewApp(
			container.CreateSprintHandler,
			container.CreateTaskHandler,
			container.AddBusyIntervalHandler,
			container.MoveTaskHandler,
			container.RebalanceGroupHandler,
			container.GetTimelineHandler,
			container.ListGroupHandler,
		)
		cliApp.SetCurrentUserID(container.UserID)
		cliApp.SetLocation(container.Location)
	}

	// Set the CLI app
	cli.SetApp(cliApp)

	// Register commands
	cli.AddCommand(sprint.Cmd)
	cli.AddCommand(task.Cmd)
	cli.AddCommand(busy.Cmd)
	cli.AddCommand(priority.Cmd)
	cli.AddCommand(timeline.Cmd)

	// Execute CLI
	cli.Execute(ctx)
}
