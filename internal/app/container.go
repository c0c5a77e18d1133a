package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/intervalrain/scheduler/internal/scheduling/application/commands"
	"github.com/intervalrain/scheduler/internal/scheduling/application/queries"
	"github.com/intervalrain/scheduler/internal/scheduling/application/services"
	"github.com/intervalrain/scheduler/internal/scheduling/domain"
	"github.com/intervalrain/scheduler/internal/shared/infrastructure/database"
	_ "github.com/intervalrain/scheduler/internal/shared/infrastructure/database/postgres"
	_ "github.com/intervalrain/scheduler/internal/shared/infrastructure/database/sqlite"
	"github.com/intervalrain/scheduler/internal/shared/infrastructure/migrations"
	"github.com/intervalrain/scheduler/pkg/config"
	"github.com/intervalrain/scheduler/pkg/observability"
)

// Container holds all application dependencies.
type Container struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics observability.Metrics

	// Database
	DBConn   database.Connection
	DBDriver database.Driver

	// Scheduling settings
	UserID        uuid.UUID
	Location      *time.Location
	RankConfig    domain.RankConfig
	SchedulerConf services.SchedulerConfig

	// Repositories
	SprintRepo domain.SprintRepository
	TaskRepo   domain.TaskRepository
	BusyRepo   domain.BusyIntervalRepository

	// Services
	CalendarBuilder *services.WorkCalendarBuilder
	TaskScheduler   *services.TaskScheduler
	RankAllocator   *services.PriorityRankAllocator
	RebalanceEngine *services.RebalanceEngine

	// Command handlers
	CreateSprintHandler    *commands.CreateSprintHandler
	CreateTaskHandler      *commands.CreateTaskHandler
	AddBusyIntervalHandler *commands.AddBusyIntervalHandler
	MoveTaskHandler        *commands.MoveTaskHandler
	RebalanceGroupHandler  *commands.RebalanceGroupHandler

	// Query handlers
	GetTimelineHandler *queries.GetTimelineHandler
	ListGroupHandler   *queries.ListGroupHandler
}

// NewContainer creates a new dependency container. The database driver is
// chosen from the configuration; SQLite needs no external services.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}

	rank := domain.RankConfig{Default: cfg.PriorityDefault, Gap: cfg.PriorityGap}
	if err := rank.Validate(); err != nil {
		return nil, fmt.Errorf("invalid priority configuration: %w", err)
	}

	userID, err := uuid.Parse(cfg.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", cfg.UserID, err)
	}

	c := &Container{
		Config:        cfg,
		Logger:        logger,
		Metrics:       observability.NewInMemoryMetrics(),
		UserID:        userID,
		Location:      cfg.Location(),
		RankConfig:    rank,
		SchedulerConf: services.SchedulerConfig{MaxExtensions: cfg.MaxExtensions},
	}

	conn, err := database.NewConnection(ctx, database.Config{
		Driver:     database.Driver(cfg.DatabaseDriver),
		URL:        cfg.DatabaseURL,
		SQLitePath: cfg.SQLitePath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DBConn = conn
	c.DBDriver = conn.Driver()
	logger.Info("connected to database", "driver", c.DBDriver.String())

	if err := migrations.Run(ctx, conn); err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := c.initRepositories(); err != nil {
		c.Close()
		return nil, err
	}
	c.initHandlers()

	return c, nil
}

func (c *Container) initRepositories() error {
	factory := NewRepositoryFactory(c.DBConn, c.RankConfig.Default)

	sprintRepo, err := factory.SprintRepository()
	if err != nil {
		return fmt.Errorf("failed to create sprint repository: %w", err)
	}
	c.SprintRepo = sprintRepo

	taskRepo, err := factory.TaskRepository()
	if err != nil {
		return fmt.Errorf("failed to create task repository: %w", err)
	}
	c.TaskRepo = taskRepo

	busyRepo, err := factory.BusyIntervalRepository()
	if err != nil {
		return fmt.Errorf("failed to create busy interval repository: %w", err)
	}
	c.BusyRepo = busyRepo

	return nil
}

func (c *Container) initHandlers() {
	// Scheduling services
	c.CalendarBuilder = services.NewWorkCalendarBuilder()
	c.TaskScheduler = services.NewTaskScheduler(c.CalendarBuilder, c.RankConfig, c.SchedulerConf, c.Logger)
	c.RankAllocator = services.NewPriorityRankAllocator(c.RankConfig)
	c.RebalanceEngine = services.NewRebalanceEngine(c.RankConfig)

	// Command handlers
	c.CreateSprintHandler = commands.NewCreateSprintHandler(c.SprintRepo, c.Logger)
	c.CreateTaskHandler = commands.NewCreateTaskHandler(c.SprintRepo, c.TaskRepo, c.RankAllocator, c.Logger)
	c.AddBusyIntervalHandler = commands.NewAddBusyIntervalHandler(c.BusyRepo, c.Logger)
	c.MoveTaskHandler = commands.NewMoveTaskHandler(c.TaskRepo, c.RankAllocator, c.RebalanceEngine, c.Metrics, c.Logger)
	c.RebalanceGroupHandler = commands.NewRebalanceGroupHandler(c.TaskRepo, c.RankAllocator, c.RebalanceEngine, c.Metrics, c.Logger)

	// Query handlers
	c.GetTimelineHandler = queries.NewGetTimelineHandler(
		c.SprintRepo,
		c.TaskRepo,
		c.BusyRepo,
		c.CalendarBuilder,
		c.TaskScheduler,
		c.Location,
		c.Metrics,
		c.Logger,
	)
	c.ListGroupHandler = queries.NewListGroupHandler(c.TaskRepo)
}

// Close releases all resources.
func (c *Container) Close() {
	if c.DBConn == nil {
		return
	}
	if err := c.DBConn.Close(); err != nil {
		c.Logger.Warn("error closing database connection", "driver", c.DBDriver.String(), "error", err)
		return
	}
	c.Logger.Info("database connection closed", "driver", c.DBDriver.String())
}
