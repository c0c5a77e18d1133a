package cli

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/intervalrain/scheduler/internal/scheduling/application/commands"
	"github.com/intervalrain/scheduler/internal/scheduling/application/queries"
)

// ErrNotInitialized is returned by commands that need the database when
// the application could not be wired.
var ErrNotInitialized = errors.New("application not initialized - database connection required")

// App holds the CLI application dependencies.
type App struct {
	// Sprint and task command handlers
	CreateSprintHandler    *commands.CreateSprintHandler
	CreateTaskHandler      *commands.CreateTaskHandler
	AddBusyIntervalHandler *commands.AddBusyIntervalHandler

	// Ordering command handlers
	MoveTaskHandler       *commands.MoveTaskHandler
	RebalanceGroupHandler *commands.RebalanceGroupHandler

	// Query handlers
	GetTimelineHandler *queries.GetTimelineHandler
	ListGroupHandler   *queries.ListGroupHandler

	// Current user (configured per environment)
	CurrentUserID uuid.UUID
	// Location is where wall-clock input and output is interpreted.
	Location      *time.Location
}

// NewApp creates a new CLI application with the provided handlers.
func NewApp(
	createSprintHandler *commands.CreateSprintHandler,
	createTaskHandler *commands.CreateTaskHandler,
	addBusyIntervalHandler *commands.AddBusyIntervalHandler,
	moveTaskHandler *commands.MoveTaskHandler,
	rebalanceGroupHandler *commands.RebalanceGroupHandler,
	getTimelineHandler *queries.GetTimelineHandler,
	listGroupHandler *queries.ListGroupHandler,
) *App {
	return &App{
		CreateSprintHandler:    createSprintHandler,
		CreateTaskHandler:      createTaskHandler,
		AddBusyIntervalHandler: addBusyIntervalHandler,
		MoveTaskHandler:        moveTaskHandler,
		RebalanceGroupHandler:  rebalanceGroupHandler,
		GetTimelineHandler:     getTimelineHandler,
		ListGroupHandler:       listGroupHandler,
		CurrentUserID:          uuid.Nil,
		Location:               time.UTC,
	}
}

// SetCurrentUserID updates the current user ID.
func (a *App) SetCurrentUserID(id uuid.UUID) {
	a.CurrentUserID = id
}

// SetLocation updates the display and input time zone.
func (a *App) SetLocation(loc *time.Location) {
	if loc == nil {
		loc = time.UTC
	}
	a.Location = loc
}

// app is the global CLI application instance
var app *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return app
}
