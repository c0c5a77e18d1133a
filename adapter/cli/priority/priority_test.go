package priority

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intervalrain/scheduler/adapter/cli"
	internalApp "github.com/intervalrain/scheduler/internal/app"
	"github.com/intervalrain/scheduler/internal/scheduling/application/commands"
	"github.com/intervalrain/scheduler/internal/scheduling/application/queries"
	"github.com/intervalrain/scheduler/internal/scheduling/domain"
	"github.com/intervalrain/scheduler/pkg/config"
)

// setupLocalModeTestApp creates a test application with SQLite and one
// sprint for integration tests.
func setupLocalModeTestApp(t *testing.T) (*cli.App, uuid.UUID) {
	t.Helper()

	cfg := &config.Config{
		AppEnv:          "test",
		DatabaseDriver:  "sqlite",
		SQLitePath:      filepath.Join(t.TempDir(), "test.db"),
		UserID:          "00000000-0000-0000-0000-000000000001",
		Timezone:        "UTC",
		PriorityDefault: 1_000,
		PriorityGap:     10,
		MaxExtensions:   1,
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	ctx := context.Background()
	container, err := internalApp.NewContainer(ctx, cfg, logger)
	require.NoError(t, err)
	t.Cleanup(container.Close)

	cliApp := cli.NewApp(
		container.CreateSprintHandler,
		container.CreateTaskHandler,
		container.AddBusyIntervalHandler,
		container.MoveTaskHandler,
		container.RebalanceGroupHandler,
		container.GetTimelineHandler,
		container.ListGroupHandler,
	)
	cli.SetApp(cliApp)
	t.Cleanup(func() { cli.SetApp(nil) })

	sprintID, err := cliApp.CreateSprintHandler.Handle(ctx, commands.CreateSprintCommand{
		Name:      "Board",
		StartDate: domain.NewDate(2024, time.January, 15),
		EndDate:   domain.NewDate(2024, time.January, 26),
	})
	require.NoError(t, err)

	return cliApp, sprintID
}

func addTask(t *testing.T, app *cli.App, sprintID uuid.UUID, title string, priority int64) uuid.UUID {
	t.Helper()
	id, err := app.CreateTaskHandler.Handle(context.Background(), commands.CreateTaskCommand{
		SprintID: sprintID,
		Title:    title,
		Priority: &priority,
	})
	require.NoError(t, err)
	return id
}

func column(t *testing.T, app *cli.App, sprintID uuid.UUID, status string) []string {
	t.Helper()
	tasks, err := app.ListGroupHandler.Handle(context.Background(), queries.ListGroupQuery{SprintID: sprintID, Status: status})
	require.NoError(t, err)
	titles := make([]string, len(tasks))
	for i, task := range tasks {
		titles[i] = task.Title
	}
	return titles
}

func TestMoveCmd_ReordersColumn(t *testing.T) {
	app, sprintID := setupLocalModeTestApp(t)
	addTask(t, app, sprintID, "A", 300)
	addTask(t, app, sprintID, "B", 200)
	c := addTask(t, app, sprintID, "C", 100)

	var out bytes.Buffer
	moveCmd.SetOut(&out)
	moveCmd.SetContext(context.Background())
	moveStatus = ""
	moveIndex = 1

	require.NoError(t, moveCmd.RunE(moveCmd, []string{c.String()}))

	assert.Equal(t, []string{"A", "C", "B"}, column(t, app, sprintID, "todo"))
	assert.Contains(t, out.String(), "priority: 100 -> 250")
	assert.NotContains(t, out.String(), "respaced")
}

func TestMoveCmd_CollisionRespacesColumn(t *testing.T) {
	app, sprintID := setupLocalModeTestApp(t)
	addTask(t, app, sprintID, "A", 11)
	addTask(t, app, sprintID, "B", 10)
	c := addTask(t, app, sprintID, "C", 5)

	var out bytes.Buffer
	moveCmd.SetOut(&out)
	moveCmd.SetContext(context.Background())
	moveStatus = ""
	moveIndex = 1

	require.NoError(t, moveCmd.RunE(moveCmd, []string{c.String()}))

	assert.Equal(t, []string{"A", "C", "B"}, column(t, app, sprintID, "todo"))
	assert.Contains(t, out.String(), "column respaced: 3 tasks")
	assert.Contains(t, out.String(), "priority: 5 -> 1,000")
}

func TestMoveCmd_AcrossColumns(t *testing.T) {
	app, sprintID := setupLocalModeTestApp(t)
	a := addTask(t, app, sprintID, "A", 300)
	addTask(t, app, sprintID, "B", 200)

	var out bytes.Buffer
	moveCmd.SetOut(&out)
	moveCmd.SetContext(context.Background())
	moveStatus = "in-progress"
	moveIndex = 0

	require.NoError(t, moveCmd.RunE(moveCmd, []string{a.String()}))

	assert.Equal(t, []string{"B"}, column(t, app, sprintID, "todo"))
	assert.Equal(t, []string{"A"}, column(t, app, sprintID, "in_progress"))
	assert.Contains(t, out.String(), "to IN_PROGRESS #0")
}

func TestMoveCmd_Errors(t *testing.T) {
	app, sprintID := setupLocalModeTestApp(t)
	a := addTask(t, app, sprintID, "A", 300)
	moveCmd.SetContext(context.Background())
	moveStatus = ""

	moveIndex = 5
	err := moveCmd.RunE(moveCmd, []string{a.String()})
	assert.ErrorIs(t, err, domain.ErrPositionOutOfRange)

	moveIndex = 0
	err = moveCmd.RunE(moveCmd, []string{uuid.NewString()})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	err = moveCmd.RunE(moveCmd, []string{"not-a-uuid"})
	assert.ErrorContains(t, err, "invalid task ID")
}

func TestRebalanceCmd(t *testing.T) {
	app, sprintID := setupLocalModeTestApp(t)
	addTask(t, app, sprintID, "A", 7)
	addTask(t, app, sprintID, "B", 7)

	var out bytes.Buffer
	rebalanceCmd.SetOut(&out)
	rebalanceCmd.SetContext(context.Background())
	rebalanceSprintID = sprintID.String()
	rebalanceStatus = "todo"
	force = false

	require.NoError(t, rebalanceCmd.RunE(rebalanceCmd, nil))
	assert.Contains(t, out.String(), "Respaced 2 tasks in TODO")
	assert.Contains(t, out.String(), "1,010")

	out.Reset()
	require.NoError(t, rebalanceCmd.RunE(rebalanceCmd, nil))
	assert.Contains(t, out.String(), "TODO is already in order; nothing written.")
}
