package migrations

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intervalrain/scheduler/internal/shared/infrastructure/database"
	"github.com/intervalrain/scheduler/internal/shared/infrastructure/database/sqlite"
)

func TestUpFiles(t *testing.T) {
	for _, driver := range []database.Driver{database.DriverSQLite, database.DriverPostgres} {
		files, err := upFiles(driver.String())
		require.NoError(t, err)
		assert.Equal(t, []string{"001_scheduling.up.sql"}, files)
	}

	_, err := upFiles("oracle")
	assert.Error(t, err)
}

func TestRun_SQLite(t *testing.T) {
	ctx := context.Background()
	conn, err := sqlite.NewConnection(ctx, database.Config{
		SQLitePath: filepath.Join(t.TempDir(), "migrate.db"),
	})
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, Run(ctx, conn))
	// Running twice is a no-op.
	require.NoError(t, Run(ctx, conn))

	for _, table := range []string{"sprints", "tasks", "busy_intervals"} {
		var name string
		err := conn.QueryRow(ctx,
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}

func TestRun_RejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	conn, err := sqlite.NewConnection(ctx, database.Config{
		SQLitePath: filepath.Join(t.TempDir(), "check.db"),
	})
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, Run(ctx, conn))

	_, err = conn.Exec(ctx,
		`INSERT INTO sprints (id, name, start_date, end_date, created_at) VALUES (?, ?, ?, ?, ?)`,
		"s1", "Sprint", "2024-01-15", "2024-01-19", "2024-01-01T00:00:00Z")
	require.NoError(t, err)

	_, err = conn.Exec(ctx,
		`INSERT INTO tasks (id, sprint_id, title, status, created_at) VALUES (?, ?, ?, ?, ?)`,
		"t1", "s1", "Task", "BLOCKED", "2024-01-01T00:00:00Z")
	assert.Error(t, err)
}
