package app

import (
	"fmt"

	"github.com/intervalrain/scheduler/internal/scheduling/domain"
	"github.com/intervalrain/scheduler/internal/scheduling/infrastructure/persistence"
	"github.com/intervalrain/scheduler/internal/shared/infrastructure/database"
)

// RepositoryFactory creates repositories based on the database driver.
type RepositoryFactory struct {
	conn            database.Connection
	driver          database.Driver
	defaultPriority int64
}

// NewRepositoryFactory creates a new repository factory. Tasks without a
// stored priority sort at defaultPriority.
func NewRepositoryFactory(conn database.Connection, defaultPriority int64) *RepositoryFactory {
	return &RepositoryFactory{
		conn:            conn,
		driver:          conn.Driver(),
		defaultPriority: defaultPriority,
	}
}

// SprintRepository creates a sprint repository for the configured driver.
func (f *RepositoryFactory) SprintRepository() (domain.SprintRepository, error) {
	if err := f.checkDriver(); err != nil {
		return nil, err
	}
	return persistence.NewSprintRepository(f.conn), nil
}

// TaskRepository creates a task repository for the configured driver.
func (f *RepositoryFactory) TaskRepository() (domain.TaskRepository, error) {
	if err := f.checkDriver(); err != nil {
		return nil, err
	}
	return persistence.NewTaskRepository(f.conn, f.defaultPriority), nil
}

// BusyIntervalRepository creates a busy interval repository for the configured driver.
func (f *RepositoryFactory) BusyIntervalRepository() (domain.BusyIntervalRepository, error) {
	if err := f.checkDriver(); err != nil {
		return nil, err
	}
	return persistence.NewBusyIntervalRepository(f.conn), nil
}

// The repositories speak portable SQL; only drivers with a migration set
// and placeholder rebinding are accepted.
func (f *RepositoryFactory) checkDriver() error {
	switch f.driver {
	case database.DriverPostgres, database.DriverSQLite:
		return nil
	default:
		return fmt.Errorf("unsupported driver: %s", f.driver)
	}
}
