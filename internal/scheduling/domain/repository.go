package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSprintNotFound = errors.New("sprint not found")
	ErrTaskNotFound   = errors.New("task not found")
)

// SprintRepository defines the interface for sprint persistence.
type SprintRepository interface {
	// Save persists a sprint (create or update).
	Save(ctx context.Context, sprint *Sprint) error

	// FindByID returns ErrSprintNotFound when no sprint matches.
	FindByID(ctx context.Context, id uuid.UUID) (*Sprint, error)
}

// TaskRepository defines the interface for task persistence.
type TaskRepository interface {
	Save(ctx context.Context, task *Task) error

	// FindByID returns ErrTaskNotFound when no task matches.
	FindByID(ctx context.Context, id uuid.UUID) (*Task, error)

	// FindBySprint returns the sprint's tasks in insertion order.
	FindBySprint(ctx context.Context, sprintID uuid.UUID) ([]Task, error)

	// FindBySprintAndStatus returns one status group ordered by
	// descending priority, unranked tasks treated as the default rank.
	FindBySprintAndStatus(ctx context.Context, sprintID uuid.UUID, status Status) ([]Task, error)

	// UpdatePriority writes a new rank and status for a task.
	UpdatePriority(ctx context.Context, id uuid.UUID, status Status, priority int64) error
}

// BusyIntervalRepository defines the interface for busy-time persistence.
type BusyIntervalRepository interface {
	Save(ctx context.Context, interval BusyInterval) error

	// FindByUserInRange returns intervals overlapping [from, to).
	FindByUserInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]BusyInterval, error)
}
