package domain

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle       = errors.New("task title cannot be empty")
	ErrInvalidStatus    = errors.New("invalid task status")
	ErrNegativeEstimate = errors.New("estimated hours cannot be negative")
)

// DefaultEstimatedHours is used when a task carries no estimate.
const DefaultEstimatedHours = 8.0

// ReferenceDayHours converts hours into display days.
const ReferenceDayHours = 8.0

// Status is the kanban column a task sits in.
type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusReview     Status = "REVIEW"
	StatusDone       Status = "DONE"
)

// Statuses lists the known statuses in board order.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusReview, StatusDone}

// ParseStatus parses a status name, accepting lower case and dashes.
func ParseStatus(s string) (Status, error) {
	normalized := Status(strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_")))
	for _, st := range Statuses {
		if st == normalized {
			return st, nil
		}
	}
	return "", ErrInvalidStatus
}

// SortRank orders statuses for scheduling. Finished work comes first so it
// occupies the earliest slots; unknown statuses sort last.
func (s Status) SortRank() int {
	switch s {
	case StatusDone:
		return 0
	case StatusReview:
		return 1
	case StatusInProgress:
		return 2
	case StatusTodo:
		return 3
	default:
		return 4
	}
}

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	return s.SortRank() < 4
}

func (s Status) String() string { return string(s) }

// Task is the subset of a sprint task the engine reads.
type Task struct {
	ID       uuid.UUID
	SprintID uuid.UUID
	Title    string
	Status   Status
	// Priority is nil when the task has never been ranked.
	Priority *int64
	// EstimatedHours is nil when no estimate was given.
	EstimatedHours *float64
	CreatedAt      time.Time
}

// NewTask creates a TODO task with a generated ID.
func NewTask(sprintID uuid.UUID, title string) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	return &Task{
		ID:        uuid.New(),
		SprintID:  sprintID,
		Title:     title,
		Status:    StatusTodo,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// PriorityOr returns the task priority or def when unset.
func (t Task) PriorityOr(def int64) int64 {
	if t.Priority == nil {
		return def
	}
	return *t.Priority
}

// EffectiveHours is the amount of work the scheduler places for the task.
// Missing estimates fall back to DefaultEstimatedHours; zero or negative
// estimates are no work at all.
func (t Task) EffectiveHours() float64 {
	if t.EstimatedHours == nil {
		return DefaultEstimatedHours
	}
	if *t.EstimatedHours <= 0 || math.IsNaN(*t.EstimatedHours) {
		return 0
	}
	return *t.EstimatedHours
}

// SetPriority sets the task's rank.
func (t *Task) SetPriority(p int64) {
	t.Priority = &p
}

// SetEstimate sets the task's estimated hours.
func (t *Task) SetEstimate(hours float64) error {
	if hours < 0 {
		return ErrNegativeEstimate
	}
	t.EstimatedHours = &hours
	return nil
}

// ScheduledTask is a task placed on the timeline. It is derived on every
// request and never persisted.
type ScheduledTask struct {
	Task
	Start time.Time
	End   time.Time
	// ScheduledHours is the capacity actually consumed.
	ScheduledHours float64
	EstimatedDays  int
}

// EstimatedDays converts hours into whole reference days for display.
func EstimatedDays(hours float64) int {
	if hours <= 0 {
		return 0
	}
	return int(math.Ceil(hours / ReferenceDayHours))
}
