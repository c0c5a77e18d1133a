package commands

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/intervalrain/scheduler/internal/scheduling/application/services"
	"github.com/intervalrain/scheduler/internal/scheduling/domain"
	"github.com/intervalrain/scheduler/pkg/observability"
)

// MoveTaskCommand drops a task at TargetIndex of a status group. The index
// counts positions in the group without the moved task, so len(group) means
// the bottom.
type MoveTaskCommand struct {
	TaskID uuid.UUID
	// Status is the destination column. Empty keeps the current status.
	Status      string
	TargetIndex int
}

// MoveTaskResult describes what was persisted. PreviousStatus and
// PreviousPriority let callers restore local state when the move fails.
type MoveTaskResult struct {
	TaskID           uuid.UUID
	PreviousStatus   domain.Status
	PreviousPriority *int64
	Status           domain.Status
	NewPriority      int64
	Rebalanced       bool
	// Updates lists every rank written by the rebalance, in group order.
	Updates []domain.PriorityUpdate
}

// MoveTaskHandler handles the MoveTaskCommand.
type MoveTaskHandler struct {
	taskRepo  domain.TaskRepository
	allocator *services.PriorityRankAllocator
	engine    *services.RebalanceEngine
	metrics   observability.Metrics
	logger    *slog.Logger
}

// NewMoveTaskHandler creates a new MoveTaskHandler.
func NewMoveTaskHandler(
	taskRepo domain.TaskRepository,
	allocator *services.PriorityRankAllocator,
	engine *services.RebalanceEngine,
	metrics observability.Metrics,
	logger *slog.Logger,
) *MoveTaskHandler {
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &MoveTaskHandler{
		taskRepo:  taskRepo,
		allocator: allocator,
		engine:    engine,
		metrics:   metrics,
		logger:    logger,
	}
}

// Handle persists the dragged task's new rank first and only then checks
// the group for a collision. A collision rewrites the whole group.
func (h *MoveTaskHandler) Handle(ctx context.Context, cmd MoveTaskCommand) (*MoveTaskResult, error) {
	task, err := h.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		return nil, err
	}

	status := task.Status
	if cmd.Status != "" {
		if status, err = domain.ParseStatus(cmd.Status); err != nil {
			return nil, err
		}
	}

	group, err := h.taskRepo.FindBySprintAndStatus(ctx, task.SprintID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s group: %w", status, err)
	}
	group = slices.DeleteFunc(group, func(t domain.Task) bool { return t.ID == task.ID })

	rank, err := h.allocator.RankForDrop(h.allocator.Priorities(group), cmd.TargetIndex)
	if err != nil {
		return nil, err
	}

	result := &MoveTaskResult{
		TaskID:           task.ID,
		PreviousStatus:   task.Status,
		PreviousPriority: task.Priority,
		Status:           status,
		NewPriority:      rank,
	}

	if err := h.taskRepo.UpdatePriority(ctx, task.ID, status, rank); err != nil {
		return result, fmt.Errorf("failed to persist priority of task %s: %w", task.ID, err)
	}
	h.metrics.Counter(observability.MetricTasksMoved, 1, observability.T("status", status.String()))

	task.Status = status
	task.SetPriority(rank)
	ordered := slices.Insert(group, cmd.TargetIndex, *task)

	if h.engine.NeedsRebalance(h.allocator.Priorities(ordered)) {
		result.Rebalanced = true
		result.Updates, err = rebalance(ctx, h.taskRepo, h.engine, status, ordered)
		h.metrics.Counter(observability.MetricRebalances, 1, observability.T("status", status.String()))
		for _, u := range result.Updates {
			if u.TaskID == task.ID {
				result.NewPriority = u.NewPriority
			}
		}
		if err != nil {
			return result, err
		}
	}

	h.logger.InfoContext(ctx, "task moved",
		"task_id", task.ID,
		"status", status,
		"index", cmd.TargetIndex,
		"priority", result.NewPriority,
		"rebalanced", result.Rebalanced,
	)
	return result, nil
}
