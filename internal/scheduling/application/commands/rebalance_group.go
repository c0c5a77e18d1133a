package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/intervalrain/scheduler/internal/scheduling/application/services"
	"github.com/intervalrain/scheduler/internal/scheduling/domain"
	"github.com/intervalrain/scheduler/pkg/observability"
)

// RebalanceGroupCommand respaces one status group of a sprint.
type RebalanceGroupCommand struct {
	SprintID uuid.UUID
	Status   string
	// Force rewrites the ranks even when the group is already strictly
	// descending.
	Force bool
}

// RebalanceGroupResult lists the ranks written, in group order.
type RebalanceGroupResult struct {
	Status     domain.Status
	Rebalanced bool
	Updates    []domain.PriorityUpdate
}

// RebalanceGroupHandler handles the RebalanceGroupCommand.
type RebalanceGroupHandler struct {
	taskRepo  domain.TaskRepository
	allocator *services.PriorityRankAllocator
	engine    *services.RebalanceEngine
	metrics   observability.Metrics
	logger    *slog.Logger
}

// NewRebalanceGroupHandler creates a new RebalanceGroupHandler.
func NewRebalanceGroupHandler(
	taskRepo domain.TaskRepository,
	allocator *services.PriorityRankAllocator,
	engine *services.RebalanceEngine,
	metrics observability.Metrics,
	logger *slog.Logger,
) *RebalanceGroupHandler {
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RebalanceGroupHandler{
		taskRepo:  taskRepo,
		allocator: allocator,
		engine:    engine,
		metrics:   metrics,
		logger:    logger,
	}
}

// Handle rebalances the group when it has a collision or when forced.
func (h *RebalanceGroupHandler) Handle(ctx context.Context, cmd RebalanceGroupCommand) (*RebalanceGroupResult, error) {
	status, err := domain.ParseStatus(cmd.Status)
	if err != nil {
		return nil, err
	}

	group, err := h.taskRepo.FindBySprintAndStatus(ctx, cmd.SprintID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s group: %w", status, err)
	}

	result := &RebalanceGroupResult{Status: status}
	if !cmd.Force && !h.engine.NeedsRebalance(h.allocator.Priorities(group)) {
		return result, nil
	}

	result.Rebalanced = true
	result.Updates, err = rebalance(ctx, h.taskRepo, h.engine, status, group)
	h.metrics.Counter(observability.MetricRebalances, 1, observability.T("status", status.String()))
	if err != nil {
		return result, err
	}

	h.logger.InfoContext(ctx, "group rebalanced",
		"sprint_id", cmd.SprintID,
		"status", status,
		"tasks", len(result.Updates),
	)
	return result, nil
}

// rebalance assigns fresh ranks to the ordered group and persists every
// one of them. It returns the updates that were written; a failure part way
// leaves the stored group inconsistent and is reported as
// ErrRebalanceIncomplete.
func rebalance(
	ctx context.Context,
	repo domain.TaskRepository,
	engine *services.RebalanceEngine,
	status domain.Status,
	ordered []domain.Task,
) ([]domain.PriorityUpdate, error) {
	ids := make([]uuid.UUID, len(ordered))
	for i, t := range ordered {
		ids[i] = t.ID
	}

	updates := engine.Plan(ids)
	for i, u := range updates {
		if err := repo.UpdatePriority(ctx, u.TaskID, status, u.NewPriority); err != nil {
			return updates[:i], fmt.Errorf("%w: %d of %d written: %w",
				domain.ErrRebalanceIncomplete, i, len(updates), err)
		}
	}
	return updates, nil
}
