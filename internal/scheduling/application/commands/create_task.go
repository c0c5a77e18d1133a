package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/intervalrain/scheduler/internal/scheduling/application/services"
	"github.com/intervalrain/scheduler/internal/scheduling/domain"
)

// CreateTaskCommand contains the data needed to create a task.
type CreateTaskCommand struct {
	SprintID uuid.UUID
	Title    string
	// Status defaults to TODO.
	Status string
	// Priority is optional; nil ranks the task last in its status group.
	Priority       *int64
	EstimatedHours *float64
}

// CreateTaskHandler handles the CreateTaskCommand.
type CreateTaskHandler struct {
	sprintRepo domain.SprintRepository
	taskRepo   domain.TaskRepository
	allocator  *services.PriorityRankAllocator
	logger     *slog.Logger
}

// NewCreateTaskHandler creates a new CreateTaskHandler.
func NewCreateTaskHandler(
	sprintRepo domain.SprintRepository,
	taskRepo domain.TaskRepository,
	allocator *services.PriorityRankAllocator,
	logger *slog.Logger,
) *CreateTaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CreateTaskHandler{
		sprintRepo: sprintRepo,
		taskRepo:   taskRepo,
		allocator:  allocator,
		logger:     logger,
	}
}

// Handle creates the task in the sprint.
func (h *CreateTaskHandler) Handle(ctx context.Context, cmd CreateTaskCommand) (uuid.UUID, error) {
	if _, err := h.sprintRepo.FindByID(ctx, cmd.SprintID); err != nil {
		return uuid.Nil, err
	}

	task, err := domain.NewTask(cmd.SprintID, cmd.Title)
	if err != nil {
		return uuid.Nil, err
	}
	if cmd.Status != "" {
		if task.Status, err = domain.ParseStatus(cmd.Status); err != nil {
			return uuid.Nil, err
		}
	}
	if cmd.EstimatedHours != nil {
		if err := task.SetEstimate(*cmd.EstimatedHours); err != nil {
			return uuid.Nil, err
		}
	}

	if cmd.Priority != nil {
		task.SetPriority(*cmd.Priority)
	} else {
		group, err := h.taskRepo.FindBySprintAndStatus(ctx, cmd.SprintID, task.Status)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to load %s group: %w", task.Status, err)
		}
		task.SetPriority(h.allocator.RankForAppend(h.allocator.Priorities(group)))
	}

	if err := h.taskRepo.Save(ctx, task); err != nil {
		return uuid.Nil, fmt.Errorf("failed to save task: %w", err)
	}

	h.logger.InfoContext(ctx, "task created",
		"task_id", task.ID,
		"sprint_id", task.SprintID,
		"status", task.Status,
		"priority", *task.Priority,
	)
	return task.ID, nil
}
