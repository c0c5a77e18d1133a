package queries

import (
	"context"

	"github.com/google/uuid"

	"github.com/intervalrain/scheduler/internal/scheduling/domain"
)

// ListGroupQuery asks for one status column of a sprint.
type ListGroupQuery struct {
	SprintID uuid.UUID
	Status   string
}

// ListGroupHandler returns a status group in display order, the order a
// drop index refers to.
type ListGroupHandler struct {
	taskRepo domain.TaskRepository
}

// NewListGroupHandler creates a new ListGroupHandler.
func NewListGroupHandler(taskRepo domain.TaskRepository) *ListGroupHandler {
	return &ListGroupHandler{taskRepo: taskRepo}
}

// Handle executes the ListGroupQuery.
func (h *ListGroupHandler) Handle(ctx context.Context, query ListGroupQuery) ([]domain.Task, error) {
	status, err := domain.ParseStatus(query.Status)
	if err != nil {
		return nil, err
	}
	tasks, err := h.taskRepo.FindBySprintAndStatus(ctx, query.SprintID, status)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}
