package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/intervalrain/scheduler/internal/scheduling/domain"
)

// CreateSprintCommand contains the data needed to create a sprint.
type CreateSprintCommand struct {
	Name      string
	Kind      string
	StartDate domain.Date
	EndDate   domain.Date
	// WorkDays uses 1 (Monday) .. 7 (Sunday). Empty means Monday to Friday.
	WorkDays []int
	// WorkStart and WorkEnd are "HH:MM". Empty uses the kind's defaults.
	WorkStart string
	WorkEnd   string
}

// CreateSprintHandler handles the CreateSprintCommand.
type CreateSprintHandler struct {
	sprintRepo domain.SprintRepository
	logger     *slog.Logger
}

// NewCreateSprintHandler creates a new CreateSprintHandler.
func NewCreateSprintHandler(sprintRepo domain.SprintRepository, logger *slog.Logger) *CreateSprintHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CreateSprintHandler{sprintRepo: sprintRepo, logger: logger}
}

// Handle validates the sprint's calendar and stores it.
func (h *CreateSprintHandler) Handle(ctx context.Context, cmd CreateSprintCommand) (uuid.UUID, error) {
	kind, err := domain.ParseSprintKind(cmd.Kind)
	if err != nil {
		return uuid.Nil, err
	}

	sprint, err := domain.NewSprint(cmd.Name, kind, cmd.StartDate, cmd.EndDate)
	if err != nil {
		return uuid.Nil, err
	}
	sprint.WorkDays = cmd.WorkDays
	sprint.WorkStart = cmd.WorkStart
	sprint.WorkEnd = cmd.WorkEnd

	calendar, err := sprint.CalendarConfig(time.UTC)
	if err != nil {
		return uuid.Nil, err
	}
	if err := calendar.Validate(); err != nil {
		return uuid.Nil, err
	}

	if err := h.sprintRepo.Save(ctx, sprint); err != nil {
		return uuid.Nil, fmt.Errorf("failed to save sprint: %w", err)
	}

	h.logger.InfoContext(ctx, "sprint created",
		"sprint_id", sprint.ID,
		"start", sprint.StartDate.String(),
		"end", sprint.EndDate.String(),
	)
	return sprint.ID, nil
}
