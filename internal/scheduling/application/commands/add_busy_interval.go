package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/intervalrain/scheduler/internal/scheduling/domain"
)

// AddBusyIntervalCommand contains the data needed to block out time.
type AddBusyIntervalCommand struct {
	UserID uuid.UUID
	Title  string
	Start  time.Time
	End    time.Time
}

// AddBusyIntervalHandler handles the AddBusyIntervalCommand.
type AddBusyIntervalHandler struct {
	busyRepo domain.BusyIntervalRepository
	logger   *slog.Logger
}

// NewAddBusyIntervalHandler creates a new AddBusyIntervalHandler.
func NewAddBusyIntervalHandler(busyRepo domain.BusyIntervalRepository, logger *slog.Logger) *AddBusyIntervalHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AddBusyIntervalHandler{busyRepo: busyRepo, logger: logger}
}

// Handle stores the busy interval.
func (h *AddBusyIntervalHandler) Handle(ctx context.Context, cmd AddBusyIntervalCommand) (uuid.UUID, error) {
	interval, err := domain.NewBusyInterval(cmd.UserID, cmd.Title, cmd.Start, cmd.End)
	if err != nil {
		return uuid.Nil, err
	}

	if err := h.busyRepo.Save(ctx, interval); err != nil {
		return uuid.Nil, fmt.Errorf("failed to save busy interval: %w", err)
	}

	h.logger.DebugContext(ctx, "busy interval added",
		"interval_id", interval.ID,
		"minutes", interval.Duration().Minutes(),
	)
	return interval.ID, nil
}
