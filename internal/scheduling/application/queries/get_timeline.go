package queries

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/intervalrain/scheduler/internal/scheduling/application/services"
	"github.com/intervalrain/scheduler/internal/scheduling/domain"
	"github.com/intervalrain/scheduler/pkg/observability"
)

// GetTimelineQuery asks for the schedule of a sprint as seen by one user.
// Busy time is read for UserID only.
type GetTimelineQuery struct {
	SprintID uuid.UUID
	UserID   uuid.UUID
}

// TimelineView is the computed timeline. It is derived on every request and
// never stored.
type TimelineView struct {
	Sprint   domain.Sprint
	Location *time.Location
	Blocks   []domain.WorkBlock
	Tasks    []domain.ScheduledTask
	// NominalHours is the busy-aware capacity inside the sprint window.
	NominalHours float64
	// ScheduledHours is the work placed, extension included.
	ScheduledHours float64
	// ExtensionUsed is set when some task runs past the sprint window.
	ExtensionUsed bool
}

// GetTimelineHandler handles the GetTimelineQuery.
type GetTimelineHandler struct {
	sprintRepo domain.SprintRepository
	taskRepo   domain.TaskRepository
	busyRepo   domain.BusyIntervalRepository
	builder    *services.WorkCalendarBuilder
	scheduler  *services.TaskScheduler
	location   *time.Location
	metrics    observability.Metrics
	logger     *slog.Logger
}

// NewGetTimelineHandler creates a new GetTimelineHandler. Work hours are
// interpreted in loc.
func NewGetTimelineHandler(
	sprintRepo domain.SprintRepository,
	taskRepo domain.TaskRepository,
	busyRepo domain.BusyIntervalRepository,
	builder *services.WorkCalendarBuilder,
	scheduler *services.TaskScheduler,
	loc *time.Location,
	metrics observability.Metrics,
	logger *slog.Logger,
) *GetTimelineHandler {
	if loc == nil {
		loc = time.UTC
	}
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GetTimelineHandler{
		sprintRepo: sprintRepo,
		taskRepo:   taskRepo,
		busyRepo:   busyRepo,
		builder:    builder,
		scheduler:  scheduler,
		location:   loc,
		metrics:    metrics,
		logger:     logger,
	}
}

// Handle loads the sprint's inputs and computes its timeline.
func (h *GetTimelineHandler) Handle(ctx context.Context, query GetTimelineQuery) (*TimelineView, error) {
	var (
		sprint *domain.Sprint
		tasks  []domain.Task
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sprint, err = h.sprintRepo.FindByID(gctx, query.SprintID)
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = h.taskRepo.FindBySprint(gctx, query.SprintID)
		if err != nil {
			return fmt.Errorf("failed to load tasks: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cfg, err := sprint.CalendarConfig(h.location)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	busy, err := h.busyRepo.FindByUserInRange(ctx, query.UserID,
		cfg.SprintStart.At(h.location, 0),
		cfg.SprintEnd.AddDays(1).At(h.location, 0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load busy intervals: %w", err)
	}

	tags := []observability.Tag{observability.T("sprint_id", query.SprintID.String())}
	return observability.TimeOperationResult(ctx, h.logger, h.metrics, "get_timeline", func() (*TimelineView, error) {
		blocks := h.builder.Build(cfg, busy, false)
		scheduled, err := h.scheduler.Schedule(cfg, tasks, blocks)
		if err != nil {
			return nil, err
		}

		view := newTimelineView(*sprint, h.location, blocks, scheduled)
		h.metrics.Gauge(observability.MetricTasksScheduled, float64(len(scheduled)), tags...)
		h.metrics.Gauge(observability.MetricScheduledHours, view.ScheduledHours, tags...)
		if view.ExtensionUsed {
			h.metrics.Counter(observability.MetricExtensionUsed, 1, tags...)
		}
		return view, nil
	})
}

func newTimelineView(sprint domain.Sprint, loc *time.Location, blocks []domain.WorkBlock, scheduled []domain.ScheduledTask) *TimelineView {
	view := &TimelineView{
		Sprint:       sprint,
		Location:     loc,
		Blocks:       blocks,
		Tasks:        scheduled,
		NominalHours: services.TotalHours(blocks),
	}

	windowEnd := sprint.StartDate.At(loc, 0)
	if len(blocks) > 0 {
		windowEnd = blocks[len(blocks)-1].EndAt(loc)
	}
	for _, st := range scheduled {
		view.ScheduledHours += st.ScheduledHours
		if st.End.After(windowEnd) {
			view.ExtensionUsed = true
		}
	}
	return view
}
