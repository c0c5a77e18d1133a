package services

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/intervalrain/scheduler/internal/scheduling/domain"
)

// capacityEpsilon absorbs float drift when comparing hours.
const capacityEpsilon = 1e-9

// SchedulerConfig contains configuration for the task scheduler.
type SchedulerConfig struct {
	// MaxExtensions caps how many times the calendar may be extended past
	// the sprint in one pass. Each extension covers ExtensionHorizonDays.
	MaxExtensions int
}

// DefaultSchedulerConfig returns a default configuration.
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		MaxExtensions: 1,
	}
}

// TaskScheduler places priority-ordered tasks into work blocks.
type TaskScheduler struct {
	calendar *WorkCalendarBuilder
	rank     domain.RankConfig
	config   SchedulerConfig
	logger   *slog.Logger
}

// NewTaskScheduler creates a new task scheduler.
func NewTaskScheduler(
	calendar *WorkCalendarBuilder,
	rank domain.RankConfig,
	config SchedulerConfig,
	logger *slog.Logger,
) *TaskScheduler {
	if calendar == nil {
		calendar = NewWorkCalendarBuilder()
	}
	if config.MaxExtensions <= 0 {
		config.MaxExtensions = DefaultSchedulerConfig().MaxExtensions
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskScheduler{
		calendar: calendar,
		rank:     rank,
		config:   config,
		logger:   logger,
	}
}

// Schedule assigns every task a contiguous span of capacity. The result is
// in scheduling order and is identical for identical inputs.
func (s *TaskScheduler) Schedule(
	cfg domain.WorkCalendarConfig,
	tasks []domain.Task,
	blocks []domain.WorkBlock,
) ([]domain.ScheduledTask, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid work calendar: %w", err)
	}

	ordered := s.SortTasks(tasks)
	walker := newBlockWalker(cfg, blocks, s.calendar, s.config.MaxExtensions, s.logger)
	results := make([]domain.ScheduledTask, 0, len(ordered))

	for _, task := range ordered {
		hours := task.EffectiveHours()
		placed, err := walker.place(hours)
		if err != nil {
			return nil, fmt.Errorf("schedule task %s: %w", task.ID, err)
		}
		results = append(results, domain.ScheduledTask{
			Task:           task,
			Start:          placed.start,
			End:            placed.end,
			ScheduledHours: placed.hours,
			EstimatedDays:  domain.EstimatedDays(hours),
		})
	}

	s.logger.Debug("tasks scheduled",
		"tasks", len(results),
		"blocks", len(walker.blocks),
		"extensions", walker.extensions,
	)

	return results, nil
}

// SortTasks orders tasks by status rank ascending, then priority
// descending. Ties keep their input order.
func (s *TaskScheduler) SortTasks(tasks []domain.Task) []domain.Task {
	sorted := make([]domain.Task, len(tasks))
	copy(sorted, tasks)

	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := sorted[i].Status.SortRank(), sorted[j].Status.SortRank()
		if ri != rj {
			return ri < rj
		}
		return sorted[i].PriorityOr(s.rank.Default) > sorted[j].PriorityOr(s.rank.Default)
	})

	return sorted
}

type span struct {
	start time.Time
	end   time.Time
	hours float64
}

// blockWalker is the block half of the two-cursor walk: a block index and
// the hours already consumed in that block.
type blockWalker struct {
	cfg           domain.WorkCalendarConfig
	loc           *time.Location
	calendar      *WorkCalendarBuilder
	logger        *slog.Logger
	blocks        []domain.WorkBlock
	index         int
	consumed      float64
	extensions    int
	maxExtensions int
}

func newBlockWalker(
	cfg domain.WorkCalendarConfig,
	blocks []domain.WorkBlock,
	calendar *WorkCalendarBuilder,
	maxExtensions int,
	logger *slog.Logger,
) *blockWalker {
	owned := make([]domain.WorkBlock, len(blocks))
	copy(owned, blocks)
	return &blockWalker{
		cfg:           cfg,
		loc:           cfg.Loc(),
		calendar:      calendar,
		logger:        logger,
		blocks:        owned,
		maxExtensions: maxExtensions,
	}
}

// place consumes hours starting at the current position.
func (w *blockWalker) place(hours float64) (span, error) {
	if hours <= 0 {
		if w.index >= len(w.blocks) && w.extensions >= w.maxExtensions && len(w.blocks) > 0 {
			last := w.blocks[len(w.blocks)-1].EndAt(w.loc)
			return span{start: last, end: last}, nil
		}
		if err := w.ensure(); err != nil {
			return span{}, err
		}
		start := w.position()
		return span{start: start, end: start}, nil
	}

	if err := w.skipExhausted(); err != nil {
		return span{}, err
	}
	result := span{start: w.position()}

	need := hours
	for need > capacityEpsilon {
		if err := w.ensure(); err != nil {
			return span{}, err
		}
		block := w.blocks[w.index]
		left := block.AvailableHours - w.consumed
		if left <= capacityEpsilon {
			w.advance()
			continue
		}

		take := math.Min(need, left)
		need -= take
		w.consumed += take
		result.hours += take

		if block.AvailableHours-w.consumed <= capacityEpsilon {
			result.end = block.EndAt(w.loc)
			w.advance()
		} else {
			result.end = w.position()
		}
	}

	return result, nil
}

// ensure makes the block cursor valid, extending the calendar past the
// last known block when it has run off the end.
func (w *blockWalker) ensure() error {
	for w.index >= len(w.blocks) {
		if w.extensions >= w.maxExtensions {
			return fmt.Errorf("%w after %d extension(s) of %d days",
				domain.ErrCapacityExhausted, w.extensions, ExtensionHorizonDays)
		}

		anchor := w.cfg.SprintEnd
		if n := len(w.blocks); n > 0 && w.blocks[n-1].Date.After(anchor) {
			anchor = w.blocks[n-1].Date
		}
		extension := w.calendar.Extend(w.cfg, anchor)
		w.extensions++
		if len(extension) == 0 {
			return domain.ErrNoWorkdays
		}

		w.logger.Debug("work calendar extended",
			"after", anchor.String(),
			"blocks", len(extension),
		)
		w.blocks = append(w.blocks, extension...)
	}
	return nil
}

func (w *blockWalker) skipExhausted() error {
	for {
		if err := w.ensure(); err != nil {
			return err
		}
		if w.blocks[w.index].AvailableHours-w.consumed > capacityEpsilon {
			return nil
		}
		w.advance()
	}
}

func (w *blockWalker) advance() {
	w.index++
	w.consumed = 0
}

// position is the instant of the cursor: block date at start of work plus
// consumed hours, rounded to the minute.
func (w *blockWalker) position() time.Time {
	block := w.blocks[w.index]
	minute := block.StartMinute + int(math.Round(w.consumed*60))
	return block.Date.At(w.loc, minute)
}
