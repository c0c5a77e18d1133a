package services

import (
	"github.com/intervalrain/scheduler/internal/scheduling/domain"
)

// ExtensionHorizonDays is how many calendar days one extension covers.
const ExtensionHorizonDays = 365

// WorkCalendarBuilder turns a work calendar and busy time into work blocks.
// It holds no state; every call returns a fresh slice.
type WorkCalendarBuilder struct{}

// NewWorkCalendarBuilder creates a new calendar builder.
func NewWorkCalendarBuilder() *WorkCalendarBuilder {
	return &WorkCalendarBuilder{}
}

// Build returns one block per qualifying day in [SprintStart, SprintEnd].
// Busy time overlapping a day reduces that day's capacity, floored at zero.
// With extendBeyondEnd the blocks from Extend are appended.
func (b *WorkCalendarBuilder) Build(
	cfg domain.WorkCalendarConfig,
	busy []domain.BusyInterval,
	extendBeyondEnd bool,
) []domain.WorkBlock {
	loc := cfg.Loc()
	capacity := cfg.DailyCapacityHours()
	blocks := make([]domain.WorkBlock, 0)

	for day := cfg.SprintStart; !day.After(cfg.SprintEnd); day = day.AddDays(1) {
		if !cfg.IsWorkday(day) {
			continue
		}

		var busyHours float64
		for _, interval := range busy {
			busyHours += interval.OverlapOn(day, loc).Hours()
		}

		available := capacity - busyHours
		if available < 0 {
			available = 0
		}

		blocks = append(blocks, domain.WorkBlock{
			Date:           day,
			StartMinute:    cfg.WorkStart.Minutes(),
			EndMinute:      cfg.WorkEnd.Minutes(),
			AvailableHours: available,
		})
	}

	if extendBeyondEnd {
		blocks = append(blocks, b.Extend(cfg, cfg.SprintEnd)...)
	}

	return blocks
}

// Extend synthesizes full-capacity blocks for the qualifying days among the
// ExtensionHorizonDays days following after. Busy time is never consulted
// here: busy data outside the sprint window is not authoritative.
func (b *WorkCalendarBuilder) Extend(cfg domain.WorkCalendarConfig, after domain.Date) []domain.WorkBlock {
	capacity := cfg.DailyCapacityHours()
	blocks := make([]domain.WorkBlock, 0, ExtensionHorizonDays)

	for i := 1; i <= ExtensionHorizonDays; i++ {
		day := after.AddDays(i)
		if !cfg.IsWorkday(day) {
			continue
		}
		blocks = append(blocks, domain.WorkBlock{
			Date:           day,
			StartMinute:    cfg.WorkStart.Minutes(),
			EndMinute:      cfg.WorkEnd.Minutes(),
			AvailableHours: capacity,
			Extended:       true,
		})
	}

	return blocks
}

// TotalHours sums the available hours of blocks.
func TotalHours(blocks []domain.WorkBlock) float64 {
	var total float64
	for _, block := range blocks {
		total += block.AvailableHours
	}
	return total
}
