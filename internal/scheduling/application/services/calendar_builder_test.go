package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/intervalrain/scheduler/internal/scheduling/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	// Monday 2024-01-15 through Friday 2024-01-19.
	sprintMonday = domain.NewDate(2024, time.January, 15)
	sprintFriday = domain.NewDate(2024, time.January, 19)
)

func weekdayCalendar() domain.WorkCalendarConfig {
	return domain.WorkCalendarConfig{
		Weekdays:    []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		WorkStart:   domain.MustParseTimeOfDay("09:00"),
		WorkEnd:     domain.MustParseTimeOfDay("17:00"),
		SprintStart: sprintMonday,
		SprintEnd:   sprintFriday,
		Location:    time.UTC,
	}
}

func busy(t *testing.T, day domain.Date, from, to string) domain.BusyInterval {
	t.Helper()
	start := day.At(time.UTC, domain.MustParseTimeOfDay(from).Minutes())
	end := day.At(time.UTC, domain.MustParseTimeOfDay(to).Minutes())
	interval, err := domain.NewBusyInterval(uuid.New(), "busy", start, end)
	require.NoError(t, err)
	return interval
}

func TestWorkCalendarBuilder_Build(t *testing.T) {
	builder := NewWorkCalendarBuilder()

	t.Run("one block per weekday", func(t *testing.T) {
		blocks := builder.Build(weekdayCalendar(), nil, false)

		require.Len(t, blocks, 5)
		for i, block := range blocks {
			assert.Equal(t, sprintMonday.AddDays(i), block.Date)
			assert.Equal(t, 9*60, block.StartMinute)
			assert.Equal(t, 17*60, block.EndMinute)
			assert.InDelta(t, 8.0, block.AvailableHours, 1e-9)
			assert.False(t, block.Extended)
		}
		assert.InDelta(t, 40.0, TotalHours(blocks), 1e-9)
	})

	t.Run("busy interval reduces capacity", func(t *testing.T) {
		intervals := []domain.BusyInterval{busy(t, sprintMonday, "12:00", "13:00")}

		blocks := builder.Build(weekdayCalendar(), intervals, false)

		require.Len(t, blocks, 5)
		assert.InDelta(t, 7.0, blocks[0].AvailableHours, 1e-9)
		assert.InDelta(t, 8.0, blocks[1].AvailableHours, 1e-9)
	})

	t.Run("capacity is floored at zero", func(t *testing.T) {
		intervals := []domain.BusyInterval{
			busy(t, sprintMonday, "00:00", "12:00"),
			busy(t, sprintMonday, "12:00", "23:00"),
		}

		blocks := builder.Build(weekdayCalendar(), intervals, false)

		assert.Zero(t, blocks[0].AvailableHours)
	})

	t.Run("weekends are skipped", func(t *testing.T) {
		cfg := weekdayCalendar()
		cfg.SprintEnd = sprintMonday.AddDays(13)

		blocks := builder.Build(cfg, nil, false)

		require.Len(t, blocks, 10)
		for _, block := range blocks {
			assert.NotEqual(t, time.Saturday, block.Date.Weekday())
			assert.NotEqual(t, time.Sunday, block.Date.Weekday())
		}
	})

	t.Run("no qualifying days", func(t *testing.T) {
		cfg := weekdayCalendar()
		cfg.Weekdays = []time.Weekday{time.Saturday}

		assert.Empty(t, builder.Build(cfg, nil, false))
	})

	t.Run("fresh result on every call", func(t *testing.T) {
		first := builder.Build(weekdayCalendar(), nil, false)
		first[0].AvailableHours = 0

		second := builder.Build(weekdayCalendar(), nil, false)
		assert.InDelta(t, 8.0, second[0].AvailableHours, 1e-9)
	})
}

func TestWorkCalendarBuilder_Extend(t *testing.T) {
	builder := NewWorkCalendarBuilder()

	t.Run("appends a year of weekdays after the sprint", func(t *testing.T) {
		blocks := builder.Build(weekdayCalendar(), nil, true)

		// 365 days after a Friday hold 52 full weeks plus one Saturday.
		require.Len(t, blocks, 5+260)
		assert.False(t, blocks[4].Extended)
		assert.True(t, blocks[5].Extended)
		assert.Equal(t, domain.NewDate(2024, time.January, 22), blocks[5].Date)
		assert.Equal(t, domain.NewDate(2025, time.January, 17), blocks[len(blocks)-1].Date)
	})

	t.Run("ignores busy time beyond the sprint window", func(t *testing.T) {
		// Busy data after the sprint end is not authoritative, so the
		// extension keeps full capacity even on a fully booked day.
		nextMonday := domain.NewDate(2024, time.January, 22)
		intervals := []domain.BusyInterval{busy(t, nextMonday, "09:00", "17:00")}

		blocks := builder.Build(weekdayCalendar(), intervals, true)

		require.Equal(t, nextMonday, blocks[5].Date)
		assert.InDelta(t, 8.0, blocks[5].AvailableHours, 1e-9)
	})

	t.Run("starts the day after the anchor", func(t *testing.T) {
		anchor := domain.NewDate(2024, time.January, 24)

		blocks := builder.Extend(weekdayCalendar(), anchor)

		require.NotEmpty(t, blocks)
		assert.Equal(t, anchor.AddDays(1), blocks[0].Date)
		for _, block := range blocks {
			assert.True(t, block.Extended)
			assert.InDelta(t, 8.0, block.AvailableHours, 1e-9)
		}
	})

	t.Run("empty weekday set produces nothing", func(t *testing.T) {
		cfg := weekdayCalendar()
		cfg.Weekdays = nil

		assert.Empty(t, builder.Extend(cfg, sprintFriday))
	})
}
