package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/intervalrain/scheduler/internal/scheduling/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekdayConfig() domain.WorkCalendarConfig {
	return domain.WorkCalendarConfig{
		Weekdays:    []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		WorkStart:   domain.MustParseTimeOfDay("09:00"),
		WorkEnd:     domain.MustParseTimeOfDay("17:00"),
		SprintStart: domain.NewDate(2024, time.January, 15),
		SprintEnd:   domain.NewDate(2024, time.January, 19),
	}
}

func TestWorkCalendarConfig_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, weekdayConfig().Validate())
	})

	t.Run("no weekdays", func(t *testing.T) {
		cfg := weekdayConfig()
		cfg.Weekdays = nil
		assert.ErrorIs(t, cfg.Validate(), domain.ErrNoWorkdays)
	})

	t.Run("start not before end", func(t *testing.T) {
		cfg := weekdayConfig()
		cfg.WorkEnd = cfg.WorkStart
		assert.ErrorIs(t, cfg.Validate(), domain.ErrInvalidWorkHours)
	})

	t.Run("reversed range", func(t *testing.T) {
		cfg := weekdayConfig()
		cfg.SprintEnd = cfg.SprintStart.AddDays(-1)
		assert.ErrorIs(t, cfg.Validate(), domain.ErrInvalidDateRange)
	})
}

func TestWorkCalendarConfig_Capacity(t *testing.T) {
	cfg := weekdayConfig()

	assert.InDelta(t, 8.0, cfg.DailyCapacityHours(), 1e-9)
	assert.True(t, cfg.IsWorkday(domain.NewDate(2024, time.January, 15)))
	assert.False(t, cfg.IsWorkday(domain.NewDate(2024, time.January, 20)))
	assert.Equal(t, time.UTC, cfg.Loc())
}

func TestBusyInterval_OverlapOn(t *testing.T) {
	day := domain.NewDate(2024, time.January, 15)
	user := uuid.New()

	t.Run("inside the day", func(t *testing.T) {
		b, err := domain.NewBusyInterval(user, "lunch", day.At(time.UTC, 12*60), day.At(time.UTC, 13*60))
		require.NoError(t, err)
		assert.Equal(t, time.Hour, b.OverlapOn(day, time.UTC))
		assert.Zero(t, b.OverlapOn(day.AddDays(1), time.UTC))
	})

	t.Run("clipped at midnight", func(t *testing.T) {
		b, err := domain.NewBusyInterval(user, "late", day.At(time.UTC, 23*60), day.AddDays(1).At(time.UTC, 2*60))
		require.NoError(t, err)
		assert.Equal(t, time.Hour, b.OverlapOn(day, time.UTC))
		assert.Equal(t, 2*time.Hour, b.OverlapOn(day.AddDays(1), time.UTC))
	})

	t.Run("rejects empty range", func(t *testing.T) {
		_, err := domain.NewBusyInterval(user, "x", day.At(time.UTC, 60), day.At(time.UTC, 60))
		assert.ErrorIs(t, err, domain.ErrInvalidTimeRange)
	})
}

func TestSprint_CalendarConfig(t *testing.T) {
	start := domain.NewDate(2024, time.January, 15)
	end := domain.NewDate(2024, time.January, 26)

	t.Run("project fallbacks", func(t *testing.T) {
		s, err := domain.NewSprint("Sprint 1", domain.SprintKindProject, start, end)
		require.NoError(t, err)

		cfg, err := s.CalendarConfig(nil)
		require.NoError(t, err)

		assert.Equal(t, []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}, cfg.Weekdays)
		assert.Equal(t, "08:30", cfg.WorkStart.String())
		assert.Equal(t, "17:30", cfg.WorkEnd.String())
		assert.Equal(t, start, cfg.SprintStart)
		assert.Equal(t, end, cfg.SprintEnd)
	})

	t.Run("casual fallbacks", func(t *testing.T) {
		s, err := domain.NewSprint("Side project", domain.SprintKindCasual, start, end)
		require.NoError(t, err)

		cfg, err := s.CalendarConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, "00:00", cfg.WorkStart.String())
		assert.Equal(t, "23:59", cfg.WorkEnd.String())
	})

	t.Run("explicit weekdays map Sunday to 7", func(t *testing.T) {
		s, err := domain.NewSprint("Weekend", domain.SprintKindProject, start, end)
		require.NoError(t, err)
		s.WorkDays = []int{6, 7}
		s.WorkStart, s.WorkEnd = "10:00", "14:00"

		cfg, err := s.CalendarConfig(time.UTC)
		require.NoError(t, err)
		assert.Equal(t, []time.Weekday{time.Saturday, time.Sunday}, cfg.Weekdays)
		assert.InDelta(t, 4.0, cfg.DailyCapacityHours(), 1e-9)
	})

	t.Run("invalid weekday", func(t *testing.T) {
		s, err := domain.NewSprint("Bad", domain.SprintKindProject, start, end)
		require.NoError(t, err)
		s.WorkDays = []int{0}

		_, err = s.CalendarConfig(nil)
		assert.ErrorIs(t, err, domain.ErrInvalidWeekday)
	})

	t.Run("rejects reversed dates", func(t *testing.T) {
		_, err := domain.NewSprint("Backwards", domain.SprintKindProject, end, start)
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	})
}

func TestParseSprintKind(t *testing.T) {
	k, err := domain.ParseSprintKind("Casual")
	require.NoError(t, err)
	assert.Equal(t, domain.SprintKindCasual, k)

	k, err = domain.ParseSprintKind("")
	require.NoError(t, err)
	assert.Equal(t, domain.SprintKindProject, k)

	_, err = domain.ParseSprintKind("hackathon")
	assert.ErrorIs(t, err, domain.ErrInvalidKind)
}
