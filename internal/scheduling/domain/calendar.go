package domain

import (
	"errors"
	"time"
)

var (
	ErrNoWorkdays        = errors.New("work calendar has no qualifying weekdays")
	ErrInvalidWorkHours  = errors.New("work start must be before work end")
	ErrInvalidDateRange  = errors.New("sprint end must not be before sprint start")
	ErrCapacityExhausted = errors.New("calendar capacity exhausted")
)

// WorkCalendarConfig describes when work can happen inside a sprint.
type WorkCalendarConfig struct {
	Weekdays    []time.Weekday
	WorkStart   TimeOfDay
	WorkEnd     TimeOfDay
	SprintStart Date
	SprintEnd   Date
	// Location anchors dates to instants. Nil means UTC.
	Location *time.Location
}

// Validate checks the preconditions the scheduler relies on.
func (c WorkCalendarConfig) Validate() error {
	if len(c.Weekdays) == 0 {
		return ErrNoWorkdays
	}
	if c.WorkStart >= c.WorkEnd {
		return ErrInvalidWorkHours
	}
	if c.SprintEnd.Before(c.SprintStart) {
		return ErrInvalidDateRange
	}
	return nil
}

// IsWorkday reports whether d falls on a qualifying weekday.
func (c WorkCalendarConfig) IsWorkday(d Date) bool {
	wd := d.Weekday()
	for _, w := range c.Weekdays {
		if w == wd {
			return true
		}
	}
	return false
}

// DailyCapacityHours is the length of the work window in hours.
func (c WorkCalendarConfig) DailyCapacityHours() float64 {
	return float64(c.WorkEnd-c.WorkStart) / 60
}

// Loc returns the configured location, defaulting to UTC.
func (c WorkCalendarConfig) Loc() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}
