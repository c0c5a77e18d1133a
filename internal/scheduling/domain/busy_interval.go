package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidTimeRange is returned when an interval does not end after it starts.
var ErrInvalidTimeRange = errors.New("end time must be after start time")

// BusyInterval is a user-owned range [Start, End) unavailable for task work.
type BusyInterval struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Title  string
	Start  time.Time
	End    time.Time
}

// NewBusyInterval creates a busy interval with a generated ID.
func NewBusyInterval(userID uuid.UUID, title string, start, end time.Time) (BusyInterval, error) {
	if !end.After(start) {
		return BusyInterval{}, ErrInvalidTimeRange
	}
	return BusyInterval{
		ID:     uuid.New(),
		UserID: userID,
		Title:  title,
		Start:  start,
		End:    end,
	}, nil
}

// Duration returns the interval length.
func (b BusyInterval) Duration() time.Duration {
	return b.End.Sub(b.Start)
}

// OverlapOn returns how much of the interval falls on day d in loc.
func (b BusyInterval) OverlapOn(d Date, loc *time.Location) time.Duration {
	dayStart := d.At(loc, 0)
	dayEnd := d.AddDays(1).At(loc, 0)

	start := b.Start
	if start.Before(dayStart) {
		start = dayStart
	}
	end := b.End
	if end.After(dayEnd) {
		end = dayEnd
	}
	if !end.After(start) {
		return 0
	}
	return end.Sub(start)
}
