package domain

import "time"

// WorkBlock is one day's scheduling capacity after busy time is removed.
// Blocks are regenerated on every scheduling pass.
type WorkBlock struct {
	Date           Date
	StartMinute    int
	EndMinute      int
	AvailableHours float64
	// Extended marks blocks synthesized past the sprint end.
	Extended bool
}

// CapacityHours is the unreduced length of the block's work window.
func (b WorkBlock) CapacityHours() float64 {
	return float64(b.EndMinute-b.StartMinute) / 60
}

// StartAt returns the instant the block's work window opens.
func (b WorkBlock) StartAt(loc *time.Location) time.Time {
	return b.Date.At(loc, b.StartMinute)
}

// EndAt returns the instant the block's work window closes.
func (b WorkBlock) EndAt(loc *time.Location) time.Time {
	return b.Date.At(loc, b.EndMinute)
}
