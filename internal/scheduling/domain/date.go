package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire layout for calendar dates.
const DateLayout = "2006-01-02"

// Date is an immutable calendar day without a time-of-day or zone.
// Every arithmetic operation returns a new value.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate creates a normalized date. Out-of-range components roll over
// the same way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) Year() int         { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int          { return d.day }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

// AddDays returns the date n days after d.
func (d Date) AddDays(n int) Date {
	return NewDate(d.year, d.month, d.day+n)
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return d.midnight(time.UTC).Weekday()
}

// At returns the wall-clock instant minute minutes past midnight on d in loc.
func (d Date) At(loc *time.Location, minute int) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.year, d.month, d.day, 0, minute, 0, 0, loc)
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.compare(other) < 0
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return d.compare(other) > 0
}

// Equal reports whether d and other denote the same day.
func (d Date) Equal(other Date) bool {
	return d.compare(other) == 0
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

func (d Date) midnight(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

func (d Date) compare(other Date) int {
	switch {
	case d.year != other.year:
		return d.year - other.year
	case d.month != other.month:
		return int(d.month) - int(other.month)
	default:
		return d.day - other.day
	}
}
