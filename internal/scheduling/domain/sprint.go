package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptySprintName = errors.New("sprint name cannot be empty")
	ErrInvalidWeekday  = errors.New("weekday must be between 1 (Monday) and 7 (Sunday)")
	ErrInvalidKind     = errors.New("sprint kind must be project or casual")
)

// SprintKind selects the default work hours of a sprint.
type SprintKind string

const (
	SprintKindProject SprintKind = "project"
	SprintKindCasual  SprintKind = "casual"
)

// Default work windows per sprint kind.
const (
	ProjectWorkStart = "08:30"
	ProjectWorkEnd   = "17:30"
	CasualWorkStart  = "00:00"
	CasualWorkEnd    = "23:59"
)

// DefaultWorkDays is Monday through Friday in sprint-record encoding.
var DefaultWorkDays = []int{1, 2, 3, 4, 5}

// ParseSprintKind parses a sprint kind name.
func ParseSprintKind(s string) (SprintKind, error) {
	switch SprintKind(strings.ToLower(strings.TrimSpace(s))) {
	case SprintKindProject, "":
		return SprintKindProject, nil
	case SprintKindCasual:
		return SprintKindCasual, nil
	default:
		return "", ErrInvalidKind
	}
}

// Sprint is the persisted sprint record. Weekdays use 1 (Monday) to
// 7 (Sunday); work hours are "HH:MM" strings and may be empty.
type Sprint struct {
	ID        uuid.UUID
	Name      string
	Kind      SprintKind
	StartDate Date
	EndDate   Date
	WorkDays  []int
	WorkStart string
	WorkEnd   string
}

// NewSprint creates a sprint with a generated ID.
func NewSprint(name string, kind SprintKind, start, end Date) (*Sprint, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptySprintName
	}
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}
	if kind == "" {
		kind = SprintKindProject
	}
	return &Sprint{
		ID:        uuid.New(),
		Name:      name,
		Kind:      kind,
		StartDate: start,
		EndDate:   end,
	}, nil
}

// CalendarConfig converts the sprint record into a work calendar,
// applying the weekday and work-hour fallbacks.
func (s Sprint) CalendarConfig(loc *time.Location) (WorkCalendarConfig, error) {
	days := s.WorkDays
	if len(days) == 0 {
		days = DefaultWorkDays
	}
	weekdays := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		wd, err := WeekdayFromISO(d)
		if err != nil {
			return WorkCalendarConfig{}, err
		}
		weekdays = append(weekdays, wd)
	}

	startStr, endStr := s.WorkStart, s.WorkEnd
	if startStr == "" || endStr == "" {
		startStr, endStr = ProjectWorkStart, ProjectWorkEnd
		if s.Kind == SprintKindCasual {
			startStr, endStr = CasualWorkStart, CasualWorkEnd
		}
	}
	start, err := ParseTimeOfDay(startStr)
	if err != nil {
		return WorkCalendarConfig{}, fmt.Errorf("work start: %w", err)
	}
	end, err := ParseTimeOfDay(endStr)
	if err != nil {
		return WorkCalendarConfig{}, fmt.Errorf("work end: %w", err)
	}

	return WorkCalendarConfig{
		Weekdays:    weekdays,
		WorkStart:   start,
		WorkEnd:     end,
		SprintStart: s.StartDate,
		SprintEnd:   s.EndDate,
		Location:    loc,
	}, nil
}

// WeekdayFromISO maps 1 (Monday) .. 7 (Sunday) onto time.Weekday.
func WeekdayFromISO(d int) (time.Weekday, error) {
	if d < 1 || d > 7 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidWeekday, d)
	}
	return time.Weekday(d % 7), nil
}
