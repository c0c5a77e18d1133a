package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/intervalrain/scheduler/internal/scheduling/domain"
	"github.com/intervalrain/scheduler/internal/shared/infrastructure/database"
)

// SprintRepository implements domain.SprintRepository over any supported
// driver.
type SprintRepository struct {
	conn database.Connection
}

// NewSprintRepository creates a new sprint repository.
func NewSprintRepository(conn database.Connection) *SprintRepository {
	return &SprintRepository{conn: conn}
}

// Save inserts the sprint or overwrites an existing row with the same ID.
func (r *SprintRepository) Save(ctx context.Context, sprint *domain.Sprint) error {
	_, err := r.conn.Exec(ctx, `
		INSERT INTO sprints (id, name, kind, start_date, end_date, work_days, work_start, work_end, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			kind = excluded.kind,
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			work_days = excluded.work_days,
			work_start = excluded.work_start,
			work_end = excluded.work_end`,
		sprint.ID.String(),
		sprint.Name,
		string(sprint.Kind),
		sprint.StartDate.String(),
		sprint.EndDate.String(),
		formatWorkDays(sprint.WorkDays),
		sprint.WorkStart,
		sprint.WorkEnd,
		formatTimestamp(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("save sprint %s: %w", sprint.ID, err)
	}
	return nil
}

// FindByID retrieves a sprint by its ID.
func (r *SprintRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Sprint, error) {
	var (
		rawID, name, kind, start, end string
		workDays, workStart, workEnd  string
	)
	err := r.conn.QueryRow(ctx, `
		SELECT id, name, kind, start_date, end_date, work_days, work_start, work_end
		FROM sprints WHERE id = ?`, id.String(),
	).Scan(&rawID, &name, &kind, &start, &end, &workDays, &workStart, &workEnd)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, domain.ErrSprintNotFound
		}
		return nil, fmt.Errorf("find sprint %s: %w", id, err)
	}

	sprintID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("parse sprint id: %w", err)
	}
	startDate, err := domain.ParseDate(start)
	if err != nil {
		return nil, err
	}
	endDate, err := domain.ParseDate(end)
	if err != nil {
		return nil, err
	}
	days, err := parseWorkDays(workDays)
	if err != nil {
		return nil, err
	}

	return &domain.Sprint{
		ID:        sprintID,
		Name:      name,
		Kind:      domain.SprintKind(kind),
		StartDate: startDate,
		EndDate:   endDate,
		WorkDays:  days,
		WorkStart: workStart,
		WorkEnd:   workEnd,
	}, nil
}
