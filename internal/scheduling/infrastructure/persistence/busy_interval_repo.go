package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/intervalrain/scheduler/internal/scheduling/domain"
	"github.com/intervalrain/scheduler/internal/shared/infrastructure/database"
)

// BusyIntervalRepository implements domain.BusyIntervalRepository over any
// supported driver.
type BusyIntervalRepository struct {
	conn database.Connection
}

// NewBusyIntervalRepository creates a new busy interval repository.
func NewBusyIntervalRepository(conn database.Connection) *BusyIntervalRepository {
	return &BusyIntervalRepository{conn: conn}
}

// Save persists a busy interval.
func (r *BusyIntervalRepository) Save(ctx context.Context, interval domain.BusyInterval) error {
	_, err := r.conn.Exec(ctx, `
		INSERT INTO busy_intervals (id, user_id, title, start_at, end_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			start_at = excluded.start_at,
			end_at = excluded.end_at`,
		interval.ID.String(),
		interval.UserID.String(),
		interval.Title,
		formatTimestamp(interval.Start),
		formatTimestamp(interval.End),
	)
	if err != nil {
		return fmt.Errorf("save busy interval %s: %w", interval.ID, err)
	}
	return nil
}

// FindByUserInRange returns the user's intervals overlapping [from, to),
// earliest first.
func (r *BusyIntervalRepository) FindByUserInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.BusyInterval, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT id, user_id, title, start_at, end_at FROM busy_intervals
		WHERE user_id = ? AND start_at < ? AND end_at > ?
		ORDER BY start_at, id`,
		userID.String(), formatTimestamp(to), formatTimestamp(from))
	if err != nil {
		return nil, fmt.Errorf("query busy intervals: %w", err)
	}
	defer rows.Close()

	var intervals []domain.BusyInterval
	for rows.Next() {
		var rawID, rawUserID, title, start, end string
		if err := rows.Scan(&rawID, &rawUserID, &title, &start, &end); err != nil {
			return nil, err
		}

		interval := domain.BusyInterval{Title: title}
		if interval.ID, err = uuid.Parse(rawID); err != nil {
			return nil, fmt.Errorf("parse busy interval id: %w", err)
		}
		if interval.UserID, err = uuid.Parse(rawUserID); err != nil {
			return nil, fmt.Errorf("parse user id: %w", err)
		}
		if interval.Start, err = parseTimestamp(start); err != nil {
			return nil, err
		}
		if interval.End, err = parseTimestamp(end); err != nil {
			return nil, err
		}
		intervals = append(intervals, interval)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate busy intervals: %w", err)
	}
	return intervals, nil
}
