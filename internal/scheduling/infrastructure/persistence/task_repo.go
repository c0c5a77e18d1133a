package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/intervalrain/scheduler/internal/scheduling/domain"
	"github.com/intervalrain/scheduler/internal/shared/infrastructure/database"
)

const taskColumns = `id, sprint_id, title, status, priority, estimated_hours, created_at`

// TaskRepository implements domain.TaskRepository over any supported driver.
type TaskRepository struct {
	conn            database.Connection
	defaultPriority int64
}

// NewTaskRepository creates a task repository. Unranked tasks sort as
// defaultPriority within a status group.
func NewTaskRepository(conn database.Connection, defaultPriority int64) *TaskRepository {
	return &TaskRepository{conn: conn, defaultPriority: defaultPriority}
}

// Save inserts the task or overwrites an existing row with the same ID.
func (r *TaskRepository) Save(ctx context.Context, task *domain.Task) error {
	var priority sql.NullInt64
	if task.Priority != nil {
		priority = sql.NullInt64{Int64: *task.Priority, Valid: true}
	}
	var estimate sql.NullFloat64
	if task.EstimatedHours != nil {
		estimate = sql.NullFloat64{Float64: *task.EstimatedHours, Valid: true}
	}

	_, err := r.conn.Exec(ctx, `
		INSERT INTO tasks (`+taskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			status = excluded.status,
			priority = excluded.priority,
			estimated_hours = excluded.estimated_hours`,
		task.ID.String(),
		task.SprintID.String(),
		task.Title,
		task.Status.String(),
		priority,
		estimate,
		formatTimestamp(task.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("save task %s: %w", task.ID, err)
	}
	return nil
}

// FindByID retrieves a task by its ID.
func (r *TaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	task, err := scanTask(r.conn.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id.String()))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task %s: %w", id, err)
	}
	return &task, nil
}

// FindBySprint returns the sprint's tasks in insertion order.
func (r *TaskRepository) FindBySprint(ctx context.Context, sprintID uuid.UUID) ([]domain.Task, error) {
	return r.query(ctx, `
		SELECT `+taskColumns+` FROM tasks
		WHERE sprint_id = ?
		ORDER BY created_at, id`, sprintID.String())
}

// FindBySprintAndStatus returns one status group in display order.
func (r *TaskRepository) FindBySprintAndStatus(ctx context.Context, sprintID uuid.UUID, status domain.Status) ([]domain.Task, error) {
	return r.query(ctx, `
		SELECT `+taskColumns+` FROM tasks
		WHERE sprint_id = ? AND status = ?
		ORDER BY COALESCE(priority, ?) DESC, created_at, id`,
		sprintID.String(), status.String(), r.defaultPriority)
}

// UpdatePriority writes a new rank and status for a task.
func (r *TaskRepository) UpdatePriority(ctx context.Context, id uuid.UUID, status domain.Status, priority int64) error {
	result, err := r.conn.Exec(ctx,
		`UPDATE tasks SET status = ?, priority = ? WHERE id = ?`,
		status.String(), priority, id.String())
	if err != nil {
		return fmt.Errorf("update priority of task %s: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update priority of task %s: %w", id, err)
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) query(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

func scanTask(row database.Row) (domain.Task, error) {
	var (
		rawID, rawSprintID, title, status, createdAt string
		priority                                     sql.NullInt64
		estimate                                     sql.NullFloat64
	)
	if err := row.Scan(&rawID, &rawSprintID, &title, &status, &priority, &estimate, &createdAt); err != nil {
		return domain.Task{}, err
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return domain.Task{}, fmt.Errorf("parse task id: %w", err)
	}
	sprintID, err := uuid.Parse(rawSprintID)
	if err != nil {
		return domain.Task{}, fmt.Errorf("parse sprint id: %w", err)
	}
	created, err := parseTimestamp(createdAt)
	if err != nil {
		return domain.Task{}, err
	}

	task := domain.Task{
		ID:        id,
		SprintID:  sprintID,
		Title:     title,
		Status:    domain.Status(status),
		CreatedAt: created,
	}
	if priority.Valid {
		task.SetPriority(priority.Int64)
	}
	if estimate.Valid {
		hours := estimate.Float64
		task.EstimatedHours = &hours
	}
	return task, nil
}
