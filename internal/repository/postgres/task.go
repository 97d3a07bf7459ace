package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/diaryof/diary-server/internal/model"
)

var _ model.TaskStore = (*TaskRepository)(nil)

const taskColumns = `id, day_id, title, description, timestamp, category, audio_url,
			  transcription, sentiment, created_at, updated_at`

type TaskRepository struct {
	db *Connection
}

func NewTaskRepository(db *Connection) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

func scanTask(row pgx.Row) (model.Task, error) {
	var t model.Task
	err := row.Scan(
		&t.ID, &t.DayID, &t.Title, &t.Description, &t.Timestamp, &t.Category, &t.AudioURL,
		&t.Transcription, &t.Sentiment, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func collectTasks(rows pgx.Rows) ([]model.Task, error) {
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

func (r *TaskRepository) Create(ctx context.Context, task model.Task) (model.Task, error) {
	query := `INSERT INTO tasks (id, day_id, title, description, timestamp, category, audio_url,
			  transcription, sentiment, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  RETURNING ` + taskColumns

	saved, err := scanTask(r.db.QueryRow(ctx, query,
		task.ID, task.DayID, task.Title, task.Description, task.Timestamp, task.Category, task.AudioURL,
		task.Transcription, task.Sentiment, task.CreatedAt, task.UpdatedAt,
	))
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return saved, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	task, err := scanTask(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to get task by id: %w", err)
	}

	return task, nil
}

func (r *TaskRepository) ListByDays(ctx context.Context, dayIDs []uuid.UUID, page model.Page) ([]model.Task, error) {
	if len(dayIDs) == 0 {
		return []model.Task{}, nil
	}

	ids := make([]string, len(dayIDs))
	for i, id := range dayIDs {
		ids[i] = id.String()
	}

	query := `SELECT ` + taskColumns + ` FROM tasks
			  WHERE day_id = ANY($1::uuid[])
			  ORDER BY timestamp DESC
			  LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, ids, page.PerPage, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return collectTasks(rows)
}

func (r *TaskRepository) ListByDay(ctx context.Context, dayID uuid.UUID) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
			  WHERE day_id = $1
			  ORDER BY timestamp DESC`

	rows, err := r.db.Query(ctx, query, dayID)
	if err != nil {
		return nil, fmt.Errorf("failed to list day tasks: %w", err)
	}

	return collectTasks(rows)
}

func (r *TaskRepository) Update(ctx context.Context, id uuid.UUID, update model.TaskUpdate) (model.Task, error) {
	set, args := buildTaskUpdate(update)
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := `UPDATE tasks SET ` + strings.Join(set, ", ") + `, updated_at = now()
			  WHERE id = $` + fmt.Sprint(len(args)) + `
			  RETURNING ` + taskColumns

	task, err := scanTask(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// buildTaskUpdate returns the SET assignments and their positional arguments
// for the fields present in update. A set timestamp without a value is skipped
// because the column is NOT NULL.
func buildTaskUpdate(update model.TaskUpdate) ([]string, []any) {
	var set []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Title.Set {
		add("title", update.Title.Value)
	}
	if update.Description.Set {
		add("description", update.Description.Value)
	}
	if update.Timestamp.Set && update.Timestamp.Value != nil {
		add("timestamp", *update.Timestamp.Value)
	}
	if update.Category.Set {
		add("category", update.Category.Value)
	}
	if update.AudioURL.Set {
		add("audio_url", update.AudioURL.Value)
	}
	if update.Transcription.Set {
		add("transcription", update.Transcription.Value)
	}
	if update.Sentiment.Set {
		add("sentiment", update.Sentiment.Value)
	}

	return set, args
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) OwnerOf(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	query := `SELECT d.user_id FROM tasks t
			  JOIN days d ON d.id = t.day_id
			  WHERE t.id = $1`

	var owner uuid.UUID
	if err := r.db.QueryRow(ctx, query, id).Scan(&owner); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, model.ErrNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to get task owner: %w", err)
	}

	return owner, nil
}

func (r *TaskRepository) DayIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM days WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list day ids: %w", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan day id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate day ids: %w", err)
	}

	return ids, nil
}
