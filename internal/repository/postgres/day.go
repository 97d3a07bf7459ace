package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/diaryof/diary-server/internal/model"
)

var _ model.DayStore = (*DayRepository)(nil)

const dayColumns = `id, user_id, date, created_at, updated_at`

type DayRepository struct {
	db *Connection
}

func NewDayRepository(db *Connection) *DayRepository {
	return &DayRepository{
		db: db,
	}
}

func scanDay(row pgx.Row) (model.Day, error) {
	var d model.Day
	err := row.Scan(&d.ID, &d.UserID, &d.Date, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

// FindOrCreate relies on the (user_id, date) unique key so concurrent callers
// get the same row.
func (r *DayRepository) FindOrCreate(ctx context.Context, userID uuid.UUID, date time.Time) (model.Day, error) {
	query := `INSERT INTO days (id, user_id, date, created_at, updated_at)
			  VALUES ($1, $2, $3, now(), now())
			  ON CONFLICT (user_id, date) DO UPDATE SET updated_at = days.updated_at
			  RETURNING ` + dayColumns

	day, err := scanDay(r.db.QueryRow(ctx, query, uuid.New(), userID, date))
	if err != nil {
		return model.Day{}, fmt.Errorf("failed to find or create day: %w", err)
	}

	return day, nil
}

func (r *DayRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Day, error) {
	query := `SELECT ` + dayColumns + ` FROM days WHERE id = $1`

	day, err := scanDay(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Day{}, model.ErrNotFound
		}
		return model.Day{}, fmt.Errorf("failed to get day by id: %w", err)
	}

	return day, nil
}

func (r *DayRepository) ListByUser(ctx context.Context, userID uuid.UUID, page model.Page) ([]model.Day, error) {
	query := `SELECT ` + dayColumns + ` FROM days
			  WHERE user_id = $1
			  ORDER BY date DESC
			  LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, userID, page.PerPage, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list days: %w", err)
	}
	defer rows.Close()

	days := make([]model.Day, 0)
	for rows.Next() {
		day, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan day: %w", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate days: %w", err)
	}

	return days, nil
}
