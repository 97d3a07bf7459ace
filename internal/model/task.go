package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TaskStore defines persistence operations for diary tasks.
type TaskStore interface {
	Create(ctx context.Context, task Task) (Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (Task, error)
	ListByDays(ctx context.Context, dayIDs []uuid.UUID, page Page) ([]Task, error)
	ListByDay(ctx context.Context, dayID uuid.UUID) ([]Task, error)
	Update(ctx context.Context, id uuid.UUID, update TaskUpdate) (Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// OwnerOf returns the user owning the day the task belongs to.
	OwnerOf(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	DayIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// Task is a single diary entry, typed or dictated.
type Task struct {
	ID            uuid.UUID `json:"id"`
	DayID         uuid.UUID `json:"dayId"`
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	Timestamp     time.Time `json:"timestamp"`
	Category      *string   `json:"category"`
	AudioURL      *string   `json:"audioUrl"`
	Transcription *string   `json:"transcription"`
	Sentiment     *string   `json:"sentiment"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CreateTaskParams describes a new task. Without DayID the day is derived from
// DayDate, then Timestamp, then the current time.
type CreateTaskParams struct {
	DayID         *uuid.UUID
	DayDate       *time.Time
	Title         *string
	Description   *string
	Timestamp     *time.Time
	AudioURL      *string
	Transcription *string
}

// Optional is a patch value: Set marks the field as present, a nil Value clears it.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns a set Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns a set Optional clearing the field.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// TaskUpdate is a partial task update; unset fields keep their values.
type TaskUpdate struct {
	Title         Optional[string]
	Description   Optional[string]
	Timestamp     Optional[time.Time]
	Category      Optional[string]
	AudioURL      Optional[string]
	Transcription Optional[string]
	Sentiment     Optional[string]
}

// IsEmpty reports whether no field is set.
func (u TaskUpdate) IsEmpty() bool {
	return !u.Title.Set && !u.Description.Set && !u.Timestamp.Set && !u.Category.Set &&
		!u.AudioURL.Set && !u.Transcription.Set && !u.Sentiment.Set
}
