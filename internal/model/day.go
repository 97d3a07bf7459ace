package model

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
)

// DayStore defines persistence operations for diary days.
type DayStore interface {
	// FindOrCreate returns the user's day for date, creating it when missing.
	FindOrCreate(ctx context.Context, userID uuid.UUID, date time.Time) (Day, error)
	GetByID(ctx context.Context, id uuid.UUID) (Day, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page Page) ([]Day, error)
}

// Day groups a user's entries for one UTC calendar date.
type Day struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Tasks     []Task    `json:"tasks,omitempty"`
}

// DateOnly truncates t to midnight UTC of its UTC calendar date.
func DateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Page selects a window of a listing. Page numbers start at 1.
type Page struct {
	Number  int
	PerPage int
}

// MaxPerPage caps the size of a single page.
const MaxPerPage = 200

// Normalize replaces non-positive values with 1 and defaultPerPage and caps
// PerPage at MaxPerPage.
func (p Page) Normalize(defaultPerPage int) Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.PerPage < 1 {
		p.PerPage = defaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	return p
}

// Offset returns the number of rows to skip, saturating at math.MaxInt.
func (p Page) Offset() int {
	if p.Number <= 1 || p.PerPage <= 0 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.PerPage {
		return math.MaxInt
	}
	return (p.Number - 1) * p.PerPage
}
