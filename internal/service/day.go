package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/diaryof/diary-server/internal/apierrors"
	"github.com/diaryof/diary-server/internal/logger"
	"github.com/diaryof/diary-server/internal/model"
)

// DefaultDaysPerPage is the page size of day listings.
const DefaultDaysPerPage = 50

type Day struct {
	dayStore  model.DayStore
	taskStore model.TaskStore
	logger    *logger.Logger
	now       func() time.Time
}

func NewDay(dayStore model.DayStore, taskStore model.TaskStore, logger *logger.Logger) *Day {
	return &Day{
		dayStore:  dayStore,
		taskStore: taskStore,
		logger:    logger,
		now:       time.Now,
	}
}

// FindOrCreate returns the user's day for the UTC date of date, or of the
// current time when date is nil.
func (s *Day) FindOrCreate(ctx context.Context, userID uuid.UUID, date *time.Time) (model.Day, error) {
	d := s.now()
	if date != nil {
		d = *date
	}

	day, err := s.dayStore.FindOrCreate(ctx, userID, model.DateOnly(d))
	if err != nil {
		s.logger.Error("Day service: failed to find or create day",
			"user_id", userID,
			"error", err.Error())
		return model.Day{}, fmt.Errorf("failed to find or create day: %w", err)
	}

	return day, nil
}

// List returns the user's days, newest first.
func (s *Day) List(ctx context.Context, userID uuid.UUID, page model.Page) ([]model.Day, error) {
	days, err := s.dayStore.ListByUser(ctx, userID, page.Normalize(DefaultDaysPerPage))
	if err != nil {
		return nil, fmt.Errorf("failed to list days: %w", err)
	}
	return days, nil
}

// Get returns one of the user's days with its tasks.
func (s *Day) Get(ctx context.Context, userID, dayID uuid.UUID) (model.Day, error) {
	day, err := s.owned(ctx, userID, dayID, "Not authorized to access this day")
	if err != nil {
		return model.Day{}, err
	}

	tasks, err := s.taskStore.ListByDay(ctx, day.ID)
	if err != nil {
		return model.Day{}, fmt.Errorf("failed to list day tasks: %w", err)
	}
	day.Tasks = tasks

	return day, nil
}

func (s *Day) owned(ctx context.Context, userID, dayID uuid.UUID, deniedMsg string) (model.Day, error) {
	day, err := s.dayStore.GetByID(ctx, dayID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Day{}, apierrors.NewErrNotFound("Day")
	}
	if err != nil {
		return model.Day{}, fmt.Errorf("failed to get day by id: %w", err)
	}

	if day.UserID != userID {
		s.logger.Info("Day service: access denied",
			"user_id", userID,
			"day_id", dayID)
		return model.Day{}, apierrors.NewErrForbidden(deniedMsg)
	}

	return day, nil
}
