package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/diaryof/diary-server/internal/apierrors"
	"github.com/diaryof/diary-server/internal/logger"
	"github.com/diaryof/diary-server/internal/model"
)

// DefaultTasksPerPage is the page size of task listings.
const DefaultTasksPerPage = 100

type Task struct {
	taskStore model.TaskStore
	days      *Day
	logger    *logger.Logger
	now       func() time.Time
}

func NewTask(taskStore model.TaskStore, days *Day, logger *logger.Logger) *Task {
	return &Task{
		taskStore: taskStore,
		days:      days,
		logger:    logger,
		now:       time.Now,
	}
}

// Create adds a task to the given day, or to the day derived from the
// params when no day is given.
func (s *Task) Create(ctx context.Context, userID uuid.UUID, params model.CreateTaskParams) (model.Task, error) {
	if isBlank(params.Title) && isBlank(params.Description) && isBlank(params.AudioURL) {
		return model.Task{}, apierrors.NewErrBadRequest("Provide title or description or an audioUrl")
	}

	var day model.Day
	var err error
	if params.DayID != nil {
		day, err = s.days.owned(ctx, userID, *params.DayID, "Not authorized to add tasks to this day")
	} else {
		date := params.DayDate
		if date == nil {
			date = params.Timestamp
		}
		day, err = s.days.FindOrCreate(ctx, userID, date)
	}
	if err != nil {
		return model.Task{}, err
	}

	now := s.now()
	timestamp := now
	if params.Timestamp != nil {
		timestamp = *params.Timestamp
	}

	task, err := s.taskStore.Create(ctx, model.Task{
		ID:            uuid.New(),
		DayID:         day.ID,
		Title:         params.Title,
		Description:   nonBlank(params.Description),
		Timestamp:     timestamp.UTC(),
		AudioURL:      nonBlank(params.AudioURL),
		Transcription: nonBlank(params.Transcription),
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		s.logger.Error("Task service: failed to create task",
			"user_id", userID,
			"day_id", day.ID,
			"error", err.Error())
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// List returns the user's tasks, newest first, optionally limited to one day.
func (s *Task) List(ctx context.Context, userID uuid.UUID, dayID *uuid.UUID, page model.Page) ([]model.Task, error) {
	dayIDs, err := s.taskStore.DayIDsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user days: %w", err)
	}

	if dayID != nil {
		if !slices.Contains(dayIDs, *dayID) {
			return nil, apierrors.NewErrNotFound("Day")
		}
		dayIDs = []uuid.UUID{*dayID}
	}
	if len(dayIDs) == 0 {
		return []model.Task{}, nil
	}

	tasks, err := s.taskStore.ListByDays(ctx, dayIDs, page.Normalize(DefaultTasksPerPage))
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Update applies a partial update to one of the user's tasks.
func (s *Task) Update(ctx context.Context, userID, taskID uuid.UUID, update model.TaskUpdate) (model.Task, error) {
	if err := s.authorize(ctx, userID, taskID, "Not authorized to update this task"); err != nil {
		return model.Task{}, err
	}

	if update.Timestamp.Set && update.Timestamp.Value == nil {
		update.Timestamp = model.Optional[time.Time]{}
	}
	if update.IsEmpty() {
		return s.get(ctx, taskID)
	}

	task, err := s.taskStore.Update(ctx, taskID, update)
	if errors.Is(err, model.ErrNotFound) {
		return model.Task{}, apierrors.NewErrNotFound("Task")
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// Delete removes one of the user's tasks.
func (s *Task) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	if err := s.authorize(ctx, userID, taskID, "Not authorized to delete this task"); err != nil {
		return err
	}

	err := s.taskStore.Delete(ctx, taskID)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrNotFound("Task")
	}
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Info("Task service: task deleted",
		"user_id", userID,
		"task_id", taskID)

	return nil
}

func (s *Task) authorize(ctx context.Context, userID, taskID uuid.UUID, deniedMsg string) error {
	owner, err := s.taskStore.OwnerOf(ctx, taskID)
	if errors.Is(err, model.ErrNotFound) {
		return apierrors.NewErrNotFound("Task")
	}
	if err != nil {
		return fmt.Errorf("failed to get task owner: %w", err)
	}
	if owner != userID {
		return apierrors.NewErrForbidden(deniedMsg)
	}
	return nil
}

func (s *Task) get(ctx context.Context, taskID uuid.UUID) (model.Task, error) {
	task, err := s.taskStore.GetByID(ctx, taskID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Task{}, apierrors.NewErrNotFound("Task")
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to get task by id: %w", err)
	}
	return task, nil
}

func isBlank(s *string) bool {
	return s == nil || *s == ""
}

func nonBlank(s *string) *string {
	if isBlank(s) {
		return nil
	}
	return s
}
