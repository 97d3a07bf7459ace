package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/diaryof/diary-server/internal/apierrors"
	"github.com/diaryof/diary-server/internal/logger"
	"github.com/diaryof/diary-server/internal/model"
)

// TaskService defines diary task operations.
type TaskService interface {
	Create(ctx context.Context, userID uuid.UUID, params model.CreateTaskParams) (model.Task, error)
	List(ctx context.Context, userID uuid.UUID, dayID *uuid.UUID, page model.Page) ([]model.Task, error)
	Update(ctx context.Context, userID, taskID uuid.UUID, update model.TaskUpdate) (model.Task, error)
	Delete(ctx context.Context, userID, taskID uuid.UUID) error
}

type tasksResponse struct {
	Tasks []model.Task `json:"tasks"`
}

// Task handles the /tasks routes.
type Task struct {
	tasks          TaskService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewTask(tasks TaskService, contextManager model.ContextManager, logger *logger.Logger) *Task {
	return &Task{tasks: tasks, contextManager: contextManager, logger: logger}
}

// List returns the caller's tasks, optionally for one day.
func (h *Task) List(c *fiber.Ctx) error {
	p, err := principal(c, h.contextManager)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	var dayID *uuid.UUID
	if raw := c.Query("dayId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return handleError(c, h.logger, apierrors.NewErrNotFound("Day"))
		}
		dayID = &id
	}

	tasks, err := h.tasks.List(c.UserContext(), p.UserID, dayID, pageFromQuery(c))
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return c.JSON(tasksResponse{Tasks: tasks})
}

// Create adds a task.
func (h *Task) Create(c *fiber.Ctx) error {
	p, err := principal(c, h.contextManager)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	var req createTaskRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	task, err := h.tasks.Create(c.UserContext(), p.UserID, model.CreateTaskParams{
		DayID:         parseOptionalUUID(req.DayID),
		DayDate:       parseOptionalDate(req.DayDate),
		Title:         req.Title,
		Description:   req.Description,
		Timestamp:     parseOptionalDate(req.Timestamp),
		AudioURL:      req.AudioURL,
		Transcription: req.Transcription,
	})
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(task)
}

// Update applies a partial update. Absent fields are kept, null clears them.
func (h *Task) Update(c *fiber.Ctx) error {
	p, err := principal(c, h.contextManager)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	taskID, err := pathUUID(c, "id", "Task")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	update, err := parseTaskUpdate(c.Body())
	if err != nil {
		return handleError(c, h.logger, err)
	}

	task, err := h.tasks.Update(c.UserContext(), p.UserID, taskID, update)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return c.JSON(task)
}

// Delete removes a task.
func (h *Task) Delete(c *fiber.Ctx) error {
	p, err := principal(c, h.contextManager)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	taskID, err := pathUUID(c, "id", "Task")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	if err := h.tasks.Delete(c.UserContext(), p.UserID, taskID); err != nil {
		return handleError(c, h.logger, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func parseTaskUpdate(body []byte) (model.TaskUpdate, error) {
	var update model.TaskUpdate
	if len(body) == 0 {
		return update, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return update, apierrors.NewErrBadRequest("Invalid request body")
	}

	strFields := map[string]*model.Optional[string]{
		"title":         &update.Title,
		"description":   &update.Description,
		"category":      &update.Category,
		"audioUrl":      &update.AudioURL,
		"transcription": &update.Transcription,
		"sentiment":     &update.Sentiment,
	}
	for name, dst := range strFields {
		raw, ok := fields[name]
		if !ok {
			continue
		}
		var v *string
		if err := json.Unmarshal(raw, &v); err != nil {
			return update, apierrors.NewErrBadRequest(name + ": must be a string")
		}
		*dst = model.Optional[string]{Set: true, Value: v}
	}

	if raw, ok := fields["timestamp"]; ok {
		var v *string
		if err := json.Unmarshal(raw, &v); err != nil {
			return update, apierrors.NewErrBadRequest("timestamp: must be a valid date")
		}
		update.Timestamp = model.Optional[time.Time]{Set: true}
		if v != nil {
			t, err := parseDate(*v)
			if err != nil {
				return update, apierrors.NewErrBadRequest("timestamp: must be a valid date")
			}
			update.Timestamp.Value = &t
		}
	}

	return update, nil
}
