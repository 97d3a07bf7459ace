package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/diaryof/diary-server/internal/logger"
	"github.com/diaryof/diary-server/internal/model"
)

// DayService defines diary day operations.
type DayService interface {
	FindOrCreate(ctx context.Context, userID uuid.UUID, date *time.Time) (model.Day, error)
	List(ctx context.Context, userID uuid.UUID, page model.Page) ([]model.Day, error)
	Get(ctx context.Context, userID, dayID uuid.UUID) (model.Day, error)
}

type daysResponse struct {
	Days []model.Day `json:"days"`
}

// Day handles the /days routes.
type Day struct {
	days           DayService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewDay(days DayService, contextManager model.ContextManager, logger *logger.Logger) *Day {
	return &Day{days: days, contextManager: contextManager, logger: logger}
}

// List returns the caller's days, newest first.
func (h *Day) List(c *fiber.Ctx) error {
	p, err := principal(c, h.contextManager)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	days, err := h.days.List(c.UserContext(), p.UserID, pageFromQuery(c))
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return c.JSON(daysResponse{Days: days})
}

// Create finds or creates the caller's day for a date.
func (h *Day) Create(c *fiber.Ctx) error {
	p, err := principal(c, h.contextManager)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	var req createDayRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, h.logger, err)
	}

	day, err := h.days.FindOrCreate(c.UserContext(), p.UserID, parseOptionalDate(req.Date))
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(day)
}

// Get returns one day with its tasks.
func (h *Day) Get(c *fiber.Ctx) error {
	p, err := principal(c, h.contextManager)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	dayID, err := pathUUID(c, "id", "Day")
	if err != nil {
		return handleError(c, h.logger, err)
	}

	day, err := h.days.Get(c.UserContext(), p.UserID, dayID)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return c.JSON(day)
}

func pageFromQuery(c *fiber.Ctx) model.Page {
	return model.Page{
		Number:  c.QueryInt("page", 0),
		PerPage: c.QueryInt("perPage", 0),
	}
}
