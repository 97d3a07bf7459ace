package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/diaryof/diary-server/internal/apierrors"
	"github.com/diaryof/diary-server/internal/logger"
)

const internalErrorMessage = "Internal server error"

// errorBody is the JSON shape of every failed response.
type errorBody struct {
	Error string `json:"error"`
}

// handleError writes err as a JSON failure. Errors that are not meant for the
// caller are logged and answered with a generic 500.
func handleError(c *fiber.Ctx, logger *logger.Logger, err error) error {
	if apiErr, ok := apierrors.As(err); ok {
		return c.Status(apiErr.HTTPCode).JSON(errorBody{Error: apiErr.Message})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(errorBody{Error: fiberErr.Message})
	}

	logger.Error("HTTP handler: unhandled error",
		"method", c.Method(),
		"path", c.Path(),
		"error", err.Error())

	return c.Status(fiber.StatusInternalServerError).JSON(errorBody{Error: internalErrorMessage})
}

// ErrorHandler is the fiber error handler for errors escaping handlers and
// middleware, such as unknown routes and recovered panics.
func ErrorHandler(logger *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		return handleError(c, logger, err)
	}
}
