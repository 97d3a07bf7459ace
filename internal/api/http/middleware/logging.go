package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/diaryof/diary-server/internal/logger"
)

// Logging logs HTTP requests and results.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle logs method, path, duration and status for each request.
func (l *Logging) Handle(c *fiber.Ctx) error {
	start := time.Now()

	l.logger.Debug("HTTP request started",
		"method", c.Method(),
		"path", c.Path(),
		"ip", c.IP())

	err := c.Next()
	if err != nil {
		// Let the app error handler write the response so the status is final.
		if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
			_ = c.SendStatus(fiber.StatusInternalServerError)
		}
	}

	status := c.Response().StatusCode()
	attrs := []any{
		"method", c.Method(),
		"path", c.Path(),
		"status", status,
		"duration_ms", time.Since(start).Milliseconds(),
	}
	if status >= fiber.StatusInternalServerError {
		l.logger.Error("HTTP request completed", attrs...)
	} else {
		l.logger.Info("HTTP request completed", attrs...)
	}

	return nil
}
