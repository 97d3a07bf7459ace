package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/diaryof/diary-server/internal/apierrors"
	"github.com/diaryof/diary-server/internal/logger"
)

func TestLogging_Handle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    fiber.Handler
		wantStatus int
		wantLog    string
	}{
		{
			name:       "success path",
			handler:    func(c *fiber.Ctx) error { return c.SendString("ok") },
			wantStatus: http.StatusOK,
			wantLog:    "level=INFO msg=\"HTTP request completed\"",
		},
		{
			name:       "api error is written before logging",
			handler:    func(c *fiber.Ctx) error { return apierrors.NewErrForbidden("Access denied") },
			wantStatus: http.StatusForbidden,
			wantLog:    "status=403",
		},
		{
			name:       "unknown error logs at error level",
			handler:    func(c *fiber.Ctx) error { return errors.New("boom") },
			wantStatus: http.StatusInternalServerError,
			wantLog:    "level=ERROR msg=\"HTTP request completed\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			lg := logger.NewWithWriter(&buf, int(slog.LevelDebug))

			app := newTestApp()
			app.Use(NewLogging(lg).Handle)
			app.Get("/", tt.handler)

			code, _ := get(t, app, "/", nil)

			assert.Equal(t, tt.wantStatus, code)
			assert.Contains(t, buf.String(), "HTTP request started")
			assert.Contains(t, buf.String(), tt.wantLog)
			assert.Contains(t, buf.String(), "path=/")
		})
	}
}
