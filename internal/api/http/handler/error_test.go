package handler

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

func TestHandleError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
		wantLog  bool
	}{
		{"api error", apierrors.NewErrEmailIsTaken("a@b.co"), http.StatusConflict, "user with email a@b.co already exists", false},
		{"wrapped api error", errors.Join(errors.New("ctx"), apierrors.NewErrNotFound("Day")), http.StatusNotFound, "Day not found", false},
		{"fiber error", fiber.NewError(http.StatusMethodNotAllowed, "Method Not Allowed"), http.StatusMethodNotAllowed, "Method Not Allowed", false},
		{"unknown error", errors.New("failed to find otp: connection refused"), http.StatusInternalServerError, internalErrorMessage, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			lg := logger.NewWithWriter(&buf, int(slog.LevelDebug))

			app := newTestApp()
			app.Get("/", func(c *fiber.Ctx) error { return handleError(c, lg, tt.err) })

			code, body := do(t, app, jsonRequest(t, http.MethodGet, "/", nil))
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMsg, body["error"])
			if tt.wantLog {
				assert.Contains(t, buf.String(), "level=ERROR")
				assert.Contains(t, buf.String(), "connection refused")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestErrorHandler_UnknownRoute(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	code, body := do(t, app, jsonRequest(t, http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, body["error"], "Cannot GET /nowhere")
}

func TestErrorHandler_ReturnedError(t *testing.T) {
	t.Parallel()

	app := newTestApp()
	app.Get("/", func(c *fiber.Ctx) error { return errors.New("db down") })

	code, body := do(t, app, jsonRequest(t, http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, internalErrorMessage, body["error"])
}
