package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/stretchr/testify/assert"
)

func TestNew_Level(t *testing.T) {
	l := New(int(slog.LevelWarn))

	assert.False(t, l.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, l.Enabled(context.Background(), slog.LevelWarn))
}

func TestInterceptorLogger(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{Logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))}

	il := InterceptorLogger(l)
	il.Log(context.Background(), logging.LevelDebug, "dropped")
	il.Log(context.Background(), logging.LevelWarn, "finished call", "grpc.code", "Unavailable")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, `msg="finished call"`)
	assert.Contains(t, out, "grpc.code=Unavailable")
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, int(slog.LevelInfo)).Component("reaper")

	l.Info("sweep finished", "users", 2)

	out := buf.String()
	assert.Contains(t, out, "component=reaper")
	assert.Contains(t, out, `msg="sweep finished"`)
	assert.Contains(t, out, "users=2")
}
