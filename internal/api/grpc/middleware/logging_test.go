package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/diaryof/diary-server/internal/logger"
)

func chain(interceptors []grpc.UnaryServerInterceptor, method string, handler grpc.UnaryHandler) grpc.UnaryHandler {
	info := &grpc.UnaryServerInfo{FullMethod: method}
	for i := len(interceptors) - 1; i >= 0; i-- {
		next, ic := handler, interceptors[i]
		handler = func(ctx context.Context, req any) (any, error) {
			return ic(ctx, req, info, next)
		}
	}
	return handler
}

func TestLogging_Unary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		method   string
		handler  grpc.UnaryHandler
		wantCode codes.Code
		wantLog  string
		noLog    bool
	}{
		{
			name:     "success path",
			method:   "/grpc.reflection.v1.ServerReflection/Call",
			handler:  func(ctx context.Context, req any) (any, error) { return "ok", nil },
			wantCode: codes.OK,
			wantLog:  "finished call",
		},
		{
			name:   "grpc error propagates",
			method: "/grpc.reflection.v1.ServerReflection/Call",
			handler: func(ctx context.Context, req any) (any, error) {
				return nil, status.Error(codes.InvalidArgument, "bad input")
			},
			wantCode: codes.InvalidArgument,
			wantLog:  "grpc.code=InvalidArgument",
		},
		{
			name:   "panic becomes Internal",
			method: "/grpc.reflection.v1.ServerReflection/Call",
			handler: func(ctx context.Context, req any) (any, error) {
				panic(errors.New("boom"))
			},
			wantCode: codes.Internal,
			wantLog:  "gRPC handler panicked",
		},
		{
			name:     "health checks are not logged",
			method:   "/grpc.health.v1.Health/Check",
			handler:  func(ctx context.Context, req any) (any, error) { return "ok", nil },
			wantCode: codes.OK,
			noLog:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			lg := logger.NewWithWriter(&buf, int(slog.LevelDebug))

			h := chain(NewLogging(lg).Unary(), tt.method, tt.handler)
			_, err := h(context.Background(), struct{}{})

			require.Equal(t, tt.wantCode, status.Code(err))
			if tt.noLog {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), tt.wantLog)
		})
	}
}

func TestLogging_Stream(t *testing.T) {
	t.Parallel()

	assert.Len(t, NewLogging(logger.New(0)).Stream(), 2)
}
