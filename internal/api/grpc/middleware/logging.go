package middleware

import (
	"context"
	"runtime/debug"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/diaryof/diary-server/internal/logger"
)

// healthPrefix matches the health protocol, which probes poll too often to log.
var healthPrefix = "/" + healthpb.Health_ServiceDesc.ServiceName + "/"

// Logging builds the logging and recovery interceptors of the ops server.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

func loggable(_ context.Context, c interceptors.CallMeta) bool {
	return !strings.HasPrefix(c.FullMethod(), healthPrefix)
}

func (l *Logging) recover(ctx context.Context, p any) error {
	l.logger.ErrorContext(ctx, "gRPC handler panicked",
		"panic", p,
		"stack", string(debug.Stack()))
	return status.Error(codes.Internal, "internal error")
}

// Unary returns the unary interceptor chain: recovery first, then logging.
func (l *Logging) Unary() []grpc.UnaryServerInterceptor {
	return []grpc.UnaryServerInterceptor{
		recovery.UnaryServerInterceptor(recovery.WithRecoveryHandlerContext(l.recover)),
		selector.UnaryServerInterceptor(
			logging.UnaryServerInterceptor(logger.InterceptorLogger(l.logger),
				logging.WithLogOnEvents(logging.FinishCall)),
			selector.MatchFunc(loggable),
		),
	}
}

// Stream returns the stream interceptor chain: recovery first, then logging.
func (l *Logging) Stream() []grpc.StreamServerInterceptor {
	return []grpc.StreamServerInterceptor{
		recovery.StreamServerInterceptor(recovery.WithRecoveryHandlerContext(l.recover)),
		selector.StreamServerInterceptor(
			logging.StreamServerInterceptor(logger.InterceptorLogger(l.logger),
				logging.WithLogOnEvents(logging.StartCall, logging.FinishCall)),
			selector.MatchFunc(loggable),
		),
	}
}
