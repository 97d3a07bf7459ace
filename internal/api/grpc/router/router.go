package router

import (
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/diaryof/diary-server/internal/api/grpc/healthcheck"
	"github.com/diaryof/diary-server/internal/api/grpc/middleware"
	"github.com/diaryof/diary-server/internal/logger"
)

// Router builds the operational gRPC server: health checks and reflection.
type Router struct {
	checker *healthcheck.Checker
	logger  *logger.Logger
}

// New creates new gRPC Router instance.
func New(checker *healthcheck.Checker, logger *logger.Logger) *Router {
	return &Router{checker: checker, logger: logger}
}

// Register registers the health and reflection services behind the
// recovery and logging interceptors.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(logging.Unary()...),
		grpc.ChainStreamInterceptor(logging.Stream()...),
	)
	healthpb.RegisterHealthServer(s, r.checker.Server())
	reflection.Register(s)

	return s
}
