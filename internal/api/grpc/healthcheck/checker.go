// Package healthcheck reports database reachability through the gRPC health protocol.
package healthcheck

import (
	"context"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/diaryof/diary-server/internal/logger"
	"github.com/diaryof/diary-server/internal/model"
)

// ServiceName is the health service name reported alongside the server-wide status.
const ServiceName = "diary.Server"

const (
	// DefaultInterval is the pause between database probes.
	DefaultInterval = 30 * time.Second

	probeTimeout = 5 * time.Second
)

// Checker probes the database and publishes the result on a gRPC health server.
type Checker struct {
	server   *health.Server
	db       model.Pinger
	interval time.Duration
	logger   *logger.Logger
}

// NewChecker creates a Checker. Both statuses start as NOT_SERVING until the first probe.
func NewChecker(db model.Pinger, interval time.Duration, logger *logger.Logger) *Checker {
	if interval <= 0 {
		interval = DefaultInterval
	}

	server := health.NewServer()
	server.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	server.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Checker{
		server:   server,
		db:       db,
		interval: interval,
		logger:   logger,
	}
}

// Server returns the health service to register on a gRPC server.
func (c *Checker) Server() *health.Server {
	return c.server
}

// Probe pings the database once and updates the published status.
func (c *Checker) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := c.db.Ping(ctx); err != nil {
		c.logger.Warn("Health checker: database probe failed",
			"error", err.Error())
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	c.server.SetServingStatus("", status)
	c.server.SetServingStatus(ServiceName, status)
	return status
}

// Run probes immediately and then every interval until ctx is done. On return
// every status is NOT_SERVING and further updates are ignored.
func (c *Checker) Run(ctx context.Context) {
	defer c.server.Shutdown()

	c.Probe(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("Health checker: stopping")
			return
		case <-ticker.C:
			c.Probe(ctx)
		}
	}
}
