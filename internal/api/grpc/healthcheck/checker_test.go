package healthcheck

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/diaryof/diary-server/internal/mocks"
	"github.com/diaryof/diary-server/internal/testutil"
)

func status(t *testing.T, c *Checker, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()

	resp, err := c.Server().Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestNewChecker_StartsNotServing(t *testing.T) {
	t.Parallel()

	c := NewChecker(mocks.NewPinger(t), 0, testutil.MakeNoopLogger())

	assert.Equal(t, DefaultInterval, c.interval)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, c, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, c, ServiceName))
}

func TestChecker_Probe(t *testing.T) {
	t.Parallel()

	db := mocks.NewPinger(t)
	db.On("Ping", mock.Anything).Return(nil).Once()
	db.On("Ping", mock.Anything).Return(assert.AnError).Once()

	c := NewChecker(db, time.Minute, testutil.MakeNoopLogger())

	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, c.Probe(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status(t, c, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status(t, c, ServiceName))

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, c.Probe(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, c, ServiceName))
}

func TestChecker_Probe_HasDeadline(t *testing.T) {
	t.Parallel()

	db := mocks.NewPinger(t)
	db.On("Ping", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	})).Return(nil)

	c := NewChecker(db, time.Minute, testutil.MakeNoopLogger())
	c.Probe(context.Background())
}

func TestChecker_Run(t *testing.T) {
	t.Parallel()

	db := mocks.NewPinger(t)
	db.On("Ping", mock.Anything).Return(nil)

	c := NewChecker(db, 10*time.Millisecond, testutil.MakeNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return status(t, c, ServiceName) == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("checker did not stop")
	}

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, c, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, c, ServiceName))

	c.Probe(context.Background())
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, c, ServiceName), "updates after shutdown are ignored")
}
