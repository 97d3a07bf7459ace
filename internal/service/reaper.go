package service

import (
	"context"
	"time"

	"github.com/diaryof/diary-server/internal/logger"
	"github.com/diaryof/diary-server/internal/model"
)

// DefaultReapInterval is the sweep cadence used when none is configured.
const DefaultReapInterval = time.Hour

const reapTimeout = time.Minute

// ReapResult counts the rows removed by one sweep. A negative count means the step failed.
type ReapResult struct {
	Guests       int64
	PendingUsers int64
	Tokens       int64
}

// Reaper periodically deletes expired guests, abandoned registrations and
// stale verification tokens.
type Reaper struct {
	userStore  model.UserStore
	tokenStore model.VerificationTokenStore
	logger     *logger.Logger
	interval   time.Duration
	now        func() time.Time
}

func NewReaper(userStore model.UserStore, tokenStore model.VerificationTokenStore, logger *logger.Logger, interval time.Duration) *Reaper {
	if interval <= 0 {
		interval = DefaultReapInterval
	}
	return &Reaper{
		userStore:  userStore,
		tokenStore: tokenStore,
		logger:     logger,
		interval:   interval,
		now:        time.Now,
	}
}

// Run sweeps once immediately and then on every tick until ctx is done.
func (r *Reaper) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.sweepWithTimeout(ctx)

	for {
		select {
		case <-ticker.C:
			r.sweepWithTimeout(ctx)
		case <-ctx.Done():
			r.logger.Info("Reaper: stopped")
			return
		}
	}
}

func (r *Reaper) sweepWithTimeout(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, reapTimeout)
	defer cancel()
	r.Sweep(sweepCtx)
}

// Sweep performs one cleanup pass. Each step runs even when an earlier one
// fails; failures are logged and retried on the next pass.
func (r *Reaper) Sweep(ctx context.Context) ReapResult {
	now := r.now()
	result := ReapResult{
		Guests:       r.deleteUsers(ctx, model.RoleGuest, now),
		PendingUsers: r.deleteUsers(ctx, model.RoleTemp, now),
	}

	tokens, err := r.tokenStore.DeleteExpired(ctx, now)
	if err != nil {
		r.logger.Error("Reaper: failed to delete expired verification tokens",
			"error", err.Error())
		tokens = -1
	}
	result.Tokens = tokens

	if result.Guests > 0 || result.PendingUsers > 0 || result.Tokens > 0 {
		r.logger.Info("Reaper: cleaned up expired records",
			"guests", result.Guests,
			"pending_users", result.PendingUsers,
			"tokens", result.Tokens)
	}

	return result
}

func (r *Reaper) deleteUsers(ctx context.Context, role model.Role, now time.Time) int64 {
	n, err := r.userStore.DeleteExpired(ctx, role, now)
	if err != nil {
		r.logger.Error("Reaper: failed to delete expired users",
			"role", role,
			"error", err.Error())
		return -1
	}
	return n
}
