package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const staleReason = "generation timed out"

type StaleThumbnailStore interface {
	FailStalePending(ctx context.Context, cutoff time.Time, reason string) (int64, error)
}

// Reconciler fails thumbnails that stayed pending longer than timeout, e.g.
// because the process died mid-generation.
type Reconciler struct {
	store   StaleThumbnailStore
	timeout time.Duration
	logger  zerolog.Logger
	now     func() time.Time
}

func NewReconciler(store StaleThumbnailStore, timeout time.Duration, logger zerolog.Logger) *Reconciler {
	return &Reconciler{
		store:   store,
		timeout: timeout,
		logger:  logger,
		now:     time.Now,
	}
}

// Sweep fails every stale pending thumbnail and returns how many it touched.
func (r *Reconciler) Sweep(ctx context.Context) (int64, error) {
	cutoff := r.now().Add(-r.timeout)
	n, err := r.store.FailStalePending(ctx, cutoff, staleReason)
	if err != nil {
		r.logger.Error().Err(err).Msg("stale thumbnail sweep failed")
		return 0, err
	}
	if n > 0 {
		r.logger.Warn().Int64("count", n).Time("cutoff", cutoff).Msg("failed stale pending thumbnails")
	}
	return n, nil
}

// Schedule registers Sweep on c using a cron spec such as "@every 5m".
func (r *Reconciler) Schedule(c *cron.Cron, spec string) (cron.EntryID, error) {
	return c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		_, _ = r.Sweep(ctx)
	})
}
