package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStaleStore struct {
	cutoff time.Time
	reason string
	count  int64
	err    error
	calls  int
}

func (f *fakeStaleStore) FailStalePending(ctx context.Context, cutoff time.Time, reason string) (int64, error) {
	f.calls++
	f.cutoff = cutoff
	f.reason = reason
	return f.count, f.err
}

func TestReconcilerSweep(t *testing.T) {
	store := &fakeStaleStore{count: 2}
	r := NewReconciler(store, 10*time.Minute, zerolog.Nop())
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return fixed }

	n, err := r.Sweep(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 2, n)
	assert.Equal(t, fixed.Add(-10*time.Minute), store.cutoff)
	assert.Equal(t, "generation timed out", store.reason)
}

func TestReconcilerSweep_StoreError(t *testing.T) {
	store := &fakeStaleStore{err: errors.New("connection refused")}
	r := NewReconciler(store, time.Minute, zerolog.Nop())

	n, err := r.Sweep(context.Background())
	assert.Error(t, err)
	assert.Zero(t, n)
}

func TestReconcilerSchedule(t *testing.T) {
	r := NewReconciler(&fakeStaleStore{}, time.Minute, zerolog.Nop())
	c := cron.New()

	id, err := r.Schedule(c, "@every 5m")
	require.NoError(t, err)
	assert.NotZero(t, id)
	assert.Len(t, c.Entries(), 1)

	_, err = r.Schedule(c, "not a schedule")
	assert.Error(t, err)
}
