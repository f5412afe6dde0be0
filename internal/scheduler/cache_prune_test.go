package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePruner struct {
	maxAge time.Duration
	calls  atomic.Int32
	err    error
}

func (f *fakePruner) MaxAge() time.Duration { return f.maxAge }

func (f *fakePruner) Prune() (int, error) {
	f.calls.Add(1)
	return 3, f.err
}

func TestValidateSchedule(t *testing.T) {
	assert.NoError(t, ValidateSchedule("0 3 * * *"))
	assert.NoError(t, ValidateSchedule("*/15 * * * *"))
	assert.Error(t, ValidateSchedule("0 0 3 * * *"))
	assert.Error(t, ValidateSchedule("tomorrow"))
}

func TestCachePruneScheduler_DisabledWithoutMaxAge(t *testing.T) {
	s := NewCachePruneScheduler(&fakePruner{}, "0 3 * * *", nil)
	require.NoError(t, s.Start(context.Background()))
	assert.False(t, s.IsRunning())
	assert.Nil(t, s.NextRun())
}

func TestCachePruneScheduler_InvalidSchedule(t *testing.T) {
	s := NewCachePruneScheduler(&fakePruner{maxAge: time.Hour}, "not a schedule", nil)
	assert.Error(t, s.Start(context.Background()))
	assert.False(t, s.IsRunning())
}

func TestCachePruneScheduler_StartStop(t *testing.T) {
	s := NewCachePruneScheduler(&fakePruner{maxAge: time.Hour}, "0 3 * * *", nil)

	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.IsRunning())

	next := s.NextRun()
	require.NotNil(t, next)
	assert.Equal(t, 3, next.Hour())
	assert.Zero(t, next.Minute())

	require.NoError(t, s.Start(context.Background()), "second start is a no-op")

	s.Stop()
	assert.False(t, s.IsRunning())
	assert.Nil(t, s.NextRun())
	s.Stop()
}

func TestCachePruneScheduler_StopsWithContext(t *testing.T) {
	s := NewCachePruneScheduler(&fakePruner{maxAge: time.Hour}, "0 3 * * *", nil)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx))
	cancel()

	assert.Eventually(t, func() bool { return !s.IsRunning() }, 2*time.Second, 10*time.Millisecond)
}

func TestCachePruneScheduler_RunNow(t *testing.T) {
	p := &fakePruner{maxAge: time.Hour}
	s := NewCachePruneScheduler(p, "0 3 * * *", nil)

	assert.Equal(t, 3, s.RunNow())
	assert.EqualValues(t, 1, p.calls.Load())

	p.err = errors.New("store down")
	s.RunNow()
	assert.EqualValues(t, 2, p.calls.Load())
}
