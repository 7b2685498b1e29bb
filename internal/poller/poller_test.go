package poller

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlappingTickIsSkipped(t *testing.T) {
	release := make(chan struct{})
	var started atomic.Int32
	var applied atomic.Int32

	fetch := func(ctx context.Context) (interface{}, error) {
		started.Add(1)
		<-release
		return "state", nil
	}
	apply := func(result interface{}) { applied.Add(1) }

	p := New(10*time.Millisecond, fetch, apply)
	p.Start(context.Background())
	defer p.Stop()

	// let several ticks elapse while the first fetch hangs
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), started.Load(), "no second fetch may start while one is in flight")

	close(release)
	assert.Eventually(t, func() bool { return applied.Load() >= 1 }, time.Second, 5*time.Millisecond)
}

func TestOneApplyPerCompletedFetch(t *testing.T) {
	var fetches atomic.Int32
	var applies atomic.Int32

	fetch := func(ctx context.Context) (interface{}, error) {
		fetches.Add(1)
		return fetches.Load(), nil
	}
	apply := func(result interface{}) { applies.Add(1) }

	p := New(10*time.Millisecond, fetch, apply)
	p.Start(context.Background())
	time.Sleep(75 * time.Millisecond)
	p.Stop()

	// allow any in-flight apply to settle; a fetch caught mid-flight by
	// Stop is discarded, every other completed fetch applies exactly once
	time.Sleep(20 * time.Millisecond)
	assert.LessOrEqual(t, applies.Load(), fetches.Load())
	assert.GreaterOrEqual(t, applies.Load(), fetches.Load()-1)
}

func TestStopDiscardsInFlightResult(t *testing.T) {
	release := make(chan struct{})
	var applied atomic.Int32

	fetch := func(ctx context.Context) (interface{}, error) {
		<-release
		return "stale", nil
	}
	apply := func(result interface{}) { applied.Add(1) }

	p := New(10*time.Millisecond, fetch, apply)
	p.Start(context.Background())

	time.Sleep(20 * time.Millisecond)
	p.Stop()
	close(release)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), applied.Load(), "a superseded fetch must never overwrite state")
}

func TestPausesAfterConsecutiveFailures(t *testing.T) {
	var fetches atomic.Int32
	var notified atomic.Int32

	fetch := func(ctx context.Context) (interface{}, error) {
		fetches.Add(1)
		return nil, errors.New("store unreachable")
	}

	p := New(5*time.Millisecond, fetch, nil)
	p.OnUnavailable(func() { notified.Add(1) })
	p.Start(context.Background())
	defer p.Stop()

	assert.Eventually(t, p.Unavailable, time.Second, 5*time.Millisecond)
	settled := fetches.Load()
	require.GreaterOrEqual(t, settled, int32(DefaultMaxConsecutiveFailures))

	// paused loop stops issuing fetches
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, fetches.Load())
	assert.Equal(t, int32(1), notified.Load())
}

func TestResumeClearsUnavailableState(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	var applied atomic.Int32

	fetch := func(ctx context.Context) (interface{}, error) {
		if fail.Load() {
			return nil, errors.New("store unreachable")
		}
		return "fresh", nil
	}
	apply := func(result interface{}) { applied.Add(1) }

	p := New(5*time.Millisecond, fetch, apply)
	p.Start(context.Background())
	assert.Eventually(t, p.Unavailable, time.Second, 5*time.Millisecond)
	p.Stop()

	fail.Store(false)
	p.Resume()
	assert.False(t, p.Unavailable())

	p.Start(context.Background())
	defer p.Stop()
	assert.Eventually(t, func() bool { return applied.Load() >= 1 }, time.Second, 5*time.Millisecond)
}

func TestSuccessResetsFailureCount(t *testing.T) {
	var calls atomic.Int32

	// alternate failure and success; the loop must never pause
	fetch := func(ctx context.Context) (interface{}, error) {
		if calls.Add(1)%2 == 1 {
			return nil, errors.New("transient")
		}
		return "ok", nil
	}

	p := New(5*time.Millisecond, fetch, nil)
	p.Start(context.Background())
	defer p.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.False(t, p.Unavailable())
}
