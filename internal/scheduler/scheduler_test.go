package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"letterChat/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lockedView(id string, deliverAt time.Time) models.MessageView {
	return models.MessageView{ID: id, Locked: true, DeliverAt: deliverAt}
}

func unlockedView(id string) models.MessageView {
	return models.MessageView{ID: id, Locked: false}
}

func TestRescheduleArmsOneTimerPerLockedLetter(t *testing.T) {
	us := NewUnlockScheduler(1, nil)
	now := time.Now()

	views := []models.MessageView{
		lockedView("a", now.Add(time.Hour)),
		lockedView("b", now.Add(2*time.Hour)),
		unlockedView("c"),
	}
	us.Reschedule(views, now)
	defer us.CancelAll()

	assert.Equal(t, 2, us.LiveTimerCount())
}

func TestRescheduleReplacesInsteadOfAccumulating(t *testing.T) {
	us := NewUnlockScheduler(1, nil)
	now := time.Now()

	us.Reschedule([]models.MessageView{
		lockedView("a", now.Add(time.Hour)),
		lockedView("b", now.Add(time.Hour)),
	}, now)
	require.Equal(t, 2, us.LiveTimerCount())

	// fresh fetch: b unlocked meanwhile, only a remains locked
	us.Reschedule([]models.MessageView{
		lockedView("a", now.Add(time.Hour)),
		unlockedView("b"),
	}, now)
	defer us.CancelAll()

	assert.Equal(t, 1, us.LiveTimerCount(),
		"timer count must stay bounded by the locked-letter count")
}

func TestRescheduleSkipsBeyondHorizon(t *testing.T) {
	us := NewUnlockScheduler(1, nil)
	now := time.Now()

	us.Reschedule([]models.MessageView{
		lockedView("near", now.Add(time.Hour)),
		lockedView("far", now.Add(30*24*time.Hour)),
	}, now)
	defer us.CancelAll()

	assert.Equal(t, 1, us.LiveTimerCount(),
		"unlocks beyond the horizon rely on polling, not a dedicated timer")
}

func TestTimerFiresWakeAfterUnlock(t *testing.T) {
	var woke atomic.Int32
	us := NewUnlockScheduler(7, func(conversationID uint) {
		assert.Equal(t, uint(7), conversationID)
		woke.Add(1)
	})
	us.SetBounds(DefaultHorizon, 0)

	now := time.Now()
	us.Reschedule([]models.MessageView{
		lockedView("soon", now.Add(20*time.Millisecond)),
	}, now)
	defer us.CancelAll()

	assert.Eventually(t, func() bool { return woke.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, us.LiveTimerCount())
}

func TestCancelAllDropsEveryTimerAndSilencesWakes(t *testing.T) {
	var woke atomic.Int32
	us := NewUnlockScheduler(1, func(uint) { woke.Add(1) })
	us.SetBounds(DefaultHorizon, 0)

	now := time.Now()
	us.Reschedule([]models.MessageView{
		lockedView("a", now.Add(10*time.Millisecond)),
		lockedView("b", now.Add(time.Hour)),
	}, now)
	require.Equal(t, 2, us.LiveTimerCount())

	us.CancelAll()
	assert.Equal(t, 0, us.LiveTimerCount(), "teardown must leave zero timers")

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), woke.Load(), "no wake may fire against a closed view")

	// closed scheduler refuses new timers
	us.Reschedule([]models.MessageView{lockedView("c", now.Add(time.Hour))}, now)
	assert.Equal(t, 0, us.LiveTimerCount())
}
