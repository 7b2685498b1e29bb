package scheduler

import (
	"sync"
	"time"

	"letterChat/internal/models"
)

const (
	// DefaultHorizon caps how far ahead a dedicated unlock timer is armed.
	// Unlocks beyond it are picked up by the polling loop once they drift
	// inside the horizon.
	DefaultHorizon = 7 * 24 * time.Hour

	// DefaultSlack pushes each timer slightly past the deliver_at boundary
	// so it never fires fractionally before the letter unlocks.
	DefaultSlack = 500 * time.Millisecond
)

// UnlockScheduler owns the one-shot timers that wake a conversation view at
// the instant a locked letter becomes deliverable. One scheduler is created
// per opened conversation and disposed on close or switch; after CancelAll
// no timer of this scheduler will ever invoke the wake callback again.
//
// Locked state comes from the aggregated view, already evaluated against
// the server clock; deliver_at is only used to size the timer.
type UnlockScheduler struct {
	mu             sync.Mutex
	conversationID uint
	horizon        time.Duration
	slack          time.Duration
	timers         map[string]*time.Timer
	wake           func(conversationID uint)
	closed         bool
}

func NewUnlockScheduler(conversationID uint, wake func(conversationID uint)) *UnlockScheduler {
	return &UnlockScheduler{
		conversationID: conversationID,
		horizon:        DefaultHorizon,
		slack:          DefaultSlack,
		timers:         make(map[string]*time.Timer),
		wake:           wake,
	}
}

// SetBounds overrides the horizon and slack, typically from configuration.
func (us *UnlockScheduler) SetBounds(horizon, slack time.Duration) {
	us.mu.Lock()
	defer us.mu.Unlock()
	if horizon > 0 {
		us.horizon = horizon
	}
	if slack >= 0 {
		us.slack = slack
	}
}

// Reschedule replaces the whole timer set from a freshly fetched view:
// every previously armed timer is cancelled, then one timer is armed per
// letter still locked for the viewer whose remaining wait falls inside the
// horizon. The live timer count is therefore always bounded by the current
// locked-letter count.
func (us *UnlockScheduler) Reschedule(views []models.MessageView, now time.Time) {
	us.mu.Lock()
	defer us.mu.Unlock()

	us.cancelAllLocked()
	if us.closed {
		return
	}

	for i := range views {
		view := &views[i]
		if !view.Locked {
			continue
		}
		remaining := view.DeliverAt.Sub(now)
		if remaining <= 0 || remaining >= us.horizon {
			continue
		}
		id := view.ID
		us.timers[id] = time.AfterFunc(remaining+us.slack, func() {
			us.fire(id)
		})
	}
}

func (us *UnlockScheduler) fire(messageID string) {
	us.mu.Lock()
	if us.closed {
		us.mu.Unlock()
		return
	}
	if _, ok := us.timers[messageID]; !ok {
		// cancelled between firing and acquiring the lock
		us.mu.Unlock()
		return
	}
	delete(us.timers, messageID)
	wake := us.wake
	conversationID := us.conversationID
	us.mu.Unlock()

	if wake != nil {
		wake(conversationID)
	}
}

// CancelAll stops every outstanding timer and marks the scheduler closed.
// Safe to call more than once.
func (us *UnlockScheduler) CancelAll() {
	us.mu.Lock()
	defer us.mu.Unlock()
	us.cancelAllLocked()
	us.closed = true
}

func (us *UnlockScheduler) cancelAllLocked() {
	for id, timer := range us.timers {
		timer.Stop()
		delete(us.timers, id)
	}
}

// LiveTimerCount reports how many unlock timers are currently armed.
func (us *UnlockScheduler) LiveTimerCount() int {
	us.mu.Lock()
	defer us.mu.Unlock()
	return len(us.timers)
}
