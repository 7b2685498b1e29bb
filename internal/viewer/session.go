package viewer

import (
	"context"
	"sync"
	"time"

	"letterChat/configs"
	"letterChat/internal/models"
	"letterChat/internal/poller"
	"letterChat/internal/scheduler"
)

// FetchViewFunc loads the aggregated view of one conversation for the
// session's viewer.
type FetchViewFunc func(ctx context.Context) (*models.ConversationViewResponse, error)

// ConversationSession is the view-side state of one open conversation. It
// owns the polling loop and the unlock scheduler, keeps the latest
// aggregated view, and tears both down deterministically when the
// conversation is closed or switched away from. Nothing it schedules can
// outlive it.
type ConversationSession struct {
	conversationID uint
	fetch          FetchViewFunc
	onUpdate       func(*models.ConversationViewResponse)

	sched *scheduler.UnlockScheduler
	poll  *poller.Poller

	mu   sync.Mutex
	view *models.ConversationViewResponse
}

func NewConversationSession(conversationID uint, interval time.Duration, fetch FetchViewFunc, onUpdate func(*models.ConversationViewResponse)) *ConversationSession {
	cs := &ConversationSession{
		conversationID: conversationID,
		fetch:          fetch,
		onUpdate:       onUpdate,
	}
	cs.sched = scheduler.NewUnlockScheduler(conversationID, func(uint) {
		// a letter just crossed its deliver_at; fetch rather than guess
		cs.poll.Poke()
	})
	cs.poll = poller.New(interval, cs.pollFetch, cs.pollApply)
	return cs
}

// NewConfiguredSession builds a session whose polling cadence, failure
// budget, and scheduler bounds come from configuration.
func NewConfiguredSession(cfg *configs.Config, conversationID uint, fetch FetchViewFunc, onUpdate func(*models.ConversationViewResponse)) *ConversationSession {
	interval := time.Duration(cfg.Viper.GetInt("polling.conversation_interval_seconds")) * time.Second
	cs := NewConversationSession(conversationID, interval, fetch, onUpdate)
	cs.poll.SetMaxFailures(cfg.Viper.GetInt("polling.max_consecutive_failures"))
	cs.sched.SetBounds(
		time.Duration(cfg.Viper.GetInt("scheduler.horizon_hours"))*time.Hour,
		time.Duration(cfg.Viper.GetInt("scheduler.slack_ms"))*time.Millisecond,
	)
	return cs
}

// Open starts polling. The first fetch is issued immediately.
func (cs *ConversationSession) Open(ctx context.Context) {
	cs.poll.Start(ctx)
}

// Close stops the polling loop and cancels every outstanding unlock timer.
func (cs *ConversationSession) Close() {
	cs.poll.Stop()
	cs.sched.CancelAll()
}

// View returns the most recently applied aggregated view, or nil before the
// first successful fetch.
func (cs *ConversationSession) View() *models.ConversationViewResponse {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.view
}

// Unavailable reports whether polling has paused after repeated failures.
func (cs *ConversationSession) Unavailable() bool {
	return cs.poll.Unavailable()
}

// LiveTimerCount exposes the armed unlock timer count for this session.
func (cs *ConversationSession) LiveTimerCount() int {
	return cs.sched.LiveTimerCount()
}

func (cs *ConversationSession) pollFetch(ctx context.Context) (interface{}, error) {
	return cs.fetch(ctx)
}

func (cs *ConversationSession) pollApply(result interface{}) {
	view, ok := result.(*models.ConversationViewResponse)
	if !ok || view == nil {
		return
	}

	cs.mu.Lock()
	cs.view = view
	cs.mu.Unlock()

	cs.sched.Reschedule(view.Messages, time.Now())

	if cs.onUpdate != nil {
		cs.onUpdate(view)
	}
}

// NewListPoller builds a poller for conversation-list views, which refresh
// on a much longer cadence than an open conversation.
func NewListPoller(cfg *configs.Config, fetch poller.FetchFunc, apply poller.ApplyFunc) *poller.Poller {
	interval := time.Duration(cfg.Viper.GetInt("polling.list_interval_seconds")) * time.Second
	if interval <= 0 {
		interval = poller.DefaultListInterval
	}
	p := poller.New(interval, fetch, apply)
	p.SetMaxFailures(cfg.Viper.GetInt("polling.max_consecutive_failures"))
	return p
}
