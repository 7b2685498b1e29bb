package viewer

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"letterChat/configs"
	"letterChat/internal/models"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lockedIn(seconds int64) models.MessageView {
	now := time.Now()
	return models.MessageView{
		ID:           "m-locked",
		SenderID:     1,
		RecipientID:  2,
		Locked:       true,
		DelaySeconds: seconds,
		SentAt:       now,
		DeliverAt:    now.Add(time.Duration(seconds) * time.Second),
	}
}

func TestSessionFetchesOnOpenAndArmsTimers(t *testing.T) {
	view := &models.ConversationViewResponse{
		ConversationID: 5,
		Messages: []models.MessageView{
			{ID: "m-open", SenderID: 2, RecipientID: 1, Text: "hello"},
			lockedIn(3600),
		},
	}

	updated := make(chan *models.ConversationViewResponse, 1)
	session := NewConversationSession(5,
		time.Hour, // no periodic tick during the test; only the open fetch
		func(ctx context.Context) (*models.ConversationViewResponse, error) {
			return view, nil
		},
		func(v *models.ConversationViewResponse) { updated <- v },
	)

	session.Open(context.Background())
	defer session.Close()

	select {
	case got := <-updated:
		assert.Equal(t, view, got)
	case <-time.After(2 * time.Second):
		t.Fatal("no update after opening the session")
	}

	assert.Equal(t, view, session.View())
	assert.Equal(t, 1, session.LiveTimerCount(), "one timer per locked letter")
	assert.False(t, session.Unavailable())
}

func TestSessionCloseCancelsEverything(t *testing.T) {
	updated := make(chan struct{}, 4)
	session := NewConversationSession(5,
		time.Hour,
		func(ctx context.Context) (*models.ConversationViewResponse, error) {
			return &models.ConversationViewResponse{
				ConversationID: 5,
				Messages:       []models.MessageView{lockedIn(1800)},
			}, nil
		},
		func(*models.ConversationViewResponse) { updated <- struct{}{} },
	)

	session.Open(context.Background())
	select {
	case <-updated:
	case <-time.After(2 * time.Second):
		t.Fatal("no update after opening the session")
	}
	require.Equal(t, 1, session.LiveTimerCount())

	session.Close()
	assert.Equal(t, 0, session.LiveTimerCount(), "closing releases every armed timer")
}

func TestNewListPollerUsesConfiguredInterval(t *testing.T) {
	v := viper.New()
	v.Set("polling.list_interval_seconds", 1)
	v.Set("polling.max_consecutive_failures", 3)
	cfg := &configs.Config{Viper: v}

	var fetches atomic.Int32
	p := NewListPoller(cfg, func(ctx context.Context) (interface{}, error) {
		fetches.Add(1)
		return nil, nil
	}, nil)

	p.Start(context.Background())
	defer p.Stop()

	assert.Eventually(t, func() bool { return fetches.Load() >= 2 },
		3*time.Second, 50*time.Millisecond,
		"a one second cadence must tick beyond the immediate first fetch")
}

func TestSessionViewIsNilBeforeFirstFetch(t *testing.T) {
	session := NewConversationSession(5, time.Hour,
		func(ctx context.Context) (*models.ConversationViewResponse, error) {
			return &models.ConversationViewResponse{ConversationID: 5}, nil
		}, nil)
	assert.Nil(t, session.View())
}
