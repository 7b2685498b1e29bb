package delivery

import (
	"sort"
	"time"

	"letterChat/internal/models"
)

// Preview sentinels returned when no letter content can be shown yet.
const (
	PreviewLockedSentinel = "Locked message (coming soon…)"
	PreviewEmptySentinel  = "No messages yet"
)

// SortMessages orders letters by (sent_at, id) ascending. The id tie-break
// makes the order total, so repeated aggregation of unchanged data always
// renders the same sequence.
func SortMessages(messages []models.Message) {
	sort.SliceStable(messages, func(i, j int) bool {
		if messages[i].SentAt.Equal(messages[j].SentAt) {
			return messages[i].ID < messages[j].ID
		}
		return messages[i].SentAt.Before(messages[j].SentAt)
	})
}

// Annotate produces the full per-viewer view of a conversation: every letter
// in delivery order, each carrying its locked state. Locked letters have
// their text withheld and an unlock label derived from the delay preset, so
// the raw content never reaches a viewer the clock has not released it to.
func Annotate(messages []models.Message, viewerID uint, now time.Time) []models.MessageView {
	SortMessages(messages)
	views := make([]models.MessageView, 0, len(messages))
	for i := range messages {
		m := &messages[i]
		view := models.MessageView{
			ID:           m.ID,
			SenderID:     m.SenderID,
			RecipientID:  m.RecipientID,
			DelaySeconds: m.DelaySeconds,
			SentAt:       m.SentAt,
			DeliverAt:    m.DeliverAt,
		}
		if IsVisible(m, viewerID, now) {
			view.Text = m.Text
		} else {
			view.Locked = true
			view.UnlockLabel = PresetLabel(m.DelaySeconds, ExtendedPresets)
		}
		views = append(views, view)
	}
	return views
}

// LastUnlockedPreview computes the one-line preview shown in conversation
// lists: the most recent letter already unlocked for the viewer, prefixed
// "You: " when the viewer wrote it. Pure in (messages, viewerID, now), so
// recomputing against unchanged data yields an identical result.
func LastUnlockedPreview(messages []models.Message, viewerID uint, now time.Time) string {
	if len(messages) == 0 {
		return PreviewEmptySentinel
	}
	ordered := make([]models.Message, len(messages))
	copy(ordered, messages)
	SortMessages(ordered)
	for i := len(ordered) - 1; i >= 0; i-- {
		if IsVisible(&ordered[i], viewerID, now) {
			if ordered[i].SenderID == viewerID {
				return "You: " + ordered[i].Text
			}
			return ordered[i].Text
		}
	}
	return PreviewLockedSentinel
}
