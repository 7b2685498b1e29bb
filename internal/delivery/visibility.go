package delivery

import (
	"time"

	"letterChat/internal/models"
)

// IsVisible decides whether a letter's content may be shown to a viewer at
// the given instant.
//
// Authors always see their own letters: the delivery delay simulates postal
// latency from the recipient's side only. Everyone else sees the letter once
// now reaches deliver_at, boundary inclusive.
//
// An unknown viewer (zero id) fails closed. A malformed record with no
// sent_at stamp fails open instead, so a data defect can never permanently
// hide a letter from its intended recipient.
func IsVisible(m *models.Message, viewerID uint, now time.Time) bool {
	if m.SentAt.IsZero() {
		return true
	}
	if viewerID == 0 {
		return false
	}
	if viewerID == m.SenderID {
		return true
	}
	deliverAt := m.DeliverAt
	if deliverAt.IsZero() {
		deliverAt = ComputeDeliverAt(m.SentAt, m.DelaySeconds)
	}
	return !now.Before(deliverAt)
}
