package delivery

import "time"

// ComputeDeliverAt derives the unlock instant of a letter from the moment it
// was sent and the delay chosen at compose time. A delay of zero delivers
// immediately. Negative delays are rejected by input validation before any
// letter is stamped; this function itself is total and deterministic.
func ComputeDeliverAt(sentAt time.Time, delaySeconds int64) time.Time {
	return sentAt.Add(time.Duration(delaySeconds) * time.Second)
}
