package delivery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeDeliverAtZeroDelayIsImmediate(t *testing.T) {
	sentAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, sentAt, ComputeDeliverAt(sentAt, 0))
}

func TestComputeDeliverAtOneHour(t *testing.T) {
	sentAt := time.UnixMilli(1_700_000_000_000).UTC()
	deliverAt := ComputeDeliverAt(sentAt, 3600)
	assert.Equal(t, sentAt.UnixMilli()+3_600_000, deliverAt.UnixMilli())
}

func TestComputeDeliverAtNonDecreasingInDelay(t *testing.T) {
	sentAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	delays := []int64{0, 1, 60, 3600, 18000, 43200, 86400}
	for i := 1; i < len(delays); i++ {
		prev := ComputeDeliverAt(sentAt, delays[i-1])
		next := ComputeDeliverAt(sentAt, delays[i])
		assert.False(t, next.Before(prev), "deliver at must not decrease as the delay grows")
		assert.False(t, next.Before(sentAt), "deliver at must never precede sent at")
	}
}
