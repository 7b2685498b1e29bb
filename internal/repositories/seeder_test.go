package repositories

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedMessageIDIsDeterministic(t *testing.T) {
	assert.Equal(t, seedMessageID(7, 0), seedMessageID(7, 0),
		"the same conversation and index always derive the same id")
	assert.NotEqual(t, seedMessageID(7, 0), seedMessageID(7, 1))
	assert.NotEqual(t, seedMessageID(7, 0), seedMessageID(8, 0))
}

func TestSeedMessageIDIsValidUUID(t *testing.T) {
	id, err := uuid.Parse(seedMessageID(42, 1))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), id.Version())
}

func TestSeedLettersShape(t *testing.T) {
	require.Len(t, seedLetters, 2)
	assert.EqualValues(t, 0, seedLetters[0].delaySeconds, "first starter letter is delivered immediately")
	assert.EqualValues(t, 60, seedLetters[1].delaySeconds, "second starter letter demonstrates the lock")
	for _, seed := range seedLetters {
		assert.NotEmpty(t, seed.text)
	}
}
