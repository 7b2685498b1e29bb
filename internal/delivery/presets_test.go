package delivery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDelay(t *testing.T) {
	cases := []struct {
		seconds int64
		want    string
	}{
		{0, ""},
		{45, "45s"},
		{60, "1 min"},
		{600, "10 min"},
		{3600, "1h"},
		{18000, "5h"},
		{86400, "1 day"},
		{172800, "2 days"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatDelay(c.seconds), "seconds=%d", c.seconds)
	}
}

func TestPresetLabel(t *testing.T) {
	assert.Equal(t, "12 hours", PresetLabel(43200, ComposerPresets))
	assert.Equal(t, "1 day", PresetLabel(86400, ComposerPresets))
	// outside the set falls back to the generic formatter
	assert.Equal(t, "2 days", PresetLabel(172800, ComposerPresets))
}

func TestPresetSetsDiverge(t *testing.T) {
	// the "5 hours" option exists only in the extended set; the two sets
	// are deliberately kept independent
	assert.False(t, IsKnownPreset(18000, ComposerPresets))
	assert.True(t, IsKnownPreset(18000, ExtendedPresets))
}

func TestIsKnownPreset(t *testing.T) {
	assert.True(t, IsKnownPreset(0, ComposerPresets), "zero delay always delivers immediately")
	assert.True(t, IsKnownPreset(60, ComposerPresets))
	assert.False(t, IsKnownPreset(61, ComposerPresets))
	assert.False(t, IsKnownPreset(61, ExtendedPresets))
}
