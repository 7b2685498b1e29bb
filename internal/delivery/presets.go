package delivery

import "fmt"

// Preset is a named delivery delay offered at compose time.
type Preset struct {
	Seconds int64
	Label   string
}

// ComposerPresets is the delay set offered by the letter composer.
var ComposerPresets = []Preset{
	{60, "1 min"},
	{3600, "1 hour"},
	{43200, "12 hours"},
	{86400, "1 day"},
}

// ExtendedPresets additionally carries the "5 hours" option that one of the
// views offers. The two sets diverge in the product today and are kept as
// independent configuration rather than unified.
var ExtendedPresets = []Preset{
	{60, "1 min"},
	{3600, "1 hour"},
	{18000, "5 hours"},
	{43200, "12 hours"},
	{86400, "1 day"},
}

// IsKnownPreset reports whether seconds matches a preset in the given set.
// Zero is always accepted and means immediate delivery.
func IsKnownPreset(seconds int64, presets []Preset) bool {
	if seconds == 0 {
		return true
	}
	for _, p := range presets {
		if p.Seconds == seconds {
			return true
		}
	}
	return false
}

// PresetLabel returns the configured label for a delay, falling back to
// FormatDelay for values outside the set.
func PresetLabel(seconds int64, presets []Preset) string {
	for _, p := range presets {
		if p.Seconds == seconds {
			return p.Label
		}
	}
	return FormatDelay(seconds)
}

// FormatDelay renders a delay in seconds as a short human phrase.
func FormatDelay(seconds int64) string {
	if seconds <= 0 {
		return ""
	}
	if seconds%86400 == 0 {
		d := seconds / 86400
		if d == 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", d)
	}
	if seconds%3600 == 0 {
		return fmt.Sprintf("%dh", seconds/3600)
	}
	if seconds%60 == 0 {
		return fmt.Sprintf("%d min", seconds/60)
	}
	return fmt.Sprintf("%ds", seconds)
}
