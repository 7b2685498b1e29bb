package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKnownReportReason(t *testing.T) {
	for _, reason := range ReportReasons {
		assert.True(t, IsKnownReportReason(reason), reason)
	}
	assert.False(t, IsKnownReportReason("He keeps sending chain letters"),
		"free text is not an offered option; the report flow files it under Other")
	assert.False(t, IsKnownReportReason("spam or scam"), "matching is exact, not case folded")
}
