package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeLetterBody(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain text untouched", "Dear pen pal, how are you?", "Dear pen pal, how are you?"},
		{"simple markup kept", "<b>bold</b> and <i>italic</i>", "<b>bold</b> and <i>italic</i>"},
		{"script element removed", "before<script>alert(1)</script>after", "beforeafter"},
		{"script with attributes removed", `x<script type="text/javascript">bad()</script>y`, "xy"},
		{"style element removed", "a<style>body{display:none}</style>b", "ab"},
		{"case and spacing ignored", "a< SCRIPT >bad()< / script >b", "ab"},
		{"inline handler stripped", `<img src=x onerror="steal()">`, "<img src=x >"},
		{"single quoted handler stripped", `<div onclick='go()'>hi</div>`, "<div >hi</div>"},
		{"unquoted handler stripped", `<a onmouseover=evil>link</a>`, "<a >link</a>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeLetterBody(tt.in))
		})
	}
}
