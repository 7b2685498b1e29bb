package utils

import "regexp"

var (
	scriptStyleRe = regexp.MustCompile(`(?is)<\s*(script|style)[^>]*>.*?<\s*/\s*(script|style)\s*>`)
	onAttrRe      = regexp.MustCompile(`(?i)on\w+\s*=\s*(?:"[^"]*"|'[^']*'|[^\s>]+)`)
)

// SanitizeLetterBody strips script/style elements and inline event handler
// attributes from a letter body before it is rendered. Letters may carry
// simple formatting markup, so the body is not escaped wholesale.
func SanitizeLetterBody(html string) string {
	if html == "" {
		return ""
	}
	out := scriptStyleRe.ReplaceAllString(html, "")
	out = onAttrRe.ReplaceAllString(out, "")
	return out
}
