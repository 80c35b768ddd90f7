package textutil

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// StripBOM removes a leading UTF-8 byte-order mark. Ill-formed UTF-8 is
// replaced with U+FFFD, so offsets into the result may differ from the input.
func StripBOM(s string) string {
	out, _, err := transform.String(unicode.UTF8BOM.NewDecoder(), s)
	if err != nil {
		return s
	}
	return out
}

// Truncate shortens s to at most maxLen runes, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
