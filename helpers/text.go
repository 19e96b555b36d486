package helpers

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var multiSpaceRegex = regexp.MustCompile(`\s+`)

// NormalizeWhitespace collapses runs of whitespace, including newlines from
// pretty-printed MARCXML, to single spaces and trims.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(multiSpaceRegex.ReplaceAllString(s, " "))
}

// TruncateText truncates text to at most maxLen runes, adding an ellipsis.
func TruncateText(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}

	// Try to truncate at a word boundary
	truncated := string(runes[:maxLen-3])
	lastSpace := strings.LastIndex(truncated, " ")
	if lastSpace > len(truncated)/2 {
		truncated = truncated[:lastSpace]
	}

	return truncated + "..."
}

// TrimPunctuation removes leading and trailing characters found in cutset.
// Interior whitespace is kept, so "1900-    ." trimmed of "." is "1900-    ".
func TrimPunctuation(s, cutset string) string {
	return strings.Trim(s, cutset)
}
