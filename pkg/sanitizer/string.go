package sanitizer

import (
	"strings"
	"unicode/utf8"
)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts s to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// ToUpper converts s to uppercase.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// NormalizeWhitespace collapses every whitespace run into a single space and
// trims both ends.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// MaxLength cuts s down to maxLen runes.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	runes := []rune(s)
	return string(runes[:maxLen])
}
