package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/inputkit/pkg/sanitizer"
)

// Required fails when the running string is empty after trimming whitespace.
func Required[V any]() Rule[V, string] {
	return Rule[V, string]{
		Name:    "required",
		Message: "field is required",
		Test: func(_ V, s string) bool {
			return strings.TrimSpace(s) != ""
		},
	}
}

// MinLen fails when the running string has fewer than min runes.
func MinLen[V any](min int) Rule[V, string] {
	return Rule[V, string]{
		Name:    "min_length",
		Message: fmt.Sprintf("must be at least %d characters long", min),
		Test: func(_ V, s string) bool {
			return utf8.RuneCountInString(s) >= min
		},
	}
}

// MaxLen fails when the running string has more than max runes.
func MaxLen[V any](max int) Rule[V, string] {
	return Rule[V, string]{
		Name:    "max_length",
		Message: fmt.Sprintf("must be at most %d characters long", max),
		Test: func(_ V, s string) bool {
			return utf8.RuneCountInString(s) <= max
		},
	}
}

// Len fails unless the running string has exactly exact runes.
func Len[V any](exact int) Rule[V, string] {
	return Rule[V, string]{
		Name:    "exact_length",
		Message: fmt.Sprintf("must be exactly %d characters long", exact),
		Test: func(_ V, s string) bool {
			return utf8.RuneCountInString(s) == exact
		},
	}
}

// Transform-only rules. They never fail.

// Trim strips leading and trailing whitespace.
func Trim[V any]() Rule[V, string] {
	return Rule[V, string]{
		Name:      "trim",
		Transform: sanitizer.Transform[V](sanitizer.Trim),
	}
}

// Lower lowercases the running string.
func Lower[V any]() Rule[V, string] {
	return Rule[V, string]{
		Name:      "lower",
		Transform: sanitizer.Transform[V](sanitizer.ToLower),
	}
}

// NormalizeWhitespace collapses whitespace runs into single spaces.
func NormalizeWhitespace[V any]() Rule[V, string] {
	return Rule[V, string]{
		Name:      "normalize_whitespace",
		Transform: sanitizer.Transform[V](sanitizer.NormalizeWhitespace),
	}
}

// Truncate cuts the running string down to max runes.
func Truncate[V any](max int) Rule[V, string] {
	return Rule[V, string]{
		Name: "truncate",
		Transform: sanitizer.Transform[V](func(s string) string {
			return sanitizer.MaxLength(s, max)
		}),
	}
}
