// Package sanitizer provides small, pure helpers for normalising user input.
//
// The helpers are meant to be plugged into validator rules as transforms or
// reset values, but they work just as well on their own:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.NormalizeWhitespace,
//	    sanitizer.ToLower,
//	)
//
//	clean("  Mixed   CASE input\n") // "mixed case input"
//
// Transform adapts a pipeline into the two-argument callback shape used by
// validator rules, so the same helpers serve both call styles:
//
//	rule := validator.Rule[string, string]{
//	    Name:      "normalize",
//	    Transform: sanitizer.Transform[string](sanitizer.Trim, sanitizer.ToLower),
//	}
//
// None of the helpers returns an error. Invalid input falls back to a safe
// result, usually the input itself. There is no package state, so every
// helper is safe for concurrent use.
package sanitizer
