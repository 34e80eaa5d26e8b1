package validator

import (
	"fmt"

	"github.com/dmitrymomot/inputkit/pkg/sanitizer"
)

// Numeric is the set of types the numeric rules accept, shared with the
// sanitizer helpers they delegate to.
type Numeric = sanitizer.Numeric

// Min fails when the running value is below min.
func Min[V any, N Numeric](min N) Rule[V, N] {
	return Rule[V, N]{
		Name:    "min",
		Message: fmt.Sprintf("must be at least %v", min),
		Test: func(_ V, n N) bool {
			return n >= min
		},
	}
}

// Max fails when the running value is above max.
func Max[V any, N Numeric](max N) Rule[V, N] {
	return Rule[V, N]{
		Name:    "max",
		Message: fmt.Sprintf("must be at most %v", max),
		Test: func(_ V, n N) bool {
			return n <= max
		},
	}
}

// Between fails when the running value is outside [min, max] and proposes
// the clamped value as the reset value.
func Between[V any, N Numeric](min, max N) Rule[V, N] {
	return Rule[V, N]{
		Name:    "between",
		Message: fmt.Sprintf("must be between %v and %v", min, max),
		Test: func(_ V, n N) bool {
			return n >= min && n <= max
		},
		OnInvalid: func(_ V, n N) N {
			return sanitizer.Clamp(n, min, max)
		},
	}
}

// RoundTo rounds the running value to the given number of decimal places.
func RoundTo[V any, F sanitizer.Float](places int) Rule[V, F] {
	return Rule[V, F]{
		Name: "round",
		Transform: func(_ V, f F) F {
			return sanitizer.RoundToDecimalPlaces(f, places)
		},
	}
}
