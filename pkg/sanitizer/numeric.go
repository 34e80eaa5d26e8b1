package sanitizer

import "math"

// Numeric is the set of types the numeric helpers accept.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float represents floating-point types.
type Float interface {
	~float32 | ~float64
}

// Clamp constrains value to [min, max].
func Clamp[T Numeric](value T, min T, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// RoundToDecimalPlaces rounds half away from zero. Negative places are treated as zero.
func RoundToDecimalPlaces[T Float](value T, places int) T {
	if places < 0 {
		places = 0
	}

	multiplier := math.Pow(10, float64(places))
	return T(math.Round(float64(value)*multiplier) / multiplier)
}
