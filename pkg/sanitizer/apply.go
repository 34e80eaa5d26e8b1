package sanitizer

// Apply runs transforms over value in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose creates a reusable pipeline out of transforms.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// Transform adapts transforms into a rule transform callback that receives
// the original input alongside the running value. The original input is
// ignored; the pipeline runs on the running value.
func Transform[V, T any](transforms ...func(T) T) func(V, T) T {
	pipeline := Compose(transforms...)
	return func(_ V, transformed T) T {
		return pipeline(transformed)
	}
}
