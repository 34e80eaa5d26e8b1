package validator

// Rule describes one validation and transformation step.
//
// V is the type of the value handed to the validator, T is the type of the
// running transformed value. Every callback receives both the untouched
// input and the running value as it was when the rule was reached.
type Rule[V, T any] struct {
	// Name identifies the rule in results and logs.
	Name string

	// Message is an optional human-readable description of the failure.
	Message string

	// Test reports whether the rule passes. A nil Test always passes.
	Test func(value V, transformed T) bool

	// Transform produces the next running value. It is applied only when
	// the rule passes.
	Transform func(value V, transformed T) T

	// OnInvalid proposes a fallback value for the input. It is evaluated
	// only for the first rule that fails.
	OnInvalid func(value V, transformed T) T
}

// passes runs the rule test, treating a missing test as a pass.
func (r Rule[V, T]) passes(value V, transformed T) bool {
	if r.Test == nil {
		return true
	}
	return r.Test(value, transformed)
}

// ResetTo returns an OnInvalid callback that always proposes v.
func ResetTo[V, T any](v T) func(V, T) T {
	return func(V, T) T {
		return v
	}
}

// ResetToValue returns an OnInvalid callback that proposes the running value
// as it was before the failing rule.
func ResetToValue[V, T any]() func(V, T) T {
	return func(_ V, transformed T) T {
		return transformed
	}
}

// WithName returns a copy of the rule with a different name.
func (r Rule[V, T]) WithName(name string) Rule[V, T] {
	r.Name = name
	return r
}

// WithMessage returns a copy of the rule with a different failure message.
func (r Rule[V, T]) WithMessage(message string) Rule[V, T] {
	r.Message = message
	return r
}

// WithTransform returns a copy of the rule with fn as its transform.
func (r Rule[V, T]) WithTransform(fn func(V, T) T) Rule[V, T] {
	r.Transform = fn
	return r
}

// WithOnInvalid returns a copy of the rule with fn as its fallback.
func (r Rule[V, T]) WithOnInvalid(fn func(V, T) T) Rule[V, T] {
	r.OnInvalid = fn
	return r
}
