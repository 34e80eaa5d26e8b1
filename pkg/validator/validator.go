package validator

// Func evaluates a value against the rule set it was built with.
type Func[V, T any] func(value V) Result[V, T]

// Validate is a readable alias for calling the function directly.
func (f Func[V, T]) Validate(value V) Result[V, T] {
	return f(value)
}

// New builds a validator whose running value has the same type as the input.
// The running value starts as the input itself.
func New[V any](rules ...Rule[V, V]) Func[V, V] {
	return NewWithSeed(identity[V], rules...)
}

// NewWithSeed builds a validator whose running value type differs from the
// input type. seed produces the initial running value for every call.
// Panics when seed is nil: a validator without a seed can never run.
func NewWithSeed[V, T any](seed func(V) T, rules ...Rule[V, T]) Func[V, T] {
	if seed == nil {
		panic(ErrNilSeed)
	}

	// The caller keeps ownership of its slice.
	set := make([]Rule[V, T], len(rules))
	copy(set, rules)

	return func(value V) Result[V, T] {
		return fold(set, value, seed(value))
	}
}

// fold runs the rules left to right. Failed rules never touch the running
// value; the reset value is fixed by the first failure.
func fold[V, T any](rules []Rule[V, T], value V, transformed T) Result[V, T] {
	res := Result[V, T]{
		Value:          value,
		AllFailedRules: []Rule[V, T]{},
	}

	for _, rule := range rules {
		if !rule.passes(value, transformed) {
			if len(res.AllFailedRules) == 0 && rule.OnInvalid != nil {
				res.ResetValue = rule.OnInvalid(value, transformed)
				res.HasResetValue = true
			}
			res.AllFailedRules = append(res.AllFailedRules, rule)
			continue
		}

		if rule.Transform != nil {
			transformed = rule.Transform(value, transformed)
		}
	}

	res.TransformedValue = transformed
	res.Valid = len(res.AllFailedRules) == 0
	if !res.Valid {
		res.FirstFailedRule = &res.AllFailedRules[0]
	}

	return res
}

func identity[V any](v V) V {
	return v
}
