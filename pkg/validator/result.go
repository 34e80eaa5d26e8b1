package validator

// Result is the outcome of a single evaluation. It is built fresh for every
// call and must be treated as read-only.
type Result[V, T any] struct {
	// Valid is true when every rule passed.
	Valid bool

	// Value is the input the validator was called with.
	Value V

	// TransformedValue is the running value after all passing transforms.
	TransformedValue T

	// FirstFailedRule is the earliest failed rule, or nil.
	FirstFailedRule *Rule[V, T]

	// AllFailedRules lists every failed rule in evaluation order.
	AllFailedRules []Rule[V, T]

	// ResetValue is the fallback produced by the first failed rule.
	// Only meaningful when HasResetValue is true.
	ResetValue    T
	HasResetValue bool
}

// Reset returns the fallback value proposed by the first failed rule.
func (r Result[V, T]) Reset() (T, bool) {
	return r.ResetValue, r.HasResetValue
}

// FailedRuleNames returns the names of the failed rules in evaluation order.
func (r Result[V, T]) FailedRuleNames() []string {
	names := make([]string, 0, len(r.AllFailedRules))
	for _, rule := range r.AllFailedRules {
		names = append(names, rule.Name)
	}
	return names
}

// Err converts the failures into ValidationErrors for the given field.
// Returns nil for a valid result.
func (r Result[V, T]) Err(field string) error {
	if r.Valid {
		return nil
	}

	errs := make(ValidationErrors, 0, len(r.AllFailedRules))
	for _, rule := range r.AllFailedRules {
		message := rule.Message
		if message == "" {
			message = ErrValidationFailed.Error()
		}
		errs.Add(ValidationError{
			Field:          field,
			Rule:           rule.Name,
			Message:        message,
			TranslationKey: "validation." + rule.Name,
			TranslationValues: map[string]any{
				"field": field,
			},
		})
	}
	return errs
}
