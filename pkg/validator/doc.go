// Package validator evaluates a value against an ordered list of rules and
// returns both the verdict and a normalized copy of the value.
//
// A Rule bundles an optional Test, an optional Transform and an optional
// OnInvalid fallback. New and NewWithSeed turn a rule list into a reusable
// Func. Each call folds over the rules from left to right:
//
//   - the running value starts as the input (or seed(input));
//   - a rule without Test always passes;
//   - a passing rule with Transform replaces the running value;
//   - a failing rule is recorded and never transforms;
//   - the first failing rule's OnInvalid fixes the reset value.
//
// Every callback receives the untouched input and the running value, so
// later rules can build on earlier transforms while still seeing the raw
// input.
//
// # Usage
//
//	validateEmail := validator.New(
//	    validator.Trim[string](),
//	    validator.Required[string](),
//	    validator.Email[string](),
//	)
//
//	res := validateEmail("  John.Doe@Example.COM ")
//	// res.Valid == true
//	// res.TransformedValue == "john.doe@example.com"
//
// Pipelines whose running type differs from the input use NewWithSeed:
//
//	validateID := validator.NewWithSeed(validator.UUIDSeed,
//	    validator.NonNilUUID[string](),
//	)
//
// # Failures and errors
//
// A failed rule is data, not an error: inspect Valid, FirstFailedRule and
// AllFailedRules, or call Result.Err to get ValidationErrors for a field.
// Panics raised by rule callbacks are not recovered.
//
// # Concurrency
//
// A Func keeps only its own copy of the rule list and holds no other state.
// It is safe for concurrent use as long as the rule callbacks are.
package validator
