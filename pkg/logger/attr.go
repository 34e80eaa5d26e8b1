package logger

import "log/slog"

// Error records err under "error". Returns an empty Attr for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the emitting package under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records the name of the validated field under "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Rule records a rule name under "rule".
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// Valid records the outcome of a validation under "valid".
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// FailedRules records rule names under "failed_rules". Returns an empty Attr
// when there are none.
func FailedRules(names ...string) slog.Attr {
	if len(names) == 0 {
		return slog.Attr{}
	}
	return slog.Any("failed_rules", names)
}
