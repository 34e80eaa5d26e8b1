package validator

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/inputkit/pkg/logger"
)

// ContextFunc is a validator that logs through a request context.
type ContextFunc[V, T any] func(ctx context.Context, value V) Result[V, T]

// Logged wraps fn so every evaluation is logged: valid results at debug
// level, invalid ones at info level with the failed rule names and the
// error produced by Result.Err. Values are never logged. A nil log returns
// fn unchanged.
func Logged[V, T any](fn Func[V, T], log *slog.Logger, field string) Func[V, T] {
	if log == nil {
		return fn
	}

	logged := LoggedContext(fn, log, field)
	return func(value V) Result[V, T] {
		return logged(context.Background(), value)
	}
}

// LoggedContext is Logged for callers that carry a context. Records go
// through the context-aware slog methods, so attributes registered with
// logger.WithContextValue or logger.WithContextExtractors (request ids and
// the like) are attached. A nil log still returns a working validator that
// ignores ctx.
func LoggedContext[V, T any](fn Func[V, T], log *slog.Logger, field string) ContextFunc[V, T] {
	if log == nil {
		return func(_ context.Context, value V) Result[V, T] {
			return fn(value)
		}
	}

	log = log.With(logger.Component("validator"), logger.Field(field))

	return func(ctx context.Context, value V) Result[V, T] {
		res := fn(value)

		if res.Valid {
			log.DebugContext(ctx, "value is valid", logger.Valid(true))
			return res
		}

		log.InfoContext(ctx, "value is invalid",
			logger.Valid(false),
			logger.Rule(res.FirstFailedRule.Name),
			logger.FailedRules(res.FailedRuleNames()...),
			logger.Error(res.Err(field)),
		)
		return res
	}
}
