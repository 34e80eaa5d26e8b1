// Package logger builds *slog.Logger instances from functional options and
// ships attribute helpers that keep key names consistent across packages.
//
// New picks a text or JSON handler, attaches static attributes and wraps the
// result in LogHandlerDecorator, which injects values pulled from a
// context.Context on every record:
//
//	log := logger.New(
//	    logger.WithDevelopment("signup"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//
//	log.Info("value is invalid",
//	    logger.Field("email"),
//	    logger.FailedRules("required", "email"),
//	)
//
// FromEnv reads LOG_LEVEL, LOG_FORMAT, APP_ENV and SERVICE_NAME through the
// config package for services that configure logging from the environment.
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally.
package logger
