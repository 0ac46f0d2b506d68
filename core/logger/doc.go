// Package logger builds log/slog loggers and provides attribute helpers for
// the fields the application logs repeatedly.
//
//	log := logger.New(
//		logger.WithDevelopment("hooly"),
//		logger.WithContextExtractors(middleware.RequestIDExtractor),
//	)
//	log.InfoContext(ctx, "login succeeded",
//		logger.Component("auth"),
//		logger.Result("success"),
//	)
//
// Development loggers write text at debug level; production loggers write
// JSON at info level. Helpers such as Error and RequestID return an empty
// attribute for empty input, so they are safe to pass unconditionally.
package logger
