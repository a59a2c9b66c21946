// Package logger builds the application's *slog.Logger.
//
// New applies functional options on top of production-safe defaults (JSON,
// info level, stdout). WithEnvironment picks text output at debug level for
// development and JSON at info level everywhere else, and stamps every record
// with the service name and environment.
//
// Request-scoped values are injected by ContextExtractor functions wrapped
// around the handler, so a handler only needs to call InfoContext with the
// request context for the request id to appear:
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "portfolio"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
// AccessLog adapts the logger to chi's middleware.RequestLogger.
package logger
