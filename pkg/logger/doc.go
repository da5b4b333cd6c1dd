// Package logger builds *slog.Logger instances for the pwgen binaries.
//
// Loggers are created through New with functional options. JSON output is the
// default; text output is used in development. A handler decorator copies
// request-scoped values (the request id set by the HTTP service) from the
// context into every record.
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "pwgen"),
//	    logger.WithLevelName("debug"),
//	)
//	log.InfoContext(ctx, "password generated", logger.Length(12), logger.Attempts(3))
//
// Attribute helpers in attr.go keep key names consistent across the codebase.
package logger
