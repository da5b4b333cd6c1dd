package commands

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/pwgen/internal/config"
	"github.com/dmitrymomot/pwgen/internal/server"
	"github.com/dmitrymomot/pwgen/pkg/logger"
)

// newLogger builds the logger from the APP_ENV preset, then applies
// LOG_FORMAT and LOG_LEVEL when they are set. Commands pass stderr so stdout
// carries only passwords.
func newLogger(w io.Writer, cfg config.Log) *slog.Logger {
	opts := []logger.Option{
		logger.WithOutput(w),
		logger.WithEnvironment(cfg.Env, "pwgen"),
	}
	if cfg.Format != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.Format)))
	}
	// Empty or unknown names keep the preset level.
	opts = append(opts,
		logger.WithLevelName(cfg.Level),
		logger.WithContextExtractors(server.RequestIDExtractor),
	)
	return logger.New(opts...)
}
