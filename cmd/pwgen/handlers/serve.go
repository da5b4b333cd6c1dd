package handlers

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/pwgen/internal/config"
	"github.com/dmitrymomot/pwgen/internal/server"
	"github.com/dmitrymomot/pwgen/pkg/pwgen"
)

// Serve runs the HTTP service until ctx is canceled.
func Serve(ctx context.Context, log *slog.Logger, cfg config.Config) error {
	gen := pwgen.New(cfg.Generator.Options()...)
	srv := server.New(cfg.HTTP, gen,
		server.WithLogger(log),
		server.WithDefaults(cfg.Generator.Request()),
	)
	return srv.Run(ctx)
}
