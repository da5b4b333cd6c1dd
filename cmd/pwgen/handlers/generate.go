// Package handlers implements the work behind each CLI command.
package handlers

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/pwgen/internal/config"
	"github.com/dmitrymomot/pwgen/pkg/logger"
	"github.com/dmitrymomot/pwgen/pkg/pwgen"
)

// Generate prints cfg.Count passwords to out, one per line.
func Generate(ctx context.Context, out io.Writer, log *slog.Logger, cfg config.Generator) error {
	gen := pwgen.New(cfg.Options()...)
	req := cfg.Request()

	start := time.Now()
	pws, err := gen.GenerateN(ctx, cfg.Count, req)
	if err != nil {
		return fmt.Errorf("failed to generate passwords: %w", err)
	}
	log.DebugContext(ctx, "passwords generated",
		logger.Length(req.Length),
		logger.Count(len(pws)),
		logger.Duration(time.Since(start)),
	)

	for _, pw := range pws {
		if _, err := fmt.Fprintln(out, pw); err != nil {
			return err
		}
	}
	return nil
}
