package commands

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/pwgen/cmd/pwgen/handlers"
	"github.com/dmitrymomot/pwgen/internal/config"
)

// Serve returns the command that runs the HTTP service.
func Serve() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve passwords over HTTP",
		Long: `Run an HTTP service exposing:

  GET /v1/passwords?length=&count=&uppercase=&digit=
  GET /health/live
  GET /health/ready
  GET /metrics
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.HTTP.Addr = addr
			}
			return handlers.Serve(cmd.Context(), newLogger(cmd.ErrOrStderr(), cfg.Log), cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address (overrides HTTP_ADDR)")

	return cmd
}
