// Package commands defines the CLI command structure and flag bindings.
//
// Commands parse arguments and flags, merge them over the environment
// configuration and delegate execution to the handlers package.
package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/pwgen/cmd/pwgen/handlers"
	"github.com/dmitrymomot/pwgen/internal/config"
)

// Root returns the root command. Run without a subcommand it prints passwords.
func Root() *cobra.Command {
	var (
		count       int
		noUppercase bool
		noDigit     bool
		maxAttempts int
		seed        uint64
	)

	cmd := &cobra.Command{
		Use:   "pwgen [length]",
		Short: "Generate pronounceable passwords",
		Long: `Generate pronounceable random passwords built from phonetic fragments.

Defaults come from the environment (PWGEN_LENGTH, PWGEN_UPPERCASE, PWGEN_DIGIT,
PWGEN_COUNT, PWGEN_MAX_ATTEMPTS, PWGEN_SEED) or a .env file; flags override them.
`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			g := &cfg.Generator
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n <= 0 {
					return fmt.Errorf("invalid length %q: must be a positive integer", args[0])
				}
				g.Length = n
			}

			flags := cmd.Flags()
			if flags.Changed("count") {
				g.Count = count
			}
			if flags.Changed("no-uppercase") {
				g.Uppercase = !noUppercase
			}
			if flags.Changed("no-digit") {
				g.Digit = !noDigit
			}
			if flags.Changed("max-attempts") {
				g.MaxAttempts = maxAttempts
			}
			if flags.Changed("seed") {
				g.Seed = seed
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return handlers.Generate(cmd.Context(), cmd.OutOrStdout(), newLogger(cmd.ErrOrStderr(), cfg.Log), *g)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of passwords to print")
	cmd.Flags().BoolVarP(&noUppercase, "no-uppercase", "A", false, "Do not include an uppercase letter")
	cmd.Flags().BoolVarP(&noDigit, "no-digit", "0", false, "Do not include a digit")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", 0, "Give up after this many attempts per password (0 = unlimited)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for reproducible output (0 = crypto random)")

	cmd.AddCommand(Serve())
	cmd.AddCommand(Version())

	return cmd
}
