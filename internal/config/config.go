// Package config loads runtime settings for the pwgen binaries from the
// environment, optionally seeded from a .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/pwgen/pkg/pwgen"
)

// Config holds generator, logging and HTTP settings.
type Config struct {
	Generator Generator
	Log       Log
	HTTP      HTTP
}

// Generator holds the default password request and generator tuning.
type Generator struct {
	Length      int    `env:"PWGEN_LENGTH" envDefault:"8"`
	Uppercase   bool   `env:"PWGEN_UPPERCASE" envDefault:"true"`
	Digit       bool   `env:"PWGEN_DIGIT" envDefault:"true"`
	Count       int    `env:"PWGEN_COUNT" envDefault:"1"`
	MaxAttempts int    `env:"PWGEN_MAX_ATTEMPTS" envDefault:"0"` // 0 retries without limit
	Seed        uint64 `env:"PWGEN_SEED" envDefault:"0"`         // 0 selects the crypto source
}

// Log selects the logger preset through Env. Level and Format override the
// preset only when set.
type Log struct {
	Level  string `env:"LOG_LEVEL"`
	Format string `env:"LOG_FORMAT"`
	Env    string `env:"APP_ENV" envDefault:"development"`
}

// HTTP configures the password service. MaxLength and MaxCount cap the work a
// single request may ask for.
type HTTP struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	MaxLength       int           `env:"HTTP_MAX_LENGTH" envDefault:"128"`
	MaxCount        int           `env:"HTTP_MAX_COUNT" envDefault:"100"`
	GenerateTimeout time.Duration `env:"HTTP_GENERATE_TIMEOUT" envDefault:"2s"`
}

// Request returns the default password request.
func (g Generator) Request() pwgen.Request {
	return pwgen.Request{Length: g.Length, Uppercase: g.Uppercase, Digit: g.Digit}
}

// Options returns generator options for the configured seed and attempt limit.
func (g Generator) Options() []pwgen.Option {
	opts := []pwgen.Option{pwgen.WithMaxAttempts(g.MaxAttempts)}
	if g.Seed != 0 {
		opts = append(opts, pwgen.WithSource(pwgen.NewSeededSource(g.Seed)))
	}
	return opts
}

// Load reads .env (if present) and parses the process environment.
func Load() (Config, error) {
	// A missing .env file is fine.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFrom parses cfg from the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges that env tags cannot express.
func (c Config) Validate() error {
	var errs []error
	if c.Generator.Length <= 0 {
		errs = append(errs, fmt.Errorf("PWGEN_LENGTH must be positive, got %d", c.Generator.Length))
	}
	if c.Generator.Count <= 0 {
		errs = append(errs, fmt.Errorf("PWGEN_COUNT must be positive, got %d", c.Generator.Count))
	}
	if c.Generator.MaxAttempts < 0 {
		errs = append(errs, fmt.Errorf("PWGEN_MAX_ATTEMPTS must not be negative, got %d", c.Generator.MaxAttempts))
	}
	if c.HTTP.MaxLength <= 0 {
		errs = append(errs, fmt.Errorf("HTTP_MAX_LENGTH must be positive, got %d", c.HTTP.MaxLength))
	}
	if c.HTTP.MaxCount <= 0 {
		errs = append(errs, fmt.Errorf("HTTP_MAX_COUNT must be positive, got %d", c.HTTP.MaxCount))
	}
	if c.HTTP.GenerateTimeout <= 0 {
		errs = append(errs, fmt.Errorf("HTTP_GENERATE_TIMEOUT must be positive, got %s", c.HTTP.GenerateTimeout))
	}
	switch c.Log.Format {
	case "", "json", "text":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.Log.Format))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}
