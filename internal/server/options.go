package server

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/pwgen/pkg/pwgen"
)

// Option configures the Server.
type Option func(*Server)

// WithLogger supplies the logger. If nil, records are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithDefaults sets the request used for parameters the client omits.
func WithDefaults(req pwgen.Request) Option {
	return func(s *Server) { s.defaults = req }
}

// WithRegistry registers metrics in reg instead of a private registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		if reg != nil {
			s.registry = reg
		}
	}
}
