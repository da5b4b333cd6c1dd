// Package server exposes the password generator over HTTP.
//
// Routes:
//
//	GET /v1/passwords   generate passwords (length, count, uppercase, digit query params)
//	GET /health/live    liveness check
//	GET /health/ready   readiness check, runs a short generation
//	GET /metrics        Prometheus metrics
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/pwgen/internal/config"
	"github.com/dmitrymomot/pwgen/pkg/logger"
	"github.com/dmitrymomot/pwgen/pkg/pwgen"
)

// Server serves generated passwords with graceful shutdown.
type Server struct {
	cfg      config.HTTP
	gen      *pwgen.Generator
	defaults pwgen.Request
	log      *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics

	once sync.Once
	mu   sync.Mutex
	srv  *http.Server
	addr net.Addr
}

// New returns a Server that draws passwords from gen.
func New(cfg config.HTTP, gen *pwgen.Generator, opts ...Option) *Server {
	s := &Server{
		cfg:      cfg,
		gen:      gen,
		defaults: pwgen.DefaultRequest(),
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.gen == nil {
		s.gen = pwgen.New()
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
	s.metrics = newMetrics(s.registry)
	s.log = s.log.With(logger.Component("http"))
	return s
}

// Run starts listening and blocks until ctx is done, SIGINT/SIGTERM is
// received, or the listener fails. A clean shutdown returns nil.
func (s *Server) Run(ctx context.Context) error {
	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, errors.New("server already running"))
	}

	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, err)
	}

	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}
	s.srv = srv
	s.addr = ln.Addr()
	s.mu.Unlock()

	s.log.Info("http server started", slog.String("addr", ln.Addr().String()))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	var runErr error
	select {
	case <-ctx.Done():
		runErr = s.shutdownAndWait(errCh)
	case <-stop:
		runErr = s.shutdownAndWait(errCh)
	case runErr = <-errCh:
	}

	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		return errors.Join(ErrStart, runErr)
	}
	return nil
}

func (s *Server) shutdownAndWait(errCh <-chan error) error {
	if err := s.Shutdown(context.Background()); err != nil {
		s.log.Error("http server shutdown failed", logger.Error(err))
	}
	return <-errCh
}

// Shutdown stops the server gracefully. It is safe for repeated calls.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	var err error
	s.once.Do(func() {
		if s.cfg.ShutdownTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
			defer cancel()
		}
		err = srv.Shutdown(ctx)
		s.log.Info("http server stopped")
	})

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}

// Addr returns the bound listener address once Run has started, or nil.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}
