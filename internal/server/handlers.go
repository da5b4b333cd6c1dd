package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/pwgen/internal/config"
	"github.com/dmitrymomot/pwgen/pkg/binder"
	"github.com/dmitrymomot/pwgen/pkg/logger"
	"github.com/dmitrymomot/pwgen/pkg/pwgen"
)

// readinessRequest is generated by the readiness check.
var readinessRequest = pwgen.Request{Length: 8, Uppercase: true, Digit: true}

var bindQuery = binder.Query()

type passwordsResponse struct {
	Passwords []string `json:"passwords"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/v1/passwords", s.passwords)
	r.Route("/health", func(r chi.Router) {
		r.Get("/live", s.live)
		r.Get("/ready", s.ready)
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return r
}

func (s *Server) passwords(w http.ResponseWriter, r *http.Request) {
	req, count, err := s.parseQuery(r)
	if err != nil {
		s.metrics.recordError(reasonInvalid)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.GenerateTimeout)
	defer cancel()

	out := make([]string, 0, count)
	for range count {
		res, err := s.gen.Run(ctx, req)
		if err != nil {
			s.writeGenerateError(w, r, req, err)
			return
		}
		s.metrics.recordPassword(res.Attempts)
		out = append(out, res.Password)
	}

	s.log.DebugContext(r.Context(), "passwords generated", logger.Length(req.Length), logger.Count(count))
	writeJSON(w, http.StatusOK, passwordsResponse{Passwords: out})
}

func (s *Server) writeGenerateError(w http.ResponseWriter, r *http.Request, req pwgen.Request, err error) {
	switch {
	case errors.Is(err, pwgen.ErrCanceled):
		s.metrics.recordError(reasonTimeout)
		s.log.WarnContext(r.Context(), "password generation timed out", logger.Length(req.Length), logger.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "password generation timed out"})
	case errors.Is(err, pwgen.ErrMaxAttemptsExceeded):
		s.metrics.recordError(reasonExhausted)
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	default:
		s.metrics.recordError(reasonInvalid)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
}

// passwordsQuery holds the optional parameters of GET /v1/passwords.
type passwordsQuery struct {
	Length    *int  `query:"length"`
	Count     *int  `query:"count"`
	Uppercase *bool `query:"uppercase"`
	Digit     *bool `query:"digit"`
}

// request overlays q on defaults and enforces the configured limits.
func (q passwordsQuery) request(defaults pwgen.Request, cfg config.HTTP) (pwgen.Request, int, error) {
	req := defaults
	count := 1
	if q.Length != nil {
		req.Length = *q.Length
	}
	if q.Count != nil {
		count = *q.Count
	}
	if q.Uppercase != nil {
		req.Uppercase = *q.Uppercase
	}
	if q.Digit != nil {
		req.Digit = *q.Digit
	}

	if req.Length <= 0 || req.Length > cfg.MaxLength {
		return req, 0, fmt.Errorf("%w: length must be between 1 and %d", ErrInvalidParam, cfg.MaxLength)
	}
	if count <= 0 || count > cfg.MaxCount {
		return req, 0, fmt.Errorf("%w: count must be between 1 and %d", ErrInvalidParam, cfg.MaxCount)
	}
	return req, count, nil
}

func (s *Server) parseQuery(r *http.Request) (pwgen.Request, int, error) {
	var q passwordsQuery
	if err := bindQuery(r, &q); err != nil {
		return pwgen.Request{}, 0, errors.Join(ErrInvalidParam, err)
	}
	return q.request(s.defaults, s.cfg)
}

func (s *Server) live(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ALIVE"))
}

func (s *Server) ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.GenerateTimeout)
	defer cancel()

	if _, err := s.gen.Run(ctx, readinessRequest); err != nil {
		s.log.ErrorContext(ctx, "readiness check failed", logger.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("NOT_READY"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("READY"))
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.LogAttrs(r.Context(), slog.LevelInfo, "http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.Duration(time.Since(start)),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
