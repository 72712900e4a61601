// Package server publishes the event catalog over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/event-booker/booker/internal/catalog"
	"github.com/event-booker/booker/internal/config"
	"github.com/event-booker/booker/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type errorResponse struct {
	Error string `json:"error"`
}

type Server struct {
	config  *config.Config
	source  Source
	metrics *metrics.Metrics
	logger  *slog.Logger
	health  sourceHealth
}

func NewServer(cfg *config.Config, source Source, m *metrics.Metrics, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		config:  cfg,
		source:  source,
		metrics: m,
		logger:  logger,
	}
}

// Routes builds the router: the catalog, a health check and metrics.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(securityHeaders)

	r.Get(s.config.Catalog.Path, s.handleCatalog)
	r.Get("/api/health", s.handleHealth)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	return r
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	events, err := s.source.Events(r.Context())
	if err != nil {
		s.logger.Error("catalog read failed", "source", s.source.Name(), "err", err)
		s.health.recordFailure(err)
		s.observe(http.StatusInternalServerError, 0, start)
		writeError(w, http.StatusInternalServerError, "failed to read catalog")
		return
	}

	// Return an empty array rather than null.
	if events == nil {
		events = []catalog.Event{}
	}
	s.health.recordSuccess()
	s.observe(http.StatusOK, len(events), start)
	writeJSON(w, http.StatusOK, events)
}

// handleHealth reports the catalog source state. A source that has failed
// failureThreshold reads in a row answers 503.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.snapshot(s.source.Name())
	status := http.StatusOK
	if report.Status == StatusFailed {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, report)
}

func (s *Server) observe(status, events int, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveCatalog(s.source.Name(), status, events, time.Since(start))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ListenAndServe serves h until ctx is cancelled, then shuts down within the
// configured timeout.
func ListenAndServe(ctx context.Context, cfg *config.Config, h http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
