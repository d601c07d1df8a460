// Package server exposes the planargrid pipeline over HTTP.
//
// # Endpoints
//
//	GET /healthz              build information
//	GET /v1/graph             generate and return the graph as JSON
//	GET /v1/graph.{format}    generate and return a rendered artifact
//	GET /v1/runs              list archived runs (newest first)
//	GET /v1/runs/{id}         fetch one archived run
//
// Generation parameters are query parameters: grid, p, rel, seed, self,
// multi, res, bg and refresh. Missing values fall back to the server's
// defaults; a missing seed is drawn at random and echoed in the response.
//
// Errors are returned as {"code": "...", "message": "..."} with a status
// derived from the error code.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/planargrid/pkg/pipeline"
	"github.com/matzehuels/planargrid/pkg/store"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = ":8080"

// Timeouts for the HTTP server.
const (
	readHeaderTimeout = 10 * time.Second
	requestTimeout    = 60 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Server serves the pipeline over HTTP. A nil Store disables the run archive.
type Server struct {
	Runner   *pipeline.Runner
	Store    store.Store
	Logger   *log.Logger
	Defaults pipeline.Options
}

// New creates a server. Defaults supplies generation parameters for query
// parameters the client omits.
func New(runner *pipeline.Runner, st store.Store, defaults pipeline.Options, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	return &Server{
		Runner:   runner,
		Store:    st,
		Logger:   logger,
		Defaults: defaults,
	}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/graph", s.handleGraph)
		r.Get("/graph.{format}", s.handleArtifact)
		r.Get("/runs", s.handleListRuns)
		r.Get("/runs/{id}", s.handleGetRun)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, errNotFound("no route for %s", r.URL.Path))
	})
	return r
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
