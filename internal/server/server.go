// Package server exposes the scene-generation pipeline over HTTP.
//
// Endpoints:
//
//	POST /v1/scenes/resolve  resolve a document (JSON body) into a scene
//	GET  /v1/scenes/{id}     fetch a previously resolved scene by pass ID
//	GET  /healthz            liveness probe
//
// Resolved scenes are archived in the configured store so GET can serve
// them later; domain errors map to structured JSON error responses.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mengfei0517/robocasa/pkg/pipeline"
	"github.com/mengfei0517/robocasa/pkg/store"
)

// Server handles HTTP requests against a pipeline runner and scene store.
type Server struct {
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
}

// New creates a server. A nil store falls back to an in-memory archive;
// a nil logger falls back to the default logger.
func New(runner *pipeline.Runner, st store.Store, logger *log.Logger) *Server {
	if st == nil {
		st = store.NewMemoryStore()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, store: st, logger: logger}
}

// Router builds the chi router with all routes and middleware mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1/scenes", func(r chi.Router) {
		r.Post("/resolve", s.handleResolve)
		r.Get("/{id}", s.handleGet)
	})
	return r
}

// ListenAndServe runs the server on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("listening", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
