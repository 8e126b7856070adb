// Package server exposes the calculators, estimator and project storage as a
// JSON HTTP API.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/buildwise/buildwise/internal/concrete"
	"github.com/buildwise/buildwise/internal/estimate"
	"github.com/buildwise/buildwise/internal/lumber"
	"github.com/buildwise/buildwise/internal/project"
	"github.com/buildwise/buildwise/internal/steel"
)

// Server holds the API's dependencies. All fields are required except the
// logger, which defaults to a no-op logger.
type Server struct {
	concrete  *concrete.Calculator
	lumber    *lumber.Calculator
	steel     *steel.Calculator
	estimator *estimate.Estimator
	storage   *project.Storage
	logger    *zap.Logger
	metrics   *metrics
}

// New builds a server around the given components.
func New(
	concreteCalc *concrete.Calculator,
	lumberCalc *lumber.Calculator,
	steelCalc *steel.Calculator,
	estimator *estimate.Estimator,
	storage *project.Storage,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		concrete:  concreteCalc,
		lumber:    lumberCalc,
		steel:     steelCalc,
		estimator: estimator,
		storage:   storage,
		logger:    logger,
		metrics:   newMetrics(),
	}
}

// Router wires the API routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.metrics.handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/calculators/concrete", s.handleConcrete)
		r.Post("/calculators/lumber", s.handleLumber)
		r.Post("/calculators/steel", s.handleSteel)
		r.Post("/estimations/material-cost", s.handleMaterialCostEstimate)

		r.Get("/catalogs/lumber-sizes", s.handleLumberSizes)
		r.Get("/catalogs/steel-shapes", s.handleSteelShapes)

		r.Get("/projects", s.handleProjectsList)
		r.Post("/projects", s.handleProjectCreate)
		r.Get("/projects/{name}", s.handleProjectGet)
		r.Delete("/projects/{name}", s.handleProjectDelete)
		r.Post("/projects/{name}/materials", s.handleMaterialAdd)
		r.Get("/projects/{name}/export", s.handleProjectExport)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON reads the request body into dst. On malformed JSON it writes
// the 400 response itself and reports failure.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
