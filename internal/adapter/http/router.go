package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/finflow/finflow/internal/adapter/http/handler"
	"github.com/finflow/finflow/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	TemplateHandler    *handler.TemplateHandler
	MaterializeHandler *handler.MaterializeHandler
	OccurrenceHandler  *handler.OccurrenceHandler
	HealthHandler      *handler.HealthHandler
	Logger             zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Templates
		r.Route("/templates", func(r chi.Router) {
			r.Post("/", cfg.TemplateHandler.Create)
			r.Get("/", cfg.TemplateHandler.List)
			r.Get("/{id}", cfg.TemplateHandler.Get)
			r.Post("/{id}/end", cfg.TemplateHandler.End)
			r.Get("/{id}/schedule", cfg.TemplateHandler.Schedule)
			r.Post("/{id}/materialize", cfg.MaterializeHandler.Materialize)
			r.Get("/{id}/occurrences", cfg.OccurrenceHandler.ListByTemplate)
		})

		// Batch materialization
		r.Post("/materializations", cfg.MaterializeHandler.MaterializeAll)

		// Occurrences
		r.Delete("/occurrences/{id}", cfg.OccurrenceHandler.Delete)
	})

	return r
}
