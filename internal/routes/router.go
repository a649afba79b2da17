package routes

import (
	"net/http"
	"time"

	"fundforge/platform/internal/api"
	"fundforge/platform/internal/db"
	"fundforge/platform/internal/logging"
	"fundforge/platform/internal/metrics"
	"fundforge/platform/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// RegisterRoutes wires middleware, dependencies, and all API routes. The
// dependency container and metrics registry are returned so main can hand
// them to the background workers.
func RegisterRoutes(upSince time.Time) (http.Handler, *api.Dependencies, *metrics.MetricsRegistry) {
	r := chi.NewRouter()

	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:8081"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	deps, err := api.InitDependencies()
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	handlers := api.NewHandlers(deps, metricsReg)

	r.Get("/healthz", api.HealthCheckHandler(db.DB, deps.Redis, upSince))

	RegisterAPIRoutes(r, metricsReg, handlers, deps)

	logging.Info("Router initialized with metrics and logging middleware")
	return r, deps, metricsReg
}
