package routes

import (
	"fundforge/platform/internal/api"
	"fundforge/platform/internal/metrics"
	"fundforge/platform/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, metricsReg *metrics.MetricsRegistry, handlers *api.Handlers, deps *api.Dependencies) {
	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.MetricsMiddleware(metricsReg))

		// Public: reactivation links arrive from signed-out users.
		v1.Post("/account/reactivate", handlers.ReactivateUser())

		// Everything else requires a session; mutating verbs also carry the
		// CSRF token minted with it.
		v1.Group(func(authed chi.Router) {
			authed.Use(middleware.AuthMiddleware(deps.Services.Session))

			authed.Get("/user", handlers.GetUserSettings())
			authed.Put("/user", handlers.UpdateUser())
			authed.Delete("/user", handlers.DeactivateUser())

			authed.Get("/projects/{projectID}/rewards", handlers.ListProjectRewards())
			authed.Put("/rewards/{rewardID}/position", handlers.ReorderReward())
		})
	})
}
