package api

import (
	"net/http"

	"fundforge/platform/internal/metrics"
)

type Handlers struct {
	deps       *Dependencies
	metricsReg *metrics.MetricsRegistry
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies, metricsReg *metrics.MetricsRegistry) *Handlers {
	return &Handlers{
		deps:       deps,
		metricsReg: metricsReg,
	}
}

func (h *Handlers) GetUserSettings() http.HandlerFunc {
	return GetUserSettingsHandler(h.deps)
}

func (h *Handlers) UpdateUser() http.HandlerFunc {
	return UpdateUserHandler(h.deps, h.metricsReg)
}

func (h *Handlers) ReorderReward() http.HandlerFunc {
	return ReorderRewardHandler(h.deps, h.metricsReg)
}

func (h *Handlers) ListProjectRewards() http.HandlerFunc {
	return ListProjectRewardsHandler(h.deps)
}

func (h *Handlers) DeactivateUser() http.HandlerFunc {
	return DeactivateUserHandler(h.deps)
}

func (h *Handlers) ReactivateUser() http.HandlerFunc {
	return ReactivateUserHandler(h.deps)
}
