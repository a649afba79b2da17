package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"fundforge/platform/internal/auth"
	"fundforge/platform/internal/common"
	"fundforge/platform/internal/db/repositories"
	"fundforge/platform/internal/metrics"
	"fundforge/platform/internal/models/dtos"
	"fundforge/platform/internal/services"

	"github.com/go-chi/chi/v5"
)

// ReorderRewardHandler handles PUT /api/v1/rewards/{rewardID}/position
//
// @Summary      Persist a reward drag-and-drop move
// @Description  Writes the moved reward's new position. One call per dropped card; sibling positions are untouched.
// @Tags         Rewards
// @Accept       json
// @Produce      json
// @Param        rewardID  path  int                       true  "Reward ID"
// @Param        input     body  dtos.ReorderRewardRequest true  "New zero-based position"
// @Success      200  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Failure      403  {object}  dtos.APIResponse
// @Failure      404  {object}  dtos.APIResponse
// @Router       /api/v1/rewards/{rewardID}/position [put]
func ReorderRewardHandler(deps *Dependencies, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		userID, ok := auth.CurrentUserID(r.Context())
		if !ok {
			common.RespondError(w, initTime, nil, "Unauthorized: missing session", http.StatusUnauthorized)
			return
		}

		rewardID, err := strconv.ParseInt(chi.URLParam(r, "rewardID"), 10, 64)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid reward ID", http.StatusBadRequest)
			return
		}

		var req dtos.ReorderRewardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Position == nil {
			common.RespondError(w, initTime, err, "Missing position", http.StatusBadRequest)
			return
		}
		if *req.Position < 0 {
			common.RespondError(w, initTime, nil, "Invalid position", http.StatusBadRequest)
			return
		}

		err = deps.Services.Rewards.Reorder(r.Context(), userID, rewardID, *req.Position)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotOwner):
				common.RespondError(w, initTime, err, "Forbidden", http.StatusForbidden)
			case errors.Is(err, repositories.ErrRewardNotFound):
				common.RespondError(w, initTime, err, "Reward not found", http.StatusNotFound)
			default:
				common.RespondError(w, initTime, err, "Failed to reorder reward", http.StatusInternalServerError)
			}
			return
		}

		if metricsReg != nil {
			metricsReg.RewardReordersTotal.Inc()
		}
		common.RespondSuccess(w, initTime, "Reward reordered", dtos.ReorderAck{
			RewardID: rewardID,
			Position: *req.Position,
		})
	}
}

// ListProjectRewardsHandler handles GET /api/v1/projects/{projectID}/rewards
//
// @Summary      List a project's rewards in display order
// @Tags         Rewards
// @Produce      json
// @Param        projectID  path  int  true  "Project ID"
// @Success      200  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Router       /api/v1/projects/{projectID}/rewards [get]
func ListProjectRewardsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		projectID, err := strconv.ParseInt(chi.URLParam(r, "projectID"), 10, 64)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid project ID", http.StatusBadRequest)
			return
		}

		rewards, err := deps.Services.Rewards.ListForProject(r.Context(), projectID)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list rewards", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Rewards fetched successfully", rewards)
	}
}
