package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fundforge/platform/internal/auth"
	"fundforge/platform/internal/common"
	"fundforge/platform/internal/db/repositories"
	"fundforge/platform/internal/metrics"
	"fundforge/platform/internal/models/dtos"
	"fundforge/platform/internal/services"
)

// GetUserSettingsHandler handles GET /api/v1/user
//
// @Summary      Get account settings
// @Description  Returns the current user's profile with subscription and reminder state.
// @Tags         Users
// @Produce      json
// @Success      200  {object}  dtos.APIResponse
// @Failure      401  {object}  dtos.APIResponse
// @Router       /api/v1/user [get]
func GetUserSettingsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		userID, ok := auth.CurrentUserID(r.Context())
		if !ok {
			common.RespondError(w, initTime, nil, "Unauthorized: missing session", http.StatusUnauthorized)
			return
		}

		settings, err := deps.Services.User.Settings(r.Context(), userID)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch settings", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Settings fetched successfully", settings)
	}
}

// UpdateUserHandler handles PUT /api/v1/user
//
// @Summary      Update account settings
// @Description  Applies profile changes and reconciles subscription and reminder preferences in one operation. Preference changes commit even when profile validation fails.
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        input  body  dtos.UpdateUserRequest  true  "Settings form"
// @Success      200  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Failure      422  {object}  dtos.APIResponse
// @Router       /api/v1/user [put]
func UpdateUserHandler(deps *Dependencies, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		userID, ok := auth.CurrentUserID(r.Context())
		if !ok {
			common.RespondError(w, initTime, nil, "Unauthorized: missing session", http.StatusUnauthorized)
			return
		}

		var req dtos.UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		input, err := dtos.ParseUpdateUserInput(&req)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid request", http.StatusBadRequest)
			return
		}

		user, err := deps.Services.User.UpdateUser(r.Context(), userID, input)
		if err != nil {
			var verr *services.ValidationErrors
			switch {
			case errors.As(err, &verr):
				if metricsReg != nil {
					metricsReg.PreferenceUpdatesTotal.WithLabelValues("validation_failed").Inc()
				}
				// Reconciliation always commits before validation runs.
				common.RespondValidationErrors(w, initTime, verr.Fields, true)
			case errors.Is(err, repositories.ErrUserNotFound):
				common.RespondError(w, initTime, err, "User not found", http.StatusNotFound)
			default:
				common.RespondError(w, initTime, err, "Failed to update user", http.StatusInternalServerError)
			}
			return
		}

		if metricsReg != nil {
			metricsReg.PreferenceUpdatesTotal.WithLabelValues("ok").Inc()
		}
		common.RespondSuccess(w, initTime, "User updated successfully", user)
	}
}
