package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fundforge/platform/internal/auth"
	"fundforge/platform/internal/common"
	"fundforge/platform/internal/models/dtos"
	"fundforge/platform/internal/services"
)

// DeactivateUserHandler handles DELETE /api/v1/user
//
// @Summary      Deactivate the current account
// @Description  Soft-deactivates the account and ends the session. The response carries the reactivation token normally delivered by email.
// @Tags         Users
// @Produce      json
// @Success      200  {object}  dtos.APIResponse
// @Failure      401  {object}  dtos.APIResponse
// @Router       /api/v1/user [delete]
func DeactivateUserHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		session := auth.GetSession(r.Context())
		if session == nil {
			common.RespondError(w, initTime, nil, "Unauthorized: missing session", http.StatusUnauthorized)
			return
		}

		token, err := deps.Services.Account.Deactivate(r.Context(), session.UserID)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to deactivate account", http.StatusInternalServerError)
			return
		}

		// Deactivating yourself signs you out.
		if err := deps.Services.Session.DeleteSession(r.Context(), session.SessionID); err != nil {
			common.RespondError(w, initTime, err, "Failed to end session", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Account deactivated", map[string]string{
			"reactivate_token": token,
		})
	}
}

// ReactivateUserHandler handles POST /api/v1/account/reactivate
//
// @Summary      Reactivate a deactivated account
// @Description  Validates the emailed reactivation token and restores the account.
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        input  body  dtos.ReactivateRequest  true  "Reactivation token"
// @Success      200  {object}  dtos.APIResponse
// @Failure      400  {object}  dtos.APIResponse
// @Router       /api/v1/account/reactivate [post]
func ReactivateUserHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.ReactivateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
			common.RespondError(w, initTime, err, "Missing token", http.StatusBadRequest)
			return
		}

		user, err := deps.Services.Account.Reactivate(r.Context(), req.Token)
		if err != nil {
			if errors.Is(err, services.ErrInvalidToken) {
				common.RespondError(w, initTime, err, "Invalid token", http.StatusBadRequest)
				return
			}
			common.RespondError(w, initTime, err, "Failed to reactivate account", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Account reactivated", user)
	}
}
