package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/consultbase/leadsvc/internal/leads/service"
	"github.com/consultbase/leadsvc/pkg/httpx"
	"github.com/consultbase/leadsvc/pkg/leadsdk"
	"github.com/consultbase/leadsvc/pkg/slogx"
)

type PushTokenHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Push Token Registration Endpoint
//	@Description	Store the caller's device push token. An empty token clears the registration,
//	@Description	stopping push delivery while keeping stored notifications.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		leadsdk.PushTokenRequest	true	"Push token request"
//	@Success		200		{object}	leadsdk.PushTokenResponse	"success"
//	@Failure		400		{object}	leadsdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	leadsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	leadsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/users/me/push-token [put].
func (h *PushTokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req leadsdk.PushTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, leadsdk.ErrorResponse{
			Error:            leadsdk.ErrorCodeInvalidArgument,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	callerID := httpx.UserIDFromContext(ctx)
	if callerID == "" {
		httpx.WriteJSON(w, http.StatusUnauthorized, leadsdk.ErrorResponse{
			Error:            leadsdk.ErrorCodeUnauthenticated,
			ErrorDescription: "Authentication required",
		})
		return
	}

	if err := h.UserService.RegisterPushToken(ctx, callerID, req.FCMToken); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			httpx.WriteJSON(w, http.StatusNotFound, leadsdk.ErrorResponse{
				Error:            leadsdk.ErrorCodeNotFound,
				ErrorDescription: "User not found",
			})
			return
		}
		log.Error("failed to store push token", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, leadsdk.ErrorResponse{
			Error:            leadsdk.ErrorCodeInternal,
			ErrorDescription: "Failed to store push token",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, leadsdk.PushTokenResponse{Success: true})
}
