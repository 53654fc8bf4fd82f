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

type NotificationSendHandler struct {
	NotifyService *service.NotifyService
}

// ServeHTTP godoc
//
//	@Summary		Ad-hoc Notification Endpoint
//	@Description	Deliver a notification to any user. The notification is always stored; push
//	@Description	delivery happens only when the target has a registered device. Admin-only.
//	@Tags			Notifications
//	@Accept			json
//	@Produce		json
//	@Param			request	body		leadsdk.SendNotificationRequest		true	"Notification request"
//	@Success		200		{object}	leadsdk.SendNotificationResponse	"success"
//	@Failure		400		{object}	leadsdk.ErrorResponse				"error, error_description"
//	@Failure		401		{object}	leadsdk.ErrorResponse				"error, error_description"
//	@Failure		403		{object}	leadsdk.ErrorResponse				"error, error_description"
//	@Failure		500		{object}	leadsdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/notifications/send [post].
func (h *NotificationSendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req leadsdk.SendNotificationRequest
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

	err := h.NotifyService.SendAsAdmin(ctx, callerID, req.UserID, req.Title, req.Body, req.Type)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPermissionDenied):
			httpx.WriteJSON(w, http.StatusForbidden, leadsdk.ErrorResponse{
				Error:            leadsdk.ErrorCodePermissionDenied,
				ErrorDescription: "Only admins can send notifications",
			})
		case errors.Is(err, service.ErrInvalidNotification):
			httpx.WriteJSON(w, http.StatusBadRequest, leadsdk.ErrorResponse{
				Error:            leadsdk.ErrorCodeInvalidArgument,
				ErrorDescription: "userId, title and body are required",
			})
		default:
			log.Error("failed to send notification", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, leadsdk.ErrorResponse{
				Error:            leadsdk.ErrorCodeInternal,
				ErrorDescription: "Failed to send notification",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, leadsdk.SendNotificationResponse{Success: true})
}
