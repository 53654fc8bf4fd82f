package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/consultbase/leadsvc/internal/leads/service"
	"github.com/consultbase/leadsvc/pkg/httpx"
	"github.com/consultbase/leadsvc/pkg/leadsdk"
	"github.com/consultbase/leadsvc/pkg/slogx"
)

type NotificationsHandler struct {
	NotifyService *service.NotifyService
}

// HandleList godoc
//
//	@Summary		Notification Center Endpoint
//	@Description	List the caller's notifications, newest first. Accepts an optional limit query parameter.
//	@Tags			Notifications
//	@Produce		json
//	@Param			limit	query		int								false	"Maximum notifications to return (default 50)"
//	@Success		200		{object}	leadsdk.NotificationsResponse	"notifications"
//	@Failure		401		{object}	leadsdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	leadsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/notifications [get].
func (h *NotificationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	callerID := httpx.UserIDFromContext(ctx)
	if callerID == "" {
		httpx.WriteJSON(w, http.StatusUnauthorized, leadsdk.ErrorResponse{
			Error:            leadsdk.ErrorCodeUnauthenticated,
			ErrorDescription: "Authentication required",
		})
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	notifications, err := h.NotifyService.ListForUser(ctx, callerID, limit)
	if err != nil {
		log.Error("failed to list notifications", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, leadsdk.ErrorResponse{
			Error:            leadsdk.ErrorCodeInternal,
			ErrorDescription: "Failed to list notifications",
		})
		return
	}

	out := leadsdk.NotificationsResponse{
		Notifications: make([]leadsdk.Notification, 0, len(notifications)),
	}
	for _, n := range notifications {
		out.Notifications = append(out.Notifications, leadsdk.Notification{
			ID:        n.ID,
			UserID:    n.UserID,
			Title:     n.Title,
			Body:      n.Body,
			Type:      n.Type,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleMarkRead godoc
//
//	@Summary		Mark Notification Read Endpoint
//	@Description	Mark one of the caller's notifications as read.
//	@Tags			Notifications
//	@Produce		json
//	@Param			id	path		string					true	"Notification ID"
//	@Success		200	{object}	leadsdk.MarkReadResponse	"success"
//	@Failure		401	{object}	leadsdk.ErrorResponse	"error, error_description"
//	@Failure		403	{object}	leadsdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	leadsdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	leadsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/notifications/{id}/read [post].
func (h *NotificationsHandler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	callerID := httpx.UserIDFromContext(ctx)
	if callerID == "" {
		httpx.WriteJSON(w, http.StatusUnauthorized, leadsdk.ErrorResponse{
			Error:            leadsdk.ErrorCodeUnauthenticated,
			ErrorDescription: "Authentication required",
		})
		return
	}

	err := h.NotifyService.MarkRead(ctx, callerID, r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotificationNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, leadsdk.ErrorResponse{
				Error:            leadsdk.ErrorCodeNotFound,
				ErrorDescription: "Notification not found",
			})
		case errors.Is(err, service.ErrNotificationOwnerOnly):
			httpx.WriteJSON(w, http.StatusForbidden, leadsdk.ErrorResponse{
				Error:            leadsdk.ErrorCodePermissionDenied,
				ErrorDescription: "Notification belongs to another user",
			})
		default:
			log.Error("failed to mark notification read", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, leadsdk.ErrorResponse{
				Error:            leadsdk.ErrorCodeInternal,
				ErrorDescription: "Failed to mark notification read",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, leadsdk.MarkReadResponse{Success: true})
}
