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

type AdminAccountHandler struct {
	IdentityService *service.IdentityService
}

// ServeHTTP godoc
//
//	@Summary		Admin Provisioning Endpoint
//	@Description	Create a new administrator account, or elevate and repair an existing account
//	@Description	for the given email. Gated by the configured setup token; safe to re-run.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		leadsdk.CreateAdminAccountRequest	true	"Provisioning request"
//	@Success		200		{object}	leadsdk.CreateAdminAccountResponse	"success, uid, email, name, message"
//	@Failure		400		{object}	leadsdk.ErrorResponse				"error, error_description"
//	@Failure		403		{object}	leadsdk.ErrorResponse				"error, error_description"
//	@Failure		500		{object}	leadsdk.ErrorResponse				"error, error_description"
//	@Router			/v1/admin/accounts [post].
func (h *AdminAccountHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req leadsdk.CreateAdminAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, leadsdk.ErrorResponse{
			Error:            leadsdk.ErrorCodeInvalidArgument,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	result, err := h.IdentityService.CreateOrRepairAdmin(ctx, req.Email, req.Password, req.Name, req.SetupToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSetupTokenMismatch):
			httpx.WriteJSON(w, http.StatusForbidden, leadsdk.ErrorResponse{
				Error:            leadsdk.ErrorCodePermissionDenied,
				ErrorDescription: "Invalid setup token",
			})
		case errors.Is(err, service.ErrInvalidRegistration):
			httpx.WriteJSON(w, http.StatusBadRequest, leadsdk.ErrorResponse{
				Error:            leadsdk.ErrorCodeInvalidArgument,
				ErrorDescription: "Email and password are required",
			})
		default:
			log.Error("failed to provision admin account", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, leadsdk.ErrorResponse{
				Error:            leadsdk.ErrorCodeInternal,
				ErrorDescription: "Failed to create admin account",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, leadsdk.CreateAdminAccountResponse{
		Success: true,
		UID:     result.UserID,
		Email:   result.Email,
		Name:    result.Name,
		Message: result.Message,
	})
}
