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

type LeadAssignHandler struct {
	LeadService *service.LeadService
}

// ServeHTTP godoc
//
//	@Summary		Consultant Assignment Endpoint
//	@Description	Assign a consultant to a lead and notify the lead's owner. This is an admin-only operation.
//	@Tags			Leads
//	@Accept			json
//	@Produce		json
//	@Param			request	body		leadsdk.AssignConsultantRequest		true	"Assignment request"
//	@Success		200		{object}	leadsdk.AssignConsultantResponse	"success"
//	@Failure		400		{object}	leadsdk.ErrorResponse				"error, error_description"
//	@Failure		401		{object}	leadsdk.ErrorResponse				"error, error_description"
//	@Failure		403		{object}	leadsdk.ErrorResponse				"error, error_description"
//	@Failure		404		{object}	leadsdk.ErrorResponse				"error, error_description"
//	@Failure		500		{object}	leadsdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/leads/assign-consultant [post].
func (h *LeadAssignHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req leadsdk.AssignConsultantRequest
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

	err := h.LeadService.AssignConsultant(ctx, callerID, req.LeadID, req.ConsultantID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPermissionDenied):
			httpx.WriteJSON(w, http.StatusForbidden, leadsdk.ErrorResponse{
				Error:            leadsdk.ErrorCodePermissionDenied,
				ErrorDescription: "Only admins can assign consultants",
			})
		case errors.Is(err, service.ErrInvalidLeadRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, leadsdk.ErrorResponse{
				Error:            leadsdk.ErrorCodeInvalidArgument,
				ErrorDescription: "leadId and consultantId are required",
			})
		case errors.Is(err, service.ErrLeadNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, leadsdk.ErrorResponse{
				Error:            leadsdk.ErrorCodeNotFound,
				ErrorDescription: "Lead not found",
			})
		default:
			log.Error("failed to assign consultant", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, leadsdk.ErrorResponse{
				Error:            leadsdk.ErrorCodeInternal,
				ErrorDescription: "Failed to assign consultant",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, leadsdk.AssignConsultantResponse{Success: true})
}
