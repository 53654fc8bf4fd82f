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

type LeadCreateHandler struct {
	LeadService *service.LeadService
}

// ServeHTTP godoc
//
//	@Summary		Consultation Lead Endpoint
//	@Description	Record a lead for one of the caller's booked consultations. A lead created for
//	@Description	the same user within the last few minutes is returned instead of duplicated.
//	@Tags			Leads
//	@Accept			json
//	@Produce		json
//	@Param			request	body		leadsdk.CreateLeadRequest	true	"Lead request"
//	@Success		200		{object}	leadsdk.CreateLeadResponse	"success, leadId, alreadyExists"
//	@Failure		400		{object}	leadsdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	leadsdk.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	leadsdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	leadsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	leadsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/leads/create-for-consultation [post].
func (h *LeadCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req leadsdk.CreateLeadRequest
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

	lead, alreadyExists, err := h.LeadService.CreateForConsultation(ctx, callerID, req.ConsultationID, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidLeadRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, leadsdk.ErrorResponse{
				Error:            leadsdk.ErrorCodeInvalidArgument,
				ErrorDescription: "consultationId and userId are required",
			})
		case errors.Is(err, service.ErrConsultationNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, leadsdk.ErrorResponse{
				Error:            leadsdk.ErrorCodeNotFound,
				ErrorDescription: "Consultation not found",
			})
		case errors.Is(err, service.ErrNotConsultationOwner):
			httpx.WriteJSON(w, http.StatusForbidden, leadsdk.ErrorResponse{
				Error:            leadsdk.ErrorCodePermissionDenied,
				ErrorDescription: "You can only create leads for your own consultations",
			})
		case errors.Is(err, service.ErrUserMismatch):
			httpx.WriteJSON(w, http.StatusBadRequest, leadsdk.ErrorResponse{
				Error:            leadsdk.ErrorCodeInvalidArgument,
				ErrorDescription: "User ID does not match the consultation's owner",
			})
		default:
			log.Error("failed to create lead", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, leadsdk.ErrorResponse{
				Error:            leadsdk.ErrorCodeInternal,
				ErrorDescription: "Failed to create lead",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, leadsdk.CreateLeadResponse{
		Success:       true,
		LeadID:        lead.ID,
		AlreadyExists: alreadyExists,
	})
}
