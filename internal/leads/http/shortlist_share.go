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

type ShortlistShareHandler struct {
	LeadService *service.LeadService
}

// ServeHTTP godoc
//
//	@Summary		Shortlist Share Endpoint
//	@Description	Record a lead for a shared shortlist and return its public share link.
//	@Tags			Leads
//	@Accept			json
//	@Produce		json
//	@Param			request	body		leadsdk.ShareShortlistRequest	true	"Share request"
//	@Success		200		{object}	leadsdk.ShareShortlistResponse	"success, shareLink, leadId"
//	@Failure		400		{object}	leadsdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	leadsdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	leadsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/shortlists/share [post].
func (h *ShortlistShareHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req leadsdk.ShareShortlistRequest
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

	lead, err := h.LeadService.ShareShortlist(ctx, callerID, req.UserID, req.OpportunityIDs)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidLeadRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, leadsdk.ErrorResponse{
				Error:            leadsdk.ErrorCodeInvalidArgument,
				ErrorDescription: "userId and opportunityIds are required",
			})
		default:
			log.Error("failed to share shortlist", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, leadsdk.ErrorResponse{
				Error:            leadsdk.ErrorCodeInternal,
				ErrorDescription: "Failed to share shortlist",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, leadsdk.ShareShortlistResponse{
		Success:   true,
		ShareLink: lead.ShareLink,
		LeadID:    lead.ID,
	})
}
