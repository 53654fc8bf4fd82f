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

type ConsultationHandler struct {
	ConsultationService *service.ConsultationService
}

// HandleCreate godoc
//
//	@Summary		Consultation Booking Endpoint
//	@Description	Book a consultation for the authenticated caller. New consultations start in pending status.
//	@Tags			Consultations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		leadsdk.CreateConsultationRequest	true	"Booking request"
//	@Success		200		{object}	leadsdk.CreateConsultationResponse	"success, consultationId"
//	@Failure		401		{object}	leadsdk.ErrorResponse				"error, error_description"
//	@Failure		500		{object}	leadsdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/consultations [post].
func (h *ConsultationHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req leadsdk.CreateConsultationRequest
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

	consultation, err := h.ConsultationService.Create(ctx, callerID, req.Topic)
	if err != nil {
		log.Error("failed to create consultation", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, leadsdk.ErrorResponse{
			Error:            leadsdk.ErrorCodeInternal,
			ErrorDescription: "Failed to create consultation",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, leadsdk.CreateConsultationResponse{
		Success:        true,
		ConsultationID: consultation.ID,
	})
}

// HandleConfirm godoc
//
//	@Summary		Consultation Confirmation Endpoint
//	@Description	Confirm a pending consultation, notifying its owner. Confirming an already
//	@Description	confirmed consultation succeeds quietly. This is an admin-only operation.
//	@Tags			Consultations
//	@Produce		json
//	@Param			id	path		string								true	"Consultation ID"
//	@Success		200	{object}	leadsdk.ConfirmConsultationResponse	"success"
//	@Failure		401	{object}	leadsdk.ErrorResponse				"error, error_description"
//	@Failure		403	{object}	leadsdk.ErrorResponse				"error, error_description"
//	@Failure		404	{object}	leadsdk.ErrorResponse				"error, error_description"
//	@Failure		500	{object}	leadsdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/consultations/{id}/confirm [post].
func (h *ConsultationHandler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
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

	consultationID := r.PathValue("id")

	err := h.ConsultationService.Confirm(ctx, callerID, consultationID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPermissionDenied):
			httpx.WriteJSON(w, http.StatusForbidden, leadsdk.ErrorResponse{
				Error:            leadsdk.ErrorCodePermissionDenied,
				ErrorDescription: "Only admins can confirm consultations",
			})
		case errors.Is(err, service.ErrConsultationNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, leadsdk.ErrorResponse{
				Error:            leadsdk.ErrorCodeNotFound,
				ErrorDescription: "Consultation not found",
			})
		default:
			log.Error("failed to confirm consultation", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, leadsdk.ErrorResponse{
				Error:            leadsdk.ErrorCodeInternal,
				ErrorDescription: "Failed to confirm consultation",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, leadsdk.ConfirmConsultationResponse{Success: true})
}
