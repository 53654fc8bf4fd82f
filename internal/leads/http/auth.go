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

type RegisterHandler struct {
	IdentityService *service.IdentityService
}

// ServeHTTP godoc
//
//	@Summary		Account Registration Endpoint
//	@Description	Create a new account and user profile from an email and password.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		leadsdk.RegisterRequest		true	"Registration request"
//	@Success		200		{object}	leadsdk.RegisterResponse	"success, userId"
//	@Failure		400		{object}	leadsdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	leadsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req leadsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, leadsdk.ErrorResponse{
			Error:            leadsdk.ErrorCodeInvalidArgument,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	user, err := h.IdentityService.Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRegistration):
			httpx.WriteJSON(w, http.StatusBadRequest, leadsdk.ErrorResponse{
				Error:            leadsdk.ErrorCodeInvalidArgument,
				ErrorDescription: "Email and password are required",
			})
		case errors.Is(err, service.ErrEmailTaken):
			httpx.WriteJSON(w, http.StatusBadRequest, leadsdk.ErrorResponse{
				Error:            leadsdk.ErrorCodeInvalidArgument,
				ErrorDescription: "Email is already registered",
			})
		default:
			log.Error("registration failed", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, leadsdk.ErrorResponse{
				Error:            leadsdk.ErrorCodeInternal,
				ErrorDescription: "Failed to register account",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, leadsdk.RegisterResponse{
		Success: true,
		UserID:  user.ID,
	})
}

type TokenHandler struct {
	IdentityService *service.IdentityService
}

// ServeHTTP godoc
//
//	@Summary		Token Endpoint
//	@Description	Exchange an email and password for a signed access token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		leadsdk.TokenRequest	true	"Password grant request"
//	@Success		200		{object}	leadsdk.TokenResponse	"access_token, token_type, expires_in"
//	@Failure		400		{object}	leadsdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	leadsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	leadsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/token [post].
func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req leadsdk.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, leadsdk.ErrorResponse{
			Error:            leadsdk.ErrorCodeInvalidArgument,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	token, ttl, err := h.IdentityService.MintToken(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteJSON(w, http.StatusUnauthorized, leadsdk.ErrorResponse{
				Error:            leadsdk.ErrorCodeUnauthenticated,
				ErrorDescription: "Invalid email or password",
			})
			return
		}
		log.Error("token grant failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, leadsdk.ErrorResponse{
			Error:            leadsdk.ErrorCodeInternal,
			ErrorDescription: "Failed to mint token",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, leadsdk.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(ttl.Seconds()),
	})
}
