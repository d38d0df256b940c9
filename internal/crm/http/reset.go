package http

import (
	"net/http"
	"time"

	"github.com/sellside/prospectd/internal/crm/service"
	"github.com/sellside/prospectd/pkg/crmsdk"
	"github.com/sellside/prospectd/pkg/httpx"
	"github.com/sellside/prospectd/pkg/jwtx"
)

type ResetHandler struct {
	AuthService *service.AuthService
}

// HandleRequest mails a password reset token. The response is identical
// whether or not the email is registered.
//
//	@Summary	Request a password reset
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		crmsdk.RequestResetRequest	true	"Email"
//	@Success	200		{object}	crmsdk.RequestResetResponse
//	@Router		/auth/request-reset [post].
func (h *ResetHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	var req crmsdk.RequestResetRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		crmsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.Email == "" {
		crmsdk.ErrInvalidRequest.WithDescription("email is required").WriteError(w)
		return
	}

	if err := h.AuthService.RequestReset(r.Context(), req.Email); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, crmsdk.RequestResetResponse{
		Message:   "if that email is registered, a reset link is on its way",
		ExpiresAt: time.Now().UTC().Add(jwtx.DefaultResetTokenTTL),
	})
}

// HandleReset consumes a reset token and sets the new password.
//
//	@Summary	Reset the password with a token
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		crmsdk.ResetPasswordRequest	true	"Token and new password"
//	@Success	200		{object}	crmsdk.MessageResponse
//	@Failure	401		{object}	crmsdk.APIError	"Invalid or expired token"
//	@Router		/auth/reset [post].
func (h *ResetHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	var req crmsdk.ResetPasswordRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		crmsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.Token == "" || req.Password == "" {
		crmsdk.ErrInvalidRequest.WithDescription("token and password are required").WriteError(w)
		return
	}
	if len(req.Password) < 8 {
		crmsdk.ErrInvalidRequest.WithDescription("password must be at least 8 characters").WriteError(w)
		return
	}

	if err := h.AuthService.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, crmsdk.MessageResponse{Message: "password updated"})
}
