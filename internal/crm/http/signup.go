package http

import (
	"net/http"
	"strings"

	"github.com/sellside/prospectd/internal/crm/service"
	"github.com/sellside/prospectd/pkg/crmsdk"
	"github.com/sellside/prospectd/pkg/httpx"
)

type SignupHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles new account registration.
//
//	@Summary		Register a new account
//	@Description	Creates an unverified account and emails a verification code.
//	@Description	Signing up again with an unverified email re-issues the code.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		crmsdk.SignupRequest	true	"Signup details"
//	@Success		201		{object}	crmsdk.SignupResponse
//	@Failure		400		{object}	crmsdk.APIError	"Missing or malformed fields"
//	@Failure		409		{object}	crmsdk.APIError	"Email already registered and verified"
//	@Router			/auth/signup [post].
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req crmsdk.SignupRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		crmsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	if strings.TrimSpace(req.Email) == "" || req.Password == "" || strings.TrimSpace(req.Name) == "" {
		crmsdk.ErrInvalidRequest.WithDescription("email, password and name are required").WriteError(w)
		return
	}
	if len(req.Password) < 8 {
		crmsdk.ErrInvalidRequest.WithDescription("password must be at least 8 characters").WriteError(w)
		return
	}

	expiresAt, err := h.AuthService.Signup(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, crmsdk.SignupResponse{
		Message:   "verification code sent",
		ExpiresAt: expiresAt,
	})
}

type VerifyCodeHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles email verification.
//
//	@Summary	Verify a signup code
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		crmsdk.VerifyCodeRequest	true	"Email and code"
//	@Success	200		{object}	crmsdk.MessageResponse
//	@Failure	400		{object}	crmsdk.APIError	"Wrong or expired code"
//	@Failure	404		{object}	crmsdk.APIError	"No signup for that email"
//	@Router		/auth/verify-code [post].
func (h *VerifyCodeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req crmsdk.VerifyCodeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		crmsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.Email == "" || req.Code == "" {
		crmsdk.ErrInvalidRequest.WithDescription("email and code are required").WriteError(w)
		return
	}

	if err := h.AuthService.VerifyCode(r.Context(), req.Email, req.Code); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, crmsdk.MessageResponse{Message: "account verified"})
}

type ResendCodeHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP re-issues the verification code for a pending signup.
//
//	@Summary	Resend the verification code
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		crmsdk.ResendCodeRequest	true	"Email"
//	@Success	200		{object}	crmsdk.SignupResponse
//	@Failure	404		{object}	crmsdk.APIError	"No signup for that email"
//	@Failure	409		{object}	crmsdk.APIError	"Already verified"
//	@Router		/auth/resend-code [post].
func (h *ResendCodeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req crmsdk.ResendCodeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		crmsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.Email == "" {
		crmsdk.ErrInvalidRequest.WithDescription("email is required").WriteError(w)
		return
	}

	expiresAt, err := h.AuthService.ResendCode(r.Context(), req.Email)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, crmsdk.SignupResponse{
		Message:   "verification code sent",
		ExpiresAt: expiresAt,
	})
}
