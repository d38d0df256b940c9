package http

import (
	"net/http"

	"github.com/sellside/prospectd/internal/crm/service"
	"github.com/sellside/prospectd/pkg/crmsdk"
	"github.com/sellside/prospectd/pkg/httpx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles password login. Every failure mode returns the same 401
// so the endpoint cannot be used to probe registered emails.
//
//	@Summary	Log in with email and password
//	@Tags		Auth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		crmsdk.LoginRequest	true	"Credentials"
//	@Success	200		{object}	crmsdk.LoginResponse
//	@Failure	401		{object}	crmsdk.APIError	"Unknown email, wrong password, or unverified account"
//	@Router		/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req crmsdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		crmsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	if req.Email == "" || req.Password == "" {
		crmsdk.ErrInvalidRequest.WithDescription("email and password are required").WriteError(w)
		return
	}

	token, ttl, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, crmsdk.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int(ttl.Seconds()),
	})
}

type LogoutHandler struct{}

// ServeHTTP acknowledges a logout. Access tokens are stateless, so the
// client discards its copy; nothing is tracked server-side.
//
//	@Summary	Log out
//	@Tags		Auth
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	crmsdk.MessageResponse
//	@Failure	401	{object}	crmsdk.APIError
//	@Router		/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, crmsdk.MessageResponse{Message: "logged out"})
}
