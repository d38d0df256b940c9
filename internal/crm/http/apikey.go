package http

import (
	"net/http"

	"github.com/sellside/prospectd/internal/crm/service"
	"github.com/sellside/prospectd/pkg/crmsdk"
	"github.com/sellside/prospectd/pkg/httpx"
)

type APIKeyHandler struct {
	AuthService *service.AuthService
}

// HandleGenerate mints a new API key for the authenticated user. The raw key
// is returned once and never stored; a previous key is replaced.
//
//	@Summary	Generate an API key
//	@Tags		Auth
//	@Security	BearerAuth
//	@Produce	json
//	@Success	201	{object}	crmsdk.APIKeyResponse
//	@Failure	401	{object}	crmsdk.APIError	"Missing bearer token (API keys cannot mint keys)"
//	@Router		/auth/generate-api-key [post].
func (h *APIKeyHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		crmsdk.ErrUnauthorized.WriteError(w)
		return
	}

	key, expiresAt, err := h.AuthService.GenerateAPIKey(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, crmsdk.APIKeyResponse{
		APIKey:    key,
		ExpiresAt: expiresAt,
	})
}

// HandleRevoke deactivates the user's API key. Revocation takes effect on
// the next request made with the key.
//
//	@Summary	Revoke the API key
//	@Tags		Auth
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	crmsdk.MessageResponse
//	@Failure	401	{object}	crmsdk.APIError	"Missing bearer token (API keys cannot revoke keys)"
//	@Router		/auth/revoke-api-key [post].
func (h *APIKeyHandler) HandleRevoke(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		crmsdk.ErrUnauthorized.WriteError(w)
		return
	}

	if err := h.AuthService.RevokeAPIKey(ctx, userID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, crmsdk.MessageResponse{Message: "api key revoked"})
}
