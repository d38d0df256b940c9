package http

import (
	"net/http"

	"github.com/sellside/prospectd/internal/crm/service"
	"github.com/sellside/prospectd/pkg/crmsdk"
	"github.com/sellside/prospectd/pkg/httpx"
	"github.com/sellside/prospectd/pkg/slogx"
)

type MeHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP returns the authenticated user's identity.
//
//	@Summary	Get the authenticated user
//	@Tags		Auth
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	crmsdk.MeResponse
//	@Failure	401	{object}	crmsdk.APIError
//	@Router		/auth/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		crmsdk.ErrUnauthorized.WriteError(w)
		return
	}

	user, err := h.AuthService.GetUserByID(ctx, userID)
	if err != nil {
		slogx.FromContext(ctx).Warn("failed to load user", "user_id", userID, "err", err)
		crmsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, crmsdk.MeResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	})
}
