package http

import (
	"net/http"
	"strconv"

	"github.com/sellside/prospectd/internal/crm/service"
	"github.com/sellside/prospectd/pkg/crmsdk"
	"github.com/sellside/prospectd/pkg/httpx"
	"github.com/sellside/prospectd/pkg/slogx"
)

type DashboardHandler struct {
	AuthService      *service.AuthService
	DashboardService *service.DashboardService
}

// ServeHTTP returns the authenticated user's pipeline summary: entity
// counts, attempted outreach, realized revenue, and the newest prospects.
//
//	@Summary	Dashboard summary
//	@Tags		CRM
//	@Security	BearerAuth
//	@Produce	json
//	@Param		count	query		int	false	"How many recent prospects to include (default 5, clamped to 1..50)"
//	@Success	200		{object}	crmsdk.DashboardResponse
//	@Failure	401		{object}	crmsdk.APIError
//	@Router		/crm/dashboard-data [get].
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		crmsdk.ErrUnauthorized.WriteError(w)
		return
	}

	count := 5
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			crmsdk.ErrInvalidRequest.WithDescription("count must be an integer").WriteError(w)
			return
		}
		// Out-of-range values are clamped rather than rejected.
		count = min(max(n, 1), 50)
	}

	user, err := h.AuthService.GetUserByID(ctx, userID)
	if err != nil {
		log.Warn("failed to load user", "user_id", userID, "err", err)
		crmsdk.ErrServerError.WriteError(w)
		return
	}

	counts, err := h.DashboardService.Counts(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	recent, err := h.DashboardService.RecentProspects(ctx, userID, count)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, crmsdk.DashboardResponse{
		User: crmsdk.MeResponse{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
		},
		Counts: crmsdk.DashboardCounts{
			Prospects:             counts.Prospects,
			Deals:                 counts.Deals,
			InteractionsAttempted: counts.InteractionsAttempted,
			Revenue:               counts.Revenue,
		},
		Prospects: toProspectDTOs(recent),
	})
}
