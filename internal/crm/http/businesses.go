package http

import (
	"net/http"

	"github.com/sellside/prospectd/internal/crm/domain"
	"github.com/sellside/prospectd/internal/crm/service"
	"github.com/sellside/prospectd/pkg/crmsdk"
	"github.com/sellside/prospectd/pkg/httpx"
)

type BusinessesHandler struct {
	CRMService *service.CRMService
}

// HandleCreate adds a prospect together with its starter records: an
// outreach interaction, a zero-value deal, and a pending payment, all in
// one transaction.
//
//	@Summary	Create a business with default records
//	@Tags		CRM
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		crmsdk.Prospect	true	"Prospect fields"
//	@Success	201		{object}	crmsdk.BusinessResponse
//	@Failure	400		{object}	crmsdk.APIError
//	@Router		/crm/add-business [post].
func (h *BusinessesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req crmsdk.Prospect
	if err := httpx.DecodeJSON(r, &req); err != nil {
		crmsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	biz, err := h.CRMService.AddBusiness(ctx, domain.Prospect{
		UserID:    httpx.UserIDFromCtx(ctx),
		Name:      req.Name,
		Email:     req.Email,
		Website:   req.Website,
		Phone:     req.Phone,
		Pain:      req.Pain,
		PainScore: req.PainScore,
		Status:    req.Status,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, crmsdk.BusinessResponse{
		ProspectID:    biz.Prospect.ID,
		InteractionID: biz.Interaction.ID,
		DealID:        biz.Deal.ID,
		PaymentID:     biz.Payment.ID,
		Message:       "Business created with default records",
	})
}

// HandleList returns the business roster, one row per prospect.
//
//	@Summary	List businesses
//	@Tags		CRM
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	crmsdk.Prospect
//	@Router		/crm/businesses-data [get].
func (h *BusinessesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	prospects, err := h.CRMService.ListProspects(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProspectDTOs(prospects))
}
