package http

import (
	"net/http"

	"github.com/sellside/prospectd/internal/crm/domain"
	"github.com/sellside/prospectd/internal/crm/service"
	"github.com/sellside/prospectd/pkg/crmsdk"
	"github.com/sellside/prospectd/pkg/httpx"
)

type DealsHandler struct {
	CRMService *service.CRMService
}

// HandleList returns all deals owned by the authenticated user.
//
//	@Summary	List deals
//	@Tags		CRM
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	crmsdk.Deal
//	@Router		/crm/deals-data [get].
func (h *DealsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deals, err := h.CRMService.ListDeals(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toDealDTOs(deals))
}

// HandleCreate opens a deal under an existing prospect.
//
//	@Summary	Create a deal
//	@Tags		CRM
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		crmsdk.Deal	true	"Deal fields"
//	@Success	201		{object}	crmsdk.Deal
//	@Failure	400		{object}	crmsdk.APIError
//	@Failure	404		{object}	crmsdk.APIError	"Parent prospect not found"
//	@Router		/crm/deals [post].
func (h *DealsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req crmsdk.Deal
	if err := httpx.DecodeJSON(r, &req); err != nil {
		crmsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	created, err := h.CRMService.CreateDeal(ctx, domain.Deal{
		UserID:      httpx.UserIDFromCtx(ctx),
		ProspectID:  req.ProspectID,
		DealValue:   req.DealValue,
		Stage:       req.Stage,
		StageReason: req.StageReason,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toDealDTO(created))
}

// HandleGet returns a single deal.
//
//	@Summary	Get a deal
//	@Tags		CRM
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Deal id"
//	@Success	200	{object}	crmsdk.Deal
//	@Failure	404	{object}	crmsdk.APIError
//	@Router		/crm/deals/{id} [get].
func (h *DealsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	d, err := h.CRMService.GetDeal(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toDealDTO(d))
}

// HandleUpdate applies partial changes to a deal. Only fields present in
// the body are touched, so a deal_value of 0 is a real update.
//
//	@Summary	Update a deal
//	@Tags		CRM
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Deal id"
//	@Param		request	body		crmsdk.DealUpdate	true	"Fields to change"
//	@Success	200		{object}	crmsdk.Deal
//	@Failure	404		{object}	crmsdk.APIError
//	@Router		/crm/deals/{id} [put].
func (h *DealsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req crmsdk.DealUpdate
	if err := httpx.DecodeJSON(r, &req); err != nil {
		crmsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	updated, err := h.CRMService.UpdateDeal(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"), service.DealPatch{
		DealValue:   req.DealValue,
		Stage:       req.Stage,
		StageReason: req.StageReason,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toDealDTO(updated))
}

// HandleDelete removes a deal and its payments. If the parent prospect has
// no deals left afterwards, the prospect and its interactions are removed
// as well.
//
//	@Summary	Delete a deal
//	@Tags		CRM
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Deal id"
//	@Success	204	"Deleted"
//	@Failure	404	{object}	crmsdk.APIError
//	@Router		/crm/deals/{id} [delete].
func (h *DealsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.CRMService.DeleteDeal(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
