package http

import (
	"net/http"

	"github.com/sellside/prospectd/internal/crm/domain"
	"github.com/sellside/prospectd/internal/crm/service"
	"github.com/sellside/prospectd/pkg/crmsdk"
	"github.com/sellside/prospectd/pkg/httpx"
)

type ProspectsHandler struct {
	CRMService *service.CRMService
}

// HandleList returns all prospects owned by the authenticated user.
//
//	@Summary	List prospects
//	@Tags		CRM
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	crmsdk.Prospect
//	@Router		/crm/prospects-data [get].
func (h *ProspectsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	prospects, err := h.CRMService.ListProspects(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProspectDTOs(prospects))
}

// HandleCreate adds a prospect.
//
//	@Summary	Create a prospect
//	@Tags		CRM
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		crmsdk.Prospect	true	"Prospect fields"
//	@Success	201		{object}	crmsdk.Prospect
//	@Failure	400		{object}	crmsdk.APIError
//	@Router		/crm/prospects [post].
func (h *ProspectsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req crmsdk.Prospect
	if err := httpx.DecodeJSON(r, &req); err != nil {
		crmsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	created, err := h.CRMService.CreateProspect(ctx, domain.Prospect{
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
	httpx.WriteJSON(w, http.StatusCreated, toProspectDTO(created))
}

// HandleGet returns a single prospect.
//
//	@Summary	Get a prospect
//	@Tags		CRM
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Prospect id"
//	@Success	200	{object}	crmsdk.Prospect
//	@Failure	404	{object}	crmsdk.APIError
//	@Router		/crm/prospects/{id} [get].
func (h *ProspectsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, err := h.CRMService.GetProspect(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProspectDTO(p))
}

// HandleUpdate applies partial changes to a prospect.
//
//	@Summary	Update a prospect
//	@Tags		CRM
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Prospect id"
//	@Param		request	body		crmsdk.ProspectUpdate	true	"Fields to change"
//	@Success	200		{object}	crmsdk.Prospect
//	@Failure	404		{object}	crmsdk.APIError
//	@Router		/crm/prospects/{id} [put].
func (h *ProspectsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req crmsdk.ProspectUpdate
	if err := httpx.DecodeJSON(r, &req); err != nil {
		crmsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	updated, err := h.CRMService.UpdateProspect(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"), service.ProspectPatch{
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
	httpx.WriteJSON(w, http.StatusOK, toProspectDTO(updated))
}

// HandleDelete removes a prospect and everything beneath it: its deals,
// their payments, and its interactions.
//
//	@Summary	Delete a prospect and its subtree
//	@Tags		CRM
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Prospect id"
//	@Success	204	"Deleted"
//	@Failure	404	{object}	crmsdk.APIError
//	@Router		/crm/prospects/{id} [delete].
func (h *ProspectsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.CRMService.DeleteProspect(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
