package http

import (
	"net/http"

	"github.com/sellside/prospectd/internal/crm/domain"
	"github.com/sellside/prospectd/internal/crm/service"
	"github.com/sellside/prospectd/pkg/crmsdk"
	"github.com/sellside/prospectd/pkg/httpx"
)

type InteractionsHandler struct {
	CRMService *service.CRMService
}

// HandleList returns all interactions owned by the authenticated user.
//
//	@Summary	List interactions
//	@Tags		CRM
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	crmsdk.Interaction
//	@Router		/crm/interactions-data [get].
func (h *InteractionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	interactions, err := h.CRMService.ListInteractions(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toInteractionDTOs(interactions))
}

// HandleCreate logs an interaction against an existing prospect.
//
//	@Summary	Create an interaction
//	@Tags		CRM
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		crmsdk.Interaction	true	"Interaction fields"
//	@Success	201		{object}	crmsdk.Interaction
//	@Failure	400		{object}	crmsdk.APIError
//	@Failure	404		{object}	crmsdk.APIError	"Parent prospect not found"
//	@Router		/crm/interactions [post].
func (h *InteractionsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req crmsdk.Interaction
	if err := httpx.DecodeJSON(r, &req); err != nil {
		crmsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	created, err := h.CRMService.CreateInteraction(ctx, domain.Interaction{
		UserID:        httpx.UserIDFromCtx(ctx),
		ProspectID:    req.ProspectID,
		Channel:       req.Channel,
		Type:          req.Type,
		AttemptNumber: req.AttemptNumber,
		Content:       req.Content,
		ResponseType:  req.ResponseType,
		Success:       req.Success,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toInteractionDTO(created))
}

// HandleGet returns a single interaction.
//
//	@Summary	Get an interaction
//	@Tags		CRM
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Interaction id"
//	@Success	200	{object}	crmsdk.Interaction
//	@Failure	404	{object}	crmsdk.APIError
//	@Router		/crm/interactions/{id} [get].
func (h *InteractionsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	in, err := h.CRMService.GetInteraction(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toInteractionDTO(in))
}

// HandleUpdate applies partial changes to an interaction.
//
//	@Summary	Update an interaction
//	@Tags		CRM
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Interaction id"
//	@Param		request	body		crmsdk.InteractionUpdate	true	"Fields to change"
//	@Success	200		{object}	crmsdk.Interaction
//	@Failure	404		{object}	crmsdk.APIError
//	@Router		/crm/interactions/{id} [put].
func (h *InteractionsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req crmsdk.InteractionUpdate
	if err := httpx.DecodeJSON(r, &req); err != nil {
		crmsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	updated, err := h.CRMService.UpdateInteraction(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"), service.InteractionPatch{
		Channel:       req.Channel,
		Type:          req.Type,
		AttemptNumber: req.AttemptNumber,
		Content:       req.Content,
		ResponseType:  req.ResponseType,
		Success:       req.Success,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toInteractionDTO(updated))
}

// HandleDelete removes a single interaction; nothing cascades.
//
//	@Summary	Delete an interaction
//	@Tags		CRM
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Interaction id"
//	@Success	204	"Deleted"
//	@Failure	404	{object}	crmsdk.APIError
//	@Router		/crm/interactions/{id} [delete].
func (h *InteractionsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.CRMService.DeleteInteraction(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
