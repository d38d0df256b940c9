package http

import (
	"net/http"

	"github.com/sellside/prospectd/internal/crm/domain"
	"github.com/sellside/prospectd/internal/crm/service"
	"github.com/sellside/prospectd/pkg/crmsdk"
	"github.com/sellside/prospectd/pkg/httpx"
)

type PaymentsHandler struct {
	CRMService *service.CRMService
}

// HandleList returns all payments owned by the authenticated user.
//
//	@Summary	List payments
//	@Tags		CRM
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	crmsdk.Payment
//	@Router		/crm/payments-data [get].
func (h *PaymentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	payments, err := h.CRMService.ListPayments(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPaymentDTOs(payments))
}

// HandleCreate records a payment against an existing deal.
//
//	@Summary	Create a payment
//	@Tags		CRM
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		crmsdk.Payment	true	"Payment fields"
//	@Success	201		{object}	crmsdk.Payment
//	@Failure	400		{object}	crmsdk.APIError
//	@Failure	404		{object}	crmsdk.APIError	"Parent deal not found"
//	@Router		/crm/payments [post].
func (h *PaymentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req crmsdk.Payment
	if err := httpx.DecodeJSON(r, &req); err != nil {
		crmsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	created, err := h.CRMService.CreatePayment(ctx, domain.Payment{
		UserID: httpx.UserIDFromCtx(ctx),
		DealID: req.DealID,
		Amount: req.Amount,
		Method: req.Method,
		Status: req.Status,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toPaymentDTO(created))
}

// HandleGet returns a single payment.
//
//	@Summary	Get a payment
//	@Tags		CRM
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Payment id"
//	@Success	200	{object}	crmsdk.Payment
//	@Failure	404	{object}	crmsdk.APIError
//	@Router		/crm/payments/{id} [get].
func (h *PaymentsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, err := h.CRMService.GetPayment(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPaymentDTO(p))
}

// HandleUpdate applies partial changes to a payment.
//
//	@Summary	Update a payment
//	@Tags		CRM
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Payment id"
//	@Param		request	body		crmsdk.PaymentUpdate	true	"Fields to change"
//	@Success	200		{object}	crmsdk.Payment
//	@Failure	404		{object}	crmsdk.APIError
//	@Router		/crm/payments/{id} [put].
func (h *PaymentsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req crmsdk.PaymentUpdate
	if err := httpx.DecodeJSON(r, &req); err != nil {
		crmsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	updated, err := h.CRMService.UpdatePayment(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"), service.PaymentPatch{
		Amount: req.Amount,
		Method: req.Method,
		Status: req.Status,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPaymentDTO(updated))
}

// HandleDelete removes a single payment. The parent deal and prospect are
// never touched.
//
//	@Summary	Delete a payment
//	@Tags		CRM
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Payment id"
//	@Success	204	"Deleted"
//	@Failure	404	{object}	crmsdk.APIError
//	@Router		/crm/payments/{id} [delete].
func (h *PaymentsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.CRMService.DeletePayment(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
