package handler

import (
	"net/http"

	"bangazon-be/internal/payment"
	"bangazon-be/internal/utils"
)

func (h *Handler) ListPaymentTypes(w http.ResponseWriter, r *http.Request) {
	payments, err := h.payments.List(r.Context(), customerFrom(r.Context()).ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, newLinker(r).payments(payments))
}

func (h *Handler) CreatePaymentType(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	p, err := h.payments.Create(r.Context(), payment.CreatePaymentParams{
		CustomerID:     customerFrom(r.Context()).ID,
		MerchantName:   req.MerchantName,
		AccountNumber:  req.AccountNumber,
		ExpirationDate: parseDate(req.ExpirationDate),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, newLinker(r).payment(*p))
}

// GetPaymentType only shows the caller their own payment types.
func (h *Handler) GetPaymentType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	p, err := h.payments.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if p.CustomerID != customerFrom(r.Context()).ID {
		writeError(w, r, payment.ErrForbidden)
		return
	}

	utils.WriteJSON(w, http.StatusOK, newLinker(r).payment(*p))
}

func (h *Handler) DeletePaymentType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.payments.Delete(r.Context(), customerFrom(r.Context()).ID, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
