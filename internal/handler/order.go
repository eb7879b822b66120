package handler

import (
	"net/http"
	"time"

	"bangazon-be/internal/order"
	"bangazon-be/internal/utils"
)

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	var filter order.ListFilter
	for key, dst := range map[string]**int64{
		"customer_id": &filter.CustomerID,
		"payment_id":  &filter.PaymentTypeID,
	} {
		raw := r.URL.Query().Get(key)
		if raw == "" {
			continue
		}
		id, ok := utils.ParseID(raw)
		if !ok {
			writeError(w, r, badRequest(key+" must be a positive integer"))
			return
		}
		*dst = &id
	}

	orders, err := h.orders.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, newLinker(r).orders(orders))
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	o, err := h.orders.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, newLinker(r).order(*o))
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	var created time.Time
	if req.CreatedDate != nil {
		created = *req.CreatedDate
	}

	o, err := h.orders.Create(r.Context(), req.CustomerID, created)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, newLinker(r).order(*o))
}

// CloseOrder attaches a payment type, which completes the order.
func (h *Handler) CloseOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req closeOrderRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.orders.CloseOrder(r.Context(), customerFrom(r.Context()).ID, id, req.PaymentType); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.orders.Delete(r.Context(), customerFrom(r.Context()).ID, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetLineItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	li, err := h.orders.GetLineItem(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, newLinker(r).lineItem(*li))
}

func (h *Handler) DeleteLineItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.orders.DeleteLineItem(r.Context(), customerFrom(r.Context()).ID, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
