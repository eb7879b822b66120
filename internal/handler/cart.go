package handler

import (
	"net/http"

	"bangazon-be/internal/order"
	"bangazon-be/internal/utils"
)

// loadCart fetches the caller's open order together with what the caller has
// bought, for can_be_rated on the listed products.
func (h *Handler) loadCart(r *http.Request) (*order.Cart, map[int64]bool, error) {
	c := customerFrom(r.Context())

	cart, err := h.orders.GetCart(r.Context(), c.ID)
	if err != nil {
		return nil, nil, err
	}

	purchased, err := h.products.PurchasedProductIDs(r.Context(), c.ID)
	if err != nil {
		return nil, nil, err
	}
	return cart, purchased, nil
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, purchased, err := h.loadCart(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	l := newLinker(r)
	utils.WriteJSON(w, http.StatusOK, cartJSON{
		orderJSON: l.order(cart.Order),
		Products:  l.products(cart.Products, cart.Order.CustomerID, purchased),
		Size:      cart.Size(),
	})
}

// GetOrderCart is the cart wrapped as {"order": {...}}.
func (h *Handler) GetOrderCart(w http.ResponseWriter, r *http.Request) {
	cart, purchased, err := h.loadCart(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	l := newLinker(r)
	utils.WriteJSON(w, http.StatusOK, map[string]orderWithProductsJSON{
		"order": {
			orderJSON: l.order(cart.Order),
			Products:  l.products(cart.Products, cart.Order.CustomerID, purchased),
		},
	})
}

func (h *Handler) GetProfileCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.orders.GetCart(r.Context(), customerFrom(r.Context()).ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	l := newLinker(r)
	utils.WriteJSON(w, http.StatusOK, profileCartJSON{
		orderJSON: l.order(cart.Order),
		Products:  l.cartProducts(cart.Products),
		Size:      cart.Size(),
	})
}

// AddToCart adds one line item to the caller's open order, opening one if
// they have none.
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req cartRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := h.orders.AddToCart(r.Context(), customerFrom(r.Context()).ID, req.ProductID, req.Quantity); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveFromCart drops one line item for product_id, taken from the query
// string or the JSON body.
func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	var productID int64
	if raw := r.URL.Query().Get("product_id"); raw != "" {
		id, ok := utils.ParseID(raw)
		if !ok {
			writeError(w, r, badRequest("product_id must be a positive integer"))
			return
		}
		productID = id
	} else {
		var req cartRequest
		if err := h.decode(r, &req); err != nil {
			writeError(w, r, err)
			return
		}
		productID = req.ProductID
	}

	if err := h.orders.RemoveFromCart(r.Context(), customerFrom(r.Context()).ID, productID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.orders.ClearCart(r.Context(), customerFrom(r.Context()).ID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
