package handler

import (
	"net/http"

	"bangazon-be/internal/auth"
	"bangazon-be/internal/utils"
)

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFrom(r.Context())

	profile, err := h.customers.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	l := newLinker(r)
	utils.WriteJSON(w, http.StatusOK, profileJSON{
		customerJSON: l.customer(profile.Customer),
		PaymentTypes: l.payments(profile.PaymentTypes),
	})
}

func (h *Handler) ListFavoriteSellers(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.favorites.ListFavoriteSellers(r.Context(), customerFrom(r.Context()).ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	l := newLinker(r)
	out := make([]favoriteJSON, 0, len(favorites))
	for _, f := range favorites {
		out = append(out, l.favorite(f))
	}
	utils.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) AddFavoriteSeller(w http.ResponseWriter, r *http.Request) {
	var req favoriteRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	f, err := h.favorites.AddFavoriteSeller(r.Context(), customerFrom(r.Context()).ID, req.SellerID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, newLinker(r).favorite(*f))
}

func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	c, err := h.customers.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, newLinker(r).customer(*c))
}

// DeactivateCustomer marks the caller's account inactive.
func (h *Handler) DeactivateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.customers.Deactivate(r.Context(), customerFrom(r.Context()).ID, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
