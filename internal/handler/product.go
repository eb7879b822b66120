package handler

import (
	"net/http"

	"bangazon-be/internal/product"
	"bangazon-be/internal/utils"
)

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q, err := product.ParseListQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	products, err := h.products.List(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}

	viewerID, purchased, err := h.viewer(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, newLinker(r).products(products, viewerID, purchased))
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	p, err := h.products.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	viewerID, purchased, err := h.viewer(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, newLinker(r).product(*p, viewerID, purchased))
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	seller := customerFrom(r.Context())

	var req productRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	p, err := h.products.Create(r.Context(), product.CreateProductParams{
		SellerID:    seller.ID,
		Name:        req.Name,
		Price:       *req.Price,
		Description: req.Description,
		Quantity:    *req.Quantity,
		CreatedDate: parseDate(req.CreatedDate),
		Location:    req.Location,
		ImagePath:   req.ImagePath,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, newLinker(r).product(*p, seller.ID, nil))
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req productRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	err = h.products.Update(r.Context(), customerFrom(r.Context()).ID, id, product.UpdateProductParams{
		Name:        req.Name,
		Price:       *req.Price,
		Description: req.Description,
		Quantity:    *req.Quantity,
		CreatedDate: parseDate(req.CreatedDate),
		Location:    req.Location,
		ImagePath:   req.ImagePath,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.products.Delete(r.Context(), customerFrom(r.Context()).ID, id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) RateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req rateRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	rating, err := h.products.Rate(r.Context(), customerFrom(r.Context()).ID, id, req.Rating)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, newLinker(r).rating(*rating))
}

// viewer returns the calling customer and the products they have bought,
// which together decide can_be_rated.
func (h *Handler) viewer(r *http.Request) (int64, map[int64]bool, error) {
	viewerID := h.viewerID(r)
	if viewerID == 0 {
		return 0, nil, nil
	}

	purchased, err := h.products.PurchasedProductIDs(r.Context(), viewerID)
	if err != nil {
		return 0, nil, err
	}
	return viewerID, purchased, nil
}
