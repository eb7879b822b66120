package handler

import (
	"net/http"

	"bangazon-be/internal/utils"
)

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	l := newLinker(r)
	out := make([]categoryJSON, 0, len(categories))
	for _, c := range categories {
		out = append(out, l.category(c))
	}
	utils.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	c, err := h.categories.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, newLinker(r).category(*c))
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	c, err := h.categories.Create(r.Context(), req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, newLinker(r).category(*c))
}
