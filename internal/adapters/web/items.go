package web

import (
	"net/http"
	"strconv"
)

type itemRequest struct {
	Name string `json:"name"`
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListItems(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result.Items)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := urlID(r, "id")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	item, err := h.svc.GetItem(r.Context(), itemID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, item)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, r, err)
		return
	}
	item, err := h.svc.CreateItem(r.Context(), req.Name)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, item)
}

func (h *Handler) renameItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := urlID(r, "id")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, r, err)
		return
	}
	item, err := h.svc.RenameItem(r.Context(), itemID, req.Name)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, item)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := urlID(r, "id")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if err := h.svc.DeleteItem(r.Context(), itemID); err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listOffersForItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := urlID(r, "id")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	result, err := h.svc.ListOffersForItem(r.Context(), itemID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result.Offers)
}

func (h *Handler) cheapestRestock(w http.ResponseWriter, r *http.Request) {
	itemID, err := urlID(r, "id")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	quantity, err := strconv.Atoi(r.URL.Query().Get("quantity"))
	if err != nil {
		writeError(w, r, "quantity must be an integer", "INVALID_ARGUMENT", http.StatusBadRequest)
		return
	}
	quote, err := h.svc.QuoteCheapestRestock(r.Context(), itemID, quantity)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, quote)
}
