package web

import (
	"net/http"

	"stockroom/internal/core"
)

type addInventoryRequest struct {
	ItemID   int `json:"item_id"`
	Stock    int `json:"stock"`
	Capacity int `json:"capacity"`
}

type updateInventoryRequest struct {
	Stock    *int `json:"stock,omitempty"`
	Capacity *int `json:"capacity,omitempty"`
}

// listInventory serves GET /inventory with an optional ?filter= query.
// The dedicated /inventory/out-of-stock style routes cover the old paths.
func (h *Handler) listInventory(w http.ResponseWriter, r *http.Request) {
	filter, err := core.ParseStockFilter(r.URL.Query().Get("filter"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	result, err := h.svc.ListInventory(r.Context(), filter)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result.Records)
}

// listInventoryWith returns a handler bound to a fixed stock filter.
func (h *Handler) listInventoryWith(filter core.StockFilter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := h.svc.ListInventory(r.Context(), filter)
		if err != nil {
			writeDomainError(w, r, err)
			return
		}
		writeJSON(w, result.Records)
	}
}

func (h *Handler) getInventoryRecord(w http.ResponseWriter, r *http.Request) {
	itemID, err := urlID(r, "id")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	record, err := h.svc.GetInventoryRecord(r.Context(), itemID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, record)
}

func (h *Handler) addInventoryRecord(w http.ResponseWriter, r *http.Request) {
	var req addInventoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, r, err)
		return
	}
	record, err := h.svc.AddInventoryRecord(r.Context(), req.ItemID, req.Stock, req.Capacity)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, record)
}

func (h *Handler) updateInventoryRecord(w http.ResponseWriter, r *http.Request) {
	itemID, err := urlID(r, "id")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	var req updateInventoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, r, err)
		return
	}
	record, err := h.svc.UpdateInventoryRecord(r.Context(), itemID, req.Stock, req.Capacity)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, record)
}

func (h *Handler) deleteInventoryRecord(w http.ResponseWriter, r *http.Request) {
	itemID, err := urlID(r, "id")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if err := h.svc.DeleteInventoryRecord(r.Context(), itemID); err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
