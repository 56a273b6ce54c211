package web

import (
	"net/http"

	"github.com/shopspring/decimal"
)

type distributorRequest struct {
	Name string `json:"name"`
}

type addOfferRequest struct {
	ItemID int             `json:"item_id"`
	Cost   decimal.Decimal `json:"cost"`
}

type updateOfferRequest struct {
	Cost decimal.Decimal `json:"cost"`
}

func (h *Handler) listDistributors(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListDistributors(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result.Distributors)
}

func (h *Handler) getDistributor(w http.ResponseWriter, r *http.Request) {
	distributorID, err := urlID(r, "id")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	distributor, err := h.svc.GetDistributor(r.Context(), distributorID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, distributor)
}

func (h *Handler) createDistributor(w http.ResponseWriter, r *http.Request) {
	var req distributorRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, r, err)
		return
	}
	distributor, err := h.svc.CreateDistributor(r.Context(), req.Name)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, distributor)
}

func (h *Handler) renameDistributor(w http.ResponseWriter, r *http.Request) {
	distributorID, err := urlID(r, "id")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	var req distributorRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, r, err)
		return
	}
	distributor, err := h.svc.RenameDistributor(r.Context(), distributorID, req.Name)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, distributor)
}

func (h *Handler) deleteDistributor(w http.ResponseWriter, r *http.Request) {
	distributorID, err := urlID(r, "id")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if err := h.svc.DeleteDistributor(r.Context(), distributorID); err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listOffersByDistributor(w http.ResponseWriter, r *http.Request) {
	distributorID, err := urlID(r, "id")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	result, err := h.svc.ListOffersByDistributor(r.Context(), distributorID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, result.Offers)
}

func (h *Handler) addOffer(w http.ResponseWriter, r *http.Request) {
	distributorID, err := urlID(r, "id")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	var req addOfferRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, r, err)
		return
	}
	offer, err := h.svc.AddOffer(r.Context(), distributorID, req.ItemID, req.Cost)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, offer)
}

func (h *Handler) updateOffer(w http.ResponseWriter, r *http.Request) {
	distributorID, err := urlID(r, "distributorID")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	itemID, err := urlID(r, "itemID")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	var req updateOfferRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, r, err)
		return
	}
	offer, err := h.svc.UpdateOffer(r.Context(), distributorID, itemID, req.Cost)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, offer)
}

func (h *Handler) removeOffer(w http.ResponseWriter, r *http.Request) {
	distributorID, err := urlID(r, "distributorID")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	itemID, err := urlID(r, "itemID")
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if err := h.svc.RemoveOffer(r.Context(), distributorID, itemID); err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
