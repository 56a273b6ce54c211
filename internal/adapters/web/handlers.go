package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"stockroom/internal/app"
	"stockroom/internal/core"

	"github.com/go-chi/chi/v5"
)

const version = "stockroom v1.0"

// maxBodyBytes caps JSON request bodies; nothing this API accepts is large.
const maxBodyBytes = 1 << 20

// Handler holds the ApplicationService and the chi router.
type Handler struct {
	svc       app.ApplicationService
	router    chi.Router
	jwtSecret string
}

// NewHandler creates and wires the chi router with all routes. When
// jwtSecret is non-empty, mutating routes require a Bearer JWT signed with
// it; read routes stay public either way.
func NewHandler(svc app.ApplicationService, allowedOrigins, jwtSecret string) http.Handler {
	h := &Handler{svc: svc, jwtSecret: jwtSecret}

	auth := func(next http.Handler) http.Handler { return next }
	if jwtSecret != "" {
		auth = h.RequireAuth
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))
	r.Use(RequestBodyLimit(maxBodyBytes))

	r.Get("/version", h.getVersion)
	r.Get("/api/health", h.health)

	r.Route("/items", func(r chi.Router) {
		r.Get("/", h.listItems)
		r.Get("/{id}", h.getItem)
		r.Get("/{id}/distributors", h.listOffersForItem)
		r.Get("/{id}/cheapest", h.cheapestRestock)
		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Post("/", h.createItem)
			r.Put("/{id}", h.renameItem)
			r.Delete("/{id}", h.deleteItem)
		})
	})

	r.Route("/inventory", func(r chi.Router) {
		r.Get("/", h.listInventory)
		r.Get("/out-of-stock", h.listInventoryWith(core.FilterOutOfStock))
		r.Get("/low-stock", h.listInventoryWith(core.FilterLowStock))
		r.Get("/overstocked", h.listInventoryWith(core.FilterOverstocked))
		r.Get("/{id}", h.getInventoryRecord)
		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Post("/", h.addInventoryRecord)
			r.Put("/{id}", h.updateInventoryRecord)
			r.Delete("/{id}", h.deleteInventoryRecord)
		})
	})

	r.Route("/distributors", func(r chi.Router) {
		r.Get("/", h.listDistributors)
		r.Get("/{id}", h.getDistributor)
		r.Get("/{id}/items", h.listOffersByDistributor)
		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Post("/", h.createDistributor)
			r.Put("/{id}", h.renameDistributor)
			r.Delete("/{id}", h.deleteDistributor)
			r.Post("/{id}/items", h.addOffer)
			r.Put("/{distributorID}/items/{itemID}", h.updateOffer)
			r.Delete("/{distributorID}/items/{itemID}", h.removeOffer)
		})
	})

	r.Get("/export/csv", h.exportCSV)
	r.With(auth).Post("/reset", h.resetDatabase)

	h.router = r
	return r
}

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, version)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// resetDatabase reapplies schema and seed. POST rather than the GET the old
// frontend used: the operation is destructive and must not be cacheable or
// crawlable.
func (h *Handler) resetDatabase(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ResetDatabase(r.Context()); err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, map[string]string{"status": "reset"})
}

// urlID parses an integer path parameter.
func urlID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, chi.URLParam(r, name), core.ErrInvalidArgument)
	}
	return id, nil
}

// decodeJSON decodes a request body, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", core.ErrInvalidArgument)
	}
	return nil
}
