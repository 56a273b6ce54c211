package core

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// PriceCatalog is the read-only offer view the restock resolver queries.
// The Postgres implementation lives in catalog_service.go; tests substitute
// an in-memory fake.
type PriceCatalog interface {
	// OffersForItem returns every current offer for the item. An empty slice
	// means the item exists but no distributor sells it; an unknown item id
	// is ErrNotFound. Order is unspecified; the resolver scans every offer.
	OffersForItem(ctx context.Context, itemID int) ([]PriceOffer, error)
}

// RestockResolver answers "what is the cheapest way to buy N units of this
// item" across all distributors. It is stateless and safe for concurrent use.
type RestockResolver struct {
	catalog PriceCatalog
}

func NewRestockResolver(catalog PriceCatalog) *RestockResolver {
	return &RestockResolver{catalog: catalog}
}

// FindCheapest selects the offer with the lowest unit cost for itemID and
// computes the total for the requested quantity, rounded half-up to two
// decimal places. Exact price ties break on the lowest distributor id so
// repeated calls against an unchanged catalog return identical quotes.
//
// quantity must be positive; zero or negative is ErrInvalidArgument, never
// a silent zero-cost quote. An unknown item is ErrNotFound; a known item
// nobody sells is ErrNoOffers.
func (r *RestockResolver) FindCheapest(ctx context.Context, itemID, quantity int) (*RestockQuote, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d: %w", quantity, ErrInvalidArgument)
	}

	offers, err := r.catalog.OffersForItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if len(offers) == 0 {
		return nil, fmt.Errorf("no distributor sells item %d: %w", itemID, ErrNoOffers)
	}

	best := offers[0]
	for _, o := range offers[1:] {
		switch {
		case o.UnitCost.LessThan(best.UnitCost):
			best = o
		case o.UnitCost.Equal(best.UnitCost) && o.DistributorID < best.DistributorID:
			best = o
		}
	}

	total := best.UnitCost.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
	return &RestockQuote{
		ItemID:          itemID,
		Quantity:        quantity,
		DistributorID:   best.DistributorID,
		DistributorName: best.DistributorName,
		UnitCost:        best.UnitCost,
		TotalCost:       total,
	}, nil
}
