package core_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"stockroom/internal/core"

	"github.com/shopspring/decimal"
)

// fakeCatalog is an in-memory PriceCatalog. Items present in the map with a
// nil/empty slice exist but have no offers; absent items are unknown.
type fakeCatalog struct {
	offers map[int][]core.PriceOffer
	calls  int
}

func (f *fakeCatalog) OffersForItem(_ context.Context, itemID int) ([]core.PriceOffer, error) {
	f.calls++
	offers, ok := f.offers[itemID]
	if !ok {
		return nil, fmt.Errorf("item %d: %w", itemID, core.ErrNotFound)
	}
	return offers, nil
}

func offer(distributorID int, distributorName string, itemID int, cost string) core.PriceOffer {
	return core.PriceOffer{
		DistributorID:   distributorID,
		DistributorName: distributorName,
		ItemID:          itemID,
		UnitCost:        decimal.RequireFromString(cost),
	}
}

func TestFindCheapest_PicksLowestUnitCost(t *testing.T) {
	catalog := &fakeCatalog{offers: map[int][]core.PriceOffer{
		9: {
			offer(1, "Candy Corp", 9, "0.54"),
			offer(2, "The Sweet Suite", 9, "0.47"),
			offer(3, "Dentists Hate Us", 9, "0.85"),
		},
	}}
	resolver := core.NewRestockResolver(catalog)

	quote, err := resolver.FindCheapest(context.Background(), 9, 20)
	if err != nil {
		t.Fatalf("FindCheapest failed: %v", err)
	}
	if quote.DistributorID != 2 {
		t.Errorf("expected distributor 2, got %d (%s)", quote.DistributorID, quote.DistributorName)
	}
	if !quote.UnitCost.Equal(decimal.RequireFromString("0.47")) {
		t.Errorf("expected unit cost 0.47, got %s", quote.UnitCost)
	}
	if !quote.TotalCost.Equal(decimal.RequireFromString("9.40")) {
		t.Errorf("expected total 9.40, got %s", quote.TotalCost)
	}
}

// Widget offered by A at 4.25 and B at 3.99, quantity 10: B wins at 39.90.
func TestFindCheapest_WidgetScenario(t *testing.T) {
	catalog := &fakeCatalog{offers: map[int][]core.PriceOffer{
		1: {
			offer(1, "Distributor A", 1, "4.25"),
			offer(2, "Distributor B", 1, "3.99"),
		},
	}}
	resolver := core.NewRestockResolver(catalog)

	quote, err := resolver.FindCheapest(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("FindCheapest failed: %v", err)
	}
	if quote.DistributorName != "Distributor B" {
		t.Errorf("expected Distributor B, got %s", quote.DistributorName)
	}
	if !quote.TotalCost.Equal(decimal.RequireFromString("39.90")) {
		t.Errorf("expected total 39.90, got %s", quote.TotalCost)
	}
}

// Exact price ties break on the lowest distributor id. This tie-break is a
// deliberate choice of this implementation, kept deterministic so repeated
// queries are reproducible.
func TestFindCheapest_TieBreaksOnLowestDistributorID(t *testing.T) {
	catalog := &fakeCatalog{offers: map[int][]core.PriceOffer{
		5: {
			offer(7, "Distributor A", 5, "2.00"),
			offer(4, "Distributor C", 5, "1.50"),
			offer(2, "Distributor B", 5, "1.50"),
		},
	}}
	resolver := core.NewRestockResolver(catalog)

	quote, err := resolver.FindCheapest(context.Background(), 5, 3)
	if err != nil {
		t.Fatalf("FindCheapest failed: %v", err)
	}
	if quote.DistributorID != 2 {
		t.Errorf("tie must break to distributor 2, got %d", quote.DistributorID)
	}
	if !quote.UnitCost.Equal(decimal.RequireFromString("1.50")) {
		t.Errorf("expected unit cost 1.50, got %s", quote.UnitCost)
	}
	if !quote.TotalCost.Equal(decimal.RequireFromString("4.50")) {
		t.Errorf("expected total 4.50, got %s", quote.TotalCost)
	}
}

func TestFindCheapest_RoundsTotalHalfUp(t *testing.T) {
	catalog := &fakeCatalog{offers: map[int][]core.PriceOffer{
		3: {offer(1, "Candy Corp", 3, "0.015")},
	}}
	resolver := core.NewRestockResolver(catalog)

	// 0.015 * 1 = 0.015, rounds up to 0.02
	quote, err := resolver.FindCheapest(context.Background(), 3, 1)
	if err != nil {
		t.Fatalf("FindCheapest failed: %v", err)
	}
	if !quote.TotalCost.Equal(decimal.RequireFromString("0.02")) {
		t.Errorf("expected half-up rounding to 0.02, got %s", quote.TotalCost)
	}
}

func TestFindCheapest_NoOffers(t *testing.T) {
	catalog := &fakeCatalog{offers: map[int][]core.PriceOffer{
		8: nil, // item exists, nobody sells it
	}}
	resolver := core.NewRestockResolver(catalog)

	_, err := resolver.FindCheapest(context.Background(), 8, 5)
	if !errors.Is(err, core.ErrNoOffers) {
		t.Errorf("expected ErrNoOffers, got %v", err)
	}
	if errors.Is(err, core.ErrNotFound) {
		t.Error("ErrNoOffers must not be conflated with ErrNotFound")
	}
}

func TestFindCheapest_UnknownItem(t *testing.T) {
	resolver := core.NewRestockResolver(&fakeCatalog{offers: map[int][]core.PriceOffer{}})

	_, err := resolver.FindCheapest(context.Background(), 999, 5)
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFindCheapest_InvalidQuantity(t *testing.T) {
	catalog := &fakeCatalog{offers: map[int][]core.PriceOffer{
		1: {offer(1, "Candy Corp", 1, "0.81")},
	}}
	resolver := core.NewRestockResolver(catalog)

	for _, qty := range []int{0, -1, -50} {
		_, err := resolver.FindCheapest(context.Background(), 1, qty)
		if !errors.Is(err, core.ErrInvalidArgument) {
			t.Errorf("quantity %d: expected ErrInvalidArgument, got %v", qty, err)
		}
	}
	if catalog.calls != 0 {
		t.Errorf("invalid quantities must not hit the catalog, got %d calls", catalog.calls)
	}
}

// Repeated calls against an unchanged catalog return identical quotes; a
// restock query is advisory and never mutates anything.
func TestFindCheapest_Idempotent(t *testing.T) {
	catalog := &fakeCatalog{offers: map[int][]core.PriceOffer{
		2: {
			offer(1, "Candy Corp", 2, "0.46"),
			offer(2, "The Sweet Suite", 2, "0.18"),
		},
	}}
	resolver := core.NewRestockResolver(catalog)

	first, err := resolver.FindCheapest(context.Background(), 2, 40)
	if err != nil {
		t.Fatalf("first FindCheapest failed: %v", err)
	}
	second, err := resolver.FindCheapest(context.Background(), 2, 40)
	if err != nil {
		t.Fatalf("second FindCheapest failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("quotes differ across identical calls:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
