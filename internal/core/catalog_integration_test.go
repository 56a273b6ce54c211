package core_test

import (
	"context"
	"errors"
	"testing"

	"stockroom/internal/core"

	"github.com/shopspring/decimal"
)

func TestPriceCatalog_OffersForItem(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	catalog := core.NewPriceCatalog(pool)

	t.Run("ReturnsOffersCheapestFirst", func(t *testing.T) {
		// Item 2 is sold by distributor 1 at 0.46 and distributor 2 at 0.18.
		offers, err := catalog.OffersForItem(ctx, 2)
		if err != nil {
			t.Fatalf("OffersForItem: %v", err)
		}
		if len(offers) != 2 {
			t.Fatalf("expected 2 offers, got %d", len(offers))
		}
		if offers[0].DistributorID != 2 || !offers[0].UnitCost.Equal(decimal.RequireFromString("0.18")) {
			t.Errorf("expected distributor 2 at 0.18 first, got %d at %s", offers[0].DistributorID, offers[0].UnitCost)
		}
		if offers[0].ItemName != "Good & Plenty" {
			t.Errorf("expected item name on the offer, got %q", offers[0].ItemName)
		}
		if offers[0].DistributorName != "The Sweet Suite" {
			t.Errorf("expected distributor name on the offer, got %q", offers[0].DistributorName)
		}
	})

	t.Run("UnsoldItem_EmptyNotError", func(t *testing.T) {
		items := core.NewItemService(pool)
		item, err := items.CreateItem(ctx, "Mystery Flavor")
		if err != nil {
			t.Fatalf("CreateItem: %v", err)
		}
		offers, err := catalog.OffersForItem(ctx, item.ID)
		if err != nil {
			t.Fatalf("OffersForItem: %v", err)
		}
		if len(offers) != 0 {
			t.Errorf("expected no offers, got %d", len(offers))
		}
	})

	t.Run("UnknownItem_NotFound", func(t *testing.T) {
		_, err := catalog.OffersForItem(ctx, 9999)
		if !errors.Is(err, core.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestRestockResolver_AgainstSeedData(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	resolver := core.NewRestockResolver(core.NewPriceCatalog(pool))

	t.Run("PicksCheapestDistributor", func(t *testing.T) {
		quote, err := resolver.FindCheapest(ctx, 2, 100)
		if err != nil {
			t.Fatalf("FindCheapest: %v", err)
		}
		if quote.DistributorID != 2 {
			t.Errorf("expected distributor 2, got %d", quote.DistributorID)
		}
		if !quote.UnitCost.Equal(decimal.RequireFromString("0.18")) {
			t.Errorf("expected unit cost 0.18, got %s", quote.UnitCost)
		}
		if !quote.TotalCost.Equal(decimal.RequireFromString("18.00")) {
			t.Errorf("expected total 18.00, got %s", quote.TotalCost)
		}
	})

	t.Run("SingleSupplierItem", func(t *testing.T) {
		// Only distributor 3 sells item 17.
		quote, err := resolver.FindCheapest(ctx, 17, 3)
		if err != nil {
			t.Fatalf("FindCheapest: %v", err)
		}
		if quote.DistributorID != 3 {
			t.Errorf("expected distributor 3, got %d", quote.DistributorID)
		}
		if !quote.TotalCost.Equal(decimal.RequireFromString("2.55")) {
			t.Errorf("expected total 2.55, got %s", quote.TotalCost)
		}
	})

	t.Run("UnsoldItem_NoOffers", func(t *testing.T) {
		items := core.NewItemService(pool)
		item, err := items.CreateItem(ctx, "Invisible Mints")
		if err != nil {
			t.Fatalf("CreateItem: %v", err)
		}
		_, err = resolver.FindCheapest(ctx, item.ID, 10)
		if !errors.Is(err, core.ErrNoOffers) {
			t.Errorf("expected ErrNoOffers, got %v", err)
		}
	})

	t.Run("UnknownItem_NotFound", func(t *testing.T) {
		_, err := resolver.FindCheapest(ctx, 9999, 10)
		if !errors.Is(err, core.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}
