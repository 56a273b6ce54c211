package core_test

import (
	"context"
	"errors"
	"testing"

	"stockroom/internal/core"
)

func TestInventory_ListAndFilter(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	svc := core.NewInventoryService(pool)

	t.Run("ListAll_AttachesStatus", func(t *testing.T) {
		records, err := svc.ListInventory(ctx, core.FilterAll)
		if err != nil {
			t.Fatalf("ListInventory: %v", err)
		}
		if len(records) != 17 {
			t.Fatalf("expected 17 seeded records, got %d", len(records))
		}
		for _, rec := range records {
			want, err := core.Classify(rec.Stock, rec.Capacity)
			if err != nil {
				t.Fatalf("Classify item %d: %v", rec.ItemID, err)
			}
			if rec.Status != want {
				t.Errorf("item %d: status %s, want %s", rec.ItemID, rec.Status, want)
			}
		}
	})

	t.Run("FilterLowStock_MatchesClassifier", func(t *testing.T) {
		records, err := svc.ListInventory(ctx, core.FilterLowStock)
		if err != nil {
			t.Fatalf("ListInventory: %v", err)
		}
		// In the seed data items 2, 9, 13, 14 and 17 sit below 35% of capacity.
		wantIDs := []int{2, 9, 13, 14, 17}
		if len(records) != len(wantIDs) {
			t.Fatalf("expected %d low-stock records, got %d", len(wantIDs), len(records))
		}
		for i, rec := range records {
			if rec.ItemID != wantIDs[i] {
				t.Errorf("position %d: item %d, want %d", i, rec.ItemID, wantIDs[i])
			}
			if rec.Status != core.StockLowStock {
				t.Errorf("item %d: status %s, want %s", rec.ItemID, rec.Status, core.StockLowStock)
			}
		}
	})

	t.Run("FilterOutOfStock_FindsEmptiedItem", func(t *testing.T) {
		zero := 0
		if _, err := svc.UpdateRecord(ctx, 1, &zero, nil); err != nil {
			t.Fatalf("UpdateRecord: %v", err)
		}

		records, err := svc.ListInventory(ctx, core.FilterOutOfStock)
		if err != nil {
			t.Fatalf("ListInventory: %v", err)
		}
		if len(records) != 1 || records[0].ItemID != 1 {
			t.Fatalf("expected only item 1 out of stock, got %+v", records)
		}
		if records[0].Status != core.StockOutOfStock {
			t.Errorf("status %s, want %s", records[0].Status, core.StockOutOfStock)
		}
	})

	t.Run("FilterOverstocked_FindsOverfilledItem", func(t *testing.T) {
		over := 99
		if _, err := svc.UpdateRecord(ctx, 3, &over, nil); err != nil {
			t.Fatalf("UpdateRecord: %v", err)
		}

		records, err := svc.ListInventory(ctx, core.FilterOverstocked)
		if err != nil {
			t.Fatalf("ListInventory: %v", err)
		}
		if len(records) != 1 || records[0].ItemID != 3 {
			t.Fatalf("expected only item 3 overstocked, got %+v", records)
		}
	})
}

func TestInventory_Records(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()
	svc := core.NewInventoryService(pool)
	items := core.NewItemService(pool)

	t.Run("AddRecord_Success", func(t *testing.T) {
		item, err := items.CreateItem(ctx, "Rock Candy")
		if err != nil {
			t.Fatalf("CreateItem: %v", err)
		}
		rec, err := svc.AddRecord(ctx, item.ID, 5, 40)
		if err != nil {
			t.Fatalf("AddRecord: %v", err)
		}
		if rec.ItemName != "Rock Candy" || rec.Stock != 5 || rec.Capacity != 40 {
			t.Errorf("unexpected record: %+v", rec)
		}
		if rec.Status != core.StockLowStock {
			t.Errorf("5 of 40 should be %s, got %s", core.StockLowStock, rec.Status)
		}
	})

	t.Run("AddRecord_Duplicate_Conflict", func(t *testing.T) {
		_, err := svc.AddRecord(ctx, 1, 10, 20)
		if !errors.Is(err, core.ErrConflict) {
			t.Errorf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("AddRecord_UnknownItem_NotFound", func(t *testing.T) {
		_, err := svc.AddRecord(ctx, 9999, 10, 20)
		if !errors.Is(err, core.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("AddRecord_BadValues_Invalid", func(t *testing.T) {
		if _, err := svc.AddRecord(ctx, 1, -1, 20); !errors.Is(err, core.ErrInvalidArgument) {
			t.Errorf("negative stock: expected ErrInvalidArgument, got %v", err)
		}
		if _, err := svc.AddRecord(ctx, 1, 5, 0); !errors.Is(err, core.ErrInvalidArgument) {
			t.Errorf("zero capacity: expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("UpdateRecord_PartialUpdate", func(t *testing.T) {
		stock := 12
		rec, err := svc.UpdateRecord(ctx, 4, &stock, nil)
		if err != nil {
			t.Fatalf("UpdateRecord: %v", err)
		}
		if rec.Stock != 12 {
			t.Errorf("expected stock 12, got %d", rec.Stock)
		}
		if rec.Capacity != 50 {
			t.Errorf("capacity should be untouched at 50, got %d", rec.Capacity)
		}
	})

	t.Run("UpdateRecord_NothingGiven_Invalid", func(t *testing.T) {
		_, err := svc.UpdateRecord(ctx, 4, nil, nil)
		if !errors.Is(err, core.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("DeleteRecord_ThenGet_NotFound", func(t *testing.T) {
		if err := svc.DeleteRecord(ctx, 5); err != nil {
			t.Fatalf("DeleteRecord: %v", err)
		}
		_, err := svc.GetByItem(ctx, 5)
		if !errors.Is(err, core.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}
