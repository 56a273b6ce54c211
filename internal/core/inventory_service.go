package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InventoryService manages per-item stock records and serves the filtered
// listing views. Filtering delegates to the StockFilter predicates so the
// threshold logic lives in exactly one place; status is attached on every
// read and never stored.
type InventoryService interface {
	// ListInventory returns records matching the filter, ordered by item id.
	ListInventory(ctx context.Context, filter StockFilter) ([]StockedItem, error)
	GetByItem(ctx context.Context, itemID int) (*StockedItem, error)
	// AddRecord creates the single inventory record for an item.
	// stock must be >= 0, capacity > 0; the item must exist.
	AddRecord(ctx context.Context, itemID, stock, capacity int) (*StockedItem, error)
	// UpdateRecord patches stock and/or capacity; at least one must be given.
	UpdateRecord(ctx context.Context, itemID int, stock, capacity *int) (*StockedItem, error)
	DeleteRecord(ctx context.Context, itemID int) error
}

type inventoryService struct {
	pool *pgxpool.Pool
}

// NewInventoryService constructs an InventoryService backed by PostgreSQL.
func NewInventoryService(pool *pgxpool.Pool) InventoryService {
	return &inventoryService{pool: pool}
}

func (s *inventoryService) ListInventory(ctx context.Context, filter StockFilter) ([]StockedItem, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT i.id, i.name, inv.stock, inv.capacity
		FROM items i
		JOIN inventory inv ON i.id = inv.item
		ORDER BY i.id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w: %w", ErrUnavailable, err)
	}
	defer rows.Close()

	var out []StockedItem
	for rows.Next() {
		var rec InventoryRecord
		if err := rows.Scan(&rec.ItemID, &rec.ItemName, &rec.Stock, &rec.Capacity); err != nil {
			return nil, fmt.Errorf("scan inventory record: %w: %w", ErrUnavailable, err)
		}
		if !filter.Matches(rec.Stock, rec.Capacity) {
			continue
		}
		status, err := Classify(rec.Stock, rec.Capacity)
		if err != nil {
			return nil, fmt.Errorf("classify item %d: %w", rec.ItemID, err)
		}
		out = append(out, StockedItem{InventoryRecord: rec, Status: status})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inventory: %w: %w", ErrUnavailable, err)
	}
	return out, nil
}

func (s *inventoryService) GetByItem(ctx context.Context, itemID int) (*StockedItem, error) {
	var rec InventoryRecord
	err := s.pool.QueryRow(ctx, `
		SELECT i.id, i.name, inv.stock, inv.capacity
		FROM items i
		JOIN inventory inv ON i.id = inv.item
		WHERE i.id = $1`,
		itemID,
	).Scan(&rec.ItemID, &rec.ItemName, &rec.Stock, &rec.Capacity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("inventory record for item %d: %w", itemID, ErrNotFound)
		}
		return nil, fmt.Errorf("get inventory record for item %d: %w: %w", itemID, ErrUnavailable, err)
	}

	status, err := Classify(rec.Stock, rec.Capacity)
	if err != nil {
		return nil, fmt.Errorf("classify item %d: %w", itemID, err)
	}
	return &StockedItem{InventoryRecord: rec, Status: status}, nil
}

func (s *inventoryService) AddRecord(ctx context.Context, itemID, stock, capacity int) (*StockedItem, error) {
	if stock < 0 {
		return nil, fmt.Errorf("stock cannot be negative, got %d: %w", stock, ErrInvalidArgument)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("capacity must be positive, got %d: %w", capacity, ErrInvalidArgument)
	}

	var itemName string
	if err := s.pool.QueryRow(ctx, "SELECT name FROM items WHERE id = $1", itemID).Scan(&itemName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("item %d: %w", itemID, ErrNotFound)
		}
		return nil, fmt.Errorf("resolve item %d: %w: %w", itemID, ErrUnavailable, err)
	}

	_, err := s.pool.Exec(ctx,
		"INSERT INTO inventory (item, stock, capacity) VALUES ($1, $2, $3)",
		itemID, stock, capacity,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("inventory record for item %d: %w", itemID, ErrConflict)
		}
		return nil, fmt.Errorf("add inventory record for item %d: %w: %w", itemID, ErrUnavailable, err)
	}

	status, err := Classify(stock, capacity)
	if err != nil {
		return nil, err
	}
	return &StockedItem{
		InventoryRecord: InventoryRecord{ItemID: itemID, ItemName: itemName, Stock: stock, Capacity: capacity},
		Status:          status,
	}, nil
}

func (s *inventoryService) UpdateRecord(ctx context.Context, itemID int, stock, capacity *int) (*StockedItem, error) {
	if stock == nil && capacity == nil {
		return nil, fmt.Errorf("at least one of stock or capacity must be provided: %w", ErrInvalidArgument)
	}
	if stock != nil && *stock < 0 {
		return nil, fmt.Errorf("stock cannot be negative, got %d: %w", *stock, ErrInvalidArgument)
	}
	if capacity != nil && *capacity <= 0 {
		return nil, fmt.Errorf("capacity must be positive, got %d: %w", *capacity, ErrInvalidArgument)
	}

	// COALESCE keeps the untouched column, so a partial update stays a
	// single round trip.
	tag, err := s.pool.Exec(ctx, `
		UPDATE inventory
		SET stock = COALESCE($1, stock), capacity = COALESCE($2, capacity)
		WHERE item = $3`,
		stock, capacity, itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("update inventory record for item %d: %w: %w", itemID, ErrUnavailable, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("inventory record for item %d: %w", itemID, ErrNotFound)
	}
	return s.GetByItem(ctx, itemID)
}

func (s *inventoryService) DeleteRecord(ctx context.Context, itemID int) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM inventory WHERE item = $1", itemID)
	if err != nil {
		return fmt.Errorf("delete inventory record for item %d: %w: %w", itemID, ErrUnavailable, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("inventory record for item %d: %w", itemID, ErrNotFound)
	}
	return nil
}
