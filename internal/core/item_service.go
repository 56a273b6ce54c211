package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ItemService manages the item master list. Deleting an item cascades to its
// inventory record and any distributor offers at the database level, so the
// catalog never observes a dangling offer.
type ItemService interface {
	ListItems(ctx context.Context) ([]Item, error)
	GetItem(ctx context.Context, itemID int) (*Item, error)
	CreateItem(ctx context.Context, name string) (*Item, error)
	RenameItem(ctx context.Context, itemID int, name string) (*Item, error)
	DeleteItem(ctx context.Context, itemID int) error
}

type itemService struct {
	pool *pgxpool.Pool
}

// NewItemService constructs an ItemService backed by PostgreSQL.
func NewItemService(pool *pgxpool.Pool) ItemService {
	return &itemService{pool: pool}
}

func (s *itemService) ListItems(ctx context.Context) ([]Item, error) {
	rows, err := s.pool.Query(ctx, "SELECT id, name FROM items ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query items: %w: %w", ErrUnavailable, err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Name); err != nil {
			return nil, fmt.Errorf("scan item: %w: %w", ErrUnavailable, err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w: %w", ErrUnavailable, err)
	}
	return items, nil
}

func (s *itemService) GetItem(ctx context.Context, itemID int) (*Item, error) {
	it := &Item{}
	err := s.pool.QueryRow(ctx, "SELECT id, name FROM items WHERE id = $1", itemID).Scan(&it.ID, &it.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("item %d: %w", itemID, ErrNotFound)
		}
		return nil, fmt.Errorf("get item %d: %w: %w", itemID, ErrUnavailable, err)
	}
	return it, nil
}

func (s *itemService) CreateItem(ctx context.Context, name string) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("item name is required: %w", ErrInvalidArgument)
	}

	it := &Item{}
	err := s.pool.QueryRow(ctx,
		"INSERT INTO items (name) VALUES ($1) RETURNING id, name", name,
	).Scan(&it.ID, &it.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("item named %q: %w", name, ErrConflict)
		}
		return nil, fmt.Errorf("create item %q: %w: %w", name, ErrUnavailable, err)
	}
	return it, nil
}

func (s *itemService) RenameItem(ctx context.Context, itemID int, name string) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("item name is required: %w", ErrInvalidArgument)
	}

	it := &Item{}
	err := s.pool.QueryRow(ctx,
		"UPDATE items SET name = $1 WHERE id = $2 RETURNING id, name", name, itemID,
	).Scan(&it.ID, &it.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("item %d: %w", itemID, ErrNotFound)
		}
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("item named %q: %w", name, ErrConflict)
		}
		return nil, fmt.Errorf("rename item %d: %w: %w", itemID, ErrUnavailable, err)
	}
	return it, nil
}

func (s *itemService) DeleteItem(ctx context.Context, itemID int) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM items WHERE id = $1", itemID)
	if err != nil {
		return fmt.Errorf("delete item %d: %w: %w", itemID, ErrUnavailable, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %d: %w", itemID, ErrNotFound)
	}
	return nil
}
