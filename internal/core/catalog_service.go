package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgCatalog struct {
	pool *pgxpool.Pool
}

// NewPriceCatalog constructs a PriceCatalog backed by PostgreSQL.
func NewPriceCatalog(pool *pgxpool.Pool) PriceCatalog {
	return &pgCatalog{pool: pool}
}

// OffersForItem distinguishes "item unknown" from "item exists but unsold":
// the former is ErrNotFound, the latter an empty slice.
func (c *pgCatalog) OffersForItem(ctx context.Context, itemID int) ([]PriceOffer, error) {
	var itemName string
	err := c.pool.QueryRow(ctx, "SELECT name FROM items WHERE id = $1", itemID).Scan(&itemName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("item %d: %w", itemID, ErrNotFound)
		}
		return nil, fmt.Errorf("resolve item %d: %w: %w", itemID, ErrUnavailable, err)
	}

	rows, err := c.pool.Query(ctx, `
		SELECT d.id, d.name, dp.item, dp.cost
		FROM distributor_prices dp
		JOIN distributors d ON d.id = dp.distributor
		WHERE dp.item = $1
		ORDER BY dp.cost, d.id`,
		itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("query offers for item %d: %w: %w", itemID, ErrUnavailable, err)
	}
	defer rows.Close()

	var offers []PriceOffer
	for rows.Next() {
		o := PriceOffer{ItemName: itemName}
		if err := rows.Scan(&o.DistributorID, &o.DistributorName, &o.ItemID, &o.UnitCost); err != nil {
			return nil, fmt.Errorf("scan offer: %w: %w", ErrUnavailable, err)
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate offers for item %d: %w: %w", itemID, ErrUnavailable, err)
	}
	return offers, nil
}
