package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// DistributorService manages distributors and their per-item price offers.
// Deleting a distributor cascades to its offers at the database level.
type DistributorService interface {
	ListDistributors(ctx context.Context) ([]Distributor, error)
	GetDistributor(ctx context.Context, distributorID int) (*Distributor, error)
	CreateDistributor(ctx context.Context, name string) (*Distributor, error)
	RenameDistributor(ctx context.Context, distributorID int, name string) (*Distributor, error)
	DeleteDistributor(ctx context.Context, distributorID int) error

	// OffersByDistributor lists everything one distributor sells, by item id.
	OffersByDistributor(ctx context.Context, distributorID int) ([]PriceOffer, error)
	// AddOffer creates a new offer; a (distributor, item) pair that already
	// has one is ErrConflict; replacing a price goes through UpdateOffer.
	AddOffer(ctx context.Context, distributorID, itemID int, cost decimal.Decimal) (*PriceOffer, error)
	// UpdateOffer replaces the cost of an existing offer.
	UpdateOffer(ctx context.Context, distributorID, itemID int, cost decimal.Decimal) (*PriceOffer, error)
	RemoveOffer(ctx context.Context, distributorID, itemID int) error
}

type distributorService struct {
	pool *pgxpool.Pool
}

// NewDistributorService constructs a DistributorService backed by PostgreSQL.
func NewDistributorService(pool *pgxpool.Pool) DistributorService {
	return &distributorService{pool: pool}
}

func (s *distributorService) ListDistributors(ctx context.Context) ([]Distributor, error) {
	rows, err := s.pool.Query(ctx, "SELECT id, name FROM distributors ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query distributors: %w: %w", ErrUnavailable, err)
	}
	defer rows.Close()

	var distributors []Distributor
	for rows.Next() {
		var d Distributor
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("scan distributor: %w: %w", ErrUnavailable, err)
		}
		distributors = append(distributors, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate distributors: %w: %w", ErrUnavailable, err)
	}
	return distributors, nil
}

func (s *distributorService) GetDistributor(ctx context.Context, distributorID int) (*Distributor, error) {
	d := &Distributor{}
	err := s.pool.QueryRow(ctx, "SELECT id, name FROM distributors WHERE id = $1", distributorID).Scan(&d.ID, &d.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("distributor %d: %w", distributorID, ErrNotFound)
		}
		return nil, fmt.Errorf("get distributor %d: %w: %w", distributorID, ErrUnavailable, err)
	}
	return d, nil
}

func (s *distributorService) CreateDistributor(ctx context.Context, name string) (*Distributor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("distributor name is required: %w", ErrInvalidArgument)
	}

	d := &Distributor{}
	err := s.pool.QueryRow(ctx,
		"INSERT INTO distributors (name) VALUES ($1) RETURNING id, name", name,
	).Scan(&d.ID, &d.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("distributor named %q: %w", name, ErrConflict)
		}
		return nil, fmt.Errorf("create distributor %q: %w: %w", name, ErrUnavailable, err)
	}
	return d, nil
}

func (s *distributorService) RenameDistributor(ctx context.Context, distributorID int, name string) (*Distributor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("distributor name is required: %w", ErrInvalidArgument)
	}

	d := &Distributor{}
	err := s.pool.QueryRow(ctx,
		"UPDATE distributors SET name = $1 WHERE id = $2 RETURNING id, name", name, distributorID,
	).Scan(&d.ID, &d.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("distributor %d: %w", distributorID, ErrNotFound)
		}
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("distributor named %q: %w", name, ErrConflict)
		}
		return nil, fmt.Errorf("rename distributor %d: %w: %w", distributorID, ErrUnavailable, err)
	}
	return d, nil
}

func (s *distributorService) DeleteDistributor(ctx context.Context, distributorID int) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM distributors WHERE id = $1", distributorID)
	if err != nil {
		return fmt.Errorf("delete distributor %d: %w: %w", distributorID, ErrUnavailable, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("distributor %d: %w", distributorID, ErrNotFound)
	}
	return nil
}

func (s *distributorService) OffersByDistributor(ctx context.Context, distributorID int) ([]PriceOffer, error) {
	var distributorName string
	err := s.pool.QueryRow(ctx, "SELECT name FROM distributors WHERE id = $1", distributorID).Scan(&distributorName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("distributor %d: %w", distributorID, ErrNotFound)
		}
		return nil, fmt.Errorf("resolve distributor %d: %w: %w", distributorID, ErrUnavailable, err)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT dp.distributor, i.id, i.name, dp.cost
		FROM distributor_prices dp
		JOIN items i ON i.id = dp.item
		WHERE dp.distributor = $1
		ORDER BY i.id`,
		distributorID,
	)
	if err != nil {
		return nil, fmt.Errorf("query offers for distributor %d: %w: %w", distributorID, ErrUnavailable, err)
	}
	defer rows.Close()

	var offers []PriceOffer
	for rows.Next() {
		o := PriceOffer{DistributorName: distributorName}
		if err := rows.Scan(&o.DistributorID, &o.ItemID, &o.ItemName, &o.UnitCost); err != nil {
			return nil, fmt.Errorf("scan offer: %w: %w", ErrUnavailable, err)
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate offers for distributor %d: %w: %w", distributorID, ErrUnavailable, err)
	}
	return offers, nil
}

func (s *distributorService) AddOffer(ctx context.Context, distributorID, itemID int, cost decimal.Decimal) (*PriceOffer, error) {
	if cost.IsNegative() {
		return nil, fmt.Errorf("cost cannot be negative, got %s: %w", cost, ErrInvalidArgument)
	}

	// The two existence checks keep foreign-key failures out of the error
	// path so the caller sees which id was wrong.
	if _, err := s.GetDistributor(ctx, distributorID); err != nil {
		return nil, err
	}
	var itemName string
	if err := s.pool.QueryRow(ctx, "SELECT name FROM items WHERE id = $1", itemID).Scan(&itemName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("item %d: %w", itemID, ErrNotFound)
		}
		return nil, fmt.Errorf("resolve item %d: %w: %w", itemID, ErrUnavailable, err)
	}

	o := &PriceOffer{ItemName: itemName}
	err := s.pool.QueryRow(ctx, `
		INSERT INTO distributor_prices (distributor, item, cost)
		VALUES ($1, $2, $3)
		RETURNING distributor, item, cost`,
		distributorID, itemID, cost.Round(2),
	).Scan(&o.DistributorID, &o.ItemID, &o.UnitCost)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("offer for distributor %d item %d (use update instead): %w",
				distributorID, itemID, ErrConflict)
		}
		return nil, fmt.Errorf("add offer: %w: %w", ErrUnavailable, err)
	}
	return o, nil
}

func (s *distributorService) UpdateOffer(ctx context.Context, distributorID, itemID int, cost decimal.Decimal) (*PriceOffer, error) {
	if cost.IsNegative() {
		return nil, fmt.Errorf("cost cannot be negative, got %s: %w", cost, ErrInvalidArgument)
	}

	o := &PriceOffer{}
	err := s.pool.QueryRow(ctx, `
		UPDATE distributor_prices SET cost = $1
		WHERE distributor = $2 AND item = $3
		RETURNING distributor, item, cost`,
		cost.Round(2), distributorID, itemID,
	).Scan(&o.DistributorID, &o.ItemID, &o.UnitCost)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("offer for distributor %d item %d: %w", distributorID, itemID, ErrNotFound)
		}
		return nil, fmt.Errorf("update offer: %w: %w", ErrUnavailable, err)
	}
	return o, nil
}

func (s *distributorService) RemoveOffer(ctx context.Context, distributorID, itemID int) error {
	tag, err := s.pool.Exec(ctx,
		"DELETE FROM distributor_prices WHERE distributor = $1 AND item = $2",
		distributorID, itemID,
	)
	if err != nil {
		return fmt.Errorf("remove offer: %w: %w", ErrUnavailable, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("offer for distributor %d item %d: %w", distributorID, itemID, ErrNotFound)
	}
	return nil
}
