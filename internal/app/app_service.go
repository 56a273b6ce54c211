package app

import (
	"context"
	"fmt"

	"stockroom/internal/core"
	"stockroom/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type appService struct {
	pool         *pgxpool.Pool
	items        core.ItemService
	distributors core.DistributorService
	inventory    core.InventoryService
	catalog      core.PriceCatalog
	resolver     *core.RestockResolver
	export       core.ExportService
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(
	pool *pgxpool.Pool,
	items core.ItemService,
	distributors core.DistributorService,
	inventory core.InventoryService,
	catalog core.PriceCatalog,
	export core.ExportService,
) ApplicationService {
	return &appService{
		pool:         pool,
		items:        items,
		distributors: distributors,
		inventory:    inventory,
		catalog:      catalog,
		resolver:     core.NewRestockResolver(catalog),
		export:       export,
	}
}

// ── Items ─────────────────────────────────────────────────────────────────────

func (s *appService) ListItems(ctx context.Context) (*ItemListResult, error) {
	items, err := s.items.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	return &ItemListResult{Items: items}, nil
}

func (s *appService) GetItem(ctx context.Context, itemID int) (*core.Item, error) {
	return s.items.GetItem(ctx, itemID)
}

func (s *appService) CreateItem(ctx context.Context, name string) (*core.Item, error) {
	return s.items.CreateItem(ctx, name)
}

func (s *appService) RenameItem(ctx context.Context, itemID int, name string) (*core.Item, error) {
	return s.items.RenameItem(ctx, itemID, name)
}

func (s *appService) DeleteItem(ctx context.Context, itemID int) error {
	return s.items.DeleteItem(ctx, itemID)
}

// ── Distributors ──────────────────────────────────────────────────────────────

func (s *appService) ListDistributors(ctx context.Context) (*DistributorListResult, error) {
	distributors, err := s.distributors.ListDistributors(ctx)
	if err != nil {
		return nil, err
	}
	return &DistributorListResult{Distributors: distributors}, nil
}

func (s *appService) GetDistributor(ctx context.Context, distributorID int) (*core.Distributor, error) {
	return s.distributors.GetDistributor(ctx, distributorID)
}

func (s *appService) CreateDistributor(ctx context.Context, name string) (*core.Distributor, error) {
	return s.distributors.CreateDistributor(ctx, name)
}

func (s *appService) RenameDistributor(ctx context.Context, distributorID int, name string) (*core.Distributor, error) {
	return s.distributors.RenameDistributor(ctx, distributorID, name)
}

func (s *appService) DeleteDistributor(ctx context.Context, distributorID int) error {
	return s.distributors.DeleteDistributor(ctx, distributorID)
}

// ── Price offers ──────────────────────────────────────────────────────────────

func (s *appService) ListOffersByDistributor(ctx context.Context, distributorID int) (*OfferListResult, error) {
	offers, err := s.distributors.OffersByDistributor(ctx, distributorID)
	if err != nil {
		return nil, err
	}
	return &OfferListResult{Offers: offers}, nil
}

func (s *appService) ListOffersForItem(ctx context.Context, itemID int) (*OfferListResult, error) {
	offers, err := s.catalog.OffersForItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return &OfferListResult{Offers: offers}, nil
}

func (s *appService) AddOffer(ctx context.Context, distributorID, itemID int, cost decimal.Decimal) (*core.PriceOffer, error) {
	return s.distributors.AddOffer(ctx, distributorID, itemID, cost)
}

func (s *appService) UpdateOffer(ctx context.Context, distributorID, itemID int, cost decimal.Decimal) (*core.PriceOffer, error) {
	return s.distributors.UpdateOffer(ctx, distributorID, itemID, cost)
}

func (s *appService) RemoveOffer(ctx context.Context, distributorID, itemID int) error {
	return s.distributors.RemoveOffer(ctx, distributorID, itemID)
}

// ── Inventory ─────────────────────────────────────────────────────────────────

func (s *appService) ListInventory(ctx context.Context, filter core.StockFilter) (*InventoryListResult, error) {
	records, err := s.inventory.ListInventory(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &InventoryListResult{Filter: filter, Records: records}, nil
}

func (s *appService) GetInventoryRecord(ctx context.Context, itemID int) (*core.StockedItem, error) {
	return s.inventory.GetByItem(ctx, itemID)
}

func (s *appService) AddInventoryRecord(ctx context.Context, itemID, stock, capacity int) (*core.StockedItem, error) {
	return s.inventory.AddRecord(ctx, itemID, stock, capacity)
}

func (s *appService) UpdateInventoryRecord(ctx context.Context, itemID int, stock, capacity *int) (*core.StockedItem, error) {
	return s.inventory.UpdateRecord(ctx, itemID, stock, capacity)
}

func (s *appService) DeleteInventoryRecord(ctx context.Context, itemID int) error {
	return s.inventory.DeleteRecord(ctx, itemID)
}

// ── Restock ───────────────────────────────────────────────────────────────────

func (s *appService) QuoteCheapestRestock(ctx context.Context, itemID, quantity int) (*core.RestockQuote, error) {
	return s.resolver.FindCheapest(ctx, itemID, quantity)
}

// ── Export / admin ────────────────────────────────────────────────────────────

func (s *appService) ExportTable(ctx context.Context, table string) (*ExportResult, error) {
	csvData, err := s.export.ExportCSV(ctx, table)
	if err != nil {
		return nil, err
	}
	return &ExportResult{Table: table, Filename: table + ".csv", CSV: csvData}, nil
}

func (s *appService) ResetDatabase(ctx context.Context) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin reset: %w: %w", core.ErrUnavailable, err)
	}
	defer tx.Rollback(ctx)

	for _, stmt := range []string{migrations.Drop, migrations.Schema, migrations.Seed} {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("reset database: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit reset: %w: %w", core.ErrUnavailable, err)
	}
	return nil
}
