package app

import (
	"context"

	"stockroom/internal/core"

	"github.com/shopspring/decimal"
)

// ApplicationService is the single interface the web and CLI adapters call.
// It decouples presentation from business logic; implementations contain no
// display logic of any kind.
type ApplicationService interface {
	// Items
	ListItems(ctx context.Context) (*ItemListResult, error)
	GetItem(ctx context.Context, itemID int) (*core.Item, error)
	CreateItem(ctx context.Context, name string) (*core.Item, error)
	RenameItem(ctx context.Context, itemID int, name string) (*core.Item, error)
	DeleteItem(ctx context.Context, itemID int) error

	// Distributors
	ListDistributors(ctx context.Context) (*DistributorListResult, error)
	GetDistributor(ctx context.Context, distributorID int) (*core.Distributor, error)
	CreateDistributor(ctx context.Context, name string) (*core.Distributor, error)
	RenameDistributor(ctx context.Context, distributorID int, name string) (*core.Distributor, error)
	DeleteDistributor(ctx context.Context, distributorID int) error

	// Price offers
	ListOffersByDistributor(ctx context.Context, distributorID int) (*OfferListResult, error)
	// ListOffersForItem returns offers cheapest-first.
	ListOffersForItem(ctx context.Context, itemID int) (*OfferListResult, error)
	AddOffer(ctx context.Context, distributorID, itemID int, cost decimal.Decimal) (*core.PriceOffer, error)
	UpdateOffer(ctx context.Context, distributorID, itemID int, cost decimal.Decimal) (*core.PriceOffer, error)
	RemoveOffer(ctx context.Context, distributorID, itemID int) error

	// Inventory
	ListInventory(ctx context.Context, filter core.StockFilter) (*InventoryListResult, error)
	GetInventoryRecord(ctx context.Context, itemID int) (*core.StockedItem, error)
	AddInventoryRecord(ctx context.Context, itemID, stock, capacity int) (*core.StockedItem, error)
	UpdateInventoryRecord(ctx context.Context, itemID int, stock, capacity *int) (*core.StockedItem, error)
	DeleteInventoryRecord(ctx context.Context, itemID int) error

	// QuoteCheapestRestock finds the cheapest way to buy quantity units of
	// an item across all distributors. Advisory only; mutates nothing.
	QuoteCheapestRestock(ctx context.Context, itemID, quantity int) (*core.RestockQuote, error)

	// ExportTable dumps one of the four inventory tables as CSV.
	ExportTable(ctx context.Context, table string) (*ExportResult, error)

	// ResetDatabase drops and recreates the schema, then reapplies the seed
	// dataset. Destructive; intended for demos and local development.
	ResetDatabase(ctx context.Context) error
}
