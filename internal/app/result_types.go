package app

import "stockroom/internal/core"

// ItemListResult is returned by ListItems.
type ItemListResult struct {
	Items []core.Item
}

// DistributorListResult is returned by ListDistributors.
type DistributorListResult struct {
	Distributors []core.Distributor
}

// OfferListResult is returned by the offer listing operations.
type OfferListResult struct {
	Offers []core.PriceOffer
}

// InventoryListResult is returned by ListInventory.
type InventoryListResult struct {
	Filter  core.StockFilter
	Records []core.StockedItem
}

// ExportResult is returned by ExportTable.
type ExportResult struct {
	Table    string
	Filename string // suggested attachment filename, e.g. "items.csv"
	CSV      []byte
}
