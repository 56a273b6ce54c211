package core

import "github.com/shopspring/decimal"

// Item is a product the warehouse tracks. Names are unique.
type Item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Distributor is a supplier that sells some subset of items.
type Distributor struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// PriceOffer says a distributor currently sells an item at a unit cost.
// At most one offer exists per (distributor, item) pair; updating a pair
// replaces the cost rather than creating a duplicate.
type PriceOffer struct {
	DistributorID   int             `json:"distributor_id"`
	DistributorName string          `json:"distributor_name"`
	ItemID          int             `json:"item_id"`
	ItemName        string          `json:"item_name"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
}

// InventoryRecord tracks current stock against capacity for one item.
// Items without a record are absent from inventory views, not stocked at zero.
type InventoryRecord struct {
	ItemID   int    `json:"id"`
	ItemName string `json:"name"`
	Stock    int    `json:"stock"`
	Capacity int    `json:"capacity"`
}

// StockedItem is an inventory record with its derived status attached.
// Status is recomputed on every read and never persisted.
type StockedItem struct {
	InventoryRecord
	Status StockStatus `json:"status"`
}

// RestockQuote is the resolver's answer to "cheapest way to buy N units".
// It is advisory only: producing a quote never mutates stock or offers.
type RestockQuote struct {
	ItemID          int             `json:"item_id"`
	Quantity        int             `json:"quantity"`
	DistributorID   int             `json:"distributor_id"`
	DistributorName string          `json:"distributor_name"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	TotalCost       decimal.Decimal `json:"total_cost"`
}
