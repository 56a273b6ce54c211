package core

import "fmt"

// StockStatus is the derived health classification of an inventory record.
type StockStatus string

const (
	StockOutOfStock  StockStatus = "OUT_OF_STOCK"
	StockOverstocked StockStatus = "OVERSTOCKED"
	StockLowStock    StockStatus = "LOW_STOCK"
	StockGood        StockStatus = "GOOD"
)

// The low-stock threshold is 35% of capacity. The comparison is done in
// exact integer arithmetic (stock*20 < capacity*7) so a stock level exactly
// at the threshold classifies as GOOD, with no float boundary surprises.

// Classify maps (stock, capacity) to a StockStatus. First match wins, and
// the order matters because the ranges overlap at the boundaries:
//
//  1. stock == 0             -> OUT_OF_STOCK
//  2. stock > capacity       -> OVERSTOCKED
//  3. stock < 35% of capacity -> LOW_STOCK
//  4. otherwise              -> GOOD
//
// stock == capacity is GOOD (strict >), and stock exactly at the 35%
// threshold is GOOD (strict <). capacity <= 0 and negative stock are
// ErrInvalidArgument; callers must validate before persisting.
func Classify(stock, capacity int) (StockStatus, error) {
	if capacity <= 0 {
		return "", fmt.Errorf("capacity must be positive, got %d: %w", capacity, ErrInvalidArgument)
	}
	if stock < 0 {
		return "", fmt.Errorf("stock cannot be negative, got %d: %w", stock, ErrInvalidArgument)
	}
	switch {
	case stock == 0:
		return StockOutOfStock, nil
	case stock > capacity:
		return StockOverstocked, nil
	case stock*20 < capacity*7:
		return StockLowStock, nil
	default:
		return StockGood, nil
	}
}

// The three named predicates below back the filtered inventory views.
// For any valid (stock, capacity) pair they are mutually exclusive with
// each other and with GOOD under the Classify decision order.

func IsOutOfStock(stock, capacity int) bool { return stock == 0 }

func IsLowStock(stock, capacity int) bool { return stock > 0 && stock*20 < capacity*7 }

func IsOverstocked(stock, capacity int) bool { return stock > capacity }

// StockFilter selects a subset of inventory records for listing views.
type StockFilter string

const (
	FilterAll         StockFilter = "all"
	FilterOutOfStock  StockFilter = "out-of-stock"
	FilterLowStock    StockFilter = "low-stock"
	FilterOverstocked StockFilter = "overstocked"
)

// ParseStockFilter validates a caller-supplied filter string.
// An empty string means FilterAll.
func ParseStockFilter(s string) (StockFilter, error) {
	switch StockFilter(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterOutOfStock:
		return FilterOutOfStock, nil
	case FilterLowStock:
		return FilterLowStock, nil
	case FilterOverstocked:
		return FilterOverstocked, nil
	default:
		return "", fmt.Errorf("unknown inventory filter %q: %w", s, ErrInvalidArgument)
	}
}

// Matches reports whether a record with the given stock and capacity
// belongs in the filtered view.
func (f StockFilter) Matches(stock, capacity int) bool {
	switch f {
	case FilterOutOfStock:
		return IsOutOfStock(stock, capacity)
	case FilterLowStock:
		return IsLowStock(stock, capacity)
	case FilterOverstocked:
		return IsOverstocked(stock, capacity)
	default:
		return true
	}
}
