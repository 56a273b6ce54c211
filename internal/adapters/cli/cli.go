// Package cli implements the one-shot command interface used by cmd/app.
package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"stockroom/internal/app"
	"stockroom/internal/core"
)

// Run executes a one-shot CLI command and exits.
// args is os.Args[1:], so the first element is the subcommand name.
func Run(ctx context.Context, svc app.ApplicationService, args []string) {
	switch args[0] {
	case "items":
		result, err := svc.ListItems(ctx)
		if err != nil {
			log.Fatalf("Failed to list items: %v", err)
		}
		printItems(result.Items)

	case "distributors", "dist":
		result, err := svc.ListDistributors(ctx)
		if err != nil {
			log.Fatalf("Failed to list distributors: %v", err)
		}
		printDistributors(result.Distributors)

	case "inventory", "inv":
		filterArg := ""
		if len(args) > 1 {
			filterArg = args[1]
		}
		filter, err := core.ParseStockFilter(filterArg)
		if err != nil {
			log.Fatalf("Unknown filter %q. Available: all, out-of-stock, low-stock, overstocked", filterArg)
		}
		result, err := svc.ListInventory(ctx, filter)
		if err != nil {
			log.Fatalf("Failed to list inventory: %v", err)
		}
		printInventory(result)

	case "offers":
		if len(args) < 2 {
			log.Fatal("Usage: app offers <distributorID>")
		}
		distributorID := mustAtoi(args[1], "distributorID")
		result, err := svc.ListOffersByDistributor(ctx, distributorID)
		if err != nil {
			log.Fatalf("Failed to list offers: %v", err)
		}
		printOffers(result.Offers)

	case "cheapest", "quote":
		if len(args) < 3 {
			log.Fatal("Usage: app cheapest <itemID> <quantity>")
		}
		itemID := mustAtoi(args[1], "itemID")
		quantity := mustAtoi(args[2], "quantity")
		quote, err := svc.QuoteCheapestRestock(ctx, itemID, quantity)
		if err != nil {
			log.Fatalf("Failed to resolve cheapest restock: %v", err)
		}
		printQuote(quote)

	case "export":
		if len(args) < 2 {
			log.Fatalf("Usage: app export <table>\nValid tables: %s",
				strings.Join(core.ExportableTables(), ", "))
		}
		result, err := svc.ExportTable(ctx, args[1])
		if err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		os.Stdout.Write(result.CSV)

	default:
		log.Fatalf("Unknown command: %s\nAvailable: items, distributors, inventory, offers, cheapest, export", args[0])
	}
}

func mustAtoi(s, name string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("%s must be an integer, got %q", name, s)
	}
	return n
}

func printItems(items []core.Item) {
	fmt.Printf("%-6s %s\n", "ID", "NAME")
	fmt.Println(strings.Repeat("-", 40))
	for _, it := range items {
		fmt.Printf("%-6d %s\n", it.ID, it.Name)
	}
}

func printDistributors(distributors []core.Distributor) {
	fmt.Printf("%-6s %s\n", "ID", "NAME")
	fmt.Println(strings.Repeat("-", 40))
	for _, d := range distributors {
		fmt.Printf("%-6d %s\n", d.ID, d.Name)
	}
}

func printInventory(result *app.InventoryListResult) {
	fmt.Printf("Inventory (%s)\n", result.Filter)
	fmt.Printf("%-6s %-24s %8s %10s  %s\n", "ID", "NAME", "STOCK", "CAPACITY", "STATUS")
	fmt.Println(strings.Repeat("-", 68))
	for _, rec := range result.Records {
		fmt.Printf("%-6d %-24s %8d %10d  %s\n", rec.ItemID, rec.ItemName, rec.Stock, rec.Capacity, rec.Status)
	}
}

func printOffers(offers []core.PriceOffer) {
	fmt.Printf("%-8s %-24s %10s\n", "ITEM", "NAME", "COST")
	fmt.Println(strings.Repeat("-", 46))
	for _, o := range offers {
		fmt.Printf("%-8d %-24s %10s\n", o.ItemID, o.ItemName, o.UnitCost.StringFixed(2))
	}
}

func printQuote(q *core.RestockQuote) {
	fmt.Println(strings.Repeat("=", 46))
	fmt.Printf("  Item        : %d\n", q.ItemID)
	fmt.Printf("  Quantity    : %d\n", q.Quantity)
	fmt.Printf("  Distributor : %s (id %d)\n", q.DistributorName, q.DistributorID)
	fmt.Printf("  Unit cost   : %s\n", q.UnitCost.StringFixed(2))
	fmt.Printf("  Total cost  : %s\n", q.TotalCost.StringFixed(2))
	fmt.Println(strings.Repeat("=", 46))
}
