package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"stockroom/internal/adapters/cli"
	"stockroom/internal/app"
	"stockroom/internal/core"
	"stockroom/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	itemService := core.NewItemService(pool)
	distributorService := core.NewDistributorService(pool)
	inventoryService := core.NewInventoryService(pool)
	catalog := core.NewPriceCatalog(pool)
	exportService := core.NewExportService(pool)

	svc := app.NewAppService(pool, itemService, distributorService, inventoryService, catalog, exportService)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cli.Run(ctx, svc, os.Args[1:])
}

func usage() {
	fmt.Println("Usage: app <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  items                        list all items")
	fmt.Println("  distributors                 list all distributors")
	fmt.Println("  inventory [filter]           list inventory (all, out-of-stock, low-stock, overstocked)")
	fmt.Println("  offers <distributorID>       list a distributor's price offers")
	fmt.Println("  cheapest <itemID> <qty>      quote the cheapest restock for an item")
	fmt.Println("  export <table>               print a table as CSV")
}
