package main

import (
	"context"
	"log"
	"net/http"
	"os"

	webAdapter "stockroom/internal/adapters/web"
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

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	jwtSecret := os.Getenv("API_JWT_SECRET")
	if jwtSecret == "" {
		log.Println("Warning: API_JWT_SECRET is not set, mutating routes are unauthenticated")
	}
	handler := webAdapter.NewHandler(svc, allowedOrigins, jwtSecret)

	log.Printf("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
