package main

import (
	"context"
	"log"

	"stockroom/internal/db"
	"stockroom/migrations"

	"github.com/joho/godotenv"
)

// Drops every table and rebuilds the schema with the seed data.
func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatalf("begin: %v", err)
	}
	defer tx.Rollback(ctx)

	for _, step := range []struct {
		name string
		sql  string
	}{
		{"drop", migrations.Drop},
		{"schema", migrations.Schema},
		{"seed", migrations.Seed},
	} {
		if _, err := tx.Exec(ctx, step.sql); err != nil {
			log.Fatalf("%s: %v", step.name, err)
		}
		log.Printf("applied %s", step.name)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("commit: %v", err)
	}
	log.Println("database restored to seed state")
}
