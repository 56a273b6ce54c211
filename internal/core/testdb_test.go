package core_test

import (
	"context"
	"os"
	"testing"

	"stockroom/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// setupTestDB connects to the dedicated test database and resets it to the
// seed dataset. Set TEST_DATABASE_URL in .env or the environment to run
// integration tests; without it they are skipped to protect live data.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	_ = godotenv.Load("../../.env")

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test to protect live database")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	for _, sql := range []string{migrations.Drop, migrations.Schema, migrations.Seed} {
		if _, err := pool.Exec(ctx, sql); err != nil {
			t.Fatalf("Failed to reset test database: %v", err)
		}
	}

	return pool
}
