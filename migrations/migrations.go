// Package migrations embeds the schema and seed SQL. cmd/restore-seed and
// the admin reset operation apply Drop, Schema, Seed in that order.
package migrations

import _ "embed"

//go:embed schema.sql
var Schema string

//go:embed seed.sql
var Seed string

// Drop removes everything Schema creates so a reset starts clean.
const Drop = "DROP TABLE IF EXISTS distributor_prices, inventory, distributors, items CASCADE"
