package core

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ExportService dumps whole tables as CSV for the spreadsheet crowd.
type ExportService interface {
	// ExportCSV returns the named table as CSV with a header row.
	// Only the four inventory tables are exportable; anything else is
	// ErrInvalidArgument.
	ExportCSV(ctx context.Context, table string) ([]byte, error)
}

// exportQueries whitelists the exportable tables. Values are cast to text in
// SQL so every cell scans as a string and numeric formatting stays stable.
var exportQueries = map[string]struct {
	header []string
	query  string
}{
	"items": {
		header: []string{"id", "name"},
		query:  "SELECT id::text, name FROM items ORDER BY id",
	},
	"inventory": {
		header: []string{"id", "item", "stock", "capacity"},
		query:  "SELECT id::text, item::text, stock::text, capacity::text FROM inventory ORDER BY id",
	},
	"distributors": {
		header: []string{"id", "name"},
		query:  "SELECT id::text, name FROM distributors ORDER BY id",
	},
	"distributor_prices": {
		header: []string{"id", "distributor", "item", "cost"},
		query:  "SELECT id::text, distributor::text, item::text, cost::text FROM distributor_prices ORDER BY id",
	},
}

// ExportableTables lists valid arguments to ExportCSV, for error messages
// and CLI help.
func ExportableTables() []string {
	return []string{"items", "inventory", "distributors", "distributor_prices"}
}

type exportService struct {
	pool *pgxpool.Pool
}

// NewExportService constructs an ExportService backed by PostgreSQL.
func NewExportService(pool *pgxpool.Pool) ExportService {
	return &exportService{pool: pool}
}

func (s *exportService) ExportCSV(ctx context.Context, table string) ([]byte, error) {
	spec, ok := exportQueries[table]
	if !ok {
		return nil, fmt.Errorf("table %q is not exportable: %w", table, ErrInvalidArgument)
	}

	rows, err := s.pool.Query(ctx, spec.query)
	if err != nil {
		return nil, fmt.Errorf("export %s: %w: %w", table, ErrUnavailable, err)
	}
	defer rows.Close()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(spec.header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	record := make([]string, len(spec.header))
	dest := make([]any, len(spec.header))
	for i := range record {
		dest[i] = &record[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan %s row: %w: %w", table, ErrUnavailable, err)
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w: %w", table, ErrUnavailable, err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
