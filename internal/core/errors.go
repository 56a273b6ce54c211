package core

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Error kinds surfaced by the core. Services wrap these with fmt.Errorf and
// %w so callers can branch with errors.Is while keeping a readable message.
// All of them are terminal for the call: they describe deterministic logical
// state, not transient I/O conditions, so retrying is never appropriate.
var (
	// ErrInvalidArgument marks caller mistakes: non-positive quantity,
	// capacity <= 0, negative stock, blank names.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound marks lookups of ids that do not exist.
	ErrNotFound = errors.New("not found")

	// ErrNoOffers means the item exists but no distributor currently sells it.
	// Distinct from ErrNotFound so callers can tell an empty catalog entry
	// from an unknown item.
	ErrNoOffers = errors.New("no offers")

	// ErrConflict marks uniqueness violations: duplicate names, or an offer
	// added for a (distributor, item) pair that already has one.
	ErrConflict = errors.New("already exists")

	// ErrUnavailable wraps store I/O failures so they are never conflated
	// with the logical kinds above.
	ErrUnavailable = errors.New("store unavailable")
)

// isUniqueViolation reports whether err is a Postgres unique_violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
