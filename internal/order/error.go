package order

import "errors"

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrDuplicate     = errors.New("order already recorded")
)

// Postgres unique violation code, matched against pq errors.
const PgUniqueViolation = "23505"
