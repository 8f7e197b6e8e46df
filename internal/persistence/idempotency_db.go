package persistence

import (
	"context"
	"database/sql"
	"time"
)

// PostgresIdempotencyChecker implements DB-based deduplication
type PostgresIdempotencyChecker struct {
	db *sql.DB
}

func NewPostgresIdempotencyChecker(db *sql.DB) *PostgresIdempotencyChecker {
	return &PostgresIdempotencyChecker{
		db: db,
	}
}

// IsDuplicate checks if the operation exists in the Postgres op log
func (pic *PostgresIdempotencyChecker) IsDuplicate(opType string, idempotencyKey string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	query := `
        SELECT 1
        FROM op_log.ops
        WHERE op_type = $1 AND idempotency_key = $2
        LIMIT 1
    `

	var exists int
	err := pic.db.QueryRowContext(ctx, query, opType, idempotencyKey).Scan(&exists)

	if err == sql.ErrNoRows {
		return false, nil // Not found - not a duplicate
	}

	if err != nil {
		return false, err // DB error
	}

	return true, nil // Found - is duplicate
}
