package shared

import (
	"context"

	"hotel-booking-api/internal/infra/db"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTxRunner runs a function inside a single transaction with the default
// serialization-failure retry. Usecases depend on the TxRunner port so they
// stay testable with in-memory fakes.
type PgxTxRunner struct {
	pool *pgxpool.Pool
}

func NewPgxTxRunner(pool *pgxpool.Pool) *PgxTxRunner {
	return &PgxTxRunner{pool: pool}
}

func (r *PgxTxRunner) Within(ctx context.Context, fn func(tx db.DBTX) error) error {
	_, err := WithDefaultRetry(ctx, r.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, fn(tx)
	})
	return err
}
