package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides the pool and transaction resolution shared by all
// repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// db returns the transaction bound to the context when one is present,
// otherwise the pool. Every repository query goes through this so workflow
// writes automatically land in the workflow's transaction.
func (r *BaseRepository) db(ctx context.Context) querier {
	if tx, ok := ctx.Value(txCtxKey).(pgx.Tx); ok {
		return tx
	}
	return r.Pool
}
