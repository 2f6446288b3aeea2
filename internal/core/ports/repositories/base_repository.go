package repositories

import "context"

// TransactionManager runs a function inside a single database transaction.
// The transaction travels in the context; repository methods invoked through
// that context execute against it. Commit on nil return, rollback otherwise.
// The reconciliation workflows (RecordSale, UpdateProduction) depend on this
// to make their multi-entity writes atomic.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
