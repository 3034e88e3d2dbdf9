package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager scopes a ledger write. Posting a movement and opening an account
// each run between one Begin and one Commit, so the account lock, the tail read and
// the appended movement are seen together or not at all.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback discards tx. It is deferred after Begin, so rolling back a committed
	// transaction must succeed quietly.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
