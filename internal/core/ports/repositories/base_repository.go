package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgx operations implemented by both *pgxpool.Pool
// and pgx.Tx. Repository methods that must be usable inside and outside a
// transaction take it explicitly; there is no ambient transaction state.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TransactionManager defines transaction lifecycle operations.
type TransactionManager interface {
	// Begin starts a transaction with the default isolation level.
	Begin(ctx context.Context) (pgx.Tx, error)

	// BeginSerializable starts a SERIALIZABLE transaction. The movement
	// protocol requires it; serialization aborts surface as
	// apperrors.ErrTxSerialization and are retried by the caller, never here.
	BeginSerializable(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction.
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction. Safe to defer after commit.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
