package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Tx is the subset of pgx.Tx used by the write repositories.
type Tx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TxBeginner opens transactions. Implementations must be safe for concurrent use.
type TxBeginner interface {
	Begin(ctx context.Context) (Tx, error)
}

type poolBeginner struct {
	pool *pgxpool.Pool
}

// NewTxBeginner returns a TxBeginner backed by the pgx pool.
func NewTxBeginner(pool *pgxpool.Pool) TxBeginner {
	return &poolBeginner{pool: pool}
}

func (b *poolBeginner) Begin(ctx context.Context) (Tx, error) {
	tx, err := b.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return tx, nil
}
