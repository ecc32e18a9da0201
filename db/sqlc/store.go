package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	Querier
	CreateProfileTx(ctx context.Context, arg CreateProfileTxParams) (CreateProfileTxResult, error)
	Shutdown()
}

type SQLStore struct {
	*Queries
	connPool *pgxpool.Pool
}

func NewStore(connPool *pgxpool.Pool) Store {
	return &SQLStore{
		connPool: connPool,
		Queries:  New(connPool),
	}
}

// Shutdown closes the underlying connection pool.
func (s *SQLStore) Shutdown() {
	s.connPool.Close()
}

// execTx runs fn within a single database transaction.
func (s *SQLStore) execTx(ctx context.Context, fn func(q *Queries) error) error {
	tx, err := s.connPool.Begin(ctx)
	if err != nil {
		return err
	}

	q := New(tx)

	if err := fn(q); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("tx error: %v, rollback error: %v", err, rbErr)
		}

		return err
	}

	return tx.Commit(ctx)
}
