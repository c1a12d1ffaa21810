package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is the subset of pgx satisfied by both *pgxpool.Pool and pgx.Tx, so a
// repo can run against the pool or inside a transaction via With.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// Store hands out the repositories and owns transaction bookkeeping.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// RunTx runs fn inside a transaction and commits when it returns nil. The
// default isolation is serializable read-write, which seat allocation
// correctness depends on; callers with lighter needs pass their own opts.
func (s *Store) RunTx(
	ctx context.Context,
	opts *pgx.TxOptions,
	fn func(ctx context.Context, tx DB) error,
) error {
	txOpts := pgx.TxOptions{
		IsoLevel:   pgx.Serializable,
		AccessMode: pgx.ReadWrite,
	}
	if opts != nil {
		txOpts = *opts
	}

	tx, err := s.pool.BeginTx(ctx, txOpts)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

func (s *Store) Catalog() *CatalogRepo  { return &CatalogRepo{pool: s.pool} }
func (s *Store) Admin() *AdminRepo      { return &AdminRepo{pool: s.pool} }
func (s *Store) Orders() *OrderRepo     { return &OrderRepo{pool: s.pool} }
func (s *Store) Bookings() *BookingRepo { return &BookingRepo{pool: s.pool} }
