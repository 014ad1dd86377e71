package pgsql

import (
	"context"
	"log/slog"

	portsrepo "github.com/SscSPs/car_rental_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTransactionManager runs units of work in a single pgx transaction.
type PgxTransactionManager struct {
	BaseRepository
}

func newPgxTransactionManager(pool *pgxpool.Pool) *PgxTransactionManager {
	return &PgxTransactionManager{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionManager = (*PgxTransactionManager)(nil)

// WithinTransaction hands fn repositories bound to a new transaction. It
// commits when fn returns nil and rolls back otherwise.
func (m *PgxTransactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := m.Rollback(ctx, tx); rbErr != nil {
			slog.Default().ErrorContext(ctx, "Failed to roll back transaction", slog.String("error", rbErr.Error()))
		}
	}()

	if err := fn(ctx, newTxRepositories(tx)); err != nil {
		return err
	}
	return m.Commit(ctx, tx)
}

func newTxRepositories(db querier) portsrepo.TxRepositories {
	return portsrepo.TxRepositories{
		Cars:      newPgxCarRepository(db),
		Clients:   newPgxClientRepository(db),
		Rentals:   newPgxRentalRepository(db),
		Penalties: newPgxPenaltyRepository(db),
	}
}
