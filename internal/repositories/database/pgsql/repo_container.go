package pgsql

import (
	portsrepo "github.com/SscSPs/car_rental_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CarRepo:     newPgxCarRepository(dbPool),
		ClientRepo:  newPgxClientRepository(dbPool),
		RentalRepo:  newPgxRentalRepository(dbPool),
		PenaltyRepo: newPgxPenaltyRepository(dbPool),
		TxManager:   newPgxTransactionManager(dbPool),
	}
}
