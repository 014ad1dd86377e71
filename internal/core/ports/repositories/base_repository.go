package repositories

import (
	"context"
)

// TxRepositories are store handles bound to one database transaction.
type TxRepositories struct {
	Cars      CarRepositoryFacade
	Clients   ClientReader
	Rentals   RentalRepositoryFacade
	Penalties PenaltyRepositoryFacade
}

// TransactionManager runs units of work atomically.
type TransactionManager interface {
	// WithinTransaction runs fn inside a single database transaction. The
	// transaction commits when fn returns nil and rolls back otherwise.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error
}
