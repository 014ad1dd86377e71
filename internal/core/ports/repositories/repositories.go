package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CarRepo     CarRepositoryFacade
	ClientRepo  ClientReader
	RentalRepo  RentalRepositoryFacade
	PenaltyRepo PenaltyRepositoryFacade
	TxManager   TransactionManager
}
