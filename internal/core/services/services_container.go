package services

import (
	"github.com/SscSPs/car_rental_backend/internal/core/lifecycle"
	portsrepo "github.com/SscSPs/car_rental_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/car_rental_backend/internal/core/ports/services"
	"github.com/SscSPs/car_rental_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, dispatcher portssvc.EventDispatcher) *portssvc.ServiceContainer {
	engine := lifecycle.NewEngine(lifecycle.WithPolicy(lifecycle.Policy{
		LateFeeRate:          cfg.LateFeeRate,
		DepositSurchargeRate: cfg.DepositSurchargeRate,
	}))

	return &portssvc.ServiceContainer{
		Rental: NewRentalService(repos,
			WithLifecycleEngine(engine),
			WithEventDispatcher(dispatcher),
		),
		Reporting: NewReportingService(repos.CarRepo, repos.RentalRepo),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.RentalSvcFacade  = (*rentalService)(nil)
	_ portssvc.ReportingService = (*reportingService)(nil)
	_ portssvc.EventDispatcher  = (*loggingDispatcher)(nil)
	_ portssvc.EventDispatcher  = multiDispatcher(nil)
)
