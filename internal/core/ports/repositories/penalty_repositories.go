package repositories

import (
	"context"

	"github.com/SscSPs/car_rental_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PenaltyRepositoryFacade defines persistence operations for penalty records
type PenaltyRepositoryFacade interface {
	SavePenalty(ctx context.Context, penalty domain.Penalty) error
	ListPenaltiesByRentalID(ctx context.Context, rentalID string) ([]domain.Penalty, error)
	// SumPenaltiesByRentalID returns zero for a rental without penalties.
	SumPenaltiesByRentalID(ctx context.Context, rentalID string) (decimal.Decimal, error)
}
