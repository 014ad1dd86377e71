package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/car_rental_backend/internal/core/domain"
)

// RentalReader defines read operations for rental data
type RentalReader interface {
	// FindRentalByID retrieves a rental by its identifier, with its car and client loaded.
	FindRentalByID(ctx context.Context, rentalID string) (*domain.Rental, error)

	// ListRentalsByCarID retrieves every rental of a car, oldest start first.
	ListRentalsByCarID(ctx context.Context, carID string) ([]domain.Rental, error)

	// ListRentalsByStatus retrieves rentals in the given status.
	ListRentalsByStatus(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error)

	// ListRentalsByDateRange retrieves rentals whose relevant date (start while
	// Active, effective end otherwise) lies in [start, end], with relations loaded.
	ListRentalsByDateRange(ctx context.Context, start, end time.Time) ([]domain.Rental, error)

	// ListRentalsWithRelations retrieves every rental with its car and client, in creation order.
	ListRentalsWithRelations(ctx context.Context) ([]domain.Rental, error)
}

// RentalWriter defines write operations for rental data
type RentalWriter interface {
	// SaveRental persists a new rental.
	SaveRental(ctx context.Context, rental domain.Rental) error

	// UpdateRental applies the non-nil fields of patch to a rental.
	UpdateRental(ctx context.Context, rentalID string, patch domain.RentalPatch) error
}

// RentalRepositoryFacade combines all rental-related repository interfaces
type RentalRepositoryFacade interface {
	RentalReader
	RentalWriter
}
