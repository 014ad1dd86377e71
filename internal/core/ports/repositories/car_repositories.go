package repositories

import (
	"context"

	"github.com/SscSPs/car_rental_backend/internal/core/domain"
)

// CarReader defines read operations for car data
type CarReader interface {
	// FindCarByID retrieves a car by its identifier. Returns apperrors.ErrNotFound when missing.
	FindCarByID(ctx context.Context, carID string) (*domain.Car, error)

	// ListCars retrieves every car in the fleet.
	ListCars(ctx context.Context) ([]domain.Car, error)

	// ListCarsByStatus retrieves cars with the given status.
	ListCarsByStatus(ctx context.Context, status domain.CarStatus) ([]domain.Car, error)
}

// CarWriter defines write operations for car data
type CarWriter interface {
	// LockCarForUpdate reads a car and holds a row lock on it until the
	// surrounding transaction ends. Booking checks for one car serialize on it.
	LockCarForUpdate(ctx context.Context, carID string) (*domain.Car, error)

	// UpdateCarStatus sets the status of a car.
	UpdateCarStatus(ctx context.Context, carID string, status domain.CarStatus) error
}

// CarRepositoryFacade combines all car-related repository interfaces
type CarRepositoryFacade interface {
	CarReader
	CarWriter
}
