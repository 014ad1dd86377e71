package services

import (
	"context"

	"github.com/SscSPs/car_rental_backend/internal/core/domain"
	"github.com/SscSPs/car_rental_backend/internal/dto"
)

// RentalReaderSvc defines read operations for rentals
type RentalReaderSvc interface {
	// GetRentalByID retrieves a rental with its car and client.
	GetRentalByID(ctx context.Context, rentalID string) (*domain.Rental, error)

	// ListPenalties retrieves the penalty records of a rental.
	ListPenalties(ctx context.Context, rentalID string) ([]domain.Penalty, error)
}

// RentalLifecycleSvc defines the state transitions of a rental. Each returns
// the event describing what happened.
type RentalLifecycleSvc interface {
	// CreateRental opens a rental and marks its car Rented.
	CreateRental(ctx context.Context, req dto.CreateRentalRequest, userID string) (*domain.RentalCreatedEvent, error)

	// CompleteRental records the return of the car.
	CompleteRental(ctx context.Context, rentalID string, req dto.CompleteRentalRequest, userID string) (*domain.RentalCompletedEvent, error)

	// CancelRental cancels an active rental.
	CancelRental(ctx context.Context, rentalID string, req dto.CancelRentalRequest, userID string) (*domain.RentalCancelledEvent, error)

	// AddPenalty attaches a manual penalty to a rental.
	AddPenalty(ctx context.Context, rentalID string, req dto.AddPenaltyRequest, userID string) (*domain.PenaltyAttachedEvent, error)
}

// RentalSvcFacade combines all rental service interfaces
type RentalSvcFacade interface {
	RentalReaderSvc
	RentalLifecycleSvc
}

// EventDispatcher receives lifecycle events after they are persisted.
// Implementations must not fail the transition; they log their own errors.
type EventDispatcher interface {
	Dispatch(ctx context.Context, event domain.RentalEvent)
}
