package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/car_rental_backend/internal/core/domain"
	"github.com/SscSPs/car_rental_backend/internal/core/lifecycle"
	portsrepo "github.com/SscSPs/car_rental_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/car_rental_backend/internal/core/ports/services"
	"github.com/SscSPs/car_rental_backend/internal/dto"
)

// rentalService implements the RentalSvcFacade interface
type rentalService struct {
	BaseService
	rentalRepo  portsrepo.RentalReader
	penaltyRepo portsrepo.PenaltyRepositoryFacade
	txManager   portsrepo.TransactionManager
	engine      *lifecycle.Engine
	dispatcher  portssvc.EventDispatcher
}

// RentalServiceOption is a functional option for configuring the rental service
type RentalServiceOption func(*rentalService)

// WithLifecycleEngine sets the engine that prices and validates transitions.
func WithLifecycleEngine(engine *lifecycle.Engine) RentalServiceOption {
	return func(s *rentalService) {
		s.engine = engine
	}
}

// WithEventDispatcher sets where lifecycle events go after commit.
func WithEventDispatcher(dispatcher portssvc.EventDispatcher) RentalServiceOption {
	return func(s *rentalService) {
		if dispatcher != nil {
			s.dispatcher = dispatcher
		}
	}
}

// NewRentalService creates a new rental service with the provided options
func NewRentalService(repos portsrepo.RepositoryProvider, options ...RentalServiceOption) portssvc.RentalSvcFacade {
	svc := &rentalService{
		rentalRepo:  repos.RentalRepo,
		penaltyRepo: repos.PenaltyRepo,
		txManager:   repos.TxManager,
	}

	for _, option := range options {
		option(svc)
	}

	if svc.engine == nil {
		svc.engine = lifecycle.NewEngine()
	}
	if svc.dispatcher == nil {
		svc.dispatcher = NewLoggingDispatcher()
	}
	return svc
}

var _ portssvc.RentalSvcFacade = (*rentalService)(nil)

// GetRentalByID retrieves a rental with its car and client.
func (s *rentalService) GetRentalByID(ctx context.Context, rentalID string) (*domain.Rental, error) {
	rental, err := s.rentalRepo.FindRentalByID(ctx, rentalID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find rental", slog.String("rental_id", rentalID))
		return nil, err
	}
	return rental, nil
}

// ListPenalties retrieves the penalty records of an existing rental.
func (s *rentalService) ListPenalties(ctx context.Context, rentalID string) ([]domain.Penalty, error) {
	if _, err := s.rentalRepo.FindRentalByID(ctx, rentalID); err != nil {
		s.LogError(ctx, err, "Failed to find rental for penalties", slog.String("rental_id", rentalID))
		return nil, err
	}
	penalties, err := s.penaltyRepo.ListPenaltiesByRentalID(ctx, rentalID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list penalties", slog.String("rental_id", rentalID))
		return nil, fmt.Errorf("failed to list penalties: %w", err)
	}
	return penalties, nil
}

// CreateRental opens a rental and marks its car Rented in one transaction.
// The car row stays locked until commit, so two bookings of the same car
// cannot both pass the overlap check.
func (s *rentalService) CreateRental(ctx context.Context, req dto.CreateRentalRequest, userID string) (*domain.RentalCreatedEvent, error) {
	var event domain.RentalCreatedEvent
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		client, err := tx.Clients.FindClientByID(ctx, req.ClientID)
		if err != nil {
			return err
		}
		car, err := tx.Cars.LockCarForUpdate(ctx, req.CarID)
		if err != nil {
			return err
		}
		existing, err := tx.Rentals.ListRentalsByCarID(ctx, car.CarID)
		if err != nil {
			return fmt.Errorf("failed to list rentals of car: %w", err)
		}

		rental, err := s.engine.Open(lifecycle.OpenRequest{
			Client:          *client,
			Car:             *car,
			StartDate:       req.StartDate,
			ExpectedEndDate: req.ExpectedEndDate,
			Existing:        existing,
			RequestedBy:     userID,
		})
		if err != nil {
			return err
		}

		if err := tx.Rentals.SaveRental(ctx, rental); err != nil {
			return fmt.Errorf("failed to save rental: %w", err)
		}
		if err := tx.Cars.UpdateCarStatus(ctx, car.CarID, domain.CarRented); err != nil {
			return fmt.Errorf("failed to mark car rented: %w", err)
		}

		car.Status = domain.CarRented
		rental.Car = car
		rental.Client = client
		event = domain.RentalCreatedEvent{Rental: rental}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create rental",
			slog.String("car_id", req.CarID),
			slog.String("client_id", req.ClientID),
			slog.String("user_id", userID))
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, event)
	return &event, nil
}

// CompleteRental records the return of the car. A late fee is stored as a
// penalty record; the car goes back to Available unless another active rental
// still holds it.
func (s *rentalService) CompleteRental(ctx context.Context, rentalID string, req dto.CompleteRentalRequest, userID string) (*domain.RentalCompletedEvent, error) {
	actualEnd := s.engine.Now()
	if req.ActualEndDate != nil {
		actualEnd = *req.ActualEndDate
	}

	var event domain.RentalCompletedEvent
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		rental, car, err := s.lockRental(ctx, tx, rentalID)
		if err != nil {
			return err
		}
		input, err := s.withPenaltySum(ctx, tx, *rental)
		if err != nil {
			return err
		}

		out, err := s.engine.Complete(input, *car, actualEnd, userID)
		if err != nil {
			return err
		}
		if out.LatePenalty != nil {
			if err := tx.Penalties.SavePenalty(ctx, *out.LatePenalty); err != nil {
				return fmt.Errorf("failed to save late fee: %w", err)
			}
		}
		if err := tx.Rentals.UpdateRental(ctx, rentalID, domain.Diff(*rental, out.Rental)); err != nil {
			return fmt.Errorf("failed to update rental: %w", err)
		}

		free, err := s.releaseCar(ctx, tx, car, rentalID)
		if err != nil {
			return err
		}

		out.Rental.Car = car
		out.Rental.Client = rental.Client
		event = domain.RentalCompletedEvent{
			Rental:     out.Rental,
			LateFee:    out.LateFee,
			DaysLate:   out.DaysLate,
			CarNowFree: free,
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to complete rental",
			slog.String("rental_id", rentalID),
			slog.String("user_id", userID))
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, event)
	return &event, nil
}

// CancelRental cancels an active rental, charging the days already used.
func (s *rentalService) CancelRental(ctx context.Context, rentalID string, req dto.CancelRentalRequest, userID string) (*domain.RentalCancelledEvent, error) {
	at := s.engine.Now()
	if req.CancellationDate != nil {
		at = *req.CancellationDate
	}

	var event domain.RentalCancelledEvent
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		rental, car, err := s.lockRental(ctx, tx, rentalID)
		if err != nil {
			return err
		}
		input, err := s.withPenaltySum(ctx, tx, *rental)
		if err != nil {
			return err
		}

		out, err := s.engine.Cancel(input, *car, at, userID)
		if err != nil {
			return err
		}
		if err := tx.Rentals.UpdateRental(ctx, rentalID, domain.Diff(*rental, out.Rental)); err != nil {
			return fmt.Errorf("failed to update rental: %w", err)
		}

		free, err := s.releaseCar(ctx, tx, car, rentalID)
		if err != nil {
			return err
		}

		out.Rental.Car = car
		out.Rental.Client = rental.Client
		event = domain.RentalCancelledEvent{
			Rental:      out.Rental,
			BeforeStart: out.BeforeStart,
			CarNowFree:  free,
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to cancel rental",
			slog.String("rental_id", rentalID),
			slog.String("user_id", userID))
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, event)
	return &event, nil
}

// AddPenalty stores a manual penalty record and refreshes the rental's
// penalty amount from its records.
func (s *rentalService) AddPenalty(ctx context.Context, rentalID string, req dto.AddPenaltyRequest, userID string) (*domain.PenaltyAttachedEvent, error) {
	var event domain.PenaltyAttachedEvent
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		rental, _, err := s.lockRental(ctx, tx, rentalID)
		if err != nil {
			return err
		}
		input, err := s.withPenaltySum(ctx, tx, *rental)
		if err != nil {
			return err
		}

		updated, penalty, err := s.engine.AttachPenalty(input, req.Amount, req.Reason, userID)
		if err != nil {
			return err
		}
		if err := tx.Penalties.SavePenalty(ctx, penalty); err != nil {
			return fmt.Errorf("failed to save penalty: %w", err)
		}
		if err := tx.Rentals.UpdateRental(ctx, rentalID, domain.Diff(*rental, updated)); err != nil {
			return fmt.Errorf("failed to update rental: %w", err)
		}

		event = domain.PenaltyAttachedEvent{Rental: updated, Penalty: penalty}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add penalty",
			slog.String("rental_id", rentalID),
			slog.String("user_id", userID))
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, event)
	return &event, nil
}

// lockRental locks the car of a rental and re-reads the rental under that
// lock, so the returned status cannot change until the transaction ends.
func (s *rentalService) lockRental(ctx context.Context, tx portsrepo.TxRepositories, rentalID string) (*domain.Rental, *domain.Car, error) {
	rental, err := tx.Rentals.FindRentalByID(ctx, rentalID)
	if err != nil {
		return nil, nil, err
	}
	car, err := tx.Cars.LockCarForUpdate(ctx, rental.CarID)
	if err != nil {
		return nil, nil, err
	}
	rental, err = tx.Rentals.FindRentalByID(ctx, rentalID)
	if err != nil {
		return nil, nil, err
	}
	return rental, car, nil
}

// withPenaltySum returns r with PenaltyAmount taken from its penalty records.
func (s *rentalService) withPenaltySum(ctx context.Context, tx portsrepo.TxRepositories, r domain.Rental) (domain.Rental, error) {
	sum, err := tx.Penalties.SumPenaltiesByRentalID(ctx, r.RentalID)
	if err != nil {
		return domain.Rental{}, fmt.Errorf("failed to sum penalties: %w", err)
	}
	if !sum.Equal(r.PenaltyAmount) {
		s.LogDebug(ctx, "Rental penalty amount differs from its records",
			slog.String("rental_id", r.RentalID),
			slog.String("stored", r.PenaltyAmount.String()),
			slog.String("records", sum.String()))
	}
	r.PenaltyAmount = sum
	return r, nil
}

// releaseCar sets a Rented car back to Available once no other active rental
// holds it. Cars in maintenance keep their status.
func (s *rentalService) releaseCar(ctx context.Context, tx portsrepo.TxRepositories, car *domain.Car, rentalID string) (bool, error) {
	carRentals, err := tx.Rentals.ListRentalsByCarID(ctx, car.CarID)
	if err != nil {
		return false, fmt.Errorf("failed to list rentals of car: %w", err)
	}
	if !lifecycle.ReleasesCar(rentalID, carRentals) {
		return false, nil
	}
	if car.Status == domain.CarRented {
		if err := tx.Cars.UpdateCarStatus(ctx, car.CarID, domain.CarAvailable); err != nil {
			return false, fmt.Errorf("failed to release car: %w", err)
		}
		car.Status = domain.CarAvailable
	}
	return true, nil
}
