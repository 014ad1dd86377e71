package lifecycle

import (
	"fmt"
	"time"

	"github.com/SscSPs/car_rental_backend/internal/apperrors"
)

var (
	ErrMissingParty     = fmt.Errorf("%w: rental requires a car and a client", apperrors.ErrValidation)
	ErrInvalidDateRange = fmt.Errorf("%w: start date must be before expected end date", apperrors.ErrValidation)
	ErrPastStartDate    = fmt.Errorf("%w: start date is in the past", apperrors.ErrValidation)
	ErrEndBeforeStart   = fmt.Errorf("%w: end date is before rental start", apperrors.ErrValidation)
	ErrCarUnavailable   = fmt.Errorf("%w: car is not available", apperrors.ErrConflict)
	ErrCarInMaintenance = fmt.Errorf("%w: car is in maintenance", ErrCarUnavailable)
	ErrBookingConflict  = fmt.Errorf("%w: booking overlaps an existing rental", apperrors.ErrConflict)
	ErrNotActive        = fmt.Errorf("%w: rental is not active", apperrors.ErrInvalidStateTransition)

	ErrPenaltyOnCancelled = fmt.Errorf("%w: cancelled rentals take no penalties", apperrors.ErrInvalidStateTransition)
	ErrNonPositivePenalty = fmt.Errorf("%w: penalty amount must be positive", apperrors.ErrValidation)
)

// BookingConflictError names the rental a proposed booking collides with.
type BookingConflictError struct {
	CarID               string
	Start               time.Time
	End                 time.Time
	ConflictingRentalID string
	ConflictingStart    time.Time
	ConflictingEnd      time.Time
}

func (e *BookingConflictError) Error() string {
	return fmt.Sprintf("%s: car %s requested %s to %s, rental %s holds %s to %s",
		ErrBookingConflict.Error(), e.CarID,
		e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339),
		e.ConflictingRentalID,
		e.ConflictingStart.Format(time.RFC3339), e.ConflictingEnd.Format(time.RFC3339))
}

func (e *BookingConflictError) Unwrap() error {
	return ErrBookingConflict
}
