package domain

import (
	"github.com/shopspring/decimal"
)

// Event names used by dispatchers for logs, metrics and analytics.
const (
	EventRentalCreated   = "rental_created"
	EventRentalCompleted = "rental_completed"
	EventRentalCancelled = "rental_cancelled"
	EventPenaltyAttached = "penalty_attached"
)

// RentalEvent is the value returned by a lifecycle transition. Callers hand it
// to their dispatcher once the transition is persisted.
type RentalEvent interface {
	EventName() string
	EventRental() Rental
}

// RentalCreatedEvent is emitted after a rental is opened and its car marked Rented.
type RentalCreatedEvent struct {
	Rental Rental
}

func (e RentalCreatedEvent) EventName() string  { return EventRentalCreated }
func (e RentalCreatedEvent) EventRental() Rental { return e.Rental }

// RentalCompletedEvent is emitted after a return. CarNowFree is true when the car
// was released back to Available.
type RentalCompletedEvent struct {
	Rental     Rental
	LateFee    decimal.Decimal
	DaysLate   int
	CarNowFree bool
}

func (e RentalCompletedEvent) EventName() string  { return EventRentalCompleted }
func (e RentalCompletedEvent) EventRental() Rental { return e.Rental }

// RentalCancelledEvent is emitted after a cancellation.
type RentalCancelledEvent struct {
	Rental      Rental
	BeforeStart bool
	CarNowFree  bool
}

func (e RentalCancelledEvent) EventName() string  { return EventRentalCancelled }
func (e RentalCancelledEvent) EventRental() Rental { return e.Rental }

// PenaltyAttachedEvent is emitted when a penalty record is stored against a rental.
type PenaltyAttachedEvent struct {
	Rental  Rental
	Penalty Penalty
}

func (e PenaltyAttachedEvent) EventName() string  { return EventPenaltyAttached }
func (e PenaltyAttachedEvent) EventRental() Rental { return e.Rental }
