// Package lifecycle drives a rental through Active -> Completed | Cancelled.
// It computes new rental values and returns them; persisting them and syncing
// the car's status is left to the caller.
package lifecycle

import (
	"fmt"
	"time"

	"github.com/SscSPs/car_rental_backend/internal/core/domain"
	"github.com/SscSPs/car_rental_backend/internal/core/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Policy holds the tunable rates of the lifecycle.
type Policy struct {
	// LateFeeRate is the share of the daily rate charged per late day.
	LateFeeRate decimal.Decimal
	// DepositSurchargeRate is the share of the daily rate added to the
	// deposit per day after the first.
	DepositSurchargeRate decimal.Decimal
}

// DefaultPolicy returns a 50% late fee and a 15% deposit surcharge.
func DefaultPolicy() Policy {
	return Policy{
		LateFeeRate:          decimal.RequireFromString("0.5"),
		DepositSurchargeRate: pricing.DefaultDepositSurchargeRate,
	}
}

// Engine applies lifecycle transitions.
type Engine struct {
	strategy pricing.Strategy
	deposits pricing.DepositCalculator
	policy   Policy
	clock    func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithStrategy overrides the pricing strategy used when opening and cancelling.
func WithStrategy(s pricing.Strategy) Option {
	return func(e *Engine) {
		e.strategy = s
	}
}

// WithPolicy overrides the late-fee and deposit rates.
func WithPolicy(p Policy) Option {
	return func(e *Engine) {
		e.policy = p
	}
}

// WithClock overrides the time source.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		e.clock = clock
	}
}

// NewEngine builds an Engine. Unset pieces default to the production
// Combined strategy, DefaultPolicy and time.Now.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		policy: DefaultPolicy(),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.strategy == nil {
		e.strategy = pricing.NewDefaultStrategy(e.clock)
	}
	e.deposits = pricing.NewDepositCalculator(e.policy.DepositSurchargeRate)
	return e
}

// Now returns the engine's current time.
func (e *Engine) Now() time.Time {
	return e.clock()
}

// Quote is the price and deposit of a prospective rental.
type Quote struct {
	Days    int
	Deposit decimal.Decimal
	Cost    decimal.Decimal
}

// Quote prices a car for [start, end] without any validation.
func (e *Engine) Quote(car domain.Car, start, end time.Time) Quote {
	days := pricing.RentalDays(start, end)
	return Quote{
		Days:    days,
		Deposit: e.deposits.Deposit(car, days),
		Cost:    e.strategy.Price(car, days),
	}
}

// OpenRequest carries everything needed to open a rental.
type OpenRequest struct {
	Client          domain.Client
	Car             domain.Car
	StartDate       time.Time
	ExpectedEndDate time.Time
	// Existing are the rentals already recorded for the car.
	Existing []domain.Rental
	// RequestedBy is recorded in the audit fields.
	RequestedBy string
}

// Open validates req and returns a new Active rental.
//
// Checks run in order: date range, past start, car status, overlap. The
// first failing check decides the error.
func (e *Engine) Open(req OpenRequest) (domain.Rental, error) {
	if req.Car.CarID == "" || req.Client.ClientID == "" {
		return domain.Rental{}, ErrMissingParty
	}
	if !req.StartDate.Before(req.ExpectedEndDate) {
		return domain.Rental{}, ErrInvalidDateRange
	}
	now := e.clock()
	if req.StartDate.Before(now) {
		return domain.Rental{}, ErrPastStartDate
	}
	switch req.Car.Status {
	case domain.CarAvailable:
	case domain.CarMaintenance:
		return domain.Rental{}, fmt.Errorf("%w: car %s", ErrCarInMaintenance, req.Car.CarID)
	default:
		return domain.Rental{}, fmt.Errorf("%w: car %s is %s", ErrCarUnavailable, req.Car.CarID, req.Car.Status)
	}
	if other := FindConflict(req.Existing, req.Car.CarID, req.StartDate, req.ExpectedEndDate); other != nil {
		return domain.Rental{}, &BookingConflictError{
			CarID:               req.Car.CarID,
			Start:               req.StartDate,
			End:                 req.ExpectedEndDate,
			ConflictingRentalID: other.RentalID,
			ConflictingStart:    other.StartDate,
			ConflictingEnd:      other.EffectiveEndDate(),
		}
	}

	quote := e.Quote(req.Car, req.StartDate, req.ExpectedEndDate)
	return domain.Rental{
		RentalID:        uuid.NewString(),
		CarID:           req.Car.CarID,
		ClientID:        req.Client.ClientID,
		StartDate:       req.StartDate,
		ExpectedEndDate: req.ExpectedEndDate,
		DepositAmount:   quote.Deposit,
		TotalCost:       quote.Cost,
		PenaltyAmount:   decimal.Zero,
		Status:          domain.RentalActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     req.RequestedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: req.RequestedBy,
		},
	}, nil
}

// Completion is the outcome of a return.
type Completion struct {
	Rental     domain.Rental
	LateFee    decimal.Decimal
	DaysLate   int
	ActualDays int
	// LatePenalty is the record to store for the late fee, nil when on time.
	LatePenalty *domain.Penalty
}

// Complete returns rental r at actualEnd.
//
// A late return adds dailyRate * daysLate * LateFeeRate to PenaltyAmount,
// which must already hold the sum of attached penalties. An early return
// recomputes the deposit from the days actually used.
func (e *Engine) Complete(r domain.Rental, car domain.Car, actualEnd time.Time, by string) (Completion, error) {
	if r.Status != domain.RentalActive {
		return Completion{}, fmt.Errorf("%w: rental %s is %s", ErrNotActive, r.RentalID, r.Status)
	}
	if actualEnd.Before(r.StartDate) {
		return Completion{}, ErrEndBeforeStart
	}

	out := Completion{
		Rental:     r,
		LateFee:    decimal.Zero,
		ActualDays: pricing.RentalDays(r.StartDate, actualEnd),
	}
	switch {
	case actualEnd.After(r.ExpectedEndDate):
		out.DaysLate = pricing.DaysLate(r.ExpectedEndDate, actualEnd)
		out.LateFee = pricing.RoundMoney(car.DailyRate.
			Mul(decimal.NewFromInt(int64(out.DaysLate))).
			Mul(e.policy.LateFeeRate))
		out.Rental.PenaltyAmount = r.PenaltyAmount.Add(out.LateFee)
		if out.LateFee.IsPositive() {
			p := e.newPenalty(r.RentalID, domain.PenaltyLateReturn, out.LateFee,
				fmt.Sprintf("returned %d day(s) late", out.DaysLate), by)
			out.LatePenalty = &p
		}
	case actualEnd.Before(r.ExpectedEndDate):
		out.Rental.DepositAmount = e.deposits.Deposit(car, out.ActualDays)
	}

	end := actualEnd
	out.Rental.ActualEndDate = &end
	out.Rental.Status = domain.RentalCompleted
	out.Rental.LastUpdatedAt = e.clock()
	out.Rental.LastUpdatedBy = by
	return out, nil
}

// Cancellation is the outcome of a cancel.
type Cancellation struct {
	Rental      domain.Rental
	BeforeStart bool
	UsedDays    int
}

// Cancel cancels rental r at the given date.
//
// Before the start nothing is charged. After it the used days are priced with
// the engine's strategy. Attached penalties are kept either way.
func (e *Engine) Cancel(r domain.Rental, car domain.Car, at time.Time, by string) (Cancellation, error) {
	if r.Status != domain.RentalActive {
		return Cancellation{}, fmt.Errorf("%w: rental %s is %s", ErrNotActive, r.RentalID, r.Status)
	}

	out := Cancellation{Rental: r}
	if !at.After(r.StartDate) {
		out.BeforeStart = true
		out.Rental.TotalCost = decimal.Zero
	} else {
		out.UsedDays = pricing.RentalDays(r.StartDate, at)
		out.Rental.TotalCost = e.strategy.Price(car, out.UsedDays)
	}

	end := at
	out.Rental.ActualEndDate = &end
	out.Rental.Status = domain.RentalCancelled
	out.Rental.LastUpdatedAt = e.clock()
	out.Rental.LastUpdatedBy = by
	return out, nil
}

// AttachPenalty charges amount to rental r and returns the updated rental and
// the record to store. r.PenaltyAmount must hold the sum of the records
// already attached. Cancelled rentals take no further penalties.
func (e *Engine) AttachPenalty(r domain.Rental, amount decimal.Decimal, reason, by string) (domain.Rental, domain.Penalty, error) {
	if r.Status == domain.RentalCancelled {
		return domain.Rental{}, domain.Penalty{}, fmt.Errorf("%w: rental %s", ErrPenaltyOnCancelled, r.RentalID)
	}
	amount = pricing.RoundMoney(amount)
	if !amount.IsPositive() {
		return domain.Rental{}, domain.Penalty{}, ErrNonPositivePenalty
	}

	p := e.newPenalty(r.RentalID, domain.PenaltyManual, amount, reason, by)
	out := r
	out.PenaltyAmount = r.PenaltyAmount.Add(amount)
	out.LastUpdatedAt = p.IssuedAt
	out.LastUpdatedBy = by
	return out, p, nil
}

func (e *Engine) newPenalty(rentalID string, kind domain.PenaltyKind, amount decimal.Decimal, reason, by string) domain.Penalty {
	now := e.clock()
	return domain.Penalty{
		PenaltyID: uuid.NewString(),
		RentalID:  rentalID,
		Kind:      kind,
		Amount:    amount,
		Reason:    reason,
		IssuedAt:  now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     by,
			LastUpdatedAt: now,
			LastUpdatedBy: by,
		},
	}
}
