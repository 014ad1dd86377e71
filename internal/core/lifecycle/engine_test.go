package lifecycle_test

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/car_rental_backend/internal/apperrors"
	"github.com/SscSPs/car_rental_backend/internal/core/domain"
	"github.com/SscSPs/car_rental_backend/internal/core/lifecycle"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

func newTestEngine() *lifecycle.Engine {
	return lifecycle.NewEngine(lifecycle.WithClock(func() time.Time { return testNow }))
}

func testCar() domain.Car {
	return domain.Car{
		CarID:       "car-1",
		Make:        "Skoda",
		Model:       "Octavia",
		Year:        2022,
		DailyRate:   decimal.NewFromInt(1000),
		BaseDeposit: decimal.NewFromInt(5000),
		Status:      domain.CarAvailable,
	}
}

func testClient() domain.Client {
	return domain.Client{ClientID: "client-1", FirstName: "Ana", LastName: "Petrova"}
}

func day(n int) time.Duration { return time.Duration(n) * 24 * time.Hour }

func openFourDayRental(t *testing.T, e *lifecycle.Engine) domain.Rental {
	t.Helper()
	start := testNow.Add(day(1))
	r, err := e.Open(lifecycle.OpenRequest{
		Client:          testClient(),
		Car:             testCar(),
		StartDate:       start,
		ExpectedEndDate: start.Add(day(4)),
	})
	require.NoError(t, err)
	return r
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func TestEngine_Open(t *testing.T) {
	e := newTestEngine()
	r := openFourDayRental(t, e)

	assert.NotEmpty(t, r.RentalID)
	assert.Equal(t, domain.RentalActive, r.Status)
	assert.Nil(t, r.ActualEndDate)
	assertMoney(t, "5450", r.DepositAmount)
	assertMoney(t, "4000", r.TotalCost)
	assertMoney(t, "0", r.PenaltyAmount)
	assert.Equal(t, testNow, r.CreatedAt)
}

func TestEngine_Quote_MatchesOpen(t *testing.T) {
	e := newTestEngine()
	start := testNow.Add(day(1))
	q := e.Quote(testCar(), start, start.Add(day(4)))
	r := openFourDayRental(t, e)

	assert.Equal(t, 4, q.Days)
	assertMoney(t, r.TotalCost.String(), q.Cost)
	assertMoney(t, r.DepositAmount.String(), q.Deposit)
}

func TestEngine_Open_Rejections(t *testing.T) {
	e := newTestEngine()
	start := testNow.Add(day(1))

	maintenance := testCar()
	maintenance.Status = domain.CarMaintenance
	rented := testCar()
	rented.Status = domain.CarRented

	existing := []domain.Rental{{
		RentalID:        "other",
		CarID:           "car-1",
		StartDate:       start.Add(day(2)),
		ExpectedEndDate: start.Add(day(6)),
		Status:          domain.RentalActive,
	}}

	tests := []struct {
		name     string
		car      domain.Car
		start    time.Time
		end      time.Time
		existing []domain.Rental
		wantErr  error
		kind     error
	}{
		{"start equals end", testCar(), start, start, nil, lifecycle.ErrInvalidDateRange, apperrors.ErrValidation},
		{"start after end", testCar(), start, start.Add(-time.Hour), nil, lifecycle.ErrInvalidDateRange, apperrors.ErrValidation},
		{"start in the past", testCar(), testNow.Add(-time.Hour), start, nil, lifecycle.ErrPastStartDate, apperrors.ErrValidation},
		{"past start is reported before maintenance", maintenance, testNow.Add(-time.Hour), start, nil, lifecycle.ErrPastStartDate, apperrors.ErrValidation},
		{"car in maintenance", maintenance, start, start.Add(day(2)), nil, lifecycle.ErrCarInMaintenance, apperrors.ErrConflict},
		{"car already rented", rented, start, start.Add(day(2)), nil, lifecycle.ErrCarUnavailable, apperrors.ErrConflict},
		{"overlapping booking", testCar(), start, start.Add(day(3)), existing, lifecycle.ErrBookingConflict, apperrors.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Open(lifecycle.OpenRequest{
				Client:          testClient(),
				Car:             tt.car,
				StartDate:       tt.start,
				ExpectedEndDate: tt.end,
				Existing:        tt.existing,
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestEngine_Open_MaintenanceIsUnavailable(t *testing.T) {
	car := testCar()
	car.Status = domain.CarMaintenance
	start := testNow.Add(day(1))
	_, err := newTestEngine().Open(lifecycle.OpenRequest{Client: testClient(), Car: car, StartDate: start, ExpectedEndDate: start.Add(day(1))})
	assert.ErrorIs(t, err, lifecycle.ErrCarUnavailable)
}

func TestEngine_Open_ConflictCarriesInterval(t *testing.T) {
	start := testNow.Add(day(1))
	existing := []domain.Rental{{
		RentalID:        "held",
		CarID:           "car-1",
		StartDate:       start,
		ExpectedEndDate: start.Add(day(3)),
		Status:          domain.RentalActive,
	}}

	_, err := newTestEngine().Open(lifecycle.OpenRequest{
		Client:          testClient(),
		Car:             testCar(),
		StartDate:       start.Add(day(1)),
		ExpectedEndDate: start.Add(day(5)),
		Existing:        existing,
	})

	var conflict *lifecycle.BookingConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "held", conflict.ConflictingRentalID)
	assert.Equal(t, start, conflict.ConflictingStart)
	assert.Equal(t, start.Add(day(3)), conflict.ConflictingEnd)
	assert.Contains(t, err.Error(), "held")
}

func TestEngine_Open_AdjacentAndElapsedBookingsAllowed(t *testing.T) {
	start := testNow.Add(day(3))
	ended := testNow.Add(-day(2))
	existing := []domain.Rental{
		{RentalID: "adjacent", CarID: "car-1", StartDate: testNow.Add(day(1)), ExpectedEndDate: start, Status: domain.RentalActive},
		{RentalID: "finished", CarID: "car-1", StartDate: testNow.Add(-day(5)), ExpectedEndDate: testNow.Add(day(10)), ActualEndDate: &ended, Status: domain.RentalCompleted},
	}

	_, err := newTestEngine().Open(lifecycle.OpenRequest{
		Client:          testClient(),
		Car:             testCar(),
		StartDate:       start,
		ExpectedEndDate: start.Add(day(2)),
		Existing:        existing,
	})
	assert.NoError(t, err)
}

func TestEngine_Complete_Late(t *testing.T) {
	e := newTestEngine()
	r := openFourDayRental(t, e)

	out, err := e.Complete(r, testCar(), r.ExpectedEndDate.Add(day(2)), "clerk")
	require.NoError(t, err)

	assert.Equal(t, 2, out.DaysLate)
	assertMoney(t, "1000", out.LateFee)
	assertMoney(t, "1000", out.Rental.PenaltyAmount)
	assertMoney(t, "5450", out.Rental.DepositAmount)
	assert.Equal(t, domain.RentalCompleted, out.Rental.Status)
	require.NotNil(t, out.Rental.ActualEndDate)
	assert.Equal(t, r.ExpectedEndDate.Add(day(2)), *out.Rental.ActualEndDate)
	assert.Equal(t, "clerk", out.Rental.LastUpdatedBy)

	require.NotNil(t, out.LatePenalty)
	assert.Equal(t, domain.PenaltyLateReturn, out.LatePenalty.Kind)
	assert.Equal(t, r.RentalID, out.LatePenalty.RentalID)
	assertMoney(t, "1000", out.LatePenalty.Amount)
}

func TestEngine_Complete_LateAddsToAttachedPenalties(t *testing.T) {
	e := newTestEngine()
	r := openFourDayRental(t, e)
	r.PenaltyAmount = decimal.NewFromInt(300)

	out, err := e.Complete(r, testCar(), r.ExpectedEndDate.Add(time.Hour), "clerk")
	require.NoError(t, err)

	assertMoney(t, "500", out.LateFee)
	assertMoney(t, "800", out.Rental.PenaltyAmount)
}

func TestEngine_Complete_EarlyRecomputesDeposit(t *testing.T) {
	e := newTestEngine()
	r := openFourDayRental(t, e)

	out, err := e.Complete(r, testCar(), r.StartDate.Add(day(2)), "clerk")
	require.NoError(t, err)

	assert.Equal(t, 2, out.ActualDays)
	assertMoney(t, "5150", out.Rental.DepositAmount)
	assert.True(t, out.Rental.DepositAmount.LessThan(r.DepositAmount))
	assertMoney(t, "0", out.Rental.PenaltyAmount)
	assertMoney(t, "4000", out.Rental.TotalCost)
}

func TestEngine_Complete_OnTimeKeepsValues(t *testing.T) {
	e := newTestEngine()
	r := openFourDayRental(t, e)

	out, err := e.Complete(r, testCar(), r.ExpectedEndDate, "clerk")
	require.NoError(t, err)

	assert.Equal(t, 0, out.DaysLate)
	assertMoney(t, "5450", out.Rental.DepositAmount)
	assertMoney(t, "0", out.Rental.PenaltyAmount)
}

func TestEngine_Complete_Rejections(t *testing.T) {
	e := newTestEngine()
	r := openFourDayRental(t, e)

	_, err := e.Complete(r, testCar(), r.StartDate.Add(-time.Minute), "clerk")
	assert.ErrorIs(t, err, lifecycle.ErrEndBeforeStart)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	done, err := e.Complete(r, testCar(), r.ExpectedEndDate, "clerk")
	require.NoError(t, err)

	_, err = e.Complete(done.Rental, testCar(), r.ExpectedEndDate, "clerk")
	assert.ErrorIs(t, err, lifecycle.ErrNotActive)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStateTransition)

	_, err = e.Cancel(done.Rental, testCar(), r.ExpectedEndDate, "clerk")
	assert.ErrorIs(t, err, lifecycle.ErrNotActive)
}

func TestEngine_Cancel_BeforeStart(t *testing.T) {
	e := newTestEngine()
	r := openFourDayRental(t, e)
	r.PenaltyAmount = decimal.NewFromInt(200)

	out, err := e.Cancel(r, testCar(), testNow, "clerk")
	require.NoError(t, err)

	assert.True(t, out.BeforeStart)
	assertMoney(t, "0", out.Rental.TotalCost)
	assertMoney(t, "200", out.Rental.PenaltyAmount)
	assertMoney(t, "5450", out.Rental.DepositAmount)
	assert.Equal(t, domain.RentalCancelled, out.Rental.Status)
	require.NotNil(t, out.Rental.ActualEndDate)
	assert.Equal(t, testNow, *out.Rental.ActualEndDate)
}

func TestEngine_Cancel_AfterStartChargesUsedDays(t *testing.T) {
	e := newTestEngine()
	r := openFourDayRental(t, e)

	out, err := e.Cancel(r, testCar(), r.StartDate.Add(day(2)), "clerk")
	require.NoError(t, err)

	assert.False(t, out.BeforeStart)
	assert.Equal(t, 2, out.UsedDays)
	assertMoney(t, "2000", out.Rental.TotalCost)
	assert.True(t, out.Rental.TotalCost.IsPositive())
	assert.True(t, out.Rental.TotalCost.LessThan(r.TotalCost))
}

func TestEngine_WithPolicy(t *testing.T) {
	e := lifecycle.NewEngine(
		lifecycle.WithClock(func() time.Time { return testNow }),
		lifecycle.WithPolicy(lifecycle.Policy{
			LateFeeRate:          decimal.NewFromInt(1),
			DepositSurchargeRate: decimal.RequireFromString("0.10"),
		}),
	)
	r := openFourDayRental(t, e)
	assertMoney(t, "5300", r.DepositAmount)

	out, err := e.Complete(r, testCar(), r.ExpectedEndDate.Add(day(1)), "clerk")
	require.NoError(t, err)
	assertMoney(t, "1000", out.LateFee)
}

func TestEngine_WithPolicy_ZeroRatesAreKept(t *testing.T) {
	e := lifecycle.NewEngine(
		lifecycle.WithClock(func() time.Time { return testNow }),
		lifecycle.WithPolicy(lifecycle.Policy{LateFeeRate: decimal.Zero, DepositSurchargeRate: decimal.Zero}),
	)
	r := openFourDayRental(t, e)
	assertMoney(t, "5000", r.DepositAmount)

	out, err := e.Complete(r, testCar(), r.ExpectedEndDate.Add(day(2)), "clerk")
	require.NoError(t, err)
	assert.Equal(t, 2, out.DaysLate)
	assertMoney(t, "0", out.LateFee)
	assert.Nil(t, out.LatePenalty)
}

func TestEngine_AttachPenalty(t *testing.T) {
	e := newTestEngine()
	r := openFourDayRental(t, e)
	r.PenaltyAmount = decimal.NewFromInt(200)

	out, p, err := e.AttachPenalty(r, decimal.RequireFromString("150.456"), "scratched bumper", "clerk")
	require.NoError(t, err)

	assertMoney(t, "150.46", p.Amount)
	assert.Equal(t, domain.PenaltyManual, p.Kind)
	assert.Equal(t, "scratched bumper", p.Reason)
	assert.Equal(t, testNow, p.IssuedAt)
	assertMoney(t, "350.46", out.PenaltyAmount)
	assert.Equal(t, domain.RentalActive, out.Status)

	completed, err := e.Complete(out, testCar(), out.ExpectedEndDate, "clerk")
	require.NoError(t, err)
	_, _, err = e.AttachPenalty(completed.Rental, decimal.NewFromInt(10), "dirty interior", "clerk")
	assert.NoError(t, err)
}

func TestEngine_AttachPenalty_Rejections(t *testing.T) {
	e := newTestEngine()
	r := openFourDayRental(t, e)

	_, _, err := e.AttachPenalty(r, decimal.Zero, "nothing", "clerk")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, _, err = e.AttachPenalty(r, decimal.RequireFromString("0.001"), "rounds to zero", "clerk")
	assert.ErrorIs(t, err, lifecycle.ErrNonPositivePenalty)

	cancelled, err := e.Cancel(r, testCar(), testNow, "clerk")
	require.NoError(t, err)
	_, _, err = e.AttachPenalty(cancelled.Rental, decimal.NewFromInt(10), "late", "clerk")
	assert.ErrorIs(t, err, apperrors.ErrInvalidStateTransition)
	assert.ErrorIs(t, err, lifecycle.ErrPenaltyOnCancelled)
}
