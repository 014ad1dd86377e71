// Package reconciliation splits the money collected for rentals into revenue
// and the amount owed back to clients. Every report derives its figures from
// here so that they agree with each other.
package reconciliation

import (
	"time"

	"github.com/SscSPs/car_rental_backend/internal/core/domain"
	"github.com/SscSPs/car_rental_backend/internal/core/pricing"
	"github.com/shopspring/decimal"
)

// DepositToReturn is max(0, deposit - penalty).
func DepositToReturn(r domain.Rental) decimal.Decimal {
	return decimal.Max(decimal.Zero, r.DepositAmount.Sub(r.PenaltyAmount))
}

// NetRevenue is the recognised income of one rental.
//
// Active rentals recognise their cost only. Completed rentals recognise cost
// plus penalties minus the deposit still owed. Cancelled rentals do the same,
// floored at zero.
func NetRevenue(r domain.Rental) decimal.Decimal {
	switch r.Status {
	case domain.RentalActive:
		return r.TotalCost
	case domain.RentalCompleted:
		return r.TotalCost.Add(r.PenaltyAmount).Sub(DepositToReturn(r))
	case domain.RentalCancelled:
		return decimal.Max(decimal.Zero, r.TotalCost.Add(r.PenaltyAmount).Sub(DepositToReturn(r)))
	}
	return decimal.Zero
}

// RecognisedPenalty is the penalty counted as collected: PenaltyAmount once
// the rental is Completed or Cancelled, zero while it is Active.
func RecognisedPenalty(r domain.Rental) decimal.Decimal {
	if r.Status.IsTerminal() {
		return r.PenaltyAmount
	}
	return decimal.Zero
}

// TotalReceived is the cash collected from the client for one rental.
func TotalReceived(r domain.Rental) decimal.Decimal {
	return r.DepositAmount.Add(r.TotalCost).Add(RecognisedPenalty(r))
}

// ToReturn is what is still owed back to the client: the full deposit while
// Active, DepositToReturn afterwards.
func ToReturn(r domain.Rental) decimal.Decimal {
	if r.IsActive() {
		return r.DepositAmount
	}
	return DepositToReturn(r)
}

// ForRental bundles the per-rental figures.
func ForRental(r domain.Rental) domain.RentalFigures {
	return domain.RentalFigures{
		DepositToReturn: DepositToReturn(r),
		NetRevenue:      NetRevenue(r),
		TotalReceived:   TotalReceived(r),
	}
}

// RelevantDate is the date a rental is reported under: its start while
// Active, its effective end otherwise.
func RelevantDate(r domain.Rental) time.Time {
	if r.IsActive() {
		return r.StartDate
	}
	return r.EffectiveEndDate()
}

// FilterByWindow keeps the rentals whose relevant date lies in w.
func FilterByWindow(rentals []domain.Rental, w domain.DateWindow) []domain.Rental {
	if w.IsZero() {
		return rentals
	}
	out := make([]domain.Rental, 0, len(rentals))
	for _, r := range rentals {
		if w.Contains(RelevantDate(r)) {
			out = append(out, r)
		}
	}
	return out
}

// TotalRevenue sums per-rental net revenue.
func TotalRevenue(rentals []domain.Rental) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rentals {
		total = total.Add(NetRevenue(r))
	}
	return total
}

// Totals sums every reconciled figure over rentals. Penalties, deposits to
// return and cash received are counted the same way as in AggregateByClient.
func Totals(rentals []domain.Rental) domain.FinancialTotals {
	t := domain.FinancialTotals{
		TotalCost:             decimal.Zero,
		TotalPenalties:        decimal.Zero,
		TotalDeposits:         decimal.Zero,
		TotalDepositsToReturn: decimal.Zero,
		TotalReceived:         decimal.Zero,
		NetRevenue:            decimal.Zero,
	}
	for _, r := range rentals {
		t.RentalCount++
		t.TotalCost = t.TotalCost.Add(r.TotalCost)
		t.TotalPenalties = t.TotalPenalties.Add(RecognisedPenalty(r))
		t.TotalDeposits = t.TotalDeposits.Add(r.DepositAmount)
		t.TotalDepositsToReturn = t.TotalDepositsToReturn.Add(ToReturn(r))
		t.TotalReceived = t.TotalReceived.Add(TotalReceived(r))
		t.NetRevenue = t.NetRevenue.Add(NetRevenue(r))
	}
	return t
}

// OccupancyRate is active/cars as a percentage rounded to cents, 0 without cars.
func OccupancyRate(activeRentals, totalCars int) decimal.Decimal {
	if totalCars <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(activeRentals)).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(int64(totalCars)), 2)
}

// AverageRentalDays is the mean length in started days of Completed rentals,
// 0 if none. A rental returned at its start counts as 0 days.
func AverageRentalDays(rentals []domain.Rental) decimal.Decimal {
	var days, count int64
	for _, r := range rentals {
		if r.Status != domain.RentalCompleted {
			continue
		}
		days += int64(pricing.SpanDays(r.StartDate, r.EffectiveEndDate()))
		count++
	}
	if count == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(days).DivRound(decimal.NewFromInt(count), 2)
}
