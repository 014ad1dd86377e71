package reconciliation_test

import (
	"testing"
	"time"

	"github.com/SscSPs/car_rental_backend/internal/core/domain"
	"github.com/SscSPs/car_rental_backend/internal/core/reconciliation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jan10 = time.Date(2026, time.January, 10, 10, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func timePtr(t time.Time) *time.Time { return &t }

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

type rentalOpt func(*domain.Rental)

func rental(id string, status domain.RentalStatus, cost, penalty, deposit string, opts ...rentalOpt) domain.Rental {
	r := domain.Rental{
		RentalID:        id,
		CarID:           "car-1",
		ClientID:        "client-1",
		StartDate:       jan10,
		ExpectedEndDate: jan10.AddDate(0, 0, 4),
		Status:          status,
		TotalCost:       dec(cost),
		PenaltyAmount:   dec(penalty),
		DepositAmount:   dec(deposit),
	}
	if status != domain.RentalActive {
		r.ActualEndDate = timePtr(r.ExpectedEndDate)
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func onCar(id string) rentalOpt { return func(r *domain.Rental) { r.CarID = id } }
func forClient(id string) rentalOpt { return func(r *domain.Rental) { r.ClientID = id } }
func endedAt(t time.Time) rentalOpt { return func(r *domain.Rental) { r.ActualEndDate = timePtr(t) } }
func startingAt(t time.Time) rentalOpt {
	return func(r *domain.Rental) {
		r.StartDate = t
		r.ExpectedEndDate = t.AddDate(0, 0, 4)
	}
}

func TestPerRentalFigures(t *testing.T) {
	tests := []struct {
		name            string
		rental          domain.Rental
		depositToReturn string
		netRevenue      string
		totalReceived   string
	}{
		{"completed with small penalty", rental("c", domain.RentalCompleted, "4000", "500", "5000"), "4500", "0", "9500"},
		{"active", rental("a", domain.RentalActive, "4000", "0", "5000"), "5000", "4000", "9000"},
		{"active ignores attached penalty in received", rental("a2", domain.RentalActive, "4000", "300", "5000"), "4700", "4000", "9000"},
		{"cancelled with penalty above deposit", rental("x", domain.RentalCancelled, "2000", "6000", "5000"), "0", "8000", "13000"},
		{"cancelled before start is clamped", rental("x2", domain.RentalCancelled, "0", "0", "5000"), "5000", "0", "5000"},
		{"completed is not clamped", rental("c2", domain.RentalCompleted, "1000", "0", "5000"), "5000", "-4000", "6000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := reconciliation.ForRental(tt.rental)
			assertMoney(t, tt.depositToReturn, f.DepositToReturn)
			assertMoney(t, tt.netRevenue, f.NetRevenue)
			assertMoney(t, tt.totalReceived, f.TotalReceived)
		})
	}
}

func TestRelevantDateAndWindow(t *testing.T) {
	active := rental("a", domain.RentalActive, "100", "0", "100", startingAt(jan10.AddDate(0, 1, 0)))
	completed := rental("c", domain.RentalCompleted, "100", "0", "100", endedAt(jan10.AddDate(0, 0, 2)))
	cancelled := rental("x", domain.RentalCancelled, "100", "0", "100")
	cancelled.ActualEndDate = nil

	assert.Equal(t, active.StartDate, reconciliation.RelevantDate(active))
	assert.Equal(t, jan10.AddDate(0, 0, 2), reconciliation.RelevantDate(completed))
	assert.Equal(t, cancelled.ExpectedEndDate, reconciliation.RelevantDate(cancelled))

	from := jan10
	to := jan10.AddDate(0, 0, 3)
	got := reconciliation.FilterByWindow([]domain.Rental{active, completed, cancelled}, domain.DateWindow{Start: &from, End: &to})
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].RentalID)

	all := reconciliation.FilterByWindow([]domain.Rental{active, completed, cancelled}, domain.DateWindow{})
	assert.Len(t, all, 3)

	openEnded := reconciliation.FilterByWindow([]domain.Rental{active, completed, cancelled}, domain.DateWindow{Start: &to})
	assert.Len(t, openEnded, 2)
}

func TestTotalRevenueAndTotals(t *testing.T) {
	rentals := []domain.Rental{
		rental("c", domain.RentalCompleted, "4000", "500", "5000"),
		rental("a", domain.RentalActive, "4000", "0", "5000"),
		rental("x", domain.RentalCancelled, "2000", "6000", "5000"),
	}

	assertMoney(t, "12000", reconciliation.TotalRevenue(rentals))

	totals := reconciliation.Totals(rentals)
	assert.Equal(t, 3, totals.RentalCount)
	assertMoney(t, "10000", totals.TotalCost)
	assertMoney(t, "6500", totals.TotalPenalties)
	assertMoney(t, "15000", totals.TotalDeposits)
	assertMoney(t, "9500", totals.TotalDepositsToReturn)
	assertMoney(t, "31500", totals.TotalReceived)
	assertMoney(t, "12000", totals.NetRevenue)

	byStatus := reconciliation.ByStatus(rentals)
	require.Len(t, byStatus, 3)
	assertMoney(t, "8000", byStatus[domain.RentalCancelled].NetRevenue)
	assert.Equal(t, 1, byStatus[domain.RentalActive].RentalCount)
}

func TestTotals_AgreeWithClientAggregation(t *testing.T) {
	rentals := []domain.Rental{
		rental("a", domain.RentalActive, "4000", "500", "5000", forClient("alice")),
		rental("c", domain.RentalCompleted, "4000", "500", "5000", forClient("alice")),
		rental("x", domain.RentalCancelled, "2000", "6000", "5000", forClient("bob")),
		rental("x2", domain.RentalCancelled, "0", "0", "5000", forClient("bob")),
	}

	totals := reconciliation.Totals(rentals)
	assertMoney(t, "6500", totals.TotalPenalties)
	assertMoney(t, "14500", totals.TotalDepositsToReturn)
	assertMoney(t, "36500", totals.TotalReceived)

	penalties, toReturn, received, deposits, cost := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	count := 0
	for _, c := range reconciliation.AggregateByClient(rentals) {
		penalties = penalties.Add(c.TotalPenalties)
		toReturn = toReturn.Add(c.TotalToReturn)
		received = received.Add(c.TotalReceived)
		deposits = deposits.Add(c.TotalDeposits)
		cost = cost.Add(c.TotalCost)
		count += c.RentalCount
	}
	assert.Equal(t, totals.RentalCount, count)
	assertMoney(t, totals.TotalPenalties.String(), penalties)
	assertMoney(t, totals.TotalDepositsToReturn.String(), toReturn)
	assertMoney(t, totals.TotalReceived.String(), received)
	assertMoney(t, totals.TotalDeposits.String(), deposits)
	assertMoney(t, totals.TotalCost.String(), cost)
}

func TestOccupancyRate(t *testing.T) {
	assertMoney(t, "0", reconciliation.OccupancyRate(0, 0))
	assertMoney(t, "0", reconciliation.OccupancyRate(3, 0))
	assertMoney(t, "66.67", reconciliation.OccupancyRate(2, 3))
	assertMoney(t, "100", reconciliation.OccupancyRate(3, 3))
}

func TestAverageRentalDays(t *testing.T) {
	assertMoney(t, "0", reconciliation.AverageRentalDays(nil))

	rentals := []domain.Rental{
		rental("c1", domain.RentalCompleted, "0", "0", "0"),
		rental("c2", domain.RentalCompleted, "0", "0", "0", endedAt(jan10.AddDate(0, 0, 2))),
		rental("x", domain.RentalCancelled, "0", "0", "0", endedAt(jan10.AddDate(0, 0, 20))),
		rental("a", domain.RentalActive, "0", "0", "0"),
	}
	assertMoney(t, "3", reconciliation.AverageRentalDays(rentals))

	returnedAtStart := rental("c0", domain.RentalCompleted, "0", "0", "0", endedAt(jan10))
	assertMoney(t, "2", reconciliation.AverageRentalDays([]domain.Rental{rentals[0], returnedAtStart}))
}

func TestTopClients_AggregateThenSubtract(t *testing.T) {
	rentals := []domain.Rental{
		rental("r1", domain.RentalCancelled, "1000", "0", "5000", forClient("alice")),
		rental("r2", domain.RentalActive, "3000", "0", "5000", forClient("bob")),
		rental("r3", domain.RentalCompleted, "4000", "500", "5000", forClient("bob")),
	}

	clients := reconciliation.AggregateByClient(rentals)
	require.Len(t, clients, 2)

	alice := clients[0]
	assert.Equal(t, "alice", alice.ClientID)
	assertMoney(t, "6000", alice.TotalReceived)
	assertMoney(t, "5000", alice.TotalToReturn)
	assertMoney(t, "1000", alice.NetRevenue)
	// The clamped per-rental figure for the same rental is zero.
	assertMoney(t, "0", reconciliation.NetRevenue(rentals[0]))

	bob := clients[1]
	assert.Equal(t, 2, bob.RentalCount)
	assertMoney(t, "17500", bob.TotalReceived)
	assertMoney(t, "7000", bob.TotalCost)
	assertMoney(t, "500", bob.TotalPenalties)
	assertMoney(t, "10000", bob.TotalDeposits)
	assertMoney(t, "9500", bob.TotalToReturn)
	assertMoney(t, "8000", bob.NetRevenue)

	top := reconciliation.TopClients(rentals, 1)
	require.Len(t, top, 1)
	assert.Equal(t, "bob", top[0].ClientID)
}

func TestPopularCars_RankByCountThenInsertion(t *testing.T) {
	rentals := []domain.Rental{
		rental("r1", domain.RentalCancelled, "1000", "0", "5000", onCar("first")),
		rental("r2", domain.RentalActive, "3000", "0", "5000", onCar("second")),
		rental("r3", domain.RentalCompleted, "4000", "500", "5000", onCar("third")),
		rental("r4", domain.RentalActive, "2500", "0", "5000", onCar("third")),
		rental("r5", domain.RentalActive, "700", "0", "5000", onCar("second")),
	}

	cars := reconciliation.PopularCars(rentals, 10)
	require.Len(t, cars, 3)
	assert.Equal(t, "second", cars[0].CarID)
	assert.Equal(t, 2, cars[0].RentalCount)
	assertMoney(t, "3700", cars[0].NetRevenue)
	assert.Equal(t, "third", cars[1].CarID)
	assertMoney(t, "2500", cars[1].NetRevenue)
	assert.Equal(t, "first", cars[2].CarID)
	assertMoney(t, "0", cars[2].NetRevenue)

	limited := reconciliation.PopularCars(rentals, 2)
	require.Len(t, limited, 2)
	assert.Equal(t, "third", limited[1].CarID)
}

func TestMonthlyRevenue(t *testing.T) {
	rentals := []domain.Rental{
		rental("feb", domain.RentalActive, "300", "0", "100", startingAt(time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC))),
		rental("jan1", domain.RentalActive, "100", "0", "100"),
		rental("jan2", domain.RentalActive, "200", "0", "100"),
	}

	months := reconciliation.MonthlyRevenue(rentals)
	require.Len(t, months, 2)
	assert.Equal(t, "2026-01", months[0].Month)
	assert.Equal(t, 2, months[0].RentalCount)
	assertMoney(t, "300", months[0].NetRevenue)
	assert.Equal(t, "2026-02", months[1].Month)
}
