package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateWindow is an optional, inclusive reporting window. A nil bound is open.
type DateWindow struct {
	Start *time.Time
	End   *time.Time
}

// IsZero reports whether neither bound is set.
func (w DateWindow) IsZero() bool {
	return w.Start == nil && w.End == nil
}

// Contains reports whether t falls inside the window.
func (w DateWindow) Contains(t time.Time) bool {
	if w.Start != nil && t.Before(*w.Start) {
		return false
	}
	if w.End != nil && t.After(*w.End) {
		return false
	}
	return true
}

// RentalFigures are the reconciled money figures of a single rental.
type RentalFigures struct {
	DepositToReturn decimal.Decimal `json:"depositToReturn"`
	NetRevenue      decimal.Decimal `json:"netRevenue"`
	TotalReceived   decimal.Decimal `json:"totalReceived"`
}

// ClientRevenue aggregates a client's rentals. NetRevenue is derived from the
// summed TotalReceived and TotalToReturn, not from per-rental net revenue.
type ClientRevenue struct {
	ClientID       string          `json:"clientID"`
	Client         *Client         `json:"client,omitempty"`
	RentalCount    int             `json:"rentalCount"`
	TotalReceived  decimal.Decimal `json:"totalReceived"`
	TotalCost      decimal.Decimal `json:"totalCost"`
	TotalPenalties decimal.Decimal `json:"totalPenalties"`
	TotalDeposits  decimal.Decimal `json:"totalDeposits"`
	TotalToReturn  decimal.Decimal `json:"totalToReturn"`
	NetRevenue     decimal.Decimal `json:"netRevenue"`
}

// CarRevenue aggregates a car's rentals. NetRevenue is the sum of per-rental
// net revenue.
type CarRevenue struct {
	CarID       string          `json:"carID"`
	Car         *Car            `json:"car,omitempty"`
	RentalCount int             `json:"rentalCount"`
	NetRevenue  decimal.Decimal `json:"netRevenue"`
}

// MonthlyRevenue is net revenue bucketed by the month of each rental's relevant date.
type MonthlyRevenue struct {
	Month       string          `json:"month"` // YYYY-MM
	RentalCount int             `json:"rentalCount"`
	NetRevenue  decimal.Decimal `json:"netRevenue"`
}

// DashboardStats is the overview shown on the operator dashboard.
type DashboardStats struct {
	TotalCars         int             `json:"totalCars"`
	AvailableCars     int             `json:"availableCars"`
	RentedCars        int             `json:"rentedCars"`
	MaintenanceCars   int             `json:"maintenanceCars"`
	ActiveRentals     int             `json:"activeRentals"`
	CompletedRentals  int             `json:"completedRentals"`
	CancelledRentals  int             `json:"cancelledRentals"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	OccupancyRate     decimal.Decimal `json:"occupancyRate"`
	AverageRentalDays decimal.Decimal `json:"averageRentalDays"`
}

// RevenueStats breaks revenue down by status and month.
type RevenueStats struct {
	RentalCount           int              `json:"rentalCount"`
	TotalRevenue          decimal.Decimal  `json:"totalRevenue"`
	ActiveRevenue         decimal.Decimal  `json:"activeRevenue"`
	CompletedRevenue      decimal.Decimal  `json:"completedRevenue"`
	CancelledRevenue      decimal.Decimal  `json:"cancelledRevenue"`
	TotalReceived         decimal.Decimal  `json:"totalReceived"`
	TotalDeposits         decimal.Decimal  `json:"totalDeposits"`
	TotalDepositsToReturn decimal.Decimal  `json:"totalDepositsToReturn"`
	TotalPenalties        decimal.Decimal  `json:"totalPenalties"`
	Monthly               []MonthlyRevenue `json:"monthly"`
}

// FinancialTotals sums reconciled figures over a set of rentals.
type FinancialTotals struct {
	RentalCount           int             `json:"rentalCount"`
	TotalCost             decimal.Decimal `json:"totalCost"`
	TotalPenalties        decimal.Decimal `json:"totalPenalties"`
	TotalDeposits         decimal.Decimal `json:"totalDeposits"`
	TotalDepositsToReturn decimal.Decimal `json:"totalDepositsToReturn"`
	TotalReceived         decimal.Decimal `json:"totalReceived"`
	NetRevenue            decimal.Decimal `json:"netRevenue"`
}

// FinancialReportLine is one rental with its reconciled figures.
type FinancialReportLine struct {
	Rental  Rental
	Figures RentalFigures
}

// FinancialReport lists every rental in the window with totals overall and per status.
type FinancialReport struct {
	Window      DateWindow
	GeneratedAt time.Time
	Lines       []FinancialReportLine
	Totals      FinancialTotals
	ByStatus    map[RentalStatus]FinancialTotals
}

// CarOccupancy is a car and the active rental holding it, if any.
type CarOccupancy struct {
	Car          Car
	ActiveRental *Rental
}

// OccupancyReport describes fleet utilisation at a point in time.
type OccupancyReport struct {
	GeneratedAt   time.Time
	TotalCars     int
	ActiveRentals int
	OccupancyRate decimal.Decimal
	CarsByStatus  map[CarStatus]int
	Cars          []CarOccupancy
}
