package dto

import (
	"time"

	"github.com/SscSPs/car_rental_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

const reportDateLayout = "2006-01-02"

// ReportWindowResponse echoes the window a report was computed for.
// Empty strings mean the bound was open.
type ReportWindowResponse struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// DashboardStatsResponse represents the dashboard overview
type DashboardStatsResponse struct {
	Window            ReportWindowResponse `json:"window"`
	TotalCars         int                  `json:"totalCars"`
	AvailableCars     int                  `json:"availableCars"`
	RentedCars        int                  `json:"rentedCars"`
	MaintenanceCars   int                  `json:"maintenanceCars"`
	ActiveRentals     int                  `json:"activeRentals"`
	CompletedRentals  int                  `json:"completedRentals"`
	CancelledRentals  int                  `json:"cancelledRentals"`
	TotalRevenue      decimal.Decimal      `json:"totalRevenue"`
	OccupancyRate     decimal.Decimal      `json:"occupancyRate"`
	AverageRentalDays decimal.Decimal      `json:"averageRentalDays"`
}

// RevenueStatsResponse represents revenue broken down by status and month
type RevenueStatsResponse struct {
	Window                ReportWindowResponse    `json:"window"`
	RentalCount           int                     `json:"rentalCount"`
	TotalRevenue          decimal.Decimal         `json:"totalRevenue"`
	ActiveRevenue         decimal.Decimal         `json:"activeRevenue"`
	CompletedRevenue      decimal.Decimal         `json:"completedRevenue"`
	CancelledRevenue      decimal.Decimal         `json:"cancelledRevenue"`
	TotalReceived         decimal.Decimal         `json:"totalReceived"`
	TotalDeposits         decimal.Decimal         `json:"totalDeposits"`
	TotalDepositsToReturn decimal.Decimal         `json:"totalDepositsToReturn"`
	TotalPenalties        decimal.Decimal         `json:"totalPenalties"`
	Monthly               []domain.MonthlyRevenue `json:"monthly"`
}

// PopularCarResponse represents a car in the popularity ranking
type PopularCarResponse struct {
	Rank        int             `json:"rank"`
	Car         *CarSummary     `json:"car,omitempty"`
	CarID       string          `json:"carID"`
	RentalCount int             `json:"rentalCount"`
	NetRevenue  decimal.Decimal `json:"netRevenue"`
}

// TopClientResponse represents a client in the revenue ranking
type TopClientResponse struct {
	Rank           int             `json:"rank"`
	Client         *ClientSummary  `json:"client,omitempty"`
	ClientID       string          `json:"clientID"`
	RentalCount    int             `json:"rentalCount"`
	TotalReceived  decimal.Decimal `json:"totalReceived"`
	TotalCost      decimal.Decimal `json:"totalCost"`
	TotalPenalties decimal.Decimal `json:"totalPenalties"`
	TotalDeposits  decimal.Decimal `json:"totalDeposits"`
	TotalToReturn  decimal.Decimal `json:"totalToReturn"`
	NetRevenue     decimal.Decimal `json:"netRevenue"`
}

// FinancialReportLineResponse is one rental in the financial report
type FinancialReportLineResponse struct {
	RentalID      string               `json:"rentalID"`
	CarID         string               `json:"carID"`
	ClientID      string               `json:"clientID"`
	Status        domain.RentalStatus  `json:"status"`
	StartDate     time.Time            `json:"startDate"`
	EffectiveEnd  time.Time            `json:"effectiveEnd"`
	DepositAmount decimal.Decimal      `json:"depositAmount"`
	TotalCost     decimal.Decimal      `json:"totalCost"`
	PenaltyAmount decimal.Decimal      `json:"penaltyAmount"`
	Figures       domain.RentalFigures `json:"figures"`
}

// FinancialReportResponse represents the full financial report
type FinancialReportResponse struct {
	Window      ReportWindowResponse                           `json:"window"`
	GeneratedAt time.Time                                      `json:"generatedAt"`
	Rentals     []FinancialReportLineResponse                  `json:"rentals"`
	Totals      domain.FinancialTotals                         `json:"totals"`
	ByStatus    map[domain.RentalStatus]domain.FinancialTotals `json:"byStatus"`
}

// CarOccupancyResponse is one car in the occupancy report
type CarOccupancyResponse struct {
	Car            CarSummary `json:"car"`
	ActiveRentalID string     `json:"activeRentalID,omitempty"`
	BusyUntil      *time.Time `json:"busyUntil,omitempty"`
}

// OccupancyReportResponse represents current fleet utilisation
type OccupancyReportResponse struct {
	GeneratedAt   time.Time                `json:"generatedAt"`
	TotalCars     int                      `json:"totalCars"`
	ActiveRentals int                      `json:"activeRentals"`
	OccupancyRate decimal.Decimal          `json:"occupancyRate"`
	CarsByStatus  map[domain.CarStatus]int `json:"carsByStatus"`
	Cars          []CarOccupancyResponse   `json:"cars"`
}

// ToReportWindowResponse formats a window as YYYY-MM-DD bounds.
func ToReportWindowResponse(w domain.DateWindow) ReportWindowResponse {
	var res ReportWindowResponse
	if w.Start != nil {
		res.StartDate = w.Start.Format(reportDateLayout)
	}
	if w.End != nil {
		res.EndDate = w.End.Format(reportDateLayout)
	}
	return res
}

// ToDashboardStatsResponse converts domain dashboard stats to the response DTO
func ToDashboardStatsResponse(s *domain.DashboardStats, w domain.DateWindow) DashboardStatsResponse {
	return DashboardStatsResponse{
		Window:            ToReportWindowResponse(w),
		TotalCars:         s.TotalCars,
		AvailableCars:     s.AvailableCars,
		RentedCars:        s.RentedCars,
		MaintenanceCars:   s.MaintenanceCars,
		ActiveRentals:     s.ActiveRentals,
		CompletedRentals:  s.CompletedRentals,
		CancelledRentals:  s.CancelledRentals,
		TotalRevenue:      s.TotalRevenue,
		OccupancyRate:     s.OccupancyRate,
		AverageRentalDays: s.AverageRentalDays,
	}
}

// ToRevenueStatsResponse converts domain revenue stats to the response DTO
func ToRevenueStatsResponse(s *domain.RevenueStats, w domain.DateWindow) RevenueStatsResponse {
	return RevenueStatsResponse{
		Window:                ToReportWindowResponse(w),
		RentalCount:           s.RentalCount,
		TotalRevenue:          s.TotalRevenue,
		ActiveRevenue:         s.ActiveRevenue,
		CompletedRevenue:      s.CompletedRevenue,
		CancelledRevenue:      s.CancelledRevenue,
		TotalReceived:         s.TotalReceived,
		TotalDeposits:         s.TotalDeposits,
		TotalDepositsToReturn: s.TotalDepositsToReturn,
		TotalPenalties:        s.TotalPenalties,
		Monthly:               s.Monthly,
	}
}

// ToPopularCarsResponse converts the car ranking, numbering ranks from 1.
func ToPopularCarsResponse(cars []domain.CarRevenue) []PopularCarResponse {
	res := make([]PopularCarResponse, len(cars))
	for i, c := range cars {
		res[i] = PopularCarResponse{
			Rank:        i + 1,
			Car:         ToCarSummary(c.Car),
			CarID:       c.CarID,
			RentalCount: c.RentalCount,
			NetRevenue:  c.NetRevenue,
		}
	}
	return res
}

// ToTopClientsResponse converts the client ranking, numbering ranks from 1.
func ToTopClientsResponse(clients []domain.ClientRevenue) []TopClientResponse {
	res := make([]TopClientResponse, len(clients))
	for i, c := range clients {
		res[i] = TopClientResponse{
			Rank:           i + 1,
			Client:         ToClientSummary(c.Client),
			ClientID:       c.ClientID,
			RentalCount:    c.RentalCount,
			TotalReceived:  c.TotalReceived,
			TotalCost:      c.TotalCost,
			TotalPenalties: c.TotalPenalties,
			TotalDeposits:  c.TotalDeposits,
			TotalToReturn:  c.TotalToReturn,
			NetRevenue:     c.NetRevenue,
		}
	}
	return res
}

// ToFinancialReportResponse converts a domain financial report to the response DTO
func ToFinancialReportResponse(r *domain.FinancialReport) FinancialReportResponse {
	lines := make([]FinancialReportLineResponse, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = FinancialReportLineResponse{
			RentalID:      l.Rental.RentalID,
			CarID:         l.Rental.CarID,
			ClientID:      l.Rental.ClientID,
			Status:        l.Rental.Status,
			StartDate:     l.Rental.StartDate,
			EffectiveEnd:  l.Rental.EffectiveEndDate(),
			DepositAmount: l.Rental.DepositAmount,
			TotalCost:     l.Rental.TotalCost,
			PenaltyAmount: l.Rental.PenaltyAmount,
			Figures:       l.Figures,
		}
	}
	return FinancialReportResponse{
		Window:      ToReportWindowResponse(r.Window),
		GeneratedAt: r.GeneratedAt,
		Rentals:     lines,
		Totals:      r.Totals,
		ByStatus:    r.ByStatus,
	}
}

// ToOccupancyReportResponse converts a domain occupancy report to the response DTO
func ToOccupancyReportResponse(r *domain.OccupancyReport) OccupancyReportResponse {
	cars := make([]CarOccupancyResponse, len(r.Cars))
	for i, c := range r.Cars {
		car := c.Car
		cars[i] = CarOccupancyResponse{Car: *ToCarSummary(&car)}
		if c.ActiveRental != nil {
			until := c.ActiveRental.ExpectedEndDate
			cars[i].ActiveRentalID = c.ActiveRental.RentalID
			cars[i].BusyUntil = &until
		}
	}
	return OccupancyReportResponse{
		GeneratedAt:   r.GeneratedAt,
		TotalCars:     r.TotalCars,
		ActiveRentals: r.ActiveRentals,
		OccupancyRate: r.OccupancyRate,
		CarsByStatus:  r.CarsByStatus,
		Cars:          cars,
	}
}
