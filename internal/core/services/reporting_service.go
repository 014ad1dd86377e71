package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/car_rental_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/car_rental_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/car_rental_backend/internal/core/ports/services"
	"github.com/SscSPs/car_rental_backend/internal/core/reconciliation"
)

// openWindowEnd bounds date-range queries whose end is open.
var openWindowEnd = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	carRepo    portsrepo.CarReader
	rentalRepo portsrepo.RentalReader
	clock      func() time.Time
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingClock sets the time source used to stamp generated reports.
func WithReportingClock(clock func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.clock = clock
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(carRepo portsrepo.CarReader, rentalRepo portsrepo.RentalReader, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		carRepo:    carRepo,
		rentalRepo: rentalRepo,
		clock:      time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// GetDashboardStats summarises the fleet and the revenue of the rentals in window.
// Occupancy always reflects the rentals active right now.
func (s *reportingService) GetDashboardStats(ctx context.Context, window domain.DateWindow) (*domain.DashboardStats, error) {
	cars, err := s.carRepo.ListCars(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cars for dashboard")
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	active, err := s.rentalRepo.ListRentalsByStatus(ctx, domain.RentalActive)
	if err != nil {
		s.LogError(ctx, err, "Failed to list active rentals for dashboard")
		return nil, fmt.Errorf("failed to list active rentals: %w", err)
	}
	rentals, err := s.loadRentals(ctx, window)
	if err != nil {
		return nil, err
	}

	stats := &domain.DashboardStats{
		TotalCars:         len(cars),
		TotalRevenue:      reconciliation.TotalRevenue(rentals),
		OccupancyRate:     reconciliation.OccupancyRate(len(active), len(cars)),
		AverageRentalDays: reconciliation.AverageRentalDays(rentals),
	}
	for _, c := range cars {
		switch c.Status {
		case domain.CarAvailable:
			stats.AvailableCars++
		case domain.CarRented:
			stats.RentedCars++
		case domain.CarMaintenance:
			stats.MaintenanceCars++
		}
	}
	for _, r := range rentals {
		switch r.Status {
		case domain.RentalActive:
			stats.ActiveRentals++
		case domain.RentalCompleted:
			stats.CompletedRentals++
		case domain.RentalCancelled:
			stats.CancelledRentals++
		}
	}

	s.LogInfo(ctx, "Dashboard stats generated successfully",
		slog.Int("car_count", stats.TotalCars),
		slog.Int("rental_count", len(rentals)))
	return stats, nil
}

// GetRevenueStats breaks the revenue of the rentals in window down by status and month.
func (s *reportingService) GetRevenueStats(ctx context.Context, window domain.DateWindow) (*domain.RevenueStats, error) {
	rentals, err := s.loadRentals(ctx, window)
	if err != nil {
		return nil, err
	}

	totals := reconciliation.Totals(rentals)
	byStatus := reconciliation.ByStatus(rentals)
	stats := &domain.RevenueStats{
		RentalCount:           totals.RentalCount,
		TotalRevenue:          totals.NetRevenue,
		ActiveRevenue:         byStatus[domain.RentalActive].NetRevenue,
		CompletedRevenue:      byStatus[domain.RentalCompleted].NetRevenue,
		CancelledRevenue:      byStatus[domain.RentalCancelled].NetRevenue,
		TotalReceived:         totals.TotalReceived,
		TotalDeposits:         totals.TotalDeposits,
		TotalDepositsToReturn: totals.TotalDepositsToReturn,
		TotalPenalties:        totals.TotalPenalties,
		Monthly:               reconciliation.MonthlyRevenue(rentals),
	}

	s.LogInfo(ctx, "Revenue stats generated successfully",
		slog.Int("rental_count", stats.RentalCount),
		slog.String("total_revenue", stats.TotalRevenue.String()))
	return stats, nil
}

// GetPopularCars ranks cars by rental count.
func (s *reportingService) GetPopularCars(ctx context.Context, limit int) ([]domain.CarRevenue, error) {
	rentals, err := s.loadRentals(ctx, domain.DateWindow{})
	if err != nil {
		return nil, err
	}
	return reconciliation.PopularCars(rentals, limit), nil
}

// GetTopClients ranks clients by aggregate net revenue.
func (s *reportingService) GetTopClients(ctx context.Context, limit int) ([]domain.ClientRevenue, error) {
	rentals, err := s.loadRentals(ctx, domain.DateWindow{})
	if err != nil {
		return nil, err
	}
	return reconciliation.TopClients(rentals, limit), nil
}

// GenerateFinancialReport lists every rental in window with its reconciled figures.
func (s *reportingService) GenerateFinancialReport(ctx context.Context, window domain.DateWindow) (*domain.FinancialReport, error) {
	rentals, err := s.loadRentals(ctx, window)
	if err != nil {
		return nil, err
	}

	lines := make([]domain.FinancialReportLine, len(rentals))
	for i, r := range rentals {
		lines[i] = domain.FinancialReportLine{Rental: r, Figures: reconciliation.ForRental(r)}
	}
	report := &domain.FinancialReport{
		Window:      window,
		GeneratedAt: s.clock(),
		Lines:       lines,
		Totals:      reconciliation.Totals(rentals),
		ByStatus:    reconciliation.ByStatus(rentals),
	}

	s.LogInfo(ctx, "Financial report generated successfully",
		slog.Int("rental_count", len(lines)),
		slog.String("net_revenue", report.Totals.NetRevenue.String()))
	return report, nil
}

// GenerateOccupancyReport lists every car with the active rental holding it.
func (s *reportingService) GenerateOccupancyReport(ctx context.Context) (*domain.OccupancyReport, error) {
	cars, err := s.carRepo.ListCars(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cars for occupancy report")
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	active, err := s.rentalRepo.ListRentalsByStatus(ctx, domain.RentalActive)
	if err != nil {
		s.LogError(ctx, err, "Failed to list active rentals for occupancy report")
		return nil, fmt.Errorf("failed to list active rentals: %w", err)
	}

	holding := make(map[string]*domain.Rental, len(active))
	for i := range active {
		r := &active[i]
		if cur, ok := holding[r.CarID]; !ok || r.StartDate.Before(cur.StartDate) {
			holding[r.CarID] = r
		}
	}

	report := &domain.OccupancyReport{
		GeneratedAt:   s.clock(),
		TotalCars:     len(cars),
		ActiveRentals: len(active),
		OccupancyRate: reconciliation.OccupancyRate(len(active), len(cars)),
		CarsByStatus:  make(map[domain.CarStatus]int),
		Cars:          make([]domain.CarOccupancy, len(cars)),
	}
	for i, c := range cars {
		report.CarsByStatus[c.Status]++
		report.Cars[i] = domain.CarOccupancy{Car: c, ActiveRental: holding[c.CarID]}
	}

	s.LogInfo(ctx, "Occupancy report generated successfully",
		slog.Int("car_count", report.TotalCars),
		slog.Int("active_rentals", report.ActiveRentals))
	return report, nil
}

// loadRentals returns the rentals whose relevant date lies in window, with
// relations loaded. The date-range query only narrows the candidates; the
// exact filter is applied here.
func (s *reportingService) loadRentals(ctx context.Context, window domain.DateWindow) ([]domain.Rental, error) {
	if window.IsZero() {
		rentals, err := s.rentalRepo.ListRentalsWithRelations(ctx)
		if err != nil {
			s.LogError(ctx, err, "Failed to list rentals")
			return nil, fmt.Errorf("failed to list rentals: %w", err)
		}
		return rentals, nil
	}

	start, end := time.Time{}, openWindowEnd
	if window.Start != nil {
		start = *window.Start
	}
	if window.End != nil {
		end = *window.End
	}
	rentals, err := s.rentalRepo.ListRentalsByDateRange(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to list rentals by date range",
			slog.String("start", start.Format(time.RFC3339)),
			slog.String("end", end.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to list rentals by date range: %w", err)
	}
	return reconciliation.FilterByWindow(rentals, window), nil
}
