package services

import (
	"context"

	"github.com/SscSPs/car_rental_backend/internal/core/domain"
)

// ReportingService defines the financial and fleet reports. Every money
// figure comes from the same reconciliation rules, so the reports agree.
type ReportingService interface {
	// GetDashboardStats summarises fleet status and revenue, optionally within a window.
	GetDashboardStats(ctx context.Context, window domain.DateWindow) (*domain.DashboardStats, error)

	// GetRevenueStats breaks revenue down by status and month, optionally within a window.
	GetRevenueStats(ctx context.Context, window domain.DateWindow) (*domain.RevenueStats, error)

	// GetPopularCars ranks cars by rental count.
	GetPopularCars(ctx context.Context, limit int) ([]domain.CarRevenue, error)

	// GetTopClients ranks clients by aggregate net revenue.
	GetTopClients(ctx context.Context, limit int) ([]domain.ClientRevenue, error)

	// GenerateFinancialReport lists reconciled figures per rental with totals.
	GenerateFinancialReport(ctx context.Context, window domain.DateWindow) (*domain.FinancialReport, error)

	// GenerateOccupancyReport describes current fleet utilisation.
	GenerateOccupancyReport(ctx context.Context) (*domain.OccupancyReport, error)
}
