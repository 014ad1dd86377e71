package reconciliation

import (
	"sort"

	"github.com/SscSPs/car_rental_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AggregateByClient groups rentals per client in order of first appearance.
//
// Sums are accumulated first and NetRevenue is derived once from them as
// TotalReceived - TotalToReturn. Because the per-rental figures clamp at zero,
// this can differ from summing per-rental NetRevenue.
func AggregateByClient(rentals []domain.Rental) []domain.ClientRevenue {
	index := make(map[string]int)
	out := make([]domain.ClientRevenue, 0)
	for _, r := range rentals {
		i, ok := index[r.ClientID]
		if !ok {
			i = len(out)
			index[r.ClientID] = i
			out = append(out, domain.ClientRevenue{
				ClientID:       r.ClientID,
				Client:         r.Client,
				TotalReceived:  decimal.Zero,
				TotalCost:      decimal.Zero,
				TotalPenalties: decimal.Zero,
				TotalDeposits:  decimal.Zero,
				TotalToReturn:  decimal.Zero,
			})
		}
		agg := &out[i]
		agg.RentalCount++
		agg.TotalReceived = agg.TotalReceived.Add(TotalReceived(r))
		agg.TotalCost = agg.TotalCost.Add(r.TotalCost)
		agg.TotalPenalties = agg.TotalPenalties.Add(RecognisedPenalty(r))
		agg.TotalDeposits = agg.TotalDeposits.Add(r.DepositAmount)
		agg.TotalToReturn = agg.TotalToReturn.Add(ToReturn(r))
	}
	for i := range out {
		out[i].NetRevenue = out[i].TotalReceived.Sub(out[i].TotalToReturn)
	}
	return out
}

// TopClients ranks clients by aggregate net revenue, highest first, keeping
// first-appearance order on ties, and returns at most limit of them.
func TopClients(rentals []domain.Rental, limit int) []domain.ClientRevenue {
	clients := AggregateByClient(rentals)
	sort.SliceStable(clients, func(i, j int) bool {
		return clients[i].NetRevenue.GreaterThan(clients[j].NetRevenue)
	})
	return capped(clients, limit)
}

// AggregateByCar groups rentals per car in order of first appearance, summing
// each rental's own NetRevenue.
func AggregateByCar(rentals []domain.Rental) []domain.CarRevenue {
	index := make(map[string]int)
	out := make([]domain.CarRevenue, 0)
	for _, r := range rentals {
		i, ok := index[r.CarID]
		if !ok {
			i = len(out)
			index[r.CarID] = i
			out = append(out, domain.CarRevenue{CarID: r.CarID, Car: r.Car, NetRevenue: decimal.Zero})
		}
		out[i].RentalCount++
		out[i].NetRevenue = out[i].NetRevenue.Add(NetRevenue(r))
	}
	return out
}

// PopularCars ranks cars by rental count, highest first, keeping
// first-appearance order on ties, and returns at most limit of them.
func PopularCars(rentals []domain.Rental, limit int) []domain.CarRevenue {
	cars := AggregateByCar(rentals)
	sort.SliceStable(cars, func(i, j int) bool {
		return cars[i].RentalCount > cars[j].RentalCount
	})
	return capped(cars, limit)
}

// MonthlyRevenue buckets per-rental net revenue by the month of each rental's
// relevant date, oldest month first.
func MonthlyRevenue(rentals []domain.Rental) []domain.MonthlyRevenue {
	index := make(map[string]int)
	out := make([]domain.MonthlyRevenue, 0)
	for _, r := range rentals {
		month := RelevantDate(r).Format("2006-01")
		i, ok := index[month]
		if !ok {
			i = len(out)
			index[month] = i
			out = append(out, domain.MonthlyRevenue{Month: month, NetRevenue: decimal.Zero})
		}
		out[i].RentalCount++
		out[i].NetRevenue = out[i].NetRevenue.Add(NetRevenue(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// ByStatus splits the totals per rental status.
func ByStatus(rentals []domain.Rental) map[domain.RentalStatus]domain.FinancialTotals {
	groups := make(map[domain.RentalStatus][]domain.Rental)
	for _, r := range rentals {
		groups[r.Status] = append(groups[r.Status], r)
	}
	out := make(map[domain.RentalStatus]domain.FinancialTotals, len(groups))
	for status, group := range groups {
		out[status] = Totals(group)
	}
	return out
}

func capped[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
