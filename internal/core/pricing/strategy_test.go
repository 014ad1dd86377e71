package pricing_test

import (
	"testing"
	"time"

	"github.com/SscSPs/car_rental_backend/internal/core/domain"
	"github.com/SscSPs/car_rental_backend/internal/core/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func fixedClock(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.June, 1, 12, 0, 0, 0, time.UTC)
	}
}

func carWithRate(rate int64, year int) domain.Car {
	return domain.Car{
		CarID:       "car-1",
		DailyRate:   decimal.NewFromInt(rate),
		BaseDeposit: decimal.NewFromInt(5000),
		Year:        year,
		Status:      domain.CarAvailable,
	}
}

type flatStrategy struct{ amount decimal.Decimal }

func (f flatStrategy) Price(domain.Car, int) decimal.Decimal { return f.amount }

func TestStrategies_Price(t *testing.T) {
	clock := fixedClock(2026)

	tests := []struct {
		name     string
		strategy pricing.Strategy
		car      domain.Car
		days     int
		want     string
	}{
		{"base five days", pricing.BaseStrategy{}, carWithRate(1000, 2020), 5, "5000"},
		{"age one year", pricing.AgeBasedStrategy{Clock: clock}, carWithRate(1000, 2025), 5, "6000"},
		{"age two years is still new", pricing.AgeBasedStrategy{Clock: clock}, carWithRate(1000, 2024), 1, "1200"},
		{"age four years", pricing.AgeBasedStrategy{Clock: clock}, carWithRate(1000, 2022), 5, "5000"},
		{"age eight years", pricing.AgeBasedStrategy{Clock: clock}, carWithRate(1000, 2018), 5, "4500"},
		{"age fifteen years", pricing.AgeBasedStrategy{Clock: clock}, carWithRate(1000, 2011), 5, "4000"},
		{"duration under a week", pricing.DurationDiscountStrategy{}, carWithRate(1000, 2020), 6, "6000"},
		{"duration one week", pricing.DurationDiscountStrategy{}, carWithRate(1000, 2020), 7, "6650"},
		{"duration two weeks", pricing.DurationDiscountStrategy{}, carWithRate(1000, 2020), 14, "12600"},
		{"duration thirty days", pricing.DurationDiscountStrategy{}, carWithRate(1000, 2020), 30, "25500"},
		{"combined empty falls back to base", pricing.CombinedStrategy{}, carWithRate(1000, 2025), 5, "5000"},
		{"default combination", pricing.NewDefaultStrategy(clock), carWithRate(1000, 2025), 7, "7350"},
		{
			"combined rounds the mean to cents",
			pricing.CombinedStrategy{Strategies: []pricing.Strategy{
				flatStrategy{decimal.NewFromInt(1000)},
				flatStrategy{decimal.NewFromInt(1000)},
				flatStrategy{decimal.NewFromInt(1001)},
			}},
			carWithRate(1000, 2020), 1, "1000.33",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.strategy.Price(tt.car, tt.days)
			want := decimal.RequireFromString(tt.want)
			assert.True(t, want.Equal(got), "want %s, got %s", want, got)
		})
	}
}

func TestCombinedStrategy_EmptyMatchesBase(t *testing.T) {
	car := carWithRate(1375, 2019)
	for days := 1; days <= 40; days++ {
		assert.True(t, pricing.BaseStrategy{}.Price(car, days).Equal(pricing.CombinedStrategy{}.Price(car, days)))
	}
}

func TestRentalDays(t *testing.T) {
	start := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want int
	}{
		{"same instant counts one day", start, 1},
		{"a few hours", start.Add(3 * time.Hour), 1},
		{"exactly one day", start.Add(24 * time.Hour), 1},
		{"one day and a minute", start.Add(24*time.Hour + time.Minute), 2},
		{"exactly four days", start.AddDate(0, 0, 4), 4},
		{"end before start", start.Add(-time.Hour), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.RentalDays(start, tt.end))
		})
	}
}

func TestSpanDays(t *testing.T) {
	start := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, pricing.SpanDays(start, start))
	assert.Equal(t, 0, pricing.SpanDays(start, start.Add(-time.Hour)))
	assert.Equal(t, 1, pricing.SpanDays(start, start.Add(time.Minute)))
	assert.Equal(t, 3, pricing.SpanDays(start, start.Add(72*time.Hour)))
}

func TestDaysLate(t *testing.T) {
	expected := time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, pricing.DaysLate(expected, expected))
	assert.Equal(t, 0, pricing.DaysLate(expected, expected.Add(-48*time.Hour)))
	assert.Equal(t, 1, pricing.DaysLate(expected, expected.Add(time.Hour)))
	assert.Equal(t, 2, pricing.DaysLate(expected, expected.Add(48*time.Hour)))
	assert.Equal(t, 3, pricing.DaysLate(expected, expected.Add(49*time.Hour)))
}
