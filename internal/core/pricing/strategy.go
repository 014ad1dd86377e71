// Package pricing prices a car for a number of rental days and sizes the
// refundable deposit. Everything here is pure and safe for concurrent use.
package pricing

import (
	"time"

	"github.com/SscSPs/car_rental_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Strategy prices a car for a whole number of rental days.
type Strategy interface {
	Price(car domain.Car, days int) decimal.Decimal
}

// BaseStrategy charges the daily rate for every day.
type BaseStrategy struct{}

// Price implements Strategy.
func (BaseStrategy) Price(car domain.Car, days int) decimal.Decimal {
	return RoundMoney(car.DailyRate.Mul(decimal.NewFromInt(int64(days))))
}

// AgeBasedStrategy scales the base price by the car's age in years.
type AgeBasedStrategy struct {
	// Clock supplies the current year. Nil means time.Now.
	Clock func() time.Time
}

var (
	ageMultiplierNew     = decimal.RequireFromString("1.20")
	ageMultiplierRecent  = decimal.RequireFromString("1.00")
	ageMultiplierMid     = decimal.RequireFromString("0.90")
	ageMultiplierVintage = decimal.RequireFromString("0.80")
)

// AgeMultiplier returns the multiplier for a car that is age years old.
func AgeMultiplier(age int) decimal.Decimal {
	switch {
	case age <= 2:
		return ageMultiplierNew
	case age <= 5:
		return ageMultiplierRecent
	case age <= 10:
		return ageMultiplierMid
	default:
		return ageMultiplierVintage
	}
}

// Price implements Strategy.
func (s AgeBasedStrategy) Price(car domain.Car, days int) decimal.Decimal {
	now := time.Now
	if s.Clock != nil {
		now = s.Clock
	}
	age := now().Year() - car.Year
	base := car.DailyRate.Mul(decimal.NewFromInt(int64(days)))
	return RoundMoney(base.Mul(AgeMultiplier(age)))
}

// DurationDiscountStrategy discounts longer rentals.
type DurationDiscountStrategy struct{}

var (
	discountMonth     = decimal.RequireFromString("0.15")
	discountFortnight = decimal.RequireFromString("0.10")
	discountWeek      = decimal.RequireFromString("0.05")
)

// DurationDiscount returns the fractional discount for a rental of days days.
func DurationDiscount(days int) decimal.Decimal {
	switch {
	case days >= 30:
		return discountMonth
	case days >= 14:
		return discountFortnight
	case days >= 7:
		return discountWeek
	default:
		return decimal.Zero
	}
}

// Price implements Strategy.
func (DurationDiscountStrategy) Price(car domain.Car, days int) decimal.Decimal {
	base := car.DailyRate.Mul(decimal.NewFromInt(int64(days)))
	return RoundMoney(base.Mul(decimal.NewFromInt(1).Sub(DurationDiscount(days))))
}

// CombinedStrategy averages the prices of its member strategies.
// With no members it behaves like BaseStrategy.
type CombinedStrategy struct {
	Strategies []Strategy
}

// Price implements Strategy.
func (s CombinedStrategy) Price(car domain.Car, days int) decimal.Decimal {
	if len(s.Strategies) == 0 {
		return BaseStrategy{}.Price(car, days)
	}
	sum := decimal.Zero
	for _, strategy := range s.Strategies {
		sum = sum.Add(strategy.Price(car, days))
	}
	return RoundMoney(sum.Div(decimal.NewFromInt(int64(len(s.Strategies)))))
}

// NewDefaultStrategy returns the strategy used when opening rentals:
// Base, AgeBased and DurationDiscount averaged.
func NewDefaultStrategy(clock func() time.Time) Strategy {
	return CombinedStrategy{Strategies: []Strategy{
		BaseStrategy{},
		AgeBasedStrategy{Clock: clock},
		DurationDiscountStrategy{},
	}}
}

// RoundMoney rounds to two fractional digits.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
