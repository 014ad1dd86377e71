package pricing_test

import (
	"testing"

	"github.com/SscSPs/car_rental_backend/internal/core/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDepositCalculator_Deposit(t *testing.T) {
	calc := pricing.NewDepositCalculator(pricing.DefaultDepositSurchargeRate)
	car := carWithRate(1000, 2020)

	tests := []struct {
		days int
		want string
	}{
		{0, "5000"},
		{1, "5000"},
		{2, "5150"},
		{4, "5450"},
		{9, "6200"},
	}
	for _, tt := range tests {
		got := calc.Deposit(car, tt.days)
		assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "days=%d want %s got %s", tt.days, tt.want, got)
	}
}

func TestDepositCalculator_CustomRate(t *testing.T) {
	calc := pricing.NewDepositCalculator(decimal.RequireFromString("0.10"))
	got := calc.Deposit(carWithRate(1000, 2020), 4)
	assert.True(t, decimal.NewFromInt(5300).Equal(got), "got %s", got)
}

func TestDepositCalculator_ShorterNeverExceedsLonger(t *testing.T) {
	calc := pricing.NewDepositCalculator(pricing.DefaultDepositSurchargeRate)
	car := carWithRate(780, 2020)
	prev := calc.Deposit(car, 1)
	for days := 2; days <= 60; days++ {
		cur := calc.Deposit(car, days)
		assert.True(t, cur.GreaterThanOrEqual(prev))
		prev = cur
	}
}

func TestDepositCalculator_ZeroRateChargesBaseOnly(t *testing.T) {
	calc := pricing.NewDepositCalculator(decimal.Zero)
	got := calc.Deposit(carWithRate(1000, 2020), 10)
	assert.True(t, decimal.NewFromInt(5000).Equal(got), "got %s", got)
}
