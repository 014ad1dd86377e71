package pricing

import (
	"github.com/SscSPs/car_rental_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultDepositSurchargeRate is the share of the daily rate added to the
// deposit for every day after the first.
var DefaultDepositSurchargeRate = decimal.RequireFromString("0.15")

// DepositCalculator sizes the refundable hold taken when a rental opens.
type DepositCalculator struct {
	SurchargeRate decimal.Decimal
}

// NewDepositCalculator returns a calculator using rate. A zero rate charges
// the base deposit only.
func NewDepositCalculator(rate decimal.Decimal) DepositCalculator {
	return DepositCalculator{SurchargeRate: rate}
}

// Deposit returns baseDeposit + max(0, days-1) * dailyRate * surchargeRate.
func (c DepositCalculator) Deposit(car domain.Car, days int) decimal.Decimal {
	extraDays := days - 1
	if extraDays < 0 {
		extraDays = 0
	}
	surcharge := car.DailyRate.Mul(c.SurchargeRate).Mul(decimal.NewFromInt(int64(extraDays)))
	return RoundMoney(car.BaseDeposit.Add(surcharge))
}
