package domain

import (
	"github.com/shopspring/decimal"
)

// CarStatus is the catalog status of a car.
type CarStatus string

const (
	CarAvailable   CarStatus = "AVAILABLE"
	CarRented      CarStatus = "RENTED"
	CarMaintenance CarStatus = "MAINTENANCE"
)

// Car is read-only input for pricing; the catalog owns it.
type Car struct {
	CarID        string          `json:"carID"`
	Make         string          `json:"make"`
	Model        string          `json:"model"`
	Year         int             `json:"year"`
	LicensePlate string          `json:"licensePlate"`
	DailyRate    decimal.Decimal `json:"dailyRate"`
	BaseDeposit  decimal.Decimal `json:"baseDeposit"`
	Status       CarStatus       `json:"status"`
	AuditFields
}
