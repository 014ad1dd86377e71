package models

import (
	"github.com/shopspring/decimal"
)

// Car represents a row of the cars table.
type Car struct {
	CarID        string          `db:"car_id"`
	Make         string          `db:"make"`
	Model        string          `db:"model"`
	Year         int             `db:"year"`
	LicensePlate string          `db:"license_plate"`
	DailyRate    decimal.Decimal `db:"daily_rate"`
	BaseDeposit  decimal.Decimal `db:"base_deposit"`
	Status       string          `db:"status"` // AVAILABLE, RENTED, MAINTENANCE
	AuditFields
}

// Client represents a row of the clients table.
type Client struct {
	ClientID  string `db:"client_id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Email     string `db:"email"`
	Phone     string `db:"phone"`
	AuditFields
}
