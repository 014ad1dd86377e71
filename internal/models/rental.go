package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rental represents a row of the rentals table.
type Rental struct {
	RentalID        string          `db:"rental_id"`
	CarID           string          `db:"car_id"`
	ClientID        string          `db:"client_id"`
	StartDate       time.Time       `db:"start_date"`
	ExpectedEndDate time.Time       `db:"expected_end_date"`
	ActualEndDate   *time.Time      `db:"actual_end_date"` // Nullable until the rental ends
	DepositAmount   decimal.Decimal `db:"deposit_amount"`
	TotalCost       decimal.Decimal `db:"total_cost"`
	PenaltyAmount   decimal.Decimal `db:"penalty_amount"`
	Status          string          `db:"status"`
	AuditFields
}

// RentalWithRelations is a rental joined with its car and client.
type RentalWithRelations struct {
	Rental
	CarMake         string          `db:"car_make"`
	CarModel        string          `db:"car_model"`
	CarYear         int             `db:"car_year"`
	CarLicensePlate string          `db:"car_license_plate"`
	CarDailyRate    decimal.Decimal `db:"car_daily_rate"`
	CarBaseDeposit  decimal.Decimal `db:"car_base_deposit"`
	CarStatus       string          `db:"car_status"`
	ClientFirstName string          `db:"client_first_name"`
	ClientLastName  string          `db:"client_last_name"`
	ClientEmail     string          `db:"client_email"`
	ClientPhone     string          `db:"client_phone"`
}

// Penalty represents a row of the penalties table.
type Penalty struct {
	PenaltyID string          `db:"penalty_id"`
	RentalID  string          `db:"rental_id"`
	Kind      string          `db:"kind"`
	Amount    decimal.Decimal `db:"amount"`
	Reason    string          `db:"reason"`
	IssuedAt  time.Time       `db:"issued_at"`
	AuditFields
}
