package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PenaltyKind tells how a penalty was attached to a rental.
type PenaltyKind string

const (
	PenaltyLateReturn PenaltyKind = "LATE_RETURN"
	PenaltyManual     PenaltyKind = "MANUAL"
)

// Penalty is a monetary charge attached to exactly one rental.
// The rental's PenaltyAmount is always the sum of its penalty records.
type Penalty struct {
	PenaltyID string          `json:"penaltyID"`
	RentalID  string          `json:"rentalID"`
	Kind      PenaltyKind     `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason"`
	IssuedAt  time.Time       `json:"issuedAt"`
	AuditFields
}
