package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RentalStatus is the lifecycle state of a rental.
type RentalStatus string

const (
	RentalActive    RentalStatus = "ACTIVE"
	RentalCompleted RentalStatus = "COMPLETED"
	RentalCancelled RentalStatus = "CANCELLED"
)

// IsTerminal reports whether no further transition is allowed.
func (s RentalStatus) IsTerminal() bool {
	return s == RentalCompleted || s == RentalCancelled
}

// Rental is the central mutable entity of the engine.
//
// ActualEndDate is nil while the rental is Active and set once it is
// Completed or Cancelled. Money fields are never negative.
type Rental struct {
	RentalID        string          `json:"rentalID"`
	CarID           string          `json:"carID"`
	ClientID        string          `json:"clientID"`
	StartDate       time.Time       `json:"startDate"`
	ExpectedEndDate time.Time       `json:"expectedEndDate"`
	ActualEndDate   *time.Time      `json:"actualEndDate,omitempty"`
	DepositAmount   decimal.Decimal `json:"depositAmount"`
	TotalCost       decimal.Decimal `json:"totalCost"`
	PenaltyAmount   decimal.Decimal `json:"penaltyAmount"`
	Status          RentalStatus    `json:"status"`

	// Relations, populated only by relation-loading queries.
	Car    *Car    `json:"car,omitempty"`
	Client *Client `json:"client,omitempty"`

	AuditFields
}

// EffectiveEndDate is the actual end when known, otherwise the expected end.
func (r Rental) EffectiveEndDate() time.Time {
	if r.ActualEndDate != nil {
		return *r.ActualEndDate
	}
	return r.ExpectedEndDate
}

// IsActive reports whether the rental still holds its car.
func (r Rental) IsActive() bool {
	return r.Status == RentalActive
}

// RentalPatch lists the fields a lifecycle transition may change.
// Nil fields are left untouched by the store.
type RentalPatch struct {
	Status        *RentalStatus
	ActualEndDate *time.Time
	DepositAmount *decimal.Decimal
	TotalCost     *decimal.Decimal
	PenaltyAmount *decimal.Decimal
	UpdatedAt     time.Time
	UpdatedBy     string
}

// Diff builds the patch that turns before into after.
func Diff(before, after Rental) RentalPatch {
	var p RentalPatch
	if before.Status != after.Status {
		s := after.Status
		p.Status = &s
	}
	if after.ActualEndDate != nil && (before.ActualEndDate == nil || !before.ActualEndDate.Equal(*after.ActualEndDate)) {
		t := *after.ActualEndDate
		p.ActualEndDate = &t
	}
	if !before.DepositAmount.Equal(after.DepositAmount) {
		d := after.DepositAmount
		p.DepositAmount = &d
	}
	if !before.TotalCost.Equal(after.TotalCost) {
		c := after.TotalCost
		p.TotalCost = &c
	}
	if !before.PenaltyAmount.Equal(after.PenaltyAmount) {
		pen := after.PenaltyAmount
		p.PenaltyAmount = &pen
	}
	p.UpdatedAt = after.LastUpdatedAt
	p.UpdatedBy = after.LastUpdatedBy
	return p
}

// IsEmpty reports whether the patch changes no rental field.
func (p RentalPatch) IsEmpty() bool {
	return p.Status == nil && p.ActualEndDate == nil && p.DepositAmount == nil &&
		p.TotalCost == nil && p.PenaltyAmount == nil
}
