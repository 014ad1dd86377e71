package dto

import (
	"time"

	"github.com/SscSPs/car_rental_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRentalRequest defines the data needed to open a rental.
// Date ordering is checked by the rental lifecycle, not by binding.
type CreateRentalRequest struct {
	ClientID        string    `json:"clientID" binding:"required"`
	CarID           string    `json:"carID" binding:"required"`
	StartDate       time.Time `json:"startDate" binding:"required"`
	ExpectedEndDate time.Time `json:"expectedEndDate" binding:"required"`
}

// CompleteRentalRequest records a return. ActualEndDate defaults to now.
type CompleteRentalRequest struct {
	ActualEndDate *time.Time `json:"actualEndDate"`
}

// CancelRentalRequest records a cancellation. CancellationDate defaults to now.
type CancelRentalRequest struct {
	CancellationDate *time.Time `json:"cancellationDate"`
}

// AddPenaltyRequest attaches a manual penalty to a rental.
type AddPenaltyRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Reason string          `json:"reason" binding:"required,max=500"`
}

// CarSummary is the car embedded in rental responses.
type CarSummary struct {
	CarID        string          `json:"carID"`
	Make         string          `json:"make"`
	Model        string          `json:"model"`
	Year         int             `json:"year"`
	LicensePlate string          `json:"licensePlate"`
	DailyRate    decimal.Decimal `json:"dailyRate"`
	Status       string          `json:"status"`
}

// ClientSummary is the client embedded in rental responses.
type ClientSummary struct {
	ClientID string `json:"clientID"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// RentalResponse defines the data returned for a rental.
type RentalResponse struct {
	RentalID        string               `json:"rentalID"`
	CarID           string               `json:"carID"`
	ClientID        string               `json:"clientID"`
	StartDate       time.Time            `json:"startDate"`
	ExpectedEndDate time.Time            `json:"expectedEndDate"`
	ActualEndDate   *time.Time           `json:"actualEndDate,omitempty"`
	DepositAmount   decimal.Decimal      `json:"depositAmount"`
	TotalCost       decimal.Decimal      `json:"totalCost"`
	PenaltyAmount   decimal.Decimal      `json:"penaltyAmount"`
	Status          domain.RentalStatus  `json:"status"`
	Figures         domain.RentalFigures `json:"figures"`
	Car             *CarSummary          `json:"car,omitempty"`
	Client          *ClientSummary       `json:"client,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
	CreatedBy       string               `json:"createdBy"`
	LastUpdatedAt   time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy   string               `json:"lastUpdatedBy"`
}

// CompleteRentalResponse is returned after a return is recorded.
type CompleteRentalResponse struct {
	Rental     RentalResponse  `json:"rental"`
	LateFee    decimal.Decimal `json:"lateFee"`
	DaysLate   int             `json:"daysLate"`
	CarNowFree bool            `json:"carNowFree"`
}

// CancelRentalResponse is returned after a cancellation.
type CancelRentalResponse struct {
	Rental      RentalResponse `json:"rental"`
	BeforeStart bool           `json:"beforeStart"`
	CarNowFree  bool           `json:"carNowFree"`
}

// PenaltyResponse defines the data returned for a penalty record.
type PenaltyResponse struct {
	PenaltyID string             `json:"penaltyID"`
	RentalID  string             `json:"rentalID"`
	Kind      domain.PenaltyKind `json:"kind"`
	Amount    decimal.Decimal    `json:"amount"`
	Reason    string             `json:"reason"`
	IssuedAt  time.Time          `json:"issuedAt"`
	CreatedBy string             `json:"createdBy"`
}

// ToCarSummary converts a domain.Car, nil-safe.
func ToCarSummary(c *domain.Car) *CarSummary {
	if c == nil {
		return nil
	}
	return &CarSummary{
		CarID:        c.CarID,
		Make:         c.Make,
		Model:        c.Model,
		Year:         c.Year,
		LicensePlate: c.LicensePlate,
		DailyRate:    c.DailyRate,
		Status:       string(c.Status),
	}
}

// ToClientSummary converts a domain.Client, nil-safe.
func ToClientSummary(c *domain.Client) *ClientSummary {
	if c == nil {
		return nil
	}
	return &ClientSummary{
		ClientID: c.ClientID,
		Name:     c.FullName(),
		Email:    c.Email,
	}
}

// ToRentalResponse converts a domain.Rental and its reconciled figures to RentalResponse DTO
func ToRentalResponse(r domain.Rental, figures domain.RentalFigures) RentalResponse {
	return RentalResponse{
		RentalID:        r.RentalID,
		CarID:           r.CarID,
		ClientID:        r.ClientID,
		StartDate:       r.StartDate,
		ExpectedEndDate: r.ExpectedEndDate,
		ActualEndDate:   r.ActualEndDate,
		DepositAmount:   r.DepositAmount,
		TotalCost:       r.TotalCost,
		PenaltyAmount:   r.PenaltyAmount,
		Status:          r.Status,
		Figures:         figures,
		Car:             ToCarSummary(r.Car),
		Client:          ToClientSummary(r.Client),
		CreatedAt:       r.CreatedAt,
		CreatedBy:       r.CreatedBy,
		LastUpdatedAt:   r.LastUpdatedAt,
		LastUpdatedBy:   r.LastUpdatedBy,
	}
}

// ToPenaltyResponse converts a domain.Penalty to PenaltyResponse DTO
func ToPenaltyResponse(p domain.Penalty) PenaltyResponse {
	return PenaltyResponse{
		PenaltyID: p.PenaltyID,
		RentalID:  p.RentalID,
		Kind:      p.Kind,
		Amount:    p.Amount,
		Reason:    p.Reason,
		IssuedAt:  p.IssuedAt,
		CreatedBy: p.CreatedBy,
	}
}

// ToListPenaltyResponse converts a slice of domain.Penalty to PenaltyResponse DTOs
func ToListPenaltyResponse(penalties []domain.Penalty) []PenaltyResponse {
	res := make([]PenaltyResponse, len(penalties))
	for i, p := range penalties {
		res[i] = ToPenaltyResponse(p)
	}
	return res
}
