package mapping

import (
	"github.com/SscSPs/car_rental_backend/internal/core/domain"
	"github.com/SscSPs/car_rental_backend/internal/models"
)

// ToModelRental converts a domain Rental to a model Rental
func ToModelRental(d domain.Rental) models.Rental {
	return models.Rental{
		RentalID:        d.RentalID,
		CarID:           d.CarID,
		ClientID:        d.ClientID,
		StartDate:       d.StartDate,
		ExpectedEndDate: d.ExpectedEndDate,
		ActualEndDate:   d.ActualEndDate,
		DepositAmount:   d.DepositAmount,
		TotalCost:       d.TotalCost,
		PenaltyAmount:   d.PenaltyAmount,
		Status:          string(d.Status),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRental converts a model Rental to a domain Rental without relations
func ToDomainRental(m models.Rental) domain.Rental {
	return domain.Rental{
		RentalID:        m.RentalID,
		CarID:           m.CarID,
		ClientID:        m.ClientID,
		StartDate:       m.StartDate,
		ExpectedEndDate: m.ExpectedEndDate,
		ActualEndDate:   m.ActualEndDate,
		DepositAmount:   m.DepositAmount,
		TotalCost:       m.TotalCost,
		PenaltyAmount:   m.PenaltyAmount,
		Status:          domain.RentalStatus(m.Status),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRentalWithRelations converts a joined row to a domain Rental with
// its car and client populated.
func ToDomainRentalWithRelations(m models.RentalWithRelations) domain.Rental {
	r := ToDomainRental(m.Rental)
	r.Car = &domain.Car{
		CarID:        m.CarID,
		Make:         m.CarMake,
		Model:        m.CarModel,
		Year:         m.CarYear,
		LicensePlate: m.CarLicensePlate,
		DailyRate:    m.CarDailyRate,
		BaseDeposit:  m.CarBaseDeposit,
		Status:       domain.CarStatus(m.CarStatus),
	}
	r.Client = &domain.Client{
		ClientID:  m.ClientID,
		FirstName: m.ClientFirstName,
		LastName:  m.ClientLastName,
		Email:     m.ClientEmail,
		Phone:     m.ClientPhone,
	}
	return r
}

// ToDomainRentalSlice converts joined rows to domain Rentals
func ToDomainRentalSlice(ms []models.RentalWithRelations) []domain.Rental {
	ds := make([]domain.Rental, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRentalWithRelations(m)
	}
	return ds
}

// ToModelPenalty converts a domain Penalty to a model Penalty
func ToModelPenalty(d domain.Penalty) models.Penalty {
	return models.Penalty{
		PenaltyID:   d.PenaltyID,
		RentalID:    d.RentalID,
		Kind:        string(d.Kind),
		Amount:      d.Amount,
		Reason:      d.Reason,
		IssuedAt:    d.IssuedAt,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPenalty converts a model Penalty to a domain Penalty
func ToDomainPenalty(m models.Penalty) domain.Penalty {
	return domain.Penalty{
		PenaltyID:   m.PenaltyID,
		RentalID:    m.RentalID,
		Kind:        domain.PenaltyKind(m.Kind),
		Amount:      m.Amount,
		Reason:      m.Reason,
		IssuedAt:    m.IssuedAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPenaltySlice converts a slice of model Penalties to domain Penalties
func ToDomainPenaltySlice(ms []models.Penalty) []domain.Penalty {
	ds := make([]domain.Penalty, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPenalty(m)
	}
	return ds
}
