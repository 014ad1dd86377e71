package mapping

import (
	"github.com/SscSPs/car_rental_backend/internal/core/domain"
	"github.com/SscSPs/car_rental_backend/internal/models"
)

// ToDomainCar converts a model Car to a domain Car
func ToDomainCar(m models.Car) domain.Car {
	return domain.Car{
		CarID:        m.CarID,
		Make:         m.Make,
		Model:        m.Model,
		Year:         m.Year,
		LicensePlate: m.LicensePlate,
		DailyRate:    m.DailyRate,
		BaseDeposit:  m.BaseDeposit,
		Status:       domain.CarStatus(m.Status),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCarSlice converts a slice of model Cars to a slice of domain Cars
func ToDomainCarSlice(ms []models.Car) []domain.Car {
	ds := make([]domain.Car, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCar(m)
	}
	return ds
}

// ToDomainClient converts a model Client to a domain Client
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:    m.ClientID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Email:       m.Email,
		Phone:       m.Phone,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
