package lifecycle_test

import (
	"testing"
	"time"

	"github.com/SscSPs/car_rental_backend/internal/core/domain"
	"github.com/SscSPs/car_rental_backend/internal/core/lifecycle"
	"github.com/stretchr/testify/assert"
)

func TestHasConflict(t *testing.T) {
	base := time.Date(2026, time.May, 10, 10, 0, 0, 0, time.UTC)
	returnedEarly := base.Add(day(1))
	cancelledAt := base.Add(-day(1))

	booked := domain.Rental{RentalID: "r1", CarID: "car-1", StartDate: base, ExpectedEndDate: base.Add(day(3)), Status: domain.RentalActive}

	tests := []struct {
		name     string
		existing []domain.Rental
		start    time.Time
		end      time.Time
		want     bool
	}{
		{"no rentals", nil, base, base.Add(day(1)), false},
		{"inside", []domain.Rental{booked}, base.Add(day(1)), base.Add(day(2)), true},
		{"covers", []domain.Rental{booked}, base.Add(-day(1)), base.Add(day(5)), true},
		{"overlaps tail", []domain.Rental{booked}, base.Add(day(2)), base.Add(day(5)), true},
		{"overlaps head", []domain.Rental{booked}, base.Add(-day(2)), base.Add(time.Hour), true},
		{"adjacent after", []domain.Rental{booked}, base.Add(day(3)), base.Add(day(5)), false},
		{"adjacent before", []domain.Rental{booked}, base.Add(-day(2)), base, false},
		{"other car", []domain.Rental{{RentalID: "r2", CarID: "car-2", StartDate: base, ExpectedEndDate: base.Add(day(3)), Status: domain.RentalActive}}, base, base.Add(day(1)), false},
		{
			"completed early frees the tail",
			[]domain.Rental{{RentalID: "r3", CarID: "car-1", StartDate: base, ExpectedEndDate: base.Add(day(3)), ActualEndDate: &returnedEarly, Status: domain.RentalCompleted}},
			base.Add(day(2)), base.Add(day(4)), false,
		},
		{
			"completed rental still covering the start",
			[]domain.Rental{{RentalID: "r4", CarID: "car-1", StartDate: base, ExpectedEndDate: base.Add(day(1)), ActualEndDate: &returnedEarly, Status: domain.RentalCompleted}},
			base.Add(time.Hour), base.Add(day(2)), true,
		},
		{
			"cancelled never conflicts",
			[]domain.Rental{{RentalID: "r5", CarID: "car-1", StartDate: base, ExpectedEndDate: base.Add(day(3)), ActualEndDate: &cancelledAt, Status: domain.RentalCancelled}},
			base, base.Add(day(1)), false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lifecycle.HasConflict(tt.existing, "car-1", tt.start, tt.end))
		})
	}
}

func TestReleasesCar(t *testing.T) {
	rentals := []domain.Rental{
		{RentalID: "a", CarID: "car-1", Status: domain.RentalActive},
		{RentalID: "b", CarID: "car-1", Status: domain.RentalCompleted},
	}
	assert.True(t, lifecycle.ReleasesCar("a", rentals))

	rentals = append(rentals, domain.Rental{RentalID: "c", CarID: "car-1", Status: domain.RentalActive})
	assert.False(t, lifecycle.ReleasesCar("a", rentals))
	assert.True(t, lifecycle.ReleasesCar("a", nil))
}
