package lifecycle

import (
	"time"

	"github.com/SscSPs/car_rental_backend/internal/core/domain"
)

// FindConflict returns the first rental of carID whose occupied interval
// intersects [start, end), or nil.
//
// A rental occupies [StartDate, EffectiveEndDate). Cancelled rentals and
// rentals that ended before start never conflict. Intervals are half-open, so
// a booking starting exactly when another ends is allowed.
func FindConflict(existing []domain.Rental, carID string, start, end time.Time) *domain.Rental {
	for i := range existing {
		r := &existing[i]
		if r.CarID != carID || r.Status == domain.RentalCancelled {
			continue
		}
		effectiveEnd := r.EffectiveEndDate()
		if effectiveEnd.Before(start) {
			continue
		}
		if r.StartDate.Before(end) && start.Before(effectiveEnd) {
			return r
		}
	}
	return nil
}

// HasConflict reports whether FindConflict finds anything.
func HasConflict(existing []domain.Rental, carID string, start, end time.Time) bool {
	return FindConflict(existing, carID, start, end) != nil
}

// ReleasesCar reports whether finishing rentalID leaves its car without any
// other active rental, so the car can go back to Available.
func ReleasesCar(rentalID string, carRentals []domain.Rental) bool {
	for _, r := range carRentals {
		if r.RentalID != rentalID && r.IsActive() {
			return false
		}
	}
	return true
}
