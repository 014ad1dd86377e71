package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/car_rental_backend/internal/apperrors"
	"github.com/SscSPs/car_rental_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/car_rental_backend/internal/core/ports/repositories"
	"github.com/SscSPs/car_rental_backend/internal/models"
	"github.com/SscSPs/car_rental_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxRentalRepository struct {
	db querier
}

// newPgxRentalRepository creates a new repository for rental data.
func newPgxRentalRepository(db querier) *PgxRentalRepository {
	return &PgxRentalRepository{db: db}
}

var _ portsrepo.RentalRepositoryFacade = (*PgxRentalRepository)(nil)

// Every rental read loads the car and client; both are required references.
const rentalSelectQuery = `
SELECT
	r.rental_id, r.car_id, r.client_id, r.start_date, r.expected_end_date, r.actual_end_date,
	r.deposit_amount, r.total_cost, r.penalty_amount, r.status,
	r.created_at, r.created_by, r.last_updated_at, r.last_updated_by,
	c.make AS car_make, c.model AS car_model, c.year AS car_year,
	c.license_plate AS car_license_plate, c.daily_rate AS car_daily_rate,
	c.base_deposit AS car_base_deposit, c.status AS car_status,
	cl.first_name AS client_first_name, cl.last_name AS client_last_name,
	cl.email AS client_email, cl.phone AS client_phone
FROM rentals r
JOIN cars c ON c.car_id = r.car_id
JOIN clients cl ON cl.client_id = r.client_id
`

func (r *PgxRentalRepository) getRentals(ctx context.Context, filterQuery string, args ...any) ([]domain.Rental, error) {
	rows, err := r.db.Query(ctx, rentalSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query rentals", err)
	}
	defer rows.Close()
	modelRentals, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.RentalWithRelations])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Rental{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect rental rows", err)
	}
	return mapping.ToDomainRentalSlice(modelRentals), nil
}

func (r *PgxRentalRepository) SaveRental(ctx context.Context, rental domain.Rental) error {
	m := mapping.ToModelRental(rental)
	query := `
		INSERT INTO rentals (
			rental_id, car_id, client_id, start_date, expected_end_date, actual_end_date,
			deposit_amount, total_cost, penalty_amount, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.db.Exec(ctx, query,
		m.RentalID, m.CarID, m.ClientID, m.StartDate, m.ExpectedEndDate, m.ActualEndDate,
		m.DepositAmount, m.TotalCost, m.PenaltyAmount, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("rental ID " + rental.RentalID + " already exists")
		}
		if isForeignKeyViolation(err) {
			return apperrors.NewValidationFailedError("rental references an unknown car or client")
		}
		return apperrors.NewAppError(500, "failed to save rental "+rental.RentalID, err)
	}
	return nil
}

// buildRentalUpdate renders the UPDATE for the non-nil fields of patch.
// It returns an empty query when the patch changes nothing.
func buildRentalUpdate(rentalID string, patch domain.RentalPatch) (string, []any) {
	if patch.IsEmpty() {
		return "", nil
	}
	args := []any{rentalID}
	sets := make([]string, 0, 7)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Status != nil {
		set("status", string(*patch.Status))
	}
	if patch.ActualEndDate != nil {
		set("actual_end_date", *patch.ActualEndDate)
	}
	if patch.DepositAmount != nil {
		set("deposit_amount", *patch.DepositAmount)
	}
	if patch.TotalCost != nil {
		set("total_cost", *patch.TotalCost)
	}
	if patch.PenaltyAmount != nil {
		set("penalty_amount", *patch.PenaltyAmount)
	}
	set("last_updated_at", patch.UpdatedAt)
	set("last_updated_by", patch.UpdatedBy)
	return "UPDATE rentals SET " + strings.Join(sets, ", ") + " WHERE rental_id = $1", args
}

func (r *PgxRentalRepository) UpdateRental(ctx context.Context, rentalID string, patch domain.RentalPatch) error {
	query, args := buildRentalUpdate(rentalID, patch)
	if query == "" {
		return nil
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update rental "+rentalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("rental " + rentalID + " not found")
	}
	return nil
}

func (r *PgxRentalRepository) FindRentalByID(ctx context.Context, rentalID string) (*domain.Rental, error) {
	rentals, err := r.getRentals(ctx, `WHERE r.rental_id = $1`, rentalID)
	if err != nil {
		return nil, err
	}
	if len(rentals) == 0 {
		return nil, apperrors.NewNotFoundError("rental " + rentalID + " not found")
	}
	return &rentals[0], nil
}

func (r *PgxRentalRepository) ListRentalsByCarID(ctx context.Context, carID string) ([]domain.Rental, error) {
	return r.getRentals(ctx, `WHERE r.car_id = $1 ORDER BY r.start_date, r.rental_id`, carID)
}

func (r *PgxRentalRepository) ListRentalsByStatus(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error) {
	return r.getRentals(ctx, `WHERE r.status = $1 ORDER BY r.created_at, r.rental_id`, string(status))
}

// ListRentalsByDateRange returns rentals whose relevant date lies in
// [start, end]: the start date while Active, the effective end otherwise.
func (r *PgxRentalRepository) ListRentalsByDateRange(ctx context.Context, start, end time.Time) ([]domain.Rental, error) {
	where, args := relevantDateFilter(start, end)
	return r.getRentals(ctx, where+` ORDER BY r.created_at, r.rental_id`, args...)
}

// relevantDateFilter matches the date a rental is reported under. A rental
// cancelled before it began is matched on its cancellation date.
func relevantDateFilter(start, end time.Time) (string, []any) {
	where := `WHERE CASE WHEN r.status = $3 THEN r.start_date ` +
		`ELSE COALESCE(r.actual_end_date, r.expected_end_date) END BETWEEN $1 AND $2`
	return where, []any{start, end, string(domain.RentalActive)}
}

func (r *PgxRentalRepository) ListRentalsWithRelations(ctx context.Context) ([]domain.Rental, error) {
	return r.getRentals(ctx, `ORDER BY r.created_at, r.rental_id`)
}
