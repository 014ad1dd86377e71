package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/car_rental_backend/internal/apperrors"
	"github.com/SscSPs/car_rental_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/car_rental_backend/internal/core/ports/repositories"
	"github.com/SscSPs/car_rental_backend/internal/models"
	"github.com/SscSPs/car_rental_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxCarRepository struct {
	db querier
}

// newPgxCarRepository creates a new repository for car data.
func newPgxCarRepository(db querier) *PgxCarRepository {
	return &PgxCarRepository{db: db}
}

var _ portsrepo.CarRepositoryFacade = (*PgxCarRepository)(nil)

const carSelectQuery = `
SELECT
	c.car_id, c.make, c.model, c.year, c.license_plate, c.daily_rate, c.base_deposit, c.status,
	c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
FROM cars c
`

// getCars runs the car select with the given filter.
func (r *PgxCarRepository) getCars(ctx context.Context, filterQuery string, args ...any) ([]domain.Car, error) {
	rows, err := r.db.Query(ctx, carSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query cars", err)
	}
	defer rows.Close()
	modelCars, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Car])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Car{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect car rows", err)
	}
	return mapping.ToDomainCarSlice(modelCars), nil
}

func (r *PgxCarRepository) findOne(ctx context.Context, filterQuery string, carID string) (*domain.Car, error) {
	cars, err := r.getCars(ctx, filterQuery, carID)
	if err != nil {
		return nil, err
	}
	if len(cars) == 0 {
		return nil, apperrors.NewNotFoundError("car " + carID + " not found")
	}
	return &cars[0], nil
}

func (r *PgxCarRepository) FindCarByID(ctx context.Context, carID string) (*domain.Car, error) {
	return r.findOne(ctx, `WHERE c.car_id = $1`, carID)
}

// LockCarForUpdate only holds the lock when r is bound to a transaction.
func (r *PgxCarRepository) LockCarForUpdate(ctx context.Context, carID string) (*domain.Car, error) {
	return r.findOne(ctx, `WHERE c.car_id = $1 FOR UPDATE`, carID)
}

func (r *PgxCarRepository) ListCars(ctx context.Context) ([]domain.Car, error) {
	return r.getCars(ctx, `ORDER BY c.created_at, c.car_id`)
}

func (r *PgxCarRepository) ListCarsByStatus(ctx context.Context, status domain.CarStatus) ([]domain.Car, error) {
	return r.getCars(ctx, `WHERE c.status = $1 ORDER BY c.created_at, c.car_id`, string(status))
}

func (r *PgxCarRepository) UpdateCarStatus(ctx context.Context, carID string, status domain.CarStatus) error {
	query := `
		UPDATE cars
		SET status = $2, last_updated_at = NOW()
		WHERE car_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, carID, string(status))
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of car "+carID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("car " + carID + " not found")
	}
	return nil
}
