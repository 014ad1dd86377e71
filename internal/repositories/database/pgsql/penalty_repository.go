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
	"github.com/shopspring/decimal"
)

type PgxPenaltyRepository struct {
	db querier
}

func newPgxPenaltyRepository(db querier) *PgxPenaltyRepository {
	return &PgxPenaltyRepository{db: db}
}

var _ portsrepo.PenaltyRepositoryFacade = (*PgxPenaltyRepository)(nil)

func (r *PgxPenaltyRepository) SavePenalty(ctx context.Context, penalty domain.Penalty) error {
	m := mapping.ToModelPenalty(penalty)
	query := `
		INSERT INTO penalties (
			penalty_id, rental_id, kind, amount, reason, issued_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query,
		m.PenaltyID, m.RentalID, m.Kind, m.Amount, m.Reason, m.IssuedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("penalty ID " + penalty.PenaltyID + " already exists")
		}
		if isForeignKeyViolation(err) {
			return apperrors.NewNotFoundError("rental " + penalty.RentalID + " not found")
		}
		return apperrors.NewAppError(500, "failed to save penalty "+penalty.PenaltyID, err)
	}
	return nil
}

func (r *PgxPenaltyRepository) ListPenaltiesByRentalID(ctx context.Context, rentalID string) ([]domain.Penalty, error) {
	query := `
		SELECT penalty_id, rental_id, kind, amount, reason, issued_at,
			created_at, created_by, last_updated_at, last_updated_by
		FROM penalties
		WHERE rental_id = $1
		ORDER BY issued_at, penalty_id;
	`
	rows, err := r.db.Query(ctx, query, rentalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query penalties of rental "+rentalID, err)
	}
	defer rows.Close()
	modelPenalties, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Penalty])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Penalty{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect penalty rows", err)
	}
	return mapping.ToDomainPenaltySlice(modelPenalties), nil
}

func (r *PgxPenaltyRepository) SumPenaltiesByRentalID(ctx context.Context, rentalID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM penalties WHERE rental_id = $1;`
	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, query, rentalID).Scan(&sum); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum penalties of rental "+rentalID, err)
	}
	return sum, nil
}
