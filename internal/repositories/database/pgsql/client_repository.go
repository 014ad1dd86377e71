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

type PgxClientRepository struct {
	db querier
}

func newPgxClientRepository(db querier) *PgxClientRepository {
	return &PgxClientRepository{db: db}
}

var _ portsrepo.ClientReader = (*PgxClientRepository)(nil)

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `
		SELECT client_id, first_name, last_name, email, phone,
			created_at, created_by, last_updated_at, last_updated_by
		FROM clients
		WHERE client_id = $1;
	`
	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query client "+clientID, err)
	}
	client, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Client])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("client " + clientID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to collect client row", err)
	}
	d := mapping.ToDomainClient(client)
	return &d, nil
}
