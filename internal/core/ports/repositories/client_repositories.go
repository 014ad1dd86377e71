package repositories

import (
	"context"

	"github.com/SscSPs/car_rental_backend/internal/core/domain"
)

// ClientReader defines read operations for client data. Clients are owned
// elsewhere; the rental engine only reads them.
type ClientReader interface {
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)
}
