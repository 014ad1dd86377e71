package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/car_rental_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/car_rental_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/car_rental_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CarRepository ---
type MockCarRepository struct {
	mock.Mock
}

var _ portsrepo.CarRepositoryFacade = (*MockCarRepository)(nil)

func (m *MockCarRepository) FindCarByID(ctx context.Context, carID string) (*domain.Car, error) {
	args := m.Called(ctx, carID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

func (m *MockCarRepository) ListCars(ctx context.Context) ([]domain.Car, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Car), args.Error(1)
}

func (m *MockCarRepository) ListCarsByStatus(ctx context.Context, status domain.CarStatus) ([]domain.Car, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Car), args.Error(1)
}

func (m *MockCarRepository) LockCarForUpdate(ctx context.Context, carID string) (*domain.Car, error) {
	args := m.Called(ctx, carID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// Copy so the service cannot mutate the fixture between calls.
	car := *args.Get(0).(*domain.Car)
	return &car, args.Error(1)
}

func (m *MockCarRepository) UpdateCarStatus(ctx context.Context, carID string, status domain.CarStatus) error {
	args := m.Called(ctx, carID, status)
	return args.Error(0)
}

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

var _ portsrepo.ClientReader = (*MockClientRepository)(nil)

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

// --- Mock RentalRepository ---
type MockRentalRepository struct {
	mock.Mock
}

var _ portsrepo.RentalRepositoryFacade = (*MockRentalRepository)(nil)

func (m *MockRentalRepository) FindRentalByID(ctx context.Context, rentalID string) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	rental := *args.Get(0).(*domain.Rental)
	return &rental, args.Error(1)
}

func (m *MockRentalRepository) ListRentalsByCarID(ctx context.Context, carID string) ([]domain.Rental, error) {
	args := m.Called(ctx, carID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func (m *MockRentalRepository) ListRentalsByStatus(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func (m *MockRentalRepository) ListRentalsByDateRange(ctx context.Context, start, end time.Time) ([]domain.Rental, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func (m *MockRentalRepository) ListRentalsWithRelations(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func (m *MockRentalRepository) SaveRental(ctx context.Context, rental domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}

func (m *MockRentalRepository) UpdateRental(ctx context.Context, rentalID string, patch domain.RentalPatch) error {
	args := m.Called(ctx, rentalID, patch)
	return args.Error(0)
}

// --- Mock PenaltyRepository ---
type MockPenaltyRepository struct {
	mock.Mock
}

var _ portsrepo.PenaltyRepositoryFacade = (*MockPenaltyRepository)(nil)

func (m *MockPenaltyRepository) SavePenalty(ctx context.Context, penalty domain.Penalty) error {
	args := m.Called(ctx, penalty)
	return args.Error(0)
}

func (m *MockPenaltyRepository) ListPenaltiesByRentalID(ctx context.Context, rentalID string) ([]domain.Penalty, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Penalty), args.Error(1)
}

func (m *MockPenaltyRepository) SumPenaltiesByRentalID(ctx context.Context, rentalID string) (decimal.Decimal, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Fake TransactionManager ---

// fakeTxManager runs the unit of work directly against the mocks and counts
// how it ended.
type fakeTxManager struct {
	repos      portsrepo.TxRepositories
	committed  int
	rolledBack int
}

var _ portsrepo.TransactionManager = (*fakeTxManager)(nil)

func (f *fakeTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos portsrepo.TxRepositories) error) error {
	if err := fn(ctx, f.repos); err != nil {
		f.rolledBack++
		return err
	}
	f.committed++
	return nil
}

// --- Recording EventDispatcher ---
type recordingDispatcher struct {
	mu     sync.Mutex
	events []domain.RentalEvent
}

var _ portssvc.EventDispatcher = (*recordingDispatcher)(nil)

func (d *recordingDispatcher) Dispatch(_ context.Context, e domain.RentalEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, e)
}

func (d *recordingDispatcher) Events() []domain.RentalEvent {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]domain.RentalEvent(nil), d.events...)
}
