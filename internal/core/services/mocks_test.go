package services_test

import (
	"context"
	"time"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// mockTx stands in for a live transaction; repositories are mocked so it is never used.
type mockTx struct {
	pgx.Tx
}

// --- Account repository ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByClientID(ctx context.Context, clientID int64) ([]domain.Account, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByClientIDAndStatus(ctx context.Context, clientID int64, status domain.AccountStatus) ([]domain.Account, error) {
	args := m.Called(ctx, clientID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ExistsByID(ctx context.Context, accountID string) (bool, error) {
	args := m.Called(ctx, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) SaveAccountInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error {
	args := m.Called(ctx, tx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccountStatus(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, tx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// --- Movement repository ---

type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockMovementRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockMovementRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockMovementRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.MovementRecord, error) {
	args := m.Called(ctx, movementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MovementRecord), args.Error(1)
}

func (m *MockMovementRepository) FindLatestByAccount(ctx context.Context, accountID string) (*domain.Movement, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) FindByAccount(ctx context.Context, accountID string, limit int, afterTimestamp *time.Time, afterID string) ([]domain.MovementRecord, error) {
	args := m.Called(ctx, accountID, limit, afterTimestamp, afterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MovementRecord), args.Error(1)
}

func (m *MockMovementRepository) FindByClient(ctx context.Context, clientID int64) ([]domain.MovementRecord, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MovementRecord), args.Error(1)
}

func (m *MockMovementRepository) FindByClientAndDateRange(ctx context.Context, clientID int64, start, end time.Time) ([]domain.Movement, error) {
	args := m.Called(ctx, clientID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) ListMovements(ctx context.Context, limit int) ([]domain.MovementRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MovementRecord), args.Error(1)
}

func (m *MockMovementRepository) SaveMovement(ctx context.Context, movement domain.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) FindLatestByAccountInTx(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Movement, error) {
	args := m.Called(ctx, tx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) SaveMovementInTx(ctx context.Context, tx pgx.Tx, movement domain.Movement) error {
	args := m.Called(ctx, tx, movement)
	return args.Error(0)
}

// --- Customer repository ---

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindCustomerByIdentification(ctx context.Context, identification string) (*domain.Customer, error) {
	args := m.Called(ctx, identification)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByIdentification(ctx context.Context, identification string) (bool, error) {
	args := m.Called(ctx, identification)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	args := m.Called(ctx, customer)
	if fn, ok := args.Get(0).(func(context.Context, domain.Customer) (*domain.Customer, error)); ok {
		return fn(ctx, customer)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

// --- Service collaborators ---

// MockLedger covers the ledger and poster methods other services call.
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) CurrentBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedger) PostMovement(ctx context.Context, accountID string, value *decimal.Decimal) (*domain.MovementRecord, error) {
	args := m.Called(ctx, accountID, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MovementRecord), args.Error(1)
}

func (m *MockLedger) PostInitialDeposit(ctx context.Context, account domain.Account) (*domain.MovementRecord, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MovementRecord), args.Error(1)
}

func (m *MockLedger) OpenAccount(ctx context.Context, account domain.Account) (*domain.MovementRecord, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MovementRecord), args.Error(1)
}

// MockProvisioningAccounts covers the account operations used by the provisioner.
type MockProvisioningAccounts struct {
	mock.Mock
}

func (m *MockProvisioningAccounts) ListAccountsByClient(ctx context.Context, clientID int64) ([]domain.Account, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockProvisioningAccounts) CreateDefaultAccount(ctx context.Context, clientID int64) (*domain.Account, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishCustomerCreated(ctx context.Context, event domain.CustomerCreatedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
