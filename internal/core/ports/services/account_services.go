package services

import (
	"context"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/domain"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccountsByClient retrieves every account owned by a client.
	ListAccountsByClient(ctx context.Context, clientID int64) ([]domain.Account, error)

	// ExistsByID reports whether the account exists.
	ExistsByID(ctx context.Context, accountID string) (bool, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount opens an account and seeds its ledger with the initial deposit.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// CreateDefaultAccount opens an ACTIVE account of the default type with a zero initial
	// balance and its zero opening movement.
	CreateDefaultAccount(ctx context.Context, clientID int64) (*domain.Account, error)

	// UpdateAccountStatus changes the lifecycle state of an account.
	UpdateAccountStatus(ctx context.Context, accountID string, req dto.UpdateAccountStatusRequest) (*domain.Account, error)
}

// AccountCalculatorSvc defines calculation operations for account data
type AccountCalculatorSvc interface {
	// GetAccountBalance returns the current balance of an existing account.
	GetAccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error)
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountCalculatorSvc
}
