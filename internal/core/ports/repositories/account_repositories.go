package repositories

import (
	"context"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	// Returns apperrors.ErrNotFound when absent.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByClientID lists every account owned by a client, any status.
	FindAccountsByClientID(ctx context.Context, clientID int64) ([]domain.Account, error)

	// FindAccountsByClientIDAndStatus lists a client's accounts in the given status.
	FindAccountsByClientIDAndStatus(ctx context.Context, clientID int64, status domain.AccountStatus) ([]domain.Account, error)

	// ExistsByID reports whether an account with the id exists.
	ExistsByID(ctx context.Context, accountID string) (bool, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// UpdateAccountStatus changes the status of an existing account.
	UpdateAccountStatus(ctx context.Context, account domain.Account) error
}

// AccountTransactionSupport defines account operations that join a ledger transaction
type AccountTransactionSupport interface {
	// SaveAccountInTx inserts a new account within tx. A taken account number yields
	// apperrors.ErrDuplicate.
	SaveAccountInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error

	// FindAccountByIDForUpdate loads the account and locks its row until tx ends.
	FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
