package services

import (
	"context"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/domain"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/dto"
	"github.com/shopspring/decimal"
)

// BalanceLedgerSvc answers "what is the balance now" from the ledger tail.
type BalanceLedgerSvc interface {
	// CurrentBalance returns the resulting balance of the latest movement, or zero.
	CurrentBalance(ctx context.Context, accountID string) (decimal.Decimal, error)
}

// MovementPosterSvc appends movements to an account's ledger.
type MovementPosterSvc interface {
	// PostMovement validates and applies a signed value to an ACTIVE account.
	PostMovement(ctx context.Context, accountID string, value *decimal.Decimal) (*domain.MovementRecord, error)

	// PostInitialDeposit records the opening DEPOSIT of a freshly created account.
	PostInitialDeposit(ctx context.Context, account domain.Account) (*domain.MovementRecord, error)

	// OpenAccount inserts a new account together with its opening DEPOSIT. Either both
	// are stored or neither is.
	OpenAccount(ctx context.Context, account domain.Account) (*domain.MovementRecord, error)
}

// MovementReaderSvc defines read operations for movements.
type MovementReaderSvc interface {
	GetMovementByID(ctx context.Context, movementID string) (*domain.MovementRecord, error)
	ListMovementsByAccount(ctx context.Context, accountID string, params dto.ListMovementsParams) (*dto.ListMovementsResponse, error)
	ListMovementsByClient(ctx context.Context, clientID int64) ([]domain.MovementRecord, error)
	ListMovements(ctx context.Context, limit int) ([]domain.MovementRecord, error)
}

// MovementSvcFacade combines all movement-related service interfaces
type MovementSvcFacade interface {
	BalanceLedgerSvc
	MovementPosterSvc
	MovementReaderSvc
}
