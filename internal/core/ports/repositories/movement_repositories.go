package repositories

import (
	"context"
	"time"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// MovementReader defines read operations for the movement ledger.
// Every listing is ordered newest first.
type MovementReader interface {
	// FindMovementByID returns the movement with its account number, or apperrors.ErrNotFound.
	FindMovementByID(ctx context.Context, movementID string) (*domain.MovementRecord, error)

	// FindLatestByAccount returns the tail of the account's ledger, or nil when it is empty.
	FindLatestByAccount(ctx context.Context, accountID string) (*domain.Movement, error)

	// FindByAccount lists an account's movements. When afterTimestamp is set, only movements
	// strictly older than (afterTimestamp, afterID) are returned.
	FindByAccount(ctx context.Context, accountID string, limit int, afterTimestamp *time.Time, afterID string) ([]domain.MovementRecord, error)

	// FindByClient lists the movements of every account owned by the client.
	FindByClient(ctx context.Context, clientID int64) ([]domain.MovementRecord, error)

	// FindByClientAndDateRange lists the client's movements with start <= timestamp <= end.
	FindByClientAndDateRange(ctx context.Context, clientID int64, start, end time.Time) ([]domain.Movement, error)

	// ListMovements lists the most recent movements across all accounts.
	ListMovements(ctx context.Context, limit int) ([]domain.MovementRecord, error)
}

// MovementWriter appends to the ledger. Movements are never updated or deleted.
type MovementWriter interface {
	// SaveMovement appends a movement outside any caller transaction.
	SaveMovement(ctx context.Context, movement domain.Movement) error
}

// MovementTransactionSupport defines ledger operations that run inside a caller's transaction.
type MovementTransactionSupport interface {
	// FindLatestByAccountInTx is FindLatestByAccount bound to tx.
	FindLatestByAccountInTx(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Movement, error)

	// SaveMovementInTx appends a movement within tx.
	SaveMovementInTx(ctx context.Context, tx pgx.Tx, movement domain.Movement) error
}

// MovementRepositoryFacade combines all movement-related repository interfaces
type MovementRepositoryFacade interface {
	MovementReader
	MovementWriter
	MovementTransactionSupport
}

// MovementRepositoryWithTx extends MovementRepositoryFacade with transaction capabilities
type MovementRepositoryWithTx interface {
	MovementRepositoryFacade
	TransactionManager
}
