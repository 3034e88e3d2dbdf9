package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/apperrors"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/domain"
	portsrepo "github.com/JoelOntuDeveloper/banco-microservicios/internal/core/ports/repositories"
	portssvc "github.com/JoelOntuDeveloper/banco-microservicios/internal/core/ports/services"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/dto"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/metrics"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/utils/accounting"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	defaultMovementPageSize = 20
	maxMovementPageSize     = 100
)

// movementService implements the MovementSvcFacade interface: the balance ledger,
// the movement poster and the movement queries.
type movementService struct {
	BaseService
	movementRepo portsrepo.MovementRepositoryWithTx
	accountRepo  portsrepo.AccountRepositoryFacade
}

// MovementServiceOption is a functional option for configuring the movement service
type MovementServiceOption func(*movementService)

// WithMovementMetrics records posted and rejected movements.
func WithMovementMetrics(collector *metrics.Collector) MovementServiceOption {
	return func(s *movementService) {
		s.Metrics = collector
	}
}

// WithMovementClock overrides the clock used to timestamp movements.
func WithMovementClock(clock func() time.Time) MovementServiceOption {
	return func(s *movementService) {
		s.clock = clock
	}
}

// NewMovementService creates a new movement service with the provided options
func NewMovementService(
	movementRepo portsrepo.MovementRepositoryWithTx,
	accountRepo portsrepo.AccountRepositoryFacade,
	options ...MovementServiceOption,
) portssvc.MovementSvcFacade {
	svc := &movementService{
		movementRepo: movementRepo,
		accountRepo:  accountRepo,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure movementService implements the MovementSvcFacade interface
var _ portssvc.MovementSvcFacade = (*movementService)(nil)

// balanceFromTail reads the current balance off the latest movement of a ledger.
func balanceFromTail(latest *domain.Movement) decimal.Decimal {
	if latest == nil {
		return decimal.Zero
	}
	return latest.ResultingBalance
}

// CurrentBalance returns the resulting balance of the account's latest movement, or zero
// for an empty ledger. It never sums the history.
func (s *movementService) CurrentBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	latest, err := s.movementRepo.FindLatestByAccount(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to read ledger tail", slog.String("account_id", accountID))
		return decimal.Zero, apperrors.NewInfrastructureError("read current balance", err)
	}
	return balanceFromTail(latest), nil
}

func (s *movementService) currentBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string) (decimal.Decimal, error) {
	latest, err := s.movementRepo.FindLatestByAccountInTx(ctx, tx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to read ledger tail in transaction", slog.String("account_id", accountID))
		return decimal.Zero, apperrors.NewInfrastructureError("read current balance", err)
	}
	return balanceFromTail(latest), nil
}

// PostMovement validates the value, locks the account row, checks its state and balance,
// then appends the movement. Nothing is written unless every check passes.
func (s *movementService) PostMovement(ctx context.Context, accountID string, value *decimal.Decimal) (*domain.MovementRecord, error) {
	if err := ValidateMovementValue(value); err != nil {
		s.Metrics.RecordMovementRejected("invalid_value")
		s.LogWarn(ctx, "Movement rejected by validation",
			slog.String("account_id", accountID),
			slog.String("reason", err.Error()))
		return nil, err
	}
	kind, magnitude := accounting.ClassifyValue(*value)

	var record *domain.MovementRecord
	err := s.withinTx(ctx, func(tx pgx.Tx) error {
		account, err := s.lockAccount(ctx, tx, accountID)
		if err != nil {
			return err
		}
		if !account.IsActive() {
			s.Metrics.RecordMovementRejected("account_inactive")
			s.LogWarn(ctx, "Movement rejected on inactive account",
				slog.String("account_id", accountID),
				slog.String("status", string(account.Status)))
			return &apperrors.AccountInactiveError{AccountNumber: account.AccountNumber, Status: string(account.Status)}
		}

		current, err := s.currentBalanceInTx(ctx, tx, accountID)
		if err != nil {
			return err
		}
		if kind == domain.Withdrawal && current.LessThan(magnitude) {
			s.Metrics.RecordMovementRejected("insufficient_balance")
			s.LogWarn(ctx, "Withdrawal exceeds available balance",
				slog.String("account_id", accountID),
				slog.String("balance", current.StringFixed(2)),
				slog.String("requested", magnitude.StringFixed(2)))
			return &apperrors.InsufficientBalanceError{Current: current, Requested: magnitude}
		}

		record, err = s.appendMovement(ctx, tx, account, kind, magnitude, current)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.Metrics.RecordMovementPosted(string(kind))
	s.LogInfo(ctx, "Movement posted successfully",
		slog.String("movement_id", record.MovementID),
		slog.String("account_id", accountID),
		slog.String("kind", string(kind)),
		slog.String("balance", record.ResultingBalance.StringFixed(2)))
	return record, nil
}

// PostInitialDeposit seeds a new account's ledger with a DEPOSIT of its initial balance.
// The opening movement is recorded even for a zero balance and bypasses the value limits.
func (s *movementService) PostInitialDeposit(ctx context.Context, account domain.Account) (*domain.MovementRecord, error) {
	if account.InitialBalance.IsNegative() {
		return nil, apperrors.NewValidationError("initial balance cannot be negative")
	}

	var record *domain.MovementRecord
	err := s.withinTx(ctx, func(tx pgx.Tx) error {
		locked, err := s.lockAccount(ctx, tx, account.AccountID)
		if err != nil {
			return err
		}
		current, err := s.currentBalanceInTx(ctx, tx, locked.AccountID)
		if err != nil {
			return err
		}
		record, err = s.appendMovement(ctx, tx, locked, domain.Deposit, account.InitialBalance, current)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to post initial deposit", slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.Metrics.RecordMovementPosted(string(domain.Deposit))
	s.LogInfo(ctx, "Initial deposit posted",
		slog.String("account_id", account.AccountID),
		slog.String("amount", account.InitialBalance.StringFixed(2)))
	return record, nil
}

// OpenAccount inserts the account and its opening DEPOSIT in one transaction, so no
// account is ever stored with an empty ledger. A taken account number is returned as
// apperrors.ErrDuplicate and leaves nothing behind.
func (s *movementService) OpenAccount(ctx context.Context, account domain.Account) (*domain.MovementRecord, error) {
	if account.InitialBalance.IsNegative() {
		return nil, apperrors.NewValidationError("initial balance cannot be negative")
	}

	var record *domain.MovementRecord
	err := s.withinTx(ctx, func(tx pgx.Tx) error {
		if err := s.accountRepo.SaveAccountInTx(ctx, tx, account); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				return err
			}
			s.LogError(ctx, err, "Failed to save account", slog.String("account_id", account.AccountID))
			return apperrors.NewInfrastructureError("save account", err)
		}
		var err error
		record, err = s.appendMovement(ctx, tx, &account, domain.Deposit, account.InitialBalance, decimal.Zero)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.Metrics.RecordMovementPosted(string(domain.Deposit))
	s.LogInfo(ctx, "Account opened with initial deposit",
		slog.String("account_id", account.AccountID),
		slog.String("amount", account.InitialBalance.StringFixed(2)))
	return record, nil
}

func (s *movementService) lockAccount(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByIDForUpdate(ctx, tx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.Metrics.RecordMovementRejected("account_not_found")
			s.LogWarn(ctx, "Account not found for movement", slog.String("account_id", accountID))
			return nil, &apperrors.AccountNotFoundError{AccountID: accountID}
		}
		s.LogError(ctx, err, "Failed to lock account", slog.String("account_id", accountID))
		return nil, apperrors.NewInfrastructureError("lock account", err)
	}
	return account, nil
}

func (s *movementService) appendMovement(
	ctx context.Context,
	tx pgx.Tx,
	account *domain.Account,
	kind domain.MovementKind,
	magnitude decimal.Decimal,
	current decimal.Decimal,
) (*domain.MovementRecord, error) {
	movement := domain.Movement{
		MovementID:       uuid.NewString(),
		AccountID:        account.AccountID,
		Timestamp:        s.Now(),
		Kind:             kind,
		Magnitude:        magnitude,
		ResultingBalance: accounting.ApplyMovement(current, kind, magnitude),
	}
	if err := s.movementRepo.SaveMovementInTx(ctx, tx, movement); err != nil {
		s.LogError(ctx, err, "Failed to append movement", slog.String("account_id", account.AccountID))
		return nil, apperrors.NewInfrastructureError("save movement", err)
	}
	return &domain.MovementRecord{Movement: movement, AccountNumber: account.AccountNumber}, nil
}

// withinTx runs fn in a transaction, committing only when fn succeeds.
func (s *movementService) withinTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.movementRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin movement transaction")
		return apperrors.NewInfrastructureError("begin transaction", err)
	}
	defer func() {
		if rbErr := s.movementRepo.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to rollback movement transaction")
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := s.movementRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit movement transaction")
		return apperrors.NewInfrastructureError("commit transaction", err)
	}
	return nil
}

func (s *movementService) GetMovementByID(ctx context.Context, movementID string) (*domain.MovementRecord, error) {
	record, err := s.movementRepo.FindMovementByID(ctx, movementID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, &apperrors.MovementNotFoundError{MovementID: movementID}
		}
		s.LogError(ctx, err, "Failed to get movement", slog.String("movement_id", movementID))
		return nil, apperrors.NewInfrastructureError("get movement", err)
	}
	return record, nil
}

// ListMovementsByAccount pages through an account's ledger, newest first.
func (s *movementService) ListMovementsByAccount(ctx context.Context, accountID string, params dto.ListMovementsParams) (*dto.ListMovementsResponse, error) {
	exists, err := s.accountRepo.ExistsByID(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check account existence", slog.String("account_id", accountID))
		return nil, apperrors.NewInfrastructureError("check account", err)
	}
	if !exists {
		return nil, &apperrors.AccountNotFoundError{AccountID: accountID}
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultMovementPageSize
	}
	if limit > maxMovementPageSize {
		limit = maxMovementPageSize
	}

	var afterTimestamp *time.Time
	var afterID string
	if params.NextToken != "" {
		ts, id, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		afterTimestamp, afterID = &ts, id
	}

	// One extra row tells whether another page exists.
	records, err := s.movementRepo.FindByAccount(ctx, accountID, limit+1, afterTimestamp, afterID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list account movements", slog.String("account_id", accountID))
		return nil, apperrors.NewInfrastructureError("list account movements", err)
	}

	response := &dto.ListMovementsResponse{}
	if len(records) > limit {
		records = records[:limit]
		last := records[len(records)-1]
		response.NextToken = pagination.EncodeToken(last.Timestamp, last.MovementID)
	}
	response.Movements = dto.ToMovementResponses(records)

	s.LogDebug(ctx, "Listed account movements",
		slog.String("account_id", accountID),
		slog.Int("count", len(records)))
	return response, nil
}

func (s *movementService) ListMovementsByClient(ctx context.Context, clientID int64) ([]domain.MovementRecord, error) {
	records, err := s.movementRepo.FindByClient(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list client movements", slog.Int64("client_id", clientID))
		return nil, apperrors.NewInfrastructureError("list client movements", err)
	}
	return records, nil
}

func (s *movementService) ListMovements(ctx context.Context, limit int) ([]domain.MovementRecord, error) {
	if limit <= 0 || limit > maxMovementPageSize {
		limit = maxMovementPageSize
	}
	records, err := s.movementRepo.ListMovements(ctx, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list movements")
		return nil, apperrors.NewInfrastructureError("list movements", err)
	}
	return records, nil
}
