package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/apperrors"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/domain"
	portsrepo "github.com/JoelOntuDeveloper/banco-microservicios/internal/core/ports/repositories"
	portssvc "github.com/JoelOntuDeveloper/banco-microservicios/internal/core/ports/services"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/dto"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/metrics"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxAccountNumberAttempts bounds the retries on an account number collision.
const maxAccountNumberAttempts = 5

// accountLedger is the slice of the movement service the account service depends on.
type accountLedger interface {
	portssvc.BalanceLedgerSvc
	OpenAccount(ctx context.Context, account domain.Account) (*domain.MovementRecord, error)
}

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo        portsrepo.AccountRepositoryFacade
	ledger             accountLedger
	defaultAccountType string
	numberGenerator    func() (string, error)
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithDefaultAccountType sets the type used for automatically provisioned accounts.
func WithDefaultAccountType(accountType string) AccountServiceOption {
	return func(s *accountService) {
		if strings.TrimSpace(accountType) != "" {
			s.defaultAccountType = accountType
		}
	}
}

// WithAccountNumberGenerator replaces the random account number source.
func WithAccountNumberGenerator(gen func() (string, error)) AccountServiceOption {
	return func(s *accountService) {
		s.numberGenerator = gen
	}
}

// WithAccountMetrics attaches a metrics collector.
func WithAccountMetrics(collector *metrics.Collector) AccountServiceOption {
	return func(s *accountService) {
		s.Metrics = collector
	}
}

// WithAccountClock overrides the clock used for audit fields.
func WithAccountClock(clock func() time.Time) AccountServiceOption {
	return func(s *accountService) {
		s.clock = clock
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(
	repo portsrepo.AccountRepositoryFacade,
	ledger accountLedger,
	options ...AccountServiceOption,
) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo:        repo,
		ledger:             ledger,
		defaultAccountType: domain.DefaultAccountType,
		numberGenerator:    utils.GenerateAccountNumber,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount opens an account for a client and seeds its ledger with the initial deposit.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	if req.ClientID <= 0 {
		return nil, apperrors.NewValidationError("clientId must be positive")
	}
	if req.InitialBalance == nil {
		return nil, apperrors.NewValidationError("initialBalance is required")
	}
	if req.InitialBalance.IsNegative() {
		return nil, apperrors.NewValidationError("initialBalance cannot be negative")
	}
	if !hasMoneyPrecision(*req.InitialBalance) {
		return nil, apperrors.NewValidationError("initialBalance allows at most 2 decimal places")
	}

	accountType := strings.TrimSpace(req.AccountType)
	if accountType == "" {
		accountType = s.defaultAccountType
	}

	return s.openAccount(ctx, req.ClientID, accountType, *req.InitialBalance)
}

// CreateDefaultAccount opens an ACTIVE account of the default type with a zero initial
// balance, seeded with a zero opening deposit.
func (s *accountService) CreateDefaultAccount(ctx context.Context, clientID int64) (*domain.Account, error) {
	if clientID <= 0 {
		return nil, apperrors.NewValidationError("clientId must be positive")
	}
	return s.openAccount(ctx, clientID, s.defaultAccountType, decimal.Zero)
}

// openAccount stores a new ACTIVE account with its opening deposit, drawing a fresh
// number on collision.
func (s *accountService) openAccount(ctx context.Context, clientID int64, accountType string, initialBalance decimal.Decimal) (*domain.Account, error) {
	now := s.Now()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		AccountType:    accountType,
		InitialBalance: initialBalance,
		Status:         domain.AccountActive,
		ClientID:       clientID,
		AuditFields: domain.NewAuditFields(now),
	}

	for attempt := 1; attempt <= maxAccountNumberAttempts; attempt++ {
		number, err := s.numberGenerator()
		if err != nil {
			s.LogError(ctx, err, "Failed to generate account number")
			return nil, apperrors.NewInfrastructureError("generate account number", err)
		}
		account.AccountNumber = number

		_, err = s.ledger.OpenAccount(ctx, account)
		if err == nil {
			s.LogInfo(ctx, "Account created successfully",
				slog.String("account_id", account.AccountID),
				slog.String("account_number", account.AccountNumber),
				slog.Int64("client_id", clientID))
			return &account, nil
		}
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to open account",
				slog.String("account_id", account.AccountID),
				slog.Int64("client_id", clientID))
			return nil, err
		}
		s.LogWarn(ctx, "Account number collision, retrying",
			slog.String("account_number", number),
			slog.Int("attempt", attempt))
	}

	return nil, apperrors.NewInfrastructureError("generate account number",
		errors.New("no unique account number after retries"))
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, &apperrors.AccountNotFoundError{AccountID: accountID}
		}
		s.LogError(ctx, err, "Failed to find account by ID", slog.String("account_id", accountID))
		return nil, apperrors.NewInfrastructureError("find account", err)
	}
	return account, nil
}

func (s *accountService) ListAccountsByClient(ctx context.Context, clientID int64) ([]domain.Account, error) {
	accounts, err := s.accountRepo.FindAccountsByClientID(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list client accounts", slog.Int64("client_id", clientID))
		return nil, apperrors.NewInfrastructureError("list accounts", err)
	}
	return accounts, nil
}

func (s *accountService) ExistsByID(ctx context.Context, accountID string) (bool, error) {
	exists, err := s.accountRepo.ExistsByID(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check account existence", slog.String("account_id", accountID))
		return false, apperrors.NewInfrastructureError("check account", err)
	}
	return exists, nil
}

func (s *accountService) UpdateAccountStatus(ctx context.Context, accountID string, req dto.UpdateAccountStatusRequest) (*domain.Account, error) {
	status := domain.AccountStatus(strings.ToUpper(strings.TrimSpace(string(req.Status))))
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status must be one of ACTIVE, INACTIVE, BLOCKED")
	}

	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Status == status {
		return account, nil
	}

	previous := account.Status
	account.Status = status
	account.Touch(s.Now())
	if err := s.accountRepo.UpdateAccountStatus(ctx, *account); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, &apperrors.AccountNotFoundError{AccountID: accountID}
		}
		s.LogError(ctx, err, "Failed to update account status", slog.String("account_id", accountID))
		return nil, apperrors.NewInfrastructureError("update account status", err)
	}

	s.LogInfo(ctx, "Account status changed",
		slog.String("account_id", accountID),
		slog.String("from", string(previous)),
		slog.String("to", string(status)))
	return account, nil
}

// GetAccountBalance returns the ledger balance of an existing account.
func (s *accountService) GetAccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	exists, err := s.ExistsByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	if !exists {
		return decimal.Zero, &apperrors.AccountNotFoundError{AccountID: accountID}
	}
	return s.ledger.CurrentBalance(ctx, accountID)
}
