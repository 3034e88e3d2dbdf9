package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/apperrors"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/domain"
	portsrepo "github.com/JoelOntuDeveloper/banco-microservicios/internal/core/ports/repositories"
	portssvc "github.com/JoelOntuDeveloper/banco-microservicios/internal/core/ports/services"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/metrics"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	accountRepo  portsrepo.AccountReader
	movementRepo portsrepo.MovementReader
	ledger       portssvc.BalanceLedgerSvc
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingClock sets the clock that decides what "today" is.
func WithReportingClock(clock func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.clock = clock
	}
}

// WithReportingMetrics counts generated statements.
func WithReportingMetrics(collector *metrics.Collector) ReportingServiceOption {
	return func(s *reportingService) {
		s.Metrics = collector
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(
	accountRepo portsrepo.AccountReader,
	movementRepo portsrepo.MovementReader,
	ledger portssvc.BalanceLedgerSvc,
	options ...ReportingServiceOption,
) portssvc.ReportingService {
	svc := &reportingService{
		accountRepo:  accountRepo,
		movementRepo: movementRepo,
		ledger:       ledger,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// validateStatementRange checks the requested period before any query runs.
func (s *reportingService) validateStatementRange(startDate, endDate *time.Time) error {
	if startDate == nil || endDate == nil {
		return apperrors.NewInvalidDateRangeError("dates required")
	}
	start, end := startOfDay(*startDate), startOfDay(*endDate)
	if start.After(end) {
		return apperrors.NewInvalidDateRangeError("start after end")
	}
	if start.AddDate(1, 0, 0).Before(end) {
		return apperrors.NewInvalidDateRangeError("range too large")
	}
	today := startOfDay(s.Now())
	if start.After(today) || end.After(today) {
		return apperrors.NewInvalidDateRangeError("future dates")
	}
	return nil
}

// GenerateStatement builds the client's statement. Each account carries its live current
// balance, not the balance as of endDate; only the movement lines are limited to the period.
func (s *reportingService) GenerateStatement(ctx context.Context, clientID int64, startDate, endDate *time.Time) (*domain.StatementReport, error) {
	if err := s.validateStatementRange(startDate, endDate); err != nil {
		s.LogWarn(ctx, "Statement rejected", slog.Int64("client_id", clientID), slog.String("reason", err.Error()))
		return nil, err
	}

	accounts, err := s.accountRepo.FindAccountsByClientIDAndStatus(ctx, clientID, domain.AccountActive)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch active accounts", slog.Int64("client_id", clientID))
		return nil, apperrors.NewInfrastructureError("fetch active accounts", err)
	}
	if len(accounts) == 0 {
		return nil, &apperrors.NoAccountsFoundError{ClientID: clientID}
	}

	from, to := startOfDay(*startDate), endOfDay(*endDate)
	noMovements := &apperrors.NoMovementsFoundError{
		ClientID: clientID,
		Start:    from.Format(dateLayout),
		End:      to.Format(dateLayout),
	}

	movements, err := s.movementRepo.FindByClientAndDateRange(ctx, clientID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch movements in range", slog.Int64("client_id", clientID))
		return nil, apperrors.NewInfrastructureError("fetch movements", err)
	}
	if len(movements) == 0 {
		return nil, noMovements
	}

	grouped := make(map[string][]domain.StatementLine, len(accounts))
	for _, m := range movements {
		grouped[m.AccountID] = append(grouped[m.AccountID], domain.StatementLine{
			MovementID:       m.MovementID,
			Timestamp:        m.Timestamp,
			Kind:             m.Kind,
			Magnitude:        m.Magnitude,
			Description:      accounting.DescribeMovement(m.Kind, m.Magnitude),
			ResultingBalance: m.ResultingBalance,
		})
	}

	report := &domain.StatementReport{
		ClientID:     clientID,
		StartDate:    from,
		EndDate:      startOfDay(to),
		TotalBalance: decimal.Zero,
		Accounts:     make([]domain.AccountStatement, 0, len(accounts)),
	}
	withLines := 0
	for _, account := range accounts {
		balance, err := s.ledger.CurrentBalance(ctx, account.AccountID)
		if err != nil {
			return nil, err
		}
		lines := grouped[account.AccountID]
		if len(lines) > 0 {
			withLines++
		} else {
			lines = []domain.StatementLine{}
		}
		report.Accounts = append(report.Accounts, domain.AccountStatement{
			AccountID:      account.AccountID,
			AccountNumber:  account.AccountNumber,
			AccountType:    account.AccountType,
			Status:         account.Status,
			CurrentBalance: balance,
			Lines:          lines,
		})
		report.TotalBalance = report.TotalBalance.Add(balance)
	}

	// Movements in range may all belong to accounts that are no longer ACTIVE.
	if withLines == 0 {
		return nil, noMovements
	}

	s.Metrics.RecordStatementGenerated()
	s.LogInfo(ctx, "Statement generated",
		slog.Int64("client_id", clientID),
		slog.Int("accounts", len(report.Accounts)),
		slog.Int("movements", len(movements)))
	return report, nil
}
