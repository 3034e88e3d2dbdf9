package services_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/apperrors"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/domain"
	portssvc "github.com/JoelOntuDeveloper/banco-microservicios/internal/core/ports/services"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// ledgerMovements filters an in-memory ledger by client and inclusive time span.
type ledgerMovements struct {
	*MockMovementRepository
	owners    map[string]int64
	movements []domain.Movement
}

func (r *ledgerMovements) FindByClientAndDateRange(_ context.Context, clientID int64, start, end time.Time) ([]domain.Movement, error) {
	var out []domain.Movement
	for _, m := range r.movements {
		if r.owners[m.AccountID] != clientID {
			continue
		}
		if m.Timestamp.Before(start) || m.Timestamp.After(end) {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func day(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

type ReportingServiceTestSuite struct {
	suite.Suite
	accountRepo *MockAccountRepository
	movements   *ledgerMovements
	ledger      *MockLedger
	service     portssvc.ReportingService
	accounts    []domain.Account
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.accountRepo = new(MockAccountRepository)
	suite.ledger = new(MockLedger)
	suite.accounts = []domain.Account{
		{AccountID: "acc-1", AccountNumber: "4780000001", AccountType: "SAVINGS", Status: domain.AccountActive, ClientID: 7},
		{AccountID: "acc-2", AccountNumber: "4780000002", AccountType: "CHECKING", Status: domain.AccountActive, ClientID: 7},
	}
	suite.movements = &ledgerMovements{
		MockMovementRepository: new(MockMovementRepository),
		owners:                 map[string]int64{"acc-1": 7, "acc-2": 7, "acc-x": 8},
		movements: []domain.Movement{
			{MovementID: "m0", AccountID: "acc-1", Timestamp: at("2024-01-15T12:00:00Z"), Kind: domain.Deposit, Magnitude: dec("1000"), ResultingBalance: dec("1000")},
			{MovementID: "m1", AccountID: "acc-1", Timestamp: at("2024-01-16T00:00:00Z"), Kind: domain.Withdrawal, Magnitude: dec("200"), ResultingBalance: dec("800")},
			{MovementID: "m2", AccountID: "acc-1", Timestamp: at("2024-01-25T23:59:59Z"), Kind: domain.Deposit, Magnitude: dec("50.5"), ResultingBalance: dec("850.5")},
			{MovementID: "m3", AccountID: "acc-1", Timestamp: at("2024-01-27T08:00:00Z"), Kind: domain.Deposit, Magnitude: dec("100"), ResultingBalance: dec("950.5")},
			{MovementID: "x1", AccountID: "acc-x", Timestamp: at("2024-01-20T08:00:00Z"), Kind: domain.Deposit, Magnitude: dec("9"), ResultingBalance: dec("9")},
		},
	}
	suite.service = services.NewReportingService(
		suite.accountRepo,
		suite.movements,
		suite.ledger,
		services.WithReportingClock(func() time.Time { return at("2024-02-01T10:00:00Z") }),
	)
}

func (suite *ReportingServiceTestSuite) TestGenerateStatement_FiltersRangeAndSumsBalances() {
	ctx := context.Background()
	suite.accountRepo.On("FindAccountsByClientIDAndStatus", ctx, int64(7), domain.AccountActive).Return(suite.accounts, nil).Once()
	suite.ledger.On("CurrentBalance", ctx, "acc-1").Return(dec("950.5"), nil).Once()
	suite.ledger.On("CurrentBalance", ctx, "acc-2").Return(dec("49.5"), nil).Once()

	report, err := suite.service.GenerateStatement(ctx, 7, day("2024-01-16"), day("2024-01-25"))

	suite.Require().NoError(err)
	suite.Equal(int64(7), report.ClientID)
	suite.Require().Len(report.Accounts, 2)

	first := report.Accounts[0]
	suite.Equal("acc-1", first.AccountID)
	suite.Require().Len(first.Lines, 2)
	suite.Equal("m2", first.Lines[0].MovementID, "newest first")
	suite.Equal("m1", first.Lines[1].MovementID)
	suite.Equal("Credit of $50.50", first.Lines[0].Description)
	suite.Equal("Debit of $200.00", first.Lines[1].Description)
	for _, line := range first.Lines {
		suite.NotEqual("m0", line.MovementID)
		suite.NotEqual("m3", line.MovementID)
	}

	// Live balance, not the balance at the end of the period.
	suite.True(first.CurrentBalance.Equal(dec("950.5")))
	suite.Empty(report.Accounts[1].Lines)

	sum := decimal.Zero
	for _, a := range report.Accounts {
		sum = sum.Add(a.CurrentBalance)
	}
	suite.True(report.TotalBalance.Equal(sum))
	suite.True(report.TotalBalance.Equal(dec("1000")))
	suite.ledger.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGenerateStatement_SingleDay() {
	ctx := context.Background()
	suite.accountRepo.On("FindAccountsByClientIDAndStatus", ctx, int64(7), domain.AccountActive).Return(suite.accounts[:1], nil).Once()
	suite.ledger.On("CurrentBalance", ctx, "acc-1").Return(dec("950.5"), nil).Once()

	report, err := suite.service.GenerateStatement(ctx, 7, day("2024-01-15"), day("2024-01-15"))

	suite.Require().NoError(err)
	suite.Require().Len(report.Accounts[0].Lines, 1)
	suite.Equal("m0", report.Accounts[0].Lines[0].MovementID)
}

func (suite *ReportingServiceTestSuite) TestGenerateStatement_InvalidRanges() {
	tests := []struct {
		name       string
		start, end *time.Time
		reason     string
	}{
		{"missing start", nil, day("2024-01-10"), "dates required"},
		{"missing end", day("2024-01-10"), nil, "dates required"},
		{"start after end", day("2024-01-20"), day("2024-01-10"), "start after end"},
		{"over a year", day("2022-01-01"), day("2023-01-02"), "range too large"},
		{"future end", day("2024-01-20"), day("2024-02-02"), "future dates"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.GenerateStatement(context.Background(), 7, tt.start, tt.end)

			var invalid *apperrors.InvalidDateRangeError
			suite.Require().ErrorAs(err, &invalid)
			suite.Equal(tt.reason, invalid.Reason)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.accountRepo.AssertNotCalled(suite.T(), "FindAccountsByClientIDAndStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestGenerateStatement_ExactlyOneYearAndToday() {
	ctx := context.Background()
	suite.accountRepo.On("FindAccountsByClientIDAndStatus", ctx, int64(9), domain.AccountActive).Return([]domain.Account{}, nil).Twice()

	_, err := suite.service.GenerateStatement(ctx, 9, day("2023-01-01"), day("2024-01-01"))
	suite.ErrorIs(err, apperrors.ErrNotFound, "a one-year span passes validation")

	_, err = suite.service.GenerateStatement(ctx, 9, day("2024-01-01"), day("2024-02-01"))
	suite.ErrorIs(err, apperrors.ErrNotFound, "today is not a future date")
}

func (suite *ReportingServiceTestSuite) TestGenerateStatement_NoAccounts() {
	ctx := context.Background()
	suite.accountRepo.On("FindAccountsByClientIDAndStatus", ctx, int64(7), domain.AccountActive).Return([]domain.Account{}, nil).Once()

	_, err := suite.service.GenerateStatement(ctx, 7, day("2024-01-16"), day("2024-01-25"))

	var noAccounts *apperrors.NoAccountsFoundError
	suite.Require().ErrorAs(err, &noAccounts)
	suite.Equal(int64(7), noAccounts.ClientID)
}

func (suite *ReportingServiceTestSuite) TestGenerateStatement_NoMovements() {
	ctx := context.Background()
	suite.accountRepo.On("FindAccountsByClientIDAndStatus", ctx, int64(7), domain.AccountActive).Return(suite.accounts, nil).Once()

	_, err := suite.service.GenerateStatement(ctx, 7, day("2024-01-01"), day("2024-01-10"))

	var noMovements *apperrors.NoMovementsFoundError
	suite.Require().ErrorAs(err, &noMovements)
	suite.Equal("2024-01-01", noMovements.Start)
	suite.Equal("2024-01-10", noMovements.End)
	suite.ledger.AssertNotCalled(suite.T(), "CurrentBalance", mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestGenerateStatement_MovementsOnlyOnInactiveAccounts() {
	ctx := context.Background()
	onlyOther := []domain.Account{suite.accounts[1]}
	suite.accountRepo.On("FindAccountsByClientIDAndStatus", ctx, int64(7), domain.AccountActive).Return(onlyOther, nil).Once()
	suite.ledger.On("CurrentBalance", ctx, "acc-2").Return(dec("10"), nil).Once()

	_, err := suite.service.GenerateStatement(ctx, 7, day("2024-01-16"), day("2024-01-25"))

	var noMovements *apperrors.NoMovementsFoundError
	suite.ErrorAs(err, &noMovements)
}

func (suite *ReportingServiceTestSuite) TestGenerateStatement_AccountLookupFails() {
	ctx := context.Background()
	suite.accountRepo.On("FindAccountsByClientIDAndStatus", ctx, int64(7), domain.AccountActive).Return(nil, assert.AnError).Once()

	_, err := suite.service.GenerateStatement(ctx, 7, day("2024-01-16"), day("2024-01-25"))

	suite.ErrorIs(err, apperrors.ErrInternal)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
