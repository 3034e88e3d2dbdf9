package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementLine is one movement as shown on a statement.
type StatementLine struct {
	MovementID       string          `json:"id"`
	Timestamp        time.Time       `json:"timestamp"`
	Kind             MovementKind    `json:"kind"`
	Magnitude        decimal.Decimal `json:"magnitude"`
	Description      string          `json:"description"`
	ResultingBalance decimal.Decimal `json:"resultingBalance"`
}

// AccountStatement summarises one account inside a statement.
// CurrentBalance is the live balance, not the balance at the end of the period.
type AccountStatement struct {
	AccountID      string          `json:"accountID"`
	AccountNumber  string          `json:"accountNumber"`
	AccountType    string          `json:"accountType"`
	Status         AccountStatus   `json:"status"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	Lines          []StatementLine `json:"movements"`
}

// StatementReport is a client-scoped view of balances and in-period movements.
type StatementReport struct {
	ClientID     int64              `json:"clientID"`
	StartDate    time.Time          `json:"startDate"`
	EndDate      time.Time          `json:"endDate"`
	TotalBalance decimal.Decimal    `json:"totalBalance"`
	Accounts     []AccountStatement `json:"accounts"`
}
