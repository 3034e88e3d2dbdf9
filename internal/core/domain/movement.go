package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind classifies a movement. Deposits and withdrawals are produced by posting;
// CREDIT/DEBIT are raw tags that may appear on legacy rows in statements.
type MovementKind string

const (
	Deposit    MovementKind = "DEPOSIT"
	Withdrawal MovementKind = "WITHDRAWAL"
	Credit     MovementKind = "CREDIT"
	Debit      MovementKind = "DEBIT"
)

// IsOutflow reports whether the kind reduces the balance.
func (k MovementKind) IsOutflow() bool {
	return k == Withdrawal || k == Debit
}

// Movement is an immutable ledger entry. Magnitude is never negative and
// ResultingBalance is the account balance right after the entry was applied.
type Movement struct {
	MovementID       string          `json:"movementID"`
	AccountID        string          `json:"accountID"`
	Timestamp        time.Time       `json:"timestamp"`
	Kind             MovementKind    `json:"kind"`
	Magnitude        decimal.Decimal `json:"magnitude"`
	ResultingBalance decimal.Decimal `json:"resultingBalance"`
}

// SignedValue returns the magnitude with the sign of its effect on the balance.
func (m Movement) SignedValue() decimal.Decimal {
	if m.Kind.IsOutflow() {
		return m.Magnitude.Neg()
	}
	return m.Magnitude
}

// MovementRecord is a movement together with the account details callers see.
type MovementRecord struct {
	Movement
	AccountNumber string
}
