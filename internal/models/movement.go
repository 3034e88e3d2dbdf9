package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement is the movements table row. Rows are insert-only.
type Movement struct {
	MovementID       string          `db:"movement_id"`
	AccountID        string          `db:"account_id"`
	Timestamp        time.Time       `db:"occurred_at"`
	Kind             string          `db:"kind"`
	Magnitude        decimal.Decimal `db:"magnitude"`
	ResultingBalance decimal.Decimal `db:"resulting_balance"`
}

// MovementWithAccount is a movement joined with its account number.
type MovementWithAccount struct {
	Movement
	AccountNumber string `db:"account_number"`
}
