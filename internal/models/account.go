package models

import (
	"github.com/shopspring/decimal"
)

// Account is the accounts table row.
type Account struct {
	AccountID      string          `db:"account_id"`
	AccountNumber  string          `db:"account_number"`
	AccountType    string          `db:"account_type"`
	InitialBalance decimal.Decimal `db:"initial_balance"`
	Status         string          `db:"status"`
	ClientID       int64           `db:"client_id"`
	AuditFields
}
