package domain

import (
	"github.com/shopspring/decimal"
)

// AccountStatus is the lifecycle state of an account. Only ACTIVE accounts accept movements.
type AccountStatus string

const (
	AccountActive   AccountStatus = "ACTIVE"
	AccountInactive AccountStatus = "INACTIVE"
	AccountBlocked  AccountStatus = "BLOCKED"
)

// IsValid reports whether s is a known account status.
func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountActive, AccountInactive, AccountBlocked:
		return true
	}
	return false
}

// DefaultAccountType is used for accounts opened automatically for new customers.
const DefaultAccountType = "SAVINGS"

// Account is a client's bank account. Its available balance is never stored here;
// it is the resulting balance of the latest movement.
type Account struct {
	AccountID      string          `json:"accountID"`
	AccountNumber  string          `json:"accountNumber"` // unique, externally visible
	AccountType    string          `json:"accountType"`   // free-form category
	InitialBalance decimal.Decimal `json:"initialBalance"`
	Status         AccountStatus   `json:"status"`
	ClientID       int64           `json:"clientID"`
	AuditFields
}

// IsActive reports whether the account accepts movements.
func (a Account) IsActive() bool {
	return a.Status == AccountActive
}
