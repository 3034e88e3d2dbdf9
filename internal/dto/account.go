package dto

import (
	"time"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to open an account.
type CreateAccountRequest struct {
	AccountType    string           `json:"accountType" binding:"required,max=30"`
	InitialBalance *decimal.Decimal `json:"initialBalance" binding:"required,money"`
	ClientID       int64            `json:"clientId" binding:"required,gt=0"`
}

// UpdateAccountStatusRequest changes the lifecycle state of an account.
type UpdateAccountStatusRequest struct {
	Status domain.AccountStatus `json:"status" binding:"required,oneof=ACTIVE INACTIVE BLOCKED"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID      string               `json:"accountId"`
	AccountNumber  string               `json:"accountNumber"`
	AccountType    string               `json:"accountType"`
	InitialBalance decimal.Decimal      `json:"initialBalance"`
	Status         domain.AccountStatus `json:"status"`
	ClientID       int64                `json:"clientId"`
	CreatedAt      time.Time            `json:"createdAt"`
	LastUpdatedAt  time.Time            `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		AccountNumber:  acc.AccountNumber,
		AccountType:    acc.AccountType,
		InitialBalance: acc.InitialBalance,
		Status:         acc.Status,
		ClientID:       acc.ClientID,
		CreatedAt:      acc.CreatedAt,
		LastUpdatedAt:  acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// AccountBalanceResponse defines the data returned for an account balance query.
type AccountBalanceResponse struct {
	AccountID string          `json:"accountId"`
	Balance   decimal.Decimal `json:"balance"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	ClientID int64 `form:"clientId" binding:"required,gt=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
