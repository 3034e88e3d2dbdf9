package dto

import (
	"time"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/domain"
	"github.com/shopspring/decimal"
)

const reportDateLayout = "2006-01-02"

// StatementQuery defines the query parameters of a statement request.
type StatementQuery struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// StatementLineResponse is one movement in a statement.
type StatementLineResponse struct {
	ID               string              `json:"id"`
	Timestamp        time.Time           `json:"timestamp"`
	Kind             domain.MovementKind `json:"kind"`
	Magnitude        decimal.Decimal     `json:"magnitude"`
	Description      string              `json:"description"`
	ResultingBalance decimal.Decimal     `json:"resultingBalance"`
}

// AccountStatementResponse is one account in a statement.
type AccountStatementResponse struct {
	AccountID      string                  `json:"accountId"`
	AccountNumber  string                  `json:"accountNumber"`
	Type           string                  `json:"type"`
	Status         domain.AccountStatus    `json:"status"`
	CurrentBalance decimal.Decimal         `json:"currentBalance"`
	Movements      []StatementLineResponse `json:"movements"`
}

// StatementReportResponse represents the account statement report response
type StatementReportResponse struct {
	ClientID     int64                      `json:"clientId"`
	StartDate    string                     `json:"startDate"`
	EndDate      string                     `json:"endDate"`
	TotalBalance decimal.Decimal            `json:"totalBalance"`
	Accounts     []AccountStatementResponse `json:"accounts"`
}

// ToStatementReportResponse converts a domain statement to its DTO response
func ToStatementReportResponse(report *domain.StatementReport) StatementReportResponse {
	response := StatementReportResponse{
		ClientID:     report.ClientID,
		StartDate:    report.StartDate.Format(reportDateLayout),
		EndDate:      report.EndDate.Format(reportDateLayout),
		TotalBalance: report.TotalBalance,
		Accounts:     make([]AccountStatementResponse, len(report.Accounts)),
	}

	for i, acc := range report.Accounts {
		lines := make([]StatementLineResponse, len(acc.Lines))
		for j, line := range acc.Lines {
			lines[j] = StatementLineResponse{
				ID:               line.MovementID,
				Timestamp:        line.Timestamp,
				Kind:             line.Kind,
				Magnitude:        line.Magnitude,
				Description:      line.Description,
				ResultingBalance: line.ResultingBalance,
			}
		}
		response.Accounts[i] = AccountStatementResponse{
			AccountID:      acc.AccountID,
			AccountNumber:  acc.AccountNumber,
			Type:           acc.AccountType,
			Status:         acc.Status,
			CurrentBalance: acc.CurrentBalance,
			Movements:      lines,
		}
	}

	return response
}
