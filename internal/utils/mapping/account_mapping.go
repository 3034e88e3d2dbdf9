package mapping

import (
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/domain"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:      d.AccountID,
		AccountNumber:  d.AccountNumber,
		AccountType:    d.AccountType,
		InitialBalance: d.InitialBalance,
		Status:         string(d.Status),
		ClientID:       d.ClientID,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		AccountNumber:  m.AccountNumber,
		AccountType:    m.AccountType,
		InitialBalance: m.InitialBalance,
		Status:         domain.AccountStatus(m.Status),
		ClientID:       m.ClientID,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
