package mapping

import (
	"database/sql"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/domain"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/models"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// ToModelCustomer converts a domain Customer to a model Customer
func ToModelCustomer(d domain.Customer) models.Customer {
	m := models.Customer{
		CustomerID:     d.CustomerID,
		Identification: d.Person.Identification,
		Name:           d.Person.Name,
		Gender:         nullString(d.Person.Gender),
		Address:        nullString(d.Person.Address),
		Phone:          nullString(d.Person.Phone),
		PasswordHash:   d.PasswordHash,
		Status:         string(d.Status),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
	if d.Person.Age != nil {
		m.Age = sql.NullInt32{Int32: int32(*d.Person.Age), Valid: true}
	}
	return m
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	d := domain.Customer{
		CustomerID: m.CustomerID,
		Status:     domain.CustomerStatus(m.Status),
		Person: domain.Person{
			Identification: m.Identification,
			Name:           m.Name,
			Gender:         m.Gender.String,
			Address:        m.Address.String,
			Phone:          m.Phone.String,
		},
		PasswordHash: m.PasswordHash,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
	if m.Age.Valid {
		age := int(m.Age.Int32)
		d.Person.Age = &age
	}
	return d
}
