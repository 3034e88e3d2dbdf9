package mapping

import (
	"testing"
	"time"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCustomerMappingHandlesOptionalColumns(t *testing.T) {
	age := 40
	full := domain.Customer{
		CustomerID: 3,
		Status:     domain.CustomerActive,
		Person:     domain.Person{Identification: "0101", Name: "Ana", Age: &age, Phone: "099"},
	}

	m := ToModelCustomer(full)
	assert.True(t, m.Age.Valid)
	assert.True(t, m.Phone.Valid)
	assert.False(t, m.Gender.Valid, "empty strings are stored as NULL")

	back := ToDomainCustomer(m)
	assert.Equal(t, full.Person, back.Person)

	m.Age.Valid = false
	assert.Nil(t, ToDomainCustomer(m).Person.Age)
}

func TestMovementMappingNormalizesTimezone(t *testing.T) {
	loc := time.FixedZone("ECT", -5*3600)
	d := domain.Movement{
		MovementID:       "m1",
		AccountID:        "a1",
		Timestamp:        time.Date(2024, 1, 1, 8, 0, 0, 0, loc),
		Kind:             domain.Withdrawal,
		Magnitude:        decimal.RequireFromString("10"),
		ResultingBalance: decimal.RequireFromString("90"),
	}

	back := ToDomainMovement(ToModelMovement(d))

	assert.Equal(t, time.UTC, back.Timestamp.Location())
	assert.True(t, back.Timestamp.Equal(d.Timestamp))
	assert.Equal(t, domain.Withdrawal, back.Kind)
}

func TestAuditFieldsReadBackInUTC(t *testing.T) {
	loc := time.FixedZone("ECT", -5*3600)
	created := time.Date(2024, 2, 1, 9, 30, 0, 0, loc)
	audit := domain.NewAuditFields(created)
	audit.Touch(created.Add(time.Hour))

	back := ToDomainAuditFields(ToModelAuditFields(audit))

	assert.Equal(t, time.UTC, back.CreatedAt.Location())
	assert.True(t, back.CreatedAt.Equal(created))
	assert.True(t, back.LastUpdatedAt.Equal(created.Add(time.Hour)))
}
