package models

import "database/sql"

// Customer is the customers table row; person columns are flattened into it.
type Customer struct {
	CustomerID     int64          `db:"customer_id"`
	Identification string         `db:"identification"`
	Name           string         `db:"name"`
	Gender         sql.NullString `db:"gender"`
	Age            sql.NullInt32  `db:"age"`
	Address        sql.NullString `db:"address"`
	Phone          sql.NullString `db:"phone"`
	PasswordHash   string         `db:"password_hash"`
	Status         string         `db:"status"`
	AuditFields
}
