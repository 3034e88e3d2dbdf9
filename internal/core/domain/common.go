package domain

import "time"

// AuditFields tracks when an account or customer row was created and last changed.
// Movements carry a single timestamp instead, since the ledger is never updated.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// NewAuditFields stamps a freshly opened account or registered customer.
func NewAuditFields(now time.Time) AuditFields {
	return AuditFields{CreatedAt: now, LastUpdatedAt: now}
}

// Touch records a status or profile change at now.
func (a *AuditFields) Touch(now time.Time) {
	a.LastUpdatedAt = now
}
