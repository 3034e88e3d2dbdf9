package mapping

import (
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/domain"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/models"
)

// ToModelMovement converts a domain Movement to a model Movement
func ToModelMovement(d domain.Movement) models.Movement {
	return models.Movement{
		MovementID:       d.MovementID,
		AccountID:        d.AccountID,
		Timestamp:        d.Timestamp,
		Kind:             string(d.Kind),
		Magnitude:        d.Magnitude,
		ResultingBalance: d.ResultingBalance,
	}
}

// ToDomainMovement converts a model Movement to a domain Movement
func ToDomainMovement(m models.Movement) domain.Movement {
	return domain.Movement{
		MovementID:       m.MovementID,
		AccountID:        m.AccountID,
		Timestamp:        m.Timestamp.UTC(),
		Kind:             domain.MovementKind(m.Kind),
		Magnitude:        m.Magnitude,
		ResultingBalance: m.ResultingBalance,
	}
}

// ToDomainMovementRecord converts a joined movement row to a domain MovementRecord
func ToDomainMovementRecord(m models.MovementWithAccount) domain.MovementRecord {
	return domain.MovementRecord{
		Movement:      ToDomainMovement(m.Movement),
		AccountNumber: m.AccountNumber,
	}
}
