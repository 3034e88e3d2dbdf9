package dto

import (
	"time"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMovementRequest carries a signed value: positive deposits, negative withdraws.
// Value is validated by the movement service, not by binding, so that every
// rejection carries the same error shape.
type CreateMovementRequest struct {
	Value *decimal.Decimal `json:"value"`
}

// MovementResponse defines the data returned for a movement.
// Value is signed while the stored magnitude is not.
type MovementResponse struct {
	MovementID    string              `json:"movementId"`
	Timestamp     time.Time           `json:"timestamp"`
	Kind          domain.MovementKind `json:"kind"`
	Value         decimal.Decimal     `json:"value"`
	Balance       decimal.Decimal     `json:"balance"`
	AccountID     string              `json:"accountId"`
	AccountNumber string              `json:"accountNumber"`
}

// ToMovementResponse converts a domain.MovementRecord to MovementResponse DTO.
func ToMovementResponse(m *domain.MovementRecord) MovementResponse {
	return MovementResponse{
		MovementID:    m.MovementID,
		Timestamp:     m.Timestamp,
		Kind:          m.Kind,
		Value:         m.SignedValue(),
		Balance:       m.ResultingBalance,
		AccountID:     m.AccountID,
		AccountNumber: m.AccountNumber,
	}
}

// ToMovementResponses converts a slice of domain.MovementRecord to []MovementResponse.
func ToMovementResponses(records []domain.MovementRecord) []MovementResponse {
	responses := make([]MovementResponse, len(records))
	for i, rec := range records {
		responses[i] = ToMovementResponse(&rec)
	}
	return responses
}

// ListMovementsParams defines query parameters for listing movements.
type ListMovementsParams struct {
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// ListMovementsResponse wraps a page of movements.
type ListMovementsResponse struct {
	Movements []MovementResponse `json:"movements"`
	NextToken string             `json:"nextToken,omitempty"`
}
