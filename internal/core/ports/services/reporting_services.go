package services

import (
	"context"
	"time"

	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/domain"
)

// ReportingService defines operations for generating account statements
type ReportingService interface {
	// GenerateStatement builds the statement of a client's ACTIVE accounts for the
	// inclusive day range. Nil dates are rejected as missing.
	GenerateStatement(ctx context.Context, clientID int64, startDate, endDate *time.Time) (*domain.StatementReport, error)
}
