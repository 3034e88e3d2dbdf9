package services

import (
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/apperrors"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/utils"
	"github.com/shopspring/decimal"
)

var (
	minMovementValue = decimal.RequireFromString("0.01")
	maxMovementValue = decimal.RequireFromString("1000000.00")
)

// ValidateMovementValue checks a requested movement value. Rules run in order and
// the first failure is returned as an *apperrors.InvalidMovementError.
func ValidateMovementValue(value *decimal.Decimal) error {
	if value == nil {
		return apperrors.NewInvalidMovementError("value required")
	}
	if value.IsZero() {
		return apperrors.NewInvalidMovementError("value cannot be zero")
	}
	magnitude := value.Abs()
	if magnitude.LessThan(minMovementValue) {
		return apperrors.NewInvalidMovementError("minimum value is 0.01")
	}
	if magnitude.GreaterThan(maxMovementValue) {
		return apperrors.NewInvalidMovementError("maximum value is 1,000,000.00")
	}
	if !hasMoneyPrecision(magnitude) {
		return apperrors.NewInvalidMovementError("at most 2 decimal places are allowed")
	}
	return nil
}

// hasMoneyPrecision reports whether d is representable in a NUMERIC(19,2) column
// without rounding.
func hasMoneyPrecision(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(utils.MoneyPrecision))
}
