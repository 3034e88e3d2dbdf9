package accounting

import (
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/core/domain"
	"github.com/JoelOntuDeveloper/banco-microservicios/internal/utils"
	"github.com/shopspring/decimal"
)

// ClassifyValue splits a requested signed value into its kind and unsigned magnitude.
// Strictly positive values are deposits; anything else is a withdrawal.
func ClassifyValue(value decimal.Decimal) (domain.MovementKind, decimal.Decimal) {
	if value.IsPositive() {
		return domain.Deposit, value
	}
	return domain.Withdrawal, value.Abs()
}

// ApplyMovement returns the balance after applying magnitude in the direction of kind.
func ApplyMovement(balance decimal.Decimal, kind domain.MovementKind, magnitude decimal.Decimal) decimal.Decimal {
	if kind.IsOutflow() {
		return balance.Sub(magnitude)
	}
	return balance.Add(magnitude)
}

// DescribeMovement renders the human-readable statement description of a movement.
func DescribeMovement(kind domain.MovementKind, magnitude decimal.Decimal) string {
	if kind.IsOutflow() {
		return "Debit of " + utils.FormatMoney(magnitude)
	}
	return "Credit of " + utils.FormatMoney(magnitude)
}
