package utils

import (
	"github.com/shopspring/decimal"
)

// MoneyPrecision is the number of fraction digits amounts are shown with.
const MoneyPrecision = 2

// FormatMoney renders an amount as dollars with two decimals.
// Example: 12.3456 returns "$12.35", 7 returns "$7.00"
func FormatMoney(amount decimal.Decimal) string {
	return "$" + FormatWithPrecision(amount, MoneyPrecision)
}

// FormatWithPrecision formats an amount with the given precision, padding with zeros.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
