package types

import "github.com/shopspring/decimal"

// Daily rates are stored as numeric(10,2).
const (
	MoneyIntegerDigits  = 8
	MoneyFractionDigits = 2
)

var moneyCeiling = decimal.New(1, MoneyIntegerDigits)

// FitsMoney reports whether d can be stored in a numeric(10,2) column
// without rounding. Trailing zeros do not count as fractional digits.
func FitsMoney(d decimal.Decimal) bool {
	if !d.Equal(d.Truncate(MoneyFractionDigits)) {
		return false
	}
	return d.Abs().LessThan(moneyCeiling)
}
