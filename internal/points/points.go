package points

import "github.com/shopspring/decimal"

var divisor = decimal.NewFromInt(1000)

// Earned returns the loyalty points accrued by a bill amount: one point per
// 1000 currency units, floored. The rule is undefined for negative amounts;
// callers validate the sign before calling.
func Earned(amount decimal.Decimal) decimal.Decimal {
	return amount.Div(divisor).Floor()
}
