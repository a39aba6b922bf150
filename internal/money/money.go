// Package money implements the decimal arithmetic used for all monetary values.
//
// Amounts are shopspring decimals with two fraction digits. Stored amounts and
// derived values are rounded, halves away from zero.
package money

import (
	"github.com/shopspring/decimal"
)

// Places is the number of fraction digits of every amount.
const Places = 2

// TitheRate is the share of the month's income that is set aside as tithe.
var TitheRate = decimal.RequireFromString("0.10")

// Round rounds d to two fraction digits.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// SumBy adds up the value selected from every item.
func SumBy[T any](items []T, value func(T) decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(value(item))
	}

	return sum
}

// Tithe returns the tithe due for an income.
func Tithe(income decimal.Decimal) decimal.Decimal {
	return Round(income.Mul(TitheRate))
}

// Percent returns part as a percentage of whole. The boolean is false
// when whole is zero and no percentage exists.
func Percent(part, whole decimal.Decimal) (decimal.Decimal, bool) {
	if whole.IsZero() {
		return decimal.Zero, false
	}

	return part.Div(whole).Mul(decimal.NewFromInt(100)).Round(1), true
}
