package response

import "github.com/shopspring/decimal"

// money rounds to cents for display. Stored values keep full precision.
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// rate keeps coefficients and percentages at four decimals.
func rate(d decimal.Decimal) float64 {
	return d.Round(4).InexactFloat64()
}
