package pricing

import (
	"sort"

	"leasing_offers/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// FindCoefficient resolves the coefficient for purchasePrice using the table's
// default duration.
func (c *Calculator) FindCoefficient(purchasePrice decimal.Decimal, table entities.CoefficientTable) decimal.Decimal {
	return c.FindCoefficientForDuration(purchasePrice, table, 0)
}

// FindCoefficientForDuration resolves the coefficient for purchasePrice and a
// duration in months (0 = table default).
//
// Lookup is clamped: prices below the first bracket use the first bracket,
// prices above the last bracket use the last one, and prices falling between
// two brackets use the lower one. An empty table, or a bracket without a
// positive coefficient, resolves to the configured default. The result is
// always > 0.
func (c *Calculator) FindCoefficientForDuration(purchasePrice decimal.Decimal, table entities.CoefficientTable, months int) decimal.Decimal {
	if len(table.Brackets) == 0 {
		return c.defaultCoefficient
	}

	brackets := make([]entities.CoefficientBracket, len(table.Brackets))
	copy(brackets, table.Brackets)
	sort.SliceStable(brackets, func(i, j int) bool {
		return brackets[i].Min.LessThan(brackets[j].Min)
	})

	chosen := brackets[0]
	for _, b := range brackets[1:] {
		if purchasePrice.GreaterThanOrEqual(b.Min) {
			chosen = b
		}
	}

	if months <= 0 {
		months = table.DefaultDuration
	}
	if coef, ok := chosen.Coefficients[months]; ok && coef.IsPositive() {
		return coef
	}

	// Unknown duration: fall back to the shortest duration with a usable value.
	durations := make([]int, 0, len(chosen.Coefficients))
	for d := range chosen.Coefficients {
		durations = append(durations, d)
	}
	sort.Ints(durations)
	for _, d := range durations {
		if coef := chosen.Coefficients[d]; coef.IsPositive() {
			return coef
		}
	}
	return c.defaultCoefficient
}
