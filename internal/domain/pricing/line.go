package pricing

import (
	"leasing_offers/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PriceLine re-derives a line according to its pricing mode and returns a copy.
//
//   - margin mode: MonthlyPayment is recomputed from Margin.
//   - target-monthly mode: Margin is back-computed from MonthlyPayment, plus
//     MarginAdjustment; a negative implied margin is reported as
//     ConditionNegativeMargin.
func (c *Calculator) PriceLine(line entities.EquipmentLine, coefficient decimal.Decimal) (entities.EquipmentLine, Condition) {
	out := line
	switch line.PricingMode {
	case entities.PricingModeTargetMonthly:
		margin, cond := c.MarginFromTargetMonthly(line.PurchasePrice, line.MonthlyPayment, coefficient)
		if cond.OK() || cond.IsWarning() {
			out.Margin = margin.Add(line.MarginAdjustment)
		}
		return out, cond
	default:
		out.PricingMode = entities.PricingModeMargin
		out.MarginAdjustment = decimal.Zero
		monthly, cond := c.MonthlyFromMargin(line.PurchasePrice, line.Margin, coefficient)
		out.MonthlyPayment = monthly
		return out, cond
	}
}

// RepriceLines applies PriceLine to every line. The returned condition is the
// first non-OK one encountered, or ConditionOK.
func (c *Calculator) RepriceLines(lines []entities.EquipmentLine, coefficient decimal.Decimal) ([]entities.EquipmentLine, Condition) {
	out := make([]entities.EquipmentLine, len(lines))
	worst := ConditionOK
	for i, l := range lines {
		priced, cond := c.PriceLine(l, coefficient)
		out[i] = priced
		if worst.OK() && !cond.OK() {
			worst = cond
		}
	}
	return out, worst
}

// LineIsConsistent checks that a line's monthly payment is reproducible from
// its purchase price, margin and the coefficient within the tolerance. Lines
// in target-monthly mode must additionally carry a non-negative margin, and
// their MarginAdjustment does not count towards the monthly payment.
func (c *Calculator) LineIsConsistent(line entities.EquipmentLine, coefficient decimal.Decimal) bool {
	if line.Quantity < 1 || line.PurchasePrice.IsNegative() {
		return false
	}
	margin := line.Margin
	if line.PricingMode == entities.PricingModeTargetMonthly {
		if line.Margin.IsNegative() {
			return false
		}
		margin = margin.Sub(line.MarginAdjustment)
	}
	expected, cond := c.MonthlyFromMargin(line.PurchasePrice, margin, coefficient)
	if !cond.OK() {
		return false
	}
	return expected.Sub(line.MonthlyPayment).Abs().LessThanOrEqual(c.tolerance)
}

// Totals recomputes the aggregate figures of an equipment list; an empty list
// totals zero. The financed amount is manualFinanced when positive, otherwise
// derived from the total monthly payment and the coefficient (default
// coefficient when coefficient is not positive).
func (c *Calculator) Totals(lines []entities.EquipmentLine, coefficient, manualFinanced decimal.Decimal) (entities.Totals, Condition) {
	totals := entities.Totals{
		TotalPurchasePrice:  decimal.Zero,
		TotalMonthlyPayment: decimal.Zero,
		MarginPercentage:    decimal.Zero,
		FinancedAmount:      decimal.Zero,
	}

	sale := decimal.Zero
	for _, l := range lines {
		totals.TotalPurchasePrice = totals.TotalPurchasePrice.Add(l.PurchaseTotal())
		totals.TotalMonthlyPayment = totals.TotalMonthlyPayment.Add(l.MonthlyTotal())
		sale = sale.Add(l.SaleTotal())
	}
	if totals.TotalPurchasePrice.IsPositive() {
		totals.MarginPercentage = sale.Sub(totals.TotalPurchasePrice).Div(totals.TotalPurchasePrice).Mul(hundred)
	}

	if manualFinanced.IsPositive() {
		totals.FinancedAmount = manualFinanced
		return totals, ConditionOK
	}
	financed, cond := c.FinancedAmount(totals.TotalMonthlyPayment, c.EffectiveCoefficient(coefficient))
	totals.FinancedAmount = financed
	return totals, cond
}

// OfferTotals recomputes the aggregates of an offer from its current state.
func (c *Calculator) OfferTotals(o entities.Offer) (entities.Totals, Condition) {
	return c.Totals(o.Equipment, o.Coefficient, o.ManualFinancedAmount)
}
