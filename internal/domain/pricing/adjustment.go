package pricing

import (
	"fmt"

	"leasing_offers/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// AdjustmentMode selects what a global margin adjustment does to monthly payments.
type AdjustmentMode string

const (
	// RecomputeMonthly re-derives every line's monthly payment from its new margin.
	RecomputeMonthly AdjustmentMode = "recompute_monthly"
	// PreserveMonthly changes the displayed margin only; monthly payments stay
	// fixed and the lines are pinned to target-monthly pricing. The delta is
	// kept in MarginAdjustment so that repricing does not undo it.
	PreserveMonthly AdjustmentMode = "preserve_monthly"
)

func ParseAdjustmentMode(s string) (AdjustmentMode, error) {
	switch AdjustmentMode(s) {
	case RecomputeMonthly, PreserveMonthly:
		return AdjustmentMode(s), nil
	}
	return "", fmt.Errorf("unknown adjustment mode %q", s)
}

// ApplyGlobalMarginAdjustment distributes amount (currency) over the lines
// pro-rata to their purchase totals. Since the share of each line is
// proportional to its purchase total, every line with a positive purchase total
// gains the same margin delta in percentage points: amount / Σ purchase × 100.
//
// Lines without a purchase total are left untouched, and so is everything when
// the amount is zero or no line has a purchase total. The input slice is not
// modified.
func (c *Calculator) ApplyGlobalMarginAdjustment(
	lines []entities.EquipmentLine,
	amount decimal.Decimal,
	coefficient decimal.Decimal,
	mode AdjustmentMode,
) []entities.EquipmentLine {
	out := make([]entities.EquipmentLine, len(lines))
	copy(out, lines)

	base := decimal.Zero
	for _, l := range lines {
		if pt := l.PurchaseTotal(); pt.IsPositive() {
			base = base.Add(pt)
		}
	}
	if amount.IsZero() || !base.IsPositive() {
		return out
	}
	delta := amount.Div(base).Mul(hundred)

	for i, l := range out {
		if !l.PurchaseTotal().IsPositive() {
			continue
		}
		l.Margin = l.Margin.Add(delta)
		switch mode {
		case PreserveMonthly:
			l.PricingMode = entities.PricingModeTargetMonthly
			l.MarginAdjustment = l.MarginAdjustment.Add(delta)
		default:
			l.PricingMode = entities.PricingModeMargin
			l.MarginAdjustment = decimal.Zero
			l.MonthlyPayment, _ = c.MonthlyFromMargin(l.PurchasePrice, l.Margin, coefficient)
		}
		out[i] = l
	}
	return out
}
