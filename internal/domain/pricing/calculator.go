// Package pricing keeps purchase price, margin, coefficient and monthly payment
// consistent for equipment lines and offers.
//
// Every operation is total: degenerate input (no coefficient yet, price not
// entered) yields a zero value and a Condition instead of an error or a panic,
// so that a half-filled form never produces NaN or a crash downstream.
package pricing

import (
	"github.com/shopspring/decimal"
)

// DefaultFinancingCoefficient is used when neither the offer nor the leaser
// table provides a coefficient.
const DefaultFinancingCoefficient = "3.27"

// DefaultLineTolerance is the accepted drift between a stored monthly payment
// and the one recomputed from its margin.
const DefaultLineTolerance = "0.01"

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// Condition reports how a computation went. Only ConditionOK and
// ConditionNegativeMargin carry a meaningful value.
type Condition string

const (
	ConditionOK                   Condition = "ok"
	ConditionInvalidCoefficient   Condition = "invalid_coefficient"
	ConditionInvalidPurchasePrice Condition = "invalid_purchase_price"
	ConditionNegativeMargin       Condition = "negative_margin"
	ConditionNegativeResult       Condition = "negative_result"
)

// OK is true when the value can be used as-is.
func (c Condition) OK() bool { return c == ConditionOK }

// IsWarning is true for conditions that still carry a usable value.
func (c Condition) IsWarning() bool { return c == ConditionNegativeMargin }

// Calculator holds the configuration shared by all pricing operations.
// It has no mutable state and is safe for concurrent use.
type Calculator struct {
	defaultCoefficient decimal.Decimal
	tolerance          decimal.Decimal
}

// NewCalculator builds a Calculator. Non-positive arguments fall back to
// DefaultFinancingCoefficient and DefaultLineTolerance.
func NewCalculator(defaultCoefficient, tolerance decimal.Decimal) *Calculator {
	if !defaultCoefficient.IsPositive() {
		defaultCoefficient = decimal.RequireFromString(DefaultFinancingCoefficient)
	}
	if !tolerance.IsPositive() {
		tolerance = decimal.RequireFromString(DefaultLineTolerance)
	}
	return &Calculator{defaultCoefficient: defaultCoefficient, tolerance: tolerance}
}

func (c *Calculator) DefaultCoefficient() decimal.Decimal { return c.defaultCoefficient }

func (c *Calculator) Tolerance() decimal.Decimal { return c.tolerance }

// EffectiveCoefficient returns coefficient when positive, the default otherwise.
func (c *Calculator) EffectiveCoefficient(coefficient decimal.Decimal) decimal.Decimal {
	if coefficient.IsPositive() {
		return coefficient
	}
	return c.defaultCoefficient
}

// MonthlyFromMargin computes purchasePrice × (1 + margin/100) × coefficient / 100.
//
// Negative margins are accepted; a negative result is clamped to zero.
func (c *Calculator) MonthlyFromMargin(purchasePrice, margin, coefficient decimal.Decimal) (decimal.Decimal, Condition) {
	if !coefficient.IsPositive() {
		return decimal.Zero, ConditionInvalidCoefficient
	}
	monthly := SalePrice(purchasePrice, margin).Mul(coefficient).Div(hundred)
	if monthly.IsNegative() {
		return decimal.Zero, ConditionNegativeResult
	}
	return monthly, ConditionOK
}

// MarginFromTargetMonthly is the inverse of MonthlyFromMargin.
//
// A target below the zero-margin monthly payment yields a negative margin and
// ConditionNegativeMargin; the value is still returned.
func (c *Calculator) MarginFromTargetMonthly(purchasePrice, targetMonthly, coefficient decimal.Decimal) (decimal.Decimal, Condition) {
	if !purchasePrice.IsPositive() {
		return decimal.Zero, ConditionInvalidPurchasePrice
	}
	if !coefficient.IsPositive() {
		return decimal.Zero, ConditionInvalidCoefficient
	}
	financed := targetMonthly.Mul(hundred).Div(coefficient)
	margin := financed.Div(purchasePrice).Sub(one).Mul(hundred)
	if margin.IsNegative() {
		return margin, ConditionNegativeMargin
	}
	return margin, ConditionOK
}

// MarginFromTargetSalePrice computes (sale - purchase) / purchase × 100.
func (c *Calculator) MarginFromTargetSalePrice(purchasePrice, targetSalePrice decimal.Decimal) (decimal.Decimal, Condition) {
	if !purchasePrice.IsPositive() {
		return decimal.Zero, ConditionInvalidPurchasePrice
	}
	margin := targetSalePrice.Sub(purchasePrice).Div(purchasePrice).Mul(hundred)
	if margin.IsNegative() {
		return margin, ConditionNegativeMargin
	}
	return margin, ConditionOK
}

// FinancedAmount computes monthlyPayment × 100 / coefficient.
//
// A non-positive coefficient yields zero and ConditionInvalidCoefficient; this
// is the guard that keeps offer totals and commissions free of division by zero.
func (c *Calculator) FinancedAmount(monthlyPayment, coefficient decimal.Decimal) (decimal.Decimal, Condition) {
	if !coefficient.IsPositive() {
		return decimal.Zero, ConditionInvalidCoefficient
	}
	financed := monthlyPayment.Mul(hundred).Div(coefficient)
	if financed.IsNegative() {
		return decimal.Zero, ConditionNegativeResult
	}
	return financed, ConditionOK
}

// SalePrice is purchasePrice × (1 + margin/100).
func SalePrice(purchasePrice, margin decimal.Decimal) decimal.Decimal {
	return purchasePrice.Mul(one.Add(margin.Div(hundred)))
}

// RoundMoney rounds half away from zero to cents.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
