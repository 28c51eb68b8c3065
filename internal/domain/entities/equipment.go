package entities

import "github.com/shopspring/decimal"

// PricingMode tells which figure of an equipment line the user drives.
//
//   - PricingModeMargin: the margin is authoritative, the monthly payment is derived.
//   - PricingModeTargetMonthly: the monthly payment was set directly, the margin is
//     back-computed from it.
type PricingMode string

const (
	PricingModeMargin        PricingMode = "margin"
	PricingModeTargetMonthly PricingMode = "target_monthly"
)

func (m PricingMode) Valid() bool {
	return m == PricingModeMargin || m == PricingModeTargetMonthly
}

// EquipmentLine is one leased item within an offer.
//
// Monetary representation:
//   - PurchasePrice and MonthlyPayment are per unit.
//   - Margin is a percentage (20 means 20%).
//   - MarginAdjustment is the part of Margin granted by global adjustments
//     that kept the monthly payment; it is zero in margin mode.
type EquipmentLine struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	PurchasePrice  decimal.Decimal `json:"purchase_price"`
	Quantity       int             `json:"quantity"`
	Margin         decimal.Decimal `json:"margin"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	PricingMode    PricingMode     `json:"pricing_mode"`

	MarginAdjustment decimal.Decimal `json:"margin_adjustment"`
}

// PurchaseTotal is PurchasePrice × Quantity.
func (l EquipmentLine) PurchaseTotal() decimal.Decimal {
	return l.PurchasePrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// MonthlyTotal is MonthlyPayment × Quantity.
func (l EquipmentLine) MonthlyTotal() decimal.Decimal {
	return l.MonthlyPayment.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// SaleTotal is the margin-adjusted price of the whole line.
func (l EquipmentLine) SaleTotal() decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(l.Margin.Div(decimal.NewFromInt(100)))
	return l.PurchaseTotal().Mul(factor)
}
