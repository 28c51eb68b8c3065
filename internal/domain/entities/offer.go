package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Offer is the leasing proposal aggregate root.
//
// Storage model (DynamoDB):
//   - PK: id
//   - equipment is embedded as a list attribute, in display order
//
// Derived figures:
//   - TotalPurchasePrice, TotalMonthlyPayment and MarginPercentage are recomputed
//     from Equipment whenever the list changes.
//   - FinancedAmount is derived from TotalMonthlyPayment and Coefficient unless it
//     was set independently (non-zero).
type Offer struct {
	ID          string `json:"id"`
	ClientID    string `json:"client_id"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	LeaserID    string `json:"leaser_id"`

	AmbassadorID string `json:"ambassador_id,omitempty"`

	Equipment []EquipmentLine `json:"equipment"`

	WorkflowStatus WorkflowStatus `json:"workflow_status"`

	Coefficient decimal.Decimal `json:"coefficient"`
	// ManualFinancedAmount is set when the financed amount was agreed
	// independently of the equipment (zero = derive it).
	ManualFinancedAmount decimal.Decimal `json:"manual_financed_amount"`

	FinancedAmount      decimal.Decimal `json:"financed_amount"`
	TotalMonthlyPayment decimal.Decimal `json:"total_monthly_payment"`
	TotalPurchasePrice  decimal.Decimal `json:"total_purchase_price"`
	MarginPercentage    decimal.Decimal `json:"margin_percentage"`

	InternalScore *Score `json:"internal_score"`
	LeaserScore   *Score `json:"leaser_score"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Totals groups the derived aggregate figures of an offer.
type Totals struct {
	TotalPurchasePrice  decimal.Decimal
	TotalMonthlyPayment decimal.Decimal
	MarginPercentage    decimal.Decimal
	FinancedAmount      decimal.Decimal
}

// ApplyTotals copies derived figures onto the offer.
func (o *Offer) ApplyTotals(t Totals) {
	o.TotalPurchasePrice = t.TotalPurchasePrice
	o.TotalMonthlyPayment = t.TotalMonthlyPayment
	o.MarginPercentage = t.MarginPercentage
	o.FinancedAmount = t.FinancedAmount
}

// LineIndex returns the position of the equipment line with the given id, or -1.
func (o Offer) LineIndex(lineID string) int {
	for i, l := range o.Equipment {
		if l.ID == lineID {
			return i
		}
	}
	return -1
}

// ScorePatch updates a nullable score. Set=false leaves the stored value untouched;
// Set=true with a nil Value clears it.
type ScorePatch struct {
	Set   bool
	Value *Score
}

// OfferPatch is the partial update accepted by the offer repository.
// Nil fields are left untouched.
type OfferPatch struct {
	LeaserID      *string
	Equipment     *[]EquipmentLine
	Coefficient   *decimal.Decimal
	Totals        *Totals
	InternalScore ScorePatch
	LeaserScore   ScorePatch
}

// IsEmpty reports whether the patch changes nothing.
func (p OfferPatch) IsEmpty() bool {
	return p.LeaserID == nil && p.Equipment == nil && p.Coefficient == nil && p.Totals == nil &&
		!p.InternalScore.Set && !p.LeaserScore.Set
}
