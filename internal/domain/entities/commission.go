package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionStatus represents the settlement state of a commission.
type CommissionStatus string

const (
	CommissionStatusPending CommissionStatus = "pending"
	CommissionStatusPaid    CommissionStatus = "paid"
)

// CommissionRate is one bracket of a commission level, keyed on the financed amount.
// Max is inclusive; a zero Max means "no upper bound".
type CommissionRate struct {
	Min  decimal.Decimal `json:"min"`
	Max  decimal.Decimal `json:"max"`
	Rate decimal.Decimal `json:"rate"`
}

// CommissionLevel is the rate table assigned to an ambassador.
type CommissionLevel struct {
	ID    string           `json:"id"`
	Name  string           `json:"name"`
	Rates []CommissionRate `json:"rates"`
}

// CommissionRecord is owned by an Offer + Ambassador pair.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (offer_id-index): offer_id
type CommissionRecord struct {
	ID           string           `json:"id"`
	OfferID      string           `json:"offer_id"`
	AmbassadorID string           `json:"ambassador_id"`
	LevelID      string           `json:"level_id"`
	Base         decimal.Decimal  `json:"base"`
	Rate         decimal.Decimal  `json:"rate"`
	Amount       decimal.Decimal  `json:"amount"`
	Status       CommissionStatus `json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	SettledAt    *time.Time       `json:"settled_at,omitempty"`
}

// RateFor returns the rate of the first bracket containing amount, or zero when
// no bracket matches.
func (l CommissionLevel) RateFor(amount decimal.Decimal) decimal.Decimal {
	for _, r := range l.Rates {
		if amount.LessThan(r.Min) {
			continue
		}
		if !r.Max.IsZero() && amount.GreaterThan(r.Max) {
			continue
		}
		return r.Rate
	}
	return decimal.Zero
}
