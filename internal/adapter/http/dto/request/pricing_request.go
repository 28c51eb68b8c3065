package request

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"leasing_offers/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidDuration = errors.New("coefficient durations must be positive month counts")

type CoefficientBracketRequest struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
	// months -> coefficient, e.g. {"36": 3.27, "48": 2.61}
	Coefficients map[string]decimal.Decimal `json:"coefficients" binding:"required"`
}

type CoefficientTableRequest struct {
	DefaultDuration int                         `json:"default_duration" binding:"required,min=1"`
	Brackets        []CoefficientBracketRequest `json:"brackets" binding:"required,min=1,dive"`
}

func (r CoefficientTableRequest) ToTable(leaserID string) (entities.CoefficientTable, error) {
	t := entities.CoefficientTable{
		LeaserID:        strings.TrimSpace(leaserID),
		DefaultDuration: r.DefaultDuration,
	}
	for _, b := range r.Brackets {
		coefs := make(map[int]decimal.Decimal, len(b.Coefficients))
		for k, v := range b.Coefficients {
			months, err := strconv.Atoi(strings.TrimSpace(k))
			if err != nil || months <= 0 {
				return entities.CoefficientTable{}, fmt.Errorf("%w: %q", ErrInvalidDuration, k)
			}
			coefs[months] = v
		}
		t.Brackets = append(t.Brackets, entities.CoefficientBracket{Min: b.Min, Max: b.Max, Coefficients: coefs})
	}
	return t, nil
}

type MonthlyPaymentRequest struct {
	PurchasePrice decimal.Decimal  `json:"purchase_price"`
	Margin        decimal.Decimal  `json:"margin"`
	Coefficient   *decimal.Decimal `json:"coefficient"`
}

// MarginRequest back-computes a margin from exactly one target.
type MarginRequest struct {
	PurchasePrice   decimal.Decimal  `json:"purchase_price"`
	TargetMonthly   *decimal.Decimal `json:"target_monthly"`
	TargetSalePrice *decimal.Decimal `json:"target_sale_price"`
	Coefficient     *decimal.Decimal `json:"coefficient"`
}

func (r MarginRequest) Validate() error {
	switch {
	case r.TargetMonthly != nil && r.TargetSalePrice != nil:
		return ErrConflictingTargets
	case r.TargetMonthly == nil && r.TargetSalePrice == nil:
		return ErrMissingTarget
	}
	return nil
}

type FinancedAmountRequest struct {
	MonthlyPayment decimal.Decimal  `json:"monthly_payment"`
	Coefficient    *decimal.Decimal `json:"coefficient"`
}
