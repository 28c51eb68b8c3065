package entities

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCoefficientTable      = errors.New("coefficient table has no brackets")
	ErrInvalidBracketBounds       = errors.New("coefficient bracket bounds are invalid")
	ErrOverlappingBrackets        = errors.New("coefficient brackets overlap or are not ascending")
	ErrNonPositiveCoefficient     = errors.New("coefficient must be greater than zero")
	ErrMissingDefaultDurationRate = errors.New("bracket has no coefficient for the default duration")
)

// CoefficientBracket maps a purchase-price range to financing coefficients per
// duration (months). Max is inclusive.
type CoefficientBracket struct {
	Min          decimal.Decimal         `json:"min"`
	Max          decimal.Decimal         `json:"max"`
	Coefficients map[int]decimal.Decimal `json:"coefficients"`
}

// CoefficientTable is owned by a leaser.
//
// A coefficient of 3.27 means monthlyPayment ≈ financedAmount × 3.27 / 100.
type CoefficientTable struct {
	LeaserID        string               `json:"leaser_id"`
	DefaultDuration int                  `json:"default_duration"`
	Brackets        []CoefficientBracket `json:"brackets"`
}

// Validate checks that brackets are ordered by ascending threshold, do not
// overlap, and only carry positive coefficients.
func (t CoefficientTable) Validate() error {
	if len(t.Brackets) == 0 {
		return ErrEmptyCoefficientTable
	}
	for i, b := range t.Brackets {
		if b.Min.IsNegative() || b.Max.LessThan(b.Min) {
			return fmt.Errorf("bracket %d: %w", i, ErrInvalidBracketBounds)
		}
		if i > 0 && !b.Min.GreaterThan(t.Brackets[i-1].Max) {
			return fmt.Errorf("bracket %d: %w", i, ErrOverlappingBrackets)
		}
		if len(b.Coefficients) == 0 {
			return fmt.Errorf("bracket %d: %w", i, ErrNonPositiveCoefficient)
		}
		for months, c := range b.Coefficients {
			if months <= 0 || !c.IsPositive() {
				return fmt.Errorf("bracket %d duration %d: %w", i, months, ErrNonPositiveCoefficient)
			}
		}
		if t.DefaultDuration > 0 {
			if _, ok := b.Coefficients[t.DefaultDuration]; !ok {
				return fmt.Errorf("bracket %d: %w", i, ErrMissingDefaultDurationRate)
			}
		}
	}
	return nil
}

// Durations returns the durations offered by the table, ascending.
func (t CoefficientTable) Durations() []int {
	seen := map[int]struct{}{}
	for _, b := range t.Brackets {
		for months := range b.Coefficients {
			seen[months] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for months := range seen {
		out = append(out, months)
	}
	sort.Ints(out)
	return out
}
