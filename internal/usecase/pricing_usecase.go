package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"leasing_offers/internal/domain/entities"
	"leasing_offers/internal/domain/pricing"
	"leasing_offers/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidLeaserID         = errors.New("invalid leaser id")
	ErrInvalidPrice            = errors.New("invalid price")
	ErrInvalidCoefficientTable = errors.New("invalid coefficient table")
)

// PricingResult is a calculator answer. Condition is never an error: callers
// show the value together with the flag.
type PricingResult struct {
	Value       decimal.Decimal
	Coefficient decimal.Decimal
	Condition   pricing.Condition
}

type CoefficientLookup struct {
	LeaserID    string
	Price       decimal.Decimal
	Duration    int
	Coefficient decimal.Decimal
	// Fallback is set when the leaser has no table and the default was used.
	Fallback bool
}

// IPricingUseCase exposes the calculator for interactive forms, and the leaser
// coefficient tables.
//
// A nil coefficient means "use the configured default".
type IPricingUseCase interface {
	MonthlyPayment(purchasePrice, margin decimal.Decimal, coefficient *decimal.Decimal) PricingResult
	MarginFromTargetMonthly(purchasePrice, targetMonthly decimal.Decimal, coefficient *decimal.Decimal) PricingResult
	MarginFromTargetSalePrice(purchasePrice, targetSalePrice decimal.Decimal) PricingResult
	FinancedAmount(monthlyPayment decimal.Decimal, coefficient *decimal.Decimal) PricingResult
	LeaserCoefficient(ctx context.Context, leaserID string, price decimal.Decimal, months int) (CoefficientLookup, error)
	PutCoefficientTable(ctx context.Context, t entities.CoefficientTable) (entities.CoefficientTable, error)
}

type PricingUseCase struct {
	calc    *pricing.Calculator
	leasers interfaces.ILeaserRepository
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(calc *pricing.Calculator, leasers interfaces.ILeaserRepository) *PricingUseCase {
	return &PricingUseCase{calc: calc, leasers: leasers}
}

func (u *PricingUseCase) coefficient(c *decimal.Decimal) decimal.Decimal {
	if c == nil {
		return u.calc.DefaultCoefficient()
	}
	return *c
}

func (u *PricingUseCase) MonthlyPayment(purchasePrice, margin decimal.Decimal, coefficient *decimal.Decimal) PricingResult {
	coef := u.coefficient(coefficient)
	v, cond := u.calc.MonthlyFromMargin(purchasePrice, margin, coef)
	return PricingResult{Value: v, Coefficient: coef, Condition: cond}
}

func (u *PricingUseCase) MarginFromTargetMonthly(purchasePrice, targetMonthly decimal.Decimal, coefficient *decimal.Decimal) PricingResult {
	coef := u.coefficient(coefficient)
	v, cond := u.calc.MarginFromTargetMonthly(purchasePrice, targetMonthly, coef)
	return PricingResult{Value: v, Coefficient: coef, Condition: cond}
}

func (u *PricingUseCase) MarginFromTargetSalePrice(purchasePrice, targetSalePrice decimal.Decimal) PricingResult {
	v, cond := u.calc.MarginFromTargetSalePrice(purchasePrice, targetSalePrice)
	return PricingResult{Value: v, Condition: cond}
}

func (u *PricingUseCase) FinancedAmount(monthlyPayment decimal.Decimal, coefficient *decimal.Decimal) PricingResult {
	coef := u.coefficient(coefficient)
	v, cond := u.calc.FinancedAmount(monthlyPayment, coef)
	return PricingResult{Value: v, Coefficient: coef, Condition: cond}
}

// LeaserCoefficient resolves the coefficient for a purchase price. months <= 0
// uses the table's default duration.
func (u *PricingUseCase) LeaserCoefficient(ctx context.Context, leaserID string, price decimal.Decimal, months int) (CoefficientLookup, error) {
	leaserID = strings.TrimSpace(leaserID)
	if leaserID == "" {
		return CoefficientLookup{}, ErrInvalidLeaserID
	}
	if price.IsNegative() {
		return CoefficientLookup{}, ErrInvalidPrice
	}

	table, err := u.leasers.GetCoefficientTable(ctx, leaserID)
	if err != nil {
		return CoefficientLookup{}, err
	}

	duration := months
	if duration <= 0 {
		duration = table.DefaultDuration
	}
	return CoefficientLookup{
		LeaserID:    leaserID,
		Price:       price,
		Duration:    duration,
		Coefficient: u.calc.FindCoefficientForDuration(price, table, months),
		Fallback:    len(table.Brackets) == 0,
	}, nil
}

func (u *PricingUseCase) PutCoefficientTable(ctx context.Context, t entities.CoefficientTable) (entities.CoefficientTable, error) {
	t.LeaserID = strings.TrimSpace(t.LeaserID)
	if t.LeaserID == "" {
		return entities.CoefficientTable{}, ErrInvalidLeaserID
	}
	if err := t.Validate(); err != nil {
		return entities.CoefficientTable{}, fmt.Errorf("%w: %v", ErrInvalidCoefficientTable, err)
	}

	saved, err := u.leasers.PutCoefficientTable(ctx, t)
	if err != nil {
		log.Printf("[pricing][usecase] coefficient table save failed leaser_id=%s err=%v", t.LeaserID, err)
		return entities.CoefficientTable{}, err
	}
	log.Printf("[pricing][usecase] coefficient table saved leaser_id=%s brackets=%d", saved.LeaserID, len(saved.Brackets))
	return saved, nil
}
