package request

import (
	"errors"
	"strings"

	"leasing_offers/internal/usecase"

	"github.com/shopspring/decimal"
)

var (
	ErrConflictingTargets = errors.New("only one of target_monthly and target_sale_price may be set")
	ErrMissingTarget      = errors.New("one of target_monthly and target_sale_price is required")
)

// Money fields accept JSON numbers or strings ("1000.50").

type EquipmentRequest struct {
	Title           string           `json:"title" binding:"required"`
	PurchasePrice   decimal.Decimal  `json:"purchase_price"`
	Quantity        int              `json:"quantity" binding:"required,min=1"`
	Margin          decimal.Decimal  `json:"margin"`
	TargetMonthly   *decimal.Decimal `json:"target_monthly"`
	TargetSalePrice *decimal.Decimal `json:"target_sale_price"`
}

func (r EquipmentRequest) ToInput() (usecase.EquipmentInput, error) {
	if r.TargetMonthly != nil && r.TargetSalePrice != nil {
		return usecase.EquipmentInput{}, ErrConflictingTargets
	}
	return usecase.EquipmentInput{
		Title:           strings.TrimSpace(r.Title),
		PurchasePrice:   r.PurchasePrice,
		Quantity:        r.Quantity,
		Margin:          r.Margin,
		TargetMonthly:   r.TargetMonthly,
		TargetSalePrice: r.TargetSalePrice,
	}, nil
}

type CreateOfferRequest struct {
	ClientID       string             `json:"client_id" binding:"required"`
	ClientName     string             `json:"client_name" binding:"required"`
	ClientEmail    string             `json:"client_email"`
	LeaserID       string             `json:"leaser_id" binding:"required"`
	AmbassadorID   string             `json:"ambassador_id"`
	Coefficient    decimal.Decimal    `json:"coefficient"`
	FinancedAmount decimal.Decimal    `json:"financed_amount"`
	Equipment      []EquipmentRequest `json:"equipment" binding:"dive"`
}

func (r CreateOfferRequest) ToInput() (usecase.CreateOfferInput, error) {
	in := usecase.CreateOfferInput{
		ClientID:       strings.TrimSpace(r.ClientID),
		ClientName:     strings.TrimSpace(r.ClientName),
		ClientEmail:    strings.TrimSpace(r.ClientEmail),
		LeaserID:       strings.TrimSpace(r.LeaserID),
		AmbassadorID:   strings.TrimSpace(r.AmbassadorID),
		Coefficient:    r.Coefficient,
		FinancedAmount: r.FinancedAmount,
	}
	for _, e := range r.Equipment {
		line, err := e.ToInput()
		if err != nil {
			return usecase.CreateOfferInput{}, err
		}
		in.Equipment = append(in.Equipment, line)
	}
	return in, nil
}

// UpdateEquipmentRequest is a partial edit; absent fields keep their value.
type UpdateEquipmentRequest struct {
	Title           *string          `json:"title"`
	PurchasePrice   *decimal.Decimal `json:"purchase_price"`
	Quantity        *int             `json:"quantity" binding:"omitempty,min=1"`
	Margin          *decimal.Decimal `json:"margin"`
	TargetMonthly   *decimal.Decimal `json:"target_monthly"`
	TargetSalePrice *decimal.Decimal `json:"target_sale_price"`
}

func (r UpdateEquipmentRequest) ToUpdate() (usecase.EquipmentUpdate, error) {
	if r.TargetMonthly != nil && r.TargetSalePrice != nil {
		return usecase.EquipmentUpdate{}, ErrConflictingTargets
	}
	return usecase.EquipmentUpdate{
		Title:           r.Title,
		PurchasePrice:   r.PurchasePrice,
		Quantity:        r.Quantity,
		Margin:          r.Margin,
		TargetMonthly:   r.TargetMonthly,
		TargetSalePrice: r.TargetSalePrice,
	}, nil
}

type MarginAdjustmentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	// recompute_monthly | preserve_monthly
	Mode string `json:"mode" binding:"required"`
}
