package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"leasing_offers/internal/domain/entities"
	"leasing_offers/internal/domain/pricing"
	"leasing_offers/internal/domain/workflow"
	"leasing_offers/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrOfferNotFound         = errors.New("offer not found")
	ErrInvalidOfferID        = errors.New("invalid offer id")
	ErrInvalidClient         = errors.New("invalid client")
	ErrOfferNotEditable      = interfaces.ErrOfferNotEditable
	ErrConfirmationRequired  = errors.New("deleting an offer requires its id as confirmation")
	ErrEquipmentLineNotFound = errors.New("equipment line not found")
	ErrInvalidEquipment      = errors.New("invalid equipment line")
	ErrNegativeMargin        = errors.New("equipment margin cannot be negative")
	ErrInvalidAdjustment     = errors.New("invalid margin adjustment")
)

// CreateOfferInput is the command for a new draft offer.
//
// Coefficient is only used when the leaser has no coefficient table.
// FinancedAmount is set when the amount was agreed independently of the equipment.
type CreateOfferInput struct {
	ClientID       string
	ClientName     string
	ClientEmail    string
	LeaserID       string
	AmbassadorID   string
	Coefficient    decimal.Decimal
	FinancedAmount decimal.Decimal
	Equipment      []EquipmentInput
}

// EquipmentInput describes a new equipment line. At most one of TargetMonthly and
// TargetSalePrice may be set; when neither is, Margin drives the line.
type EquipmentInput struct {
	Title           string
	PurchasePrice   decimal.Decimal
	Quantity        int
	Margin          decimal.Decimal
	TargetMonthly   *decimal.Decimal
	TargetSalePrice *decimal.Decimal
}

// EquipmentUpdate is a partial line edit. Nil fields keep their value.
type EquipmentUpdate struct {
	Title           *string
	PurchasePrice   *decimal.Decimal
	Quantity        *int
	Margin          *decimal.Decimal
	TargetMonthly   *decimal.Decimal
	TargetSalePrice *decimal.Decimal
}

// IOfferUseCase exposes offer and equipment operations.
//
// Every equipment change reprices the lines with the leaser coefficient for the
// new purchase total and recomputes the offer aggregates before persisting.

type IOfferUseCase interface {
	CreateOffer(ctx context.Context, in CreateOfferInput) (entities.Offer, error)
	GetOffer(ctx context.Context, id string) (entities.Offer, error)
	DeleteOffer(ctx context.Context, id, confirmation string) error
	AddEquipment(ctx context.Context, offerID string, in EquipmentInput) (entities.Offer, error)
	UpdateEquipment(ctx context.Context, offerID, lineID string, in EquipmentUpdate) (entities.Offer, error)
	RemoveEquipment(ctx context.Context, offerID, lineID string) (entities.Offer, error)
	AdjustGlobalMargin(ctx context.Context, offerID string, amount decimal.Decimal, mode pricing.AdjustmentMode) (entities.Offer, error)
}

type OfferUseCase struct {
	calc      *pricing.Calculator
	repo      interfaces.IOfferRepository
	history   interfaces.IStatusHistoryRepository
	leasers   interfaces.ILeaserRepository
	publisher interfaces.IEventPublisher
}

var _ IOfferUseCase = (*OfferUseCase)(nil)

func NewOfferUseCase(
	calc *pricing.Calculator,
	repo interfaces.IOfferRepository,
	history interfaces.IStatusHistoryRepository,
	leasers interfaces.ILeaserRepository,
	publisher interfaces.IEventPublisher,
) *OfferUseCase {
	return &OfferUseCase{calc: calc, repo: repo, history: history, leasers: leasers, publisher: publisher}
}

func (u *OfferUseCase) CreateOffer(ctx context.Context, in CreateOfferInput) (entities.Offer, error) {
	log.Printf("[offer][usecase] create start client_id=%q leaser_id=%q lines=%d", in.ClientID, in.LeaserID, len(in.Equipment))
	in.ClientID = strings.TrimSpace(in.ClientID)
	in.ClientName = strings.TrimSpace(in.ClientName)
	if in.ClientID == "" || in.ClientName == "" {
		return entities.Offer{}, ErrInvalidClient
	}
	if in.Coefficient.IsNegative() || in.FinancedAmount.IsNegative() {
		return entities.Offer{}, ErrInvalidEquipment
	}

	lines := make([]entities.EquipmentLine, 0, len(in.Equipment))
	for _, eq := range in.Equipment {
		line, err := newLine(eq)
		if err != nil {
			return entities.Offer{}, err
		}
		line, err = u.applyDriver(line, nil, eq.TargetMonthly, eq.TargetSalePrice)
		if err != nil {
			return entities.Offer{}, err
		}
		lines = append(lines, line)
	}

	leaserID := strings.TrimSpace(in.LeaserID)
	coef, err := u.resolveCoefficient(ctx, leaserID, purchaseTotal(lines), in.Coefficient)
	if err != nil {
		log.Printf("[offer][usecase] coefficient lookup failed leaser_id=%s err=%v", leaserID, err)
		return entities.Offer{}, err
	}
	lines, cond := u.calc.RepriceLines(lines, coef)
	if err := checkLines(lines, cond); err != nil {
		return entities.Offer{}, err
	}
	totals, _ := u.calc.Totals(lines, coef, in.FinancedAmount)

	now := time.Now().UTC()
	o := entities.Offer{
		ID:                   uuid.NewString(),
		ClientID:             in.ClientID,
		ClientName:           in.ClientName,
		ClientEmail:          strings.TrimSpace(in.ClientEmail),
		LeaserID:             leaserID,
		AmbassadorID:         strings.TrimSpace(in.AmbassadorID),
		Equipment:            lines,
		WorkflowStatus:       entities.StatusDraft,
		Coefficient:          coef,
		ManualFinancedAmount: in.FinancedAmount,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	o.ApplyTotals(totals)

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		log.Printf("[offer][usecase] create failed client_id=%s err=%v", o.ClientID, err)
		return entities.Offer{}, err
	}

	if u.history != nil {
		entry := entities.StatusHistoryEntry{
			ID:         uuid.NewString(),
			OfferID:    created.ID,
			To:         entities.StatusDraft,
			Reason:     "created",
			AcceptedAt: now,
		}
		if _, err := u.history.Append(ctx, entry); err != nil {
			log.Printf("[offer][usecase] initial history entry failed offer_id=%s err=%v", created.ID, err)
		}
	}

	publishOfferEvent(ctx, u.publisher, entities.OfferEvent{
		Type:       entities.EventOfferCreated,
		OfferID:    created.ID,
		To:         created.WorkflowStatus,
		Offer:      created,
		OccurredAt: now,
	})
	log.Printf("[offer][usecase] create success offer_id=%s total_monthly=%s financed=%s", created.ID, created.TotalMonthlyPayment.StringFixed(2), created.FinancedAmount.StringFixed(2))
	return created, nil
}

func (u *OfferUseCase) GetOffer(ctx context.Context, id string) (entities.Offer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Offer{}, ErrInvalidOfferID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Offer{}, err
	}
	if o.ID == "" {
		return entities.Offer{}, ErrOfferNotFound
	}
	return o, nil
}

// DeleteOffer removes the offer. The status history is kept.
func (u *OfferUseCase) DeleteOffer(ctx context.Context, id, confirmation string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOfferID
	}
	if strings.TrimSpace(confirmation) != id {
		log.Printf("[offer][usecase] delete refused offer_id=%s (confirmation mismatch)", id)
		return ErrConfirmationRequired
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		log.Printf("[offer][usecase] delete failed offer_id=%s err=%v", id, err)
		return err
	}
	if !deleted {
		return ErrOfferNotFound
	}
	log.Printf("[offer][usecase] delete success offer_id=%s", id)
	return nil
}

func (u *OfferUseCase) AddEquipment(ctx context.Context, offerID string, in EquipmentInput) (entities.Offer, error) {
	o, err := u.loadEditable(ctx, offerID)
	if err != nil {
		return entities.Offer{}, err
	}

	line, err := newLine(in)
	if err != nil {
		return entities.Offer{}, err
	}
	line, err = u.applyDriver(line, nil, in.TargetMonthly, in.TargetSalePrice)
	if err != nil {
		return entities.Offer{}, err
	}

	lines := append(append([]entities.EquipmentLine(nil), o.Equipment...), line)
	coef, err := u.resolveCoefficient(ctx, o.LeaserID, purchaseTotal(lines), o.Coefficient)
	if err != nil {
		return entities.Offer{}, err
	}

	// Same coefficient: the stored lines are still priced right, append only.
	if coef.Equal(o.Coefficient) {
		priced, cond := u.calc.PriceLine(line, coef)
		if err := checkLines([]entities.EquipmentLine{priced}, cond); err != nil {
			return entities.Offer{}, err
		}
		lines[len(lines)-1] = priced
		totals, _ := u.calc.Totals(lines, coef, o.ManualFinancedAmount)

		updated, err := u.repo.InsertEquipmentLines(ctx, o.ID, []entities.EquipmentLine{priced}, totals)
		if err != nil {
			log.Printf("[offer][usecase] insert equipment failed offer_id=%s err=%v", o.ID, err)
			return entities.Offer{}, err
		}
		if updated.ID == "" {
			return entities.Offer{}, ErrOfferNotFound
		}
		log.Printf("[offer][usecase] equipment added offer_id=%s line_id=%s", o.ID, priced.ID)
		return updated, nil
	}

	return u.saveEquipment(ctx, o, lines, coef)
}

func (u *OfferUseCase) UpdateEquipment(ctx context.Context, offerID, lineID string, in EquipmentUpdate) (entities.Offer, error) {
	o, err := u.loadEditable(ctx, offerID)
	if err != nil {
		return entities.Offer{}, err
	}
	idx := o.LineIndex(strings.TrimSpace(lineID))
	if idx < 0 {
		return entities.Offer{}, ErrEquipmentLineNotFound
	}

	line := o.Equipment[idx]
	if in.Title != nil {
		line.Title = strings.TrimSpace(*in.Title)
	}
	if in.PurchasePrice != nil {
		line.PurchasePrice = *in.PurchasePrice
	}
	if in.Quantity != nil {
		line.Quantity = *in.Quantity
	}
	if err := validateLine(line); err != nil {
		return entities.Offer{}, err
	}
	line, err = u.applyDriver(line, in.Margin, in.TargetMonthly, in.TargetSalePrice)
	if err != nil {
		return entities.Offer{}, err
	}

	lines := append([]entities.EquipmentLine(nil), o.Equipment...)
	lines[idx] = line
	coef, err := u.resolveCoefficient(ctx, o.LeaserID, purchaseTotal(lines), o.Coefficient)
	if err != nil {
		return entities.Offer{}, err
	}
	return u.saveEquipment(ctx, o, lines, coef)
}

func (u *OfferUseCase) RemoveEquipment(ctx context.Context, offerID, lineID string) (entities.Offer, error) {
	o, err := u.loadEditable(ctx, offerID)
	if err != nil {
		return entities.Offer{}, err
	}
	idx := o.LineIndex(strings.TrimSpace(lineID))
	if idx < 0 {
		return entities.Offer{}, ErrEquipmentLineNotFound
	}

	lines := make([]entities.EquipmentLine, 0, len(o.Equipment)-1)
	lines = append(lines, o.Equipment[:idx]...)
	lines = append(lines, o.Equipment[idx+1:]...)

	coef, err := u.resolveCoefficient(ctx, o.LeaserID, purchaseTotal(lines), o.Coefficient)
	if err != nil {
		return entities.Offer{}, err
	}
	return u.saveEquipment(ctx, o, lines, coef)
}

// AdjustGlobalMargin spreads amount (currency) over the lines pro rata to their
// purchase totals. The coefficient is left as is: purchase prices do not change.
func (u *OfferUseCase) AdjustGlobalMargin(ctx context.Context, offerID string, amount decimal.Decimal, mode pricing.AdjustmentMode) (entities.Offer, error) {
	if _, err := pricing.ParseAdjustmentMode(string(mode)); err != nil {
		return entities.Offer{}, fmt.Errorf("%w: %v", ErrInvalidAdjustment, err)
	}
	o, err := u.loadEditable(ctx, offerID)
	if err != nil {
		return entities.Offer{}, err
	}
	if len(o.Equipment) == 0 {
		return entities.Offer{}, fmt.Errorf("%w: offer has no equipment", ErrInvalidAdjustment)
	}
	if amount.IsZero() {
		return o, nil
	}

	coef := u.calc.EffectiveCoefficient(o.Coefficient)
	adjusted := u.calc.ApplyGlobalMarginAdjustment(o.Equipment, amount, coef, mode)
	if err := checkLines(adjusted, pricing.ConditionOK); err != nil {
		return entities.Offer{}, err
	}

	log.Printf("[offer][usecase] global margin adjustment offer_id=%s amount=%s mode=%s", o.ID, amount.String(), mode)
	return u.persistEquipment(ctx, o, adjusted, coef)
}

func (u *OfferUseCase) loadEditable(ctx context.Context, offerID string) (entities.Offer, error) {
	o, err := u.GetOffer(ctx, offerID)
	if err != nil {
		return entities.Offer{}, err
	}
	if !workflow.CanEdit(o) {
		log.Printf("[offer][usecase] offer not editable offer_id=%s status=%s", o.ID, o.WorkflowStatus)
		return entities.Offer{}, ErrOfferNotEditable
	}
	return o, nil
}

// saveEquipment reprices every line with coef and persists the list.
func (u *OfferUseCase) saveEquipment(ctx context.Context, o entities.Offer, lines []entities.EquipmentLine, coef decimal.Decimal) (entities.Offer, error) {
	repriced, cond := u.calc.RepriceLines(lines, coef)
	if err := checkLines(repriced, cond); err != nil {
		return entities.Offer{}, err
	}
	return u.persistEquipment(ctx, o, repriced, coef)
}

func (u *OfferUseCase) persistEquipment(ctx context.Context, o entities.Offer, lines []entities.EquipmentLine, coef decimal.Decimal) (entities.Offer, error) {
	totals, _ := u.calc.Totals(lines, coef, o.ManualFinancedAmount)
	patch := entities.OfferPatch{
		Equipment:   &lines,
		Coefficient: &coef,
		Totals:      &totals,
	}

	updated, err := u.repo.Update(ctx, o.ID, patch)
	if err != nil {
		log.Printf("[offer][usecase] equipment update failed offer_id=%s err=%v", o.ID, err)
		return entities.Offer{}, err
	}
	if updated.ID == "" {
		return entities.Offer{}, ErrOfferNotFound
	}
	log.Printf("[offer][usecase] equipment saved offer_id=%s lines=%d coefficient=%s total_monthly=%s",
		updated.ID, len(lines), coef.String(), updated.TotalMonthlyPayment.StringFixed(2))
	return updated, nil
}

// resolveCoefficient picks the leaser's bracket for the purchase total, then the
// offer's own coefficient, then the configured default.
func (u *OfferUseCase) resolveCoefficient(ctx context.Context, leaserID string, total, fallback decimal.Decimal) (decimal.Decimal, error) {
	if leaserID != "" && u.leasers != nil {
		table, err := u.leasers.GetCoefficientTable(ctx, leaserID)
		if err != nil {
			return decimal.Zero, err
		}
		if len(table.Brackets) > 0 {
			return u.calc.FindCoefficient(total, table), nil
		}
	}
	if fallback.IsPositive() {
		return fallback, nil
	}
	return u.calc.DefaultCoefficient(), nil
}

// applyDriver sets which figure drives the line. Without any driver the line
// keeps its current pricing mode.
func (u *OfferUseCase) applyDriver(line entities.EquipmentLine, margin, targetMonthly, targetSale *decimal.Decimal) (entities.EquipmentLine, error) {
	drivers := 0
	for _, d := range []*decimal.Decimal{margin, targetMonthly, targetSale} {
		if d != nil {
			drivers++
		}
	}
	if drivers > 1 {
		return line, fmt.Errorf("%w: set only one of margin, target monthly payment or target sale price", ErrInvalidEquipment)
	}

	switch {
	case targetMonthly != nil:
		if targetMonthly.IsNegative() {
			return line, fmt.Errorf("%w: negative target monthly payment", ErrInvalidEquipment)
		}
		line.PricingMode = entities.PricingModeTargetMonthly
		line.MonthlyPayment = *targetMonthly
		line.MarginAdjustment = decimal.Zero
	case targetSale != nil:
		m, cond := u.calc.MarginFromTargetSalePrice(line.PurchasePrice, *targetSale)
		if !cond.OK() && !cond.IsWarning() {
			return line, fmt.Errorf("%w: %s", ErrInvalidEquipment, cond)
		}
		line.PricingMode = entities.PricingModeMargin
		line.Margin = m
	case margin != nil:
		line.PricingMode = entities.PricingModeMargin
		line.Margin = *margin
	}
	if !line.PricingMode.Valid() {
		line.PricingMode = entities.PricingModeMargin
	}
	return line, nil
}

func newLine(in EquipmentInput) (entities.EquipmentLine, error) {
	line := entities.EquipmentLine{
		ID:            uuid.NewString(),
		Title:         strings.TrimSpace(in.Title),
		PurchasePrice: in.PurchasePrice,
		Quantity:      in.Quantity,
		Margin:        in.Margin,
		PricingMode:   entities.PricingModeMargin,
	}
	return line, validateLine(line)
}

func validateLine(line entities.EquipmentLine) error {
	switch {
	case line.Title == "":
		return fmt.Errorf("%w: title is required", ErrInvalidEquipment)
	case line.PurchasePrice.IsNegative():
		return fmt.Errorf("%w: purchase price cannot be negative", ErrInvalidEquipment)
	case line.Quantity < 1:
		return fmt.Errorf("%w: quantity must be at least 1", ErrInvalidEquipment)
	}
	return nil
}

// checkLines refuses to persist lines the calculator flagged, or lines whose
// margin ended up negative.
func checkLines(lines []entities.EquipmentLine, cond pricing.Condition) error {
	switch cond {
	case pricing.ConditionInvalidCoefficient, pricing.ConditionInvalidPurchasePrice:
		return fmt.Errorf("%w: %s", ErrInvalidEquipment, cond)
	case pricing.ConditionNegativeResult:
		return ErrNegativeMargin
	}
	for _, l := range lines {
		if l.Margin.IsNegative() {
			return fmt.Errorf("%w: line %q", ErrNegativeMargin, l.Title)
		}
	}
	return nil
}

func purchaseTotal(lines []entities.EquipmentLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.PurchaseTotal())
	}
	return total
}

func publishOfferEvent(ctx context.Context, p interfaces.IEventPublisher, e entities.OfferEvent) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, e); err != nil {
		log.Printf("[offer][events] publish failed type=%s offer_id=%s err=%v", e.Type, e.OfferID, err)
	}
}
