package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"leasing_offers/internal/domain/entities"
	"leasing_offers/internal/domain/pricing"
	"leasing_offers/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCommissionNotFound       = errors.New("commission not found")
	ErrInvalidCommissionID      = errors.New("invalid commission id")
	ErrCommissionAlreadySettled = errors.New("commission already settled")
	ErrNoAmbassador             = errors.New("offer has no ambassador")
	ErrCommissionLevelNotFound  = errors.New("ambassador has no commission level")
)

// ICommissionUseCase manages ambassador commissions.
//
// A commission is created once per offer and ambassador when the offer reaches
// a reviewable status, then settled manually.

type ICommissionUseCase interface {
	CreateForOffer(ctx context.Context, o entities.Offer) (entities.CommissionRecord, error)
	ListByOffer(ctx context.Context, offerID string) ([]entities.CommissionRecord, error)
	Settle(ctx context.Context, id string) (entities.CommissionRecord, error)
}

type CommissionUseCase struct {
	calc        *pricing.Calculator
	repo        interfaces.ICommissionRepository
	ambassadors interfaces.IAmbassadorRepository
}

var _ ICommissionUseCase = (*CommissionUseCase)(nil)

func NewCommissionUseCase(calc *pricing.Calculator, repo interfaces.ICommissionRepository, ambassadors interfaces.IAmbassadorRepository) *CommissionUseCase {
	return &CommissionUseCase{calc: calc, repo: repo, ambassadors: ambassadors}
}

// CommissionID is deterministic so that a replayed trigger hits the same record.
func CommissionID(offerID, ambassadorID string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("commission/"+offerID+"/"+ambassadorID)).String()
}

// CreateForOffer is idempotent: an existing record for the offer and ambassador
// is returned unchanged.
func (u *CommissionUseCase) CreateForOffer(ctx context.Context, o entities.Offer) (entities.CommissionRecord, error) {
	if strings.TrimSpace(o.ID) == "" {
		return entities.CommissionRecord{}, ErrInvalidOfferID
	}
	ambassadorID := strings.TrimSpace(o.AmbassadorID)
	if ambassadorID == "" {
		return entities.CommissionRecord{}, ErrNoAmbassador
	}

	level, err := u.ambassadors.GetCommissionLevel(ctx, ambassadorID)
	if err != nil {
		return entities.CommissionRecord{}, err
	}
	if level.ID == "" {
		return entities.CommissionRecord{}, ErrCommissionLevelNotFound
	}

	// a manual financed amount on the offer does not change the base
	base, _ := u.calc.FinancedAmount(o.TotalMonthlyPayment, u.calc.EffectiveCoefficient(o.Coefficient))
	rate := level.RateFor(base)
	amount := pricing.RoundMoney(base.Mul(rate).Div(decimal.NewFromInt(100)))

	r := entities.CommissionRecord{
		ID:           CommissionID(o.ID, ambassadorID),
		OfferID:      o.ID,
		AmbassadorID: ambassadorID,
		LevelID:      level.ID,
		Base:         pricing.RoundMoney(base),
		Rate:         rate,
		Amount:       amount,
		Status:       entities.CommissionStatusPending,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, r)
	if errors.Is(err, interfaces.ErrCommissionExists) {
		log.Printf("[commission][usecase] already recorded offer_id=%s ambassador_id=%s", o.ID, ambassadorID)
		return u.repo.GetByID(ctx, r.ID)
	}
	if err != nil {
		log.Printf("[commission][usecase] create failed offer_id=%s err=%v", o.ID, err)
		return entities.CommissionRecord{}, err
	}
	log.Printf("[commission][usecase] created id=%s offer_id=%s base=%s rate=%s amount=%s", created.ID, o.ID, created.Base.StringFixed(2), rate.String(), amount.StringFixed(2))
	return created, nil
}

func (u *CommissionUseCase) ListByOffer(ctx context.Context, offerID string) ([]entities.CommissionRecord, error) {
	offerID = strings.TrimSpace(offerID)
	if offerID == "" {
		return nil, ErrInvalidOfferID
	}
	return u.repo.ListByOfferID(ctx, offerID)
}

func (u *CommissionUseCase) Settle(ctx context.Context, id string) (entities.CommissionRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CommissionRecord{}, ErrInvalidCommissionID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CommissionRecord{}, err
	}
	if r.ID == "" {
		return entities.CommissionRecord{}, ErrCommissionNotFound
	}
	if r.Status == entities.CommissionStatusPaid {
		return entities.CommissionRecord{}, ErrCommissionAlreadySettled
	}

	settled, err := u.repo.MarkPaid(ctx, id, time.Now().UTC())
	if err != nil {
		log.Printf("[commission][usecase] settle failed id=%s err=%v", id, err)
		return entities.CommissionRecord{}, err
	}
	if settled.ID == "" {
		// settled concurrently
		return entities.CommissionRecord{}, ErrCommissionAlreadySettled
	}
	log.Printf("[commission][usecase] settled id=%s amount=%s", settled.ID, settled.Amount.StringFixed(2))
	return settled, nil
}
