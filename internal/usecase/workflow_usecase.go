package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"leasing_offers/internal/domain/entities"
	"leasing_offers/internal/domain/workflow"
	"leasing_offers/internal/usecase/interfaces"
)

// ErrStatusConflict means the offer's status changed since the caller read it.
// The caller should re-fetch instead of retrying blindly.
var ErrStatusConflict = interfaces.ErrStatusConflict

// IWorkflowUseCase exposes offer status transitions.
//
// Every operation validates the transition against the workflow graph before
// anything is written. A transition is persisted as a compare-and-set on the
// stored status together with its history entry, and the returned offer is the
// state read back after the write.

type IWorkflowUseCase interface {
	UpdateWorkflowStatus(ctx context.Context, offerID string, newStatus, previousStatus entities.WorkflowStatus, reason string) (entities.Offer, error)
	ScoreInternally(ctx context.Context, offerID string, score entities.Score, reason string) (entities.Offer, error)
	ScoreByLeaser(ctx context.Context, offerID string, score entities.Score, reason string) (entities.Offer, error)
	ClassifyNoFollowUp(ctx context.Context, offerID, reason string) (entities.Offer, error)
	Reactivate(ctx context.Context, offerID string, target entities.WorkflowStatus) (entities.Offer, error)
	History(ctx context.Context, offerID string) ([]entities.StatusHistoryEntry, error)
}

type WorkflowUseCase struct {
	repo        interfaces.IOfferRepository
	history     interfaces.IStatusHistoryRepository
	commissions ICommissionUseCase
	publisher   interfaces.IEventPublisher
}

var _ IWorkflowUseCase = (*WorkflowUseCase)(nil)

func NewWorkflowUseCase(
	repo interfaces.IOfferRepository,
	history interfaces.IStatusHistoryRepository,
	commissions ICommissionUseCase,
	publisher interfaces.IEventPublisher,
) *WorkflowUseCase {
	return &WorkflowUseCase{repo: repo, history: history, commissions: commissions, publisher: publisher}
}

func (u *WorkflowUseCase) UpdateWorkflowStatus(ctx context.Context, offerID string, newStatus, previousStatus entities.WorkflowStatus, reason string) (entities.Offer, error) {
	log.Printf("[workflow][usecase] update status start offer_id=%q from=%s to=%s", offerID, previousStatus, newStatus)
	offerID = strings.TrimSpace(offerID)
	if offerID == "" {
		return entities.Offer{}, ErrInvalidOfferID
	}
	if err := workflow.ValidateTransition(previousStatus, newStatus); err != nil {
		log.Printf("[workflow][usecase] transition rejected offer_id=%s err=%v", offerID, err)
		return entities.Offer{}, err
	}

	o, err := u.load(ctx, offerID)
	if err != nil {
		return entities.Offer{}, err
	}
	if o.WorkflowStatus != previousStatus {
		log.Printf("[workflow][usecase] stale previous status offer_id=%s stored=%s expected=%s", o.ID, o.WorkflowStatus, previousStatus)
		return entities.Offer{}, ErrStatusConflict
	}
	return u.transition(ctx, o, newStatus, reason, entities.OfferPatch{})
}

func (u *WorkflowUseCase) ScoreInternally(ctx context.Context, offerID string, score entities.Score, reason string) (entities.Offer, error) {
	return u.score(ctx, workflow.ReviewerInternal, offerID, score, reason)
}

func (u *WorkflowUseCase) ScoreByLeaser(ctx context.Context, offerID string, score entities.Score, reason string) (entities.Offer, error) {
	return u.score(ctx, workflow.ReviewerLeaser, offerID, score, reason)
}

func (u *WorkflowUseCase) score(ctx context.Context, reviewer workflow.Reviewer, offerID string, score entities.Score, reason string) (entities.Offer, error) {
	log.Printf("[workflow][usecase] %s score start offer_id=%q score=%s", reviewer, offerID, score)
	offerID = strings.TrimSpace(offerID)
	if offerID == "" {
		return entities.Offer{}, ErrInvalidOfferID
	}
	if err := workflow.ValidateScore(score, reason); err != nil {
		return entities.Offer{}, err
	}

	o, err := u.load(ctx, offerID)
	if err != nil {
		return entities.Offer{}, err
	}
	to, err := workflow.ScoreTarget(reviewer, o.WorkflowStatus, score, reason)
	if err != nil {
		log.Printf("[workflow][usecase] %s score rejected offer_id=%s status=%s err=%v", reviewer, o.ID, o.WorkflowStatus, err)
		return entities.Offer{}, err
	}

	s := score
	patch := entities.OfferPatch{}
	if reviewer == workflow.ReviewerInternal {
		patch.InternalScore = entities.ScorePatch{Set: true, Value: &s}
	} else {
		patch.LeaserScore = entities.ScorePatch{Set: true, Value: &s}
	}
	return u.transition(ctx, o, to, reason, patch)
}

func (u *WorkflowUseCase) ClassifyNoFollowUp(ctx context.Context, offerID, reason string) (entities.Offer, error) {
	offerID = strings.TrimSpace(offerID)
	if offerID == "" {
		return entities.Offer{}, ErrInvalidOfferID
	}

	o, err := u.load(ctx, offerID)
	if err != nil {
		return entities.Offer{}, err
	}
	if err := workflow.ValidateNoFollowUp(o.WorkflowStatus); err != nil {
		log.Printf("[workflow][usecase] no-follow-up rejected offer_id=%s status=%s", o.ID, o.WorkflowStatus)
		return entities.Offer{}, err
	}
	return u.transition(ctx, o, entities.StatusWithoutFollowUp, reason, entities.OfferPatch{})
}

// Reactivate rewinds an offer parked as without follow-up. The internal score is
// cleared; equipment and figures are left untouched.
func (u *WorkflowUseCase) Reactivate(ctx context.Context, offerID string, target entities.WorkflowStatus) (entities.Offer, error) {
	offerID = strings.TrimSpace(offerID)
	if offerID == "" {
		return entities.Offer{}, ErrInvalidOfferID
	}
	if !workflow.IsReactivationTarget(target) {
		return entities.Offer{}, fmt.Errorf("%w: cannot reactivate into %q", workflow.ErrInvalidTransition, target)
	}

	o, err := u.load(ctx, offerID)
	if err != nil {
		return entities.Offer{}, err
	}
	if err := workflow.ValidateReactivation(o.WorkflowStatus, target); err != nil {
		log.Printf("[workflow][usecase] reactivation rejected offer_id=%s status=%s", o.ID, o.WorkflowStatus)
		return entities.Offer{}, err
	}
	return u.transition(ctx, o, target, "reactivated", entities.OfferPatch{InternalScore: entities.ScorePatch{Set: true}})
}

func (u *WorkflowUseCase) History(ctx context.Context, offerID string) ([]entities.StatusHistoryEntry, error) {
	offerID = strings.TrimSpace(offerID)
	if offerID == "" {
		return nil, ErrInvalidOfferID
	}
	return u.history.ListByOfferID(ctx, offerID)
}

func (u *WorkflowUseCase) load(ctx context.Context, offerID string) (entities.Offer, error) {
	o, err := u.repo.GetByID(ctx, offerID)
	if err != nil {
		return entities.Offer{}, err
	}
	if o.ID == "" {
		return entities.Offer{}, ErrOfferNotFound
	}
	return o, nil
}

// transition persists a validated status change. Nothing is reported as changed
// unless the write succeeded.
func (u *WorkflowUseCase) transition(ctx context.Context, o entities.Offer, to entities.WorkflowStatus, reason string, patch entities.OfferPatch) (entities.Offer, error) {
	if o.WorkflowStatus == entities.StatusWithoutFollowUp && to != entities.StatusWithoutFollowUp {
		patch.InternalScore = entities.ScorePatch{Set: true}
	}

	t := entities.StatusTransition{
		OfferID: o.ID,
		From:    o.WorkflowStatus,
		To:      to,
		Reason:  strings.TrimSpace(reason),
		Patch:   patch,
	}
	updated, entry, err := u.repo.TransitionStatus(ctx, t)
	if err != nil {
		log.Printf("[workflow][usecase] transition failed offer_id=%s from=%s to=%s err=%v", o.ID, t.From, t.To, err)
		return entities.Offer{}, err
	}
	if updated.ID == "" {
		return entities.Offer{}, ErrOfferNotFound
	}
	log.Printf("[workflow][usecase] transition accepted offer_id=%s from=%s to=%s history_id=%s", updated.ID, t.From, t.To, entry.ID)

	occurredAt := entry.AcceptedAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}
	publishOfferEvent(ctx, u.publisher, entities.OfferEvent{
		Type:       entities.EventOfferStatusChanged,
		OfferID:    updated.ID,
		From:       t.From,
		To:         t.To,
		Reason:     t.Reason,
		Offer:      updated,
		OccurredAt: occurredAt,
	})

	if workflow.TriggersCommission(to) && updated.AmbassadorID != "" && u.commissions != nil {
		if _, err := u.commissions.CreateForOffer(ctx, updated); err != nil {
			log.Printf("[workflow][usecase] commission creation failed offer_id=%s ambassador_id=%s err=%v", updated.ID, updated.AmbassadorID, err)
		}
	}
	return updated, nil
}
