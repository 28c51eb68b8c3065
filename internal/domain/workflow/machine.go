package workflow

import (
	"errors"
	"fmt"
	"sort"

	"leasing_offers/internal/domain/entities"

	"github.com/qmuntal/stateless"
)

var (
	ErrUnknownStatus          = errors.New("unknown workflow status")
	ErrInvalidTransition      = errors.New("invalid workflow transition")
	ErrReactivationNotAllowed = errors.New("offer is not without follow-up")
	ErrNoFollowUpNotAllowed   = errors.New("offer cannot be classified without follow-up")
	ErrScoringNotAllowed      = errors.New("offer cannot be scored in its current status")
	ErrInvalidScore           = errors.New("invalid score")
	ErrScoreReasonRequired    = errors.New("a reason is required for scores B and C")
)

// transitions is the single transition table. Edges into without_follow_up are
// added from the no-follow-up deny-list in newStateMachine; edges out of it are
// the reactivation targets. Anything absent is rejected.
var transitions = map[entities.WorkflowStatus][]entities.WorkflowStatus{
	entities.StatusDraft: {
		entities.StatusSent, entities.StatusOfferSend, entities.StatusInternalReview, entities.StatusRejected,
	},
	entities.StatusSent: {
		entities.StatusInternalReview, entities.StatusInfoRequested,
		entities.StatusInternalApproved, entities.StatusInternalDocsRequested, entities.StatusInternalRejected,
		entities.StatusRejected,
	},
	entities.StatusOfferSend: {
		entities.StatusInternalReview, entities.StatusInfoRequested,
		entities.StatusInternalApproved, entities.StatusInternalDocsRequested, entities.StatusInternalRejected,
		entities.StatusRejected,
	},
	entities.StatusInfoRequested: {
		entities.StatusSent, entities.StatusInternalReview, entities.StatusRejected,
	},
	entities.StatusInternalReview: {
		entities.StatusInternalApproved, entities.StatusInternalDocsRequested, entities.StatusInternalRejected,
		entities.StatusInfoRequested, entities.StatusRejected,
	},
	entities.StatusInternalDocsRequested: {
		entities.StatusInternalReview,
		entities.StatusInternalApproved, entities.StatusInternalDocsRequested, entities.StatusInternalRejected,
		entities.StatusRejected,
	},
	entities.StatusInternalApproved: {
		entities.StatusLeaserIntroduced, entities.StatusLeaserReview, entities.StatusRejected,
	},
	entities.StatusInternalRejected: {
		entities.StatusRejected,
	},
	entities.StatusLeaserIntroduced: {
		entities.StatusLeaserReview,
		entities.StatusValidated, entities.StatusLeaserDocsRequested, entities.StatusLeaserRejected,
		entities.StatusRejected,
	},
	entities.StatusLeaserReview: {
		entities.StatusLeaserApproved,
		entities.StatusValidated, entities.StatusLeaserDocsRequested, entities.StatusLeaserRejected,
		entities.StatusRejected,
	},
	entities.StatusLeaserDocsRequested: {
		entities.StatusLeaserReview,
		entities.StatusValidated, entities.StatusLeaserDocsRequested, entities.StatusLeaserRejected,
		entities.StatusRejected,
	},
	entities.StatusLeaserApproved: {
		entities.StatusValidated, entities.StatusRejected,
	},
	entities.StatusLeaserRejected: {
		entities.StatusRejected,
	},
	entities.StatusValidated: {
		entities.StatusContractSent, entities.StatusSigned, entities.StatusFinanced,
	},
	entities.StatusContractSent: {
		entities.StatusSigned,
	},
	entities.StatusSigned: {
		entities.StatusFinanced, entities.StatusCompleted,
	},
	entities.StatusFinanced: {
		entities.StatusCompleted,
	},
	entities.StatusWithoutFollowUp: {
		entities.StatusDraft, entities.StatusSent, entities.StatusInternalReview,
	},
}

// newStateMachine configures the whole graph with the target status as trigger.
func newStateMachine(from entities.WorkflowStatus) *stateless.StateMachine {
	sm := stateless.NewStateMachine(from)
	for _, s := range entities.AllWorkflowStatuses {
		cfg := sm.Configure(s)
		for _, to := range transitions[s] {
			if to == s {
				cfg.PermitReentry(to)
				continue
			}
			cfg.Permit(to, to)
		}
		if IsNoFollowUpAllowed(s) {
			cfg.Permit(entities.StatusWithoutFollowUp, entities.StatusWithoutFollowUp)
		}
	}
	return sm
}

// ValidateTransition checks that to is reachable from from in one step.
// It is a pure check, run before anything is sent to persistence.
func ValidateTransition(from, to entities.WorkflowStatus) error {
	if !from.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, from)
	}
	if !to.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, to)
	}

	sm := newStateMachine(from)
	if err := sm.Fire(to); err != nil {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	if got := sm.MustState(); got != to {
		return fmt.Errorf("%w: %s -> %s landed on %v", ErrInvalidTransition, from, to, got)
	}
	return nil
}

// PermittedTargets lists the statuses reachable from from, in lifecycle order.
func PermittedTargets(from entities.WorkflowStatus) []entities.WorkflowStatus {
	if !from.Valid() {
		return nil
	}
	triggers, err := newStateMachine(from).PermittedTriggers()
	if err != nil {
		return nil
	}

	order := make(map[entities.WorkflowStatus]int, len(entities.AllWorkflowStatuses))
	for i, s := range entities.AllWorkflowStatuses {
		order[s] = i
	}
	out := make([]entities.WorkflowStatus, 0, len(triggers))
	for _, tr := range triggers {
		if s, ok := tr.(entities.WorkflowStatus); ok {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return order[out[i]] < order[out[j]] })
	return out
}

// ValidateReactivation checks a manual rewind out of without_follow_up.
func ValidateReactivation(from, to entities.WorkflowStatus) error {
	if from != entities.StatusWithoutFollowUp {
		return fmt.Errorf("%w: current status is %s", ErrReactivationNotAllowed, from)
	}
	if !IsReactivationTarget(to) {
		return fmt.Errorf("%w: cannot reactivate into %q", ErrInvalidTransition, to)
	}
	return ValidateTransition(from, to)
}

// ValidateNoFollowUp checks that the offer may be parked as without follow-up.
func ValidateNoFollowUp(from entities.WorkflowStatus) error {
	if !IsNoFollowUpAllowed(from) {
		return fmt.Errorf("%w: current status is %s", ErrNoFollowUpNotAllowed, from)
	}
	return ValidateTransition(from, entities.StatusWithoutFollowUp)
}
