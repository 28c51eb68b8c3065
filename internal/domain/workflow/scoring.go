package workflow

import (
	"fmt"
	"strings"

	"leasing_offers/internal/domain/entities"
)

// Reviewer identifies who scores an offer.
type Reviewer string

const (
	ReviewerInternal Reviewer = "internal"
	ReviewerLeaser   Reviewer = "leaser"
)

type scoringRule struct {
	from    map[entities.WorkflowStatus]bool
	targets map[entities.Score]entities.WorkflowStatus
}

// scoringRules is the consolidated scoring table. A status missing from a
// rule's from-set cannot be scored by that reviewer.
var scoringRules = map[Reviewer]scoringRule{
	ReviewerInternal: {
		from: map[entities.WorkflowStatus]bool{
			entities.StatusSent:                  true,
			entities.StatusOfferSend:             true,
			entities.StatusInternalReview:        true,
			entities.StatusInternalDocsRequested: true,
		},
		targets: map[entities.Score]entities.WorkflowStatus{
			entities.ScoreA: entities.StatusInternalApproved,
			entities.ScoreB: entities.StatusInternalDocsRequested,
			entities.ScoreC: entities.StatusInternalRejected,
		},
	},
	ReviewerLeaser: {
		from: map[entities.WorkflowStatus]bool{
			entities.StatusLeaserIntroduced:    true,
			entities.StatusLeaserReview:        true,
			entities.StatusLeaserDocsRequested: true,
		},
		targets: map[entities.Score]entities.WorkflowStatus{
			entities.ScoreA: entities.StatusValidated,
			entities.ScoreB: entities.StatusLeaserDocsRequested,
			entities.ScoreC: entities.StatusLeaserRejected,
		},
	},
}

// CanScore reports whether reviewer may score an offer currently in status.
func CanScore(reviewer Reviewer, status entities.WorkflowStatus) bool {
	rule, ok := scoringRules[reviewer]
	return ok && rule.from[status]
}

// ScoreTarget resolves the status an offer moves to when reviewer gives score.
// B (missing documents) and C (rejection) require a reason.
func ScoreTarget(reviewer Reviewer, from entities.WorkflowStatus, score entities.Score, reason string) (entities.WorkflowStatus, error) {
	if err := ValidateScore(score, reason); err != nil {
		return "", err
	}
	if !CanScore(reviewer, from) {
		return "", fmt.Errorf("%w: %s review from %s", ErrScoringNotAllowed, reviewer, from)
	}

	to := scoringRules[reviewer].targets[score]
	if err := ValidateTransition(from, to); err != nil {
		return "", err
	}
	return to, nil
}

// ValidateScore checks the score and its reason without looking at the offer.
func ValidateScore(score entities.Score, reason string) error {
	if !score.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidScore, score)
	}
	if score != entities.ScoreA && strings.TrimSpace(reason) == "" {
		return ErrScoreReasonRequired
	}
	return nil
}
