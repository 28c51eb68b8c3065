package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"leasing_offers/internal/domain/entities"
	"leasing_offers/internal/domain/workflow"
	"leasing_offers/internal/usecase/interfaces"
	mock_interfaces "leasing_offers/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type workflowMocks struct {
	repo        *mock_interfaces.MockIOfferRepository
	history     *mock_interfaces.MockIStatusHistoryRepository
	publisher   *mock_interfaces.MockIEventPublisher
	commissions *mock_interfaces.MockICommissionRepository
	ambassadors *mock_interfaces.MockIAmbassadorRepository
}

func newWorkflowUseCaseWithMocks(ctrl *gomock.Controller) (*WorkflowUseCase, workflowMocks) {
	m := workflowMocks{
		repo:        mock_interfaces.NewMockIOfferRepository(ctrl),
		history:     mock_interfaces.NewMockIStatusHistoryRepository(ctrl),
		publisher:   mock_interfaces.NewMockIEventPublisher(ctrl),
		commissions: mock_interfaces.NewMockICommissionRepository(ctrl),
		ambassadors: mock_interfaces.NewMockIAmbassadorRepository(ctrl),
	}
	commissionUC := NewCommissionUseCase(newTestCalculator(), m.commissions, m.ambassadors)
	return NewWorkflowUseCase(m.repo, m.history, commissionUC, m.publisher), m
}

func scorePtr(s entities.Score) *entities.Score { return &s }

// applyTransition mimics the repository: it applies the transition to o and
// stamps the history entry.
func applyTransition(o entities.Offer, tr entities.StatusTransition) (entities.Offer, entities.StatusHistoryEntry) {
	o.WorkflowStatus = tr.To
	if tr.Patch.InternalScore.Set {
		o.InternalScore = tr.Patch.InternalScore.Value
	}
	if tr.Patch.LeaserScore.Set {
		o.LeaserScore = tr.Patch.LeaserScore.Value
	}
	entry := entities.StatusHistoryEntry{
		ID:         "hist-1",
		OfferID:    tr.OfferID,
		From:       tr.From,
		To:         tr.To,
		Reason:     tr.Reason,
		AcceptedAt: time.Now().UTC(),
	}
	return o, entry
}

func expectTransition(t *testing.T, m workflowMocks, o entities.Offer, check func(tr entities.StatusTransition)) {
	t.Helper()
	m.repo.EXPECT().TransitionStatus(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tr entities.StatusTransition) (entities.Offer, entities.StatusHistoryEntry, error) {
			if check != nil {
				check(tr)
			}
			updated, entry := applyTransition(o, tr)
			return updated, entry, nil
		})
}

func TestWorkflowUseCase_UpdateWorkflowStatus(t *testing.T) {
	t.Run("invalid transition is rejected before any repository call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newWorkflowUseCaseWithMocks(ctrl)

		_, err := uc.UpdateWorkflowStatus(context.Background(), "offer-1", entities.StatusValidated, entities.StatusDraft, "")
		if !errors.Is(err, workflow.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newWorkflowUseCaseWithMocks(ctrl)

		_, err := uc.UpdateWorkflowStatus(context.Background(), "offer-1", "archived", entities.StatusDraft, "")
		if !errors.Is(err, workflow.ErrUnknownStatus) {
			t.Fatalf("expected ErrUnknownStatus, got %v", err)
		}
	})

	t.Run("offer not found aborts without writes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkflowUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "offer-1").Return(entities.Offer{}, nil)

		_, err := uc.UpdateWorkflowStatus(context.Background(), "offer-1", entities.StatusSent, entities.StatusDraft, "")
		if !errors.Is(err, ErrOfferNotFound) {
			t.Fatalf("expected ErrOfferNotFound, got %v", err)
		}
	})

	t.Run("stale previous status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkflowUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "offer-1").Return(entities.Offer{ID: "offer-1", WorkflowStatus: entities.StatusSent}, nil)

		_, err := uc.UpdateWorkflowStatus(context.Background(), "offer-1", entities.StatusSent, entities.StatusDraft, "")
		if !errors.Is(err, ErrStatusConflict) {
			t.Fatalf("expected ErrStatusConflict, got %v", err)
		}
	})

	t.Run("concurrent write loses the race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkflowUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "offer-1").Return(entities.Offer{ID: "offer-1", WorkflowStatus: entities.StatusDraft}, nil)
		m.repo.EXPECT().TransitionStatus(gomock.Any(), gomock.Any()).Return(entities.Offer{}, entities.StatusHistoryEntry{}, interfaces.ErrStatusConflict)

		_, err := uc.UpdateWorkflowStatus(context.Background(), "offer-1", entities.StatusSent, entities.StatusDraft, "")
		if !errors.Is(err, ErrStatusConflict) {
			t.Fatalf("expected ErrStatusConflict, got %v", err)
		}
	})

	t.Run("persistence failure publishes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkflowUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "offer-1").Return(entities.Offer{ID: "offer-1", WorkflowStatus: entities.StatusDraft}, nil)
		m.repo.EXPECT().TransitionStatus(gomock.Any(), gomock.Any()).Return(entities.Offer{}, entities.StatusHistoryEntry{}, errors.New("db"))

		got, err := uc.UpdateWorkflowStatus(context.Background(), "offer-1", entities.StatusSent, entities.StatusDraft, "")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
		if got.WorkflowStatus != "" {
			t.Fatalf("no status must be reported on failure, got %s", got.WorkflowStatus)
		}
	})

	t.Run("success records history and publishes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkflowUseCaseWithMocks(ctrl)

		o := entities.Offer{ID: "offer-1", WorkflowStatus: entities.StatusDraft}
		m.repo.EXPECT().GetByID(gomock.Any(), "offer-1").Return(o, nil)
		expectTransition(t, m, o, func(tr entities.StatusTransition) {
			if tr.From != entities.StatusDraft || tr.To != entities.StatusSent || tr.Reason != "sent by mail" {
				t.Fatalf("unexpected transition: %+v", tr)
			}
		})
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.OfferEvent) error {
			if e.Type != entities.EventOfferStatusChanged || e.From != entities.StatusDraft || e.To != entities.StatusSent {
				t.Fatalf("unexpected event: %+v", e)
			}
			return nil
		})

		got, err := uc.UpdateWorkflowStatus(context.Background(), "offer-1", entities.StatusSent, entities.StatusDraft, " sent by mail ")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.WorkflowStatus != entities.StatusSent {
			t.Fatalf("expected sent, got %s", got.WorkflowStatus)
		}
	})

	t.Run("publisher failure is not a transition failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkflowUseCaseWithMocks(ctrl)

		o := entities.Offer{ID: "offer-1", WorkflowStatus: entities.StatusDraft}
		m.repo.EXPECT().GetByID(gomock.Any(), "offer-1").Return(o, nil)
		expectTransition(t, m, o, nil)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		if _, err := uc.UpdateWorkflowStatus(context.Background(), "offer-1", entities.StatusSent, entities.StatusDraft, ""); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestWorkflowUseCase_ScoreByLeaser(t *testing.T) {
	t.Run("A from leaser_docs_requested validates the offer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkflowUseCaseWithMocks(ctrl)

		o := entities.Offer{ID: "offer-1", WorkflowStatus: entities.StatusLeaserDocsRequested}
		m.repo.EXPECT().GetByID(gomock.Any(), "offer-1").Return(o, nil)
		var recorded entities.StatusTransition
		expectTransition(t, m, o, func(tr entities.StatusTransition) { recorded = tr })
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.ScoreByLeaser(context.Background(), "offer-1", entities.ScoreA, "")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.WorkflowStatus != entities.StatusValidated {
			t.Fatalf("expected validated, got %s", got.WorkflowStatus)
		}
		if recorded.From != entities.StatusLeaserDocsRequested || recorded.To != entities.StatusValidated {
			t.Fatalf("unexpected history transition: %+v", recorded)
		}
		if got.LeaserScore == nil || *got.LeaserScore != entities.ScoreA {
			t.Fatalf("expected leaser score A, got %v", got.LeaserScore)
		}
	})

	t.Run("not scorable from internal review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkflowUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "offer-1").Return(entities.Offer{ID: "offer-1", WorkflowStatus: entities.StatusInternalReview}, nil)

		_, err := uc.ScoreByLeaser(context.Background(), "offer-1", entities.ScoreA, "")
		if !errors.Is(err, workflow.ErrScoringNotAllowed) {
			t.Fatalf("expected ErrScoringNotAllowed, got %v", err)
		}
	})

	t.Run("validated with ambassador creates the commission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkflowUseCaseWithMocks(ctrl)

		o := entities.Offer{
			ID:                  "offer-1",
			AmbassadorID:        "amb-1",
			WorkflowStatus:      entities.StatusLeaserReview,
			Coefficient:         dec("3.27"),
			TotalMonthlyPayment: dec("32.7"),
			FinancedAmount:      dec("1000"),
		}
		m.repo.EXPECT().GetByID(gomock.Any(), "offer-1").Return(o, nil)
		expectTransition(t, m, o, nil)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
		m.ambassadors.EXPECT().GetCommissionLevel(gomock.Any(), "amb-1").Return(entities.CommissionLevel{
			ID: "silver", Rates: []entities.CommissionRate{{Min: decimal.Zero, Rate: dec("5")}},
		}, nil)
		m.commissions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.CommissionRecord) (entities.CommissionRecord, error) {
				if r.OfferID != "offer-1" || !r.Amount.Equal(dec("50")) || r.Status != entities.CommissionStatusPending {
					t.Fatalf("unexpected commission: %+v", r)
				}
				return r, nil
			})

		if _, err := uc.ScoreByLeaser(context.Background(), "offer-1", entities.ScoreA, ""); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestWorkflowUseCase_ScoreInternally(t *testing.T) {
	t.Run("B without reason never reaches the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newWorkflowUseCaseWithMocks(ctrl)

		_, err := uc.ScoreInternally(context.Background(), "offer-1", entities.ScoreB, "  ")
		if !errors.Is(err, workflow.ErrScoreReasonRequired) {
			t.Fatalf("expected ErrScoreReasonRequired, got %v", err)
		}
	})

	t.Run("C rejects with reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkflowUseCaseWithMocks(ctrl)

		o := entities.Offer{ID: "offer-1", WorkflowStatus: entities.StatusInternalReview}
		m.repo.EXPECT().GetByID(gomock.Any(), "offer-1").Return(o, nil)
		expectTransition(t, m, o, func(tr entities.StatusTransition) {
			if tr.To != entities.StatusInternalRejected || tr.Reason != "insolvent" {
				t.Fatalf("unexpected transition: %+v", tr)
			}
			if !tr.Patch.InternalScore.Set || *tr.Patch.InternalScore.Value != entities.ScoreC {
				t.Fatalf("expected internal score C in patch")
			}
		})
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.ScoreInternally(context.Background(), "offer-1", entities.ScoreC, "insolvent")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.WorkflowStatus != entities.StatusInternalRejected {
			t.Fatalf("expected internal_rejected, got %s", got.WorkflowStatus)
		}
	})
}

func TestWorkflowUseCase_ClassifyNoFollowUp(t *testing.T) {
	t.Run("denied from validated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkflowUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "offer-1").Return(entities.Offer{ID: "offer-1", WorkflowStatus: entities.StatusValidated}, nil)

		_, err := uc.ClassifyNoFollowUp(context.Background(), "offer-1", "client silent")
		if !errors.Is(err, workflow.ErrNoFollowUpNotAllowed) {
			t.Fatalf("expected ErrNoFollowUpNotAllowed, got %v", err)
		}
	})

	t.Run("allowed from sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkflowUseCaseWithMocks(ctrl)

		o := entities.Offer{ID: "offer-1", WorkflowStatus: entities.StatusSent}
		m.repo.EXPECT().GetByID(gomock.Any(), "offer-1").Return(o, nil)
		expectTransition(t, m, o, nil)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.ClassifyNoFollowUp(context.Background(), "offer-1", "client silent")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.WorkflowStatus != entities.StatusWithoutFollowUp {
			t.Fatalf("expected without_follow_up, got %s", got.WorkflowStatus)
		}
	})
}

func TestWorkflowUseCase_Reactivate(t *testing.T) {
	t.Run("invalid target never reaches the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newWorkflowUseCaseWithMocks(ctrl)

		_, err := uc.Reactivate(context.Background(), "offer-1", entities.StatusValidated)
		if !errors.Is(err, workflow.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("only from without_follow_up", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkflowUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "offer-1").Return(entities.Offer{ID: "offer-1", WorkflowStatus: entities.StatusRejected}, nil)

		_, err := uc.Reactivate(context.Background(), "offer-1", entities.StatusDraft)
		if !errors.Is(err, workflow.ErrReactivationNotAllowed) {
			t.Fatalf("expected ErrReactivationNotAllowed, got %v", err)
		}
	})

	// Reactivation clears the internal score whatever it was, for every target.
	for _, target := range []entities.WorkflowStatus{entities.StatusDraft, entities.StatusSent, entities.StatusInternalReview} {
		for _, prior := range []*entities.Score{nil, scorePtr(entities.ScoreA), scorePtr(entities.ScoreB), scorePtr(entities.ScoreC)} {
			name := string(target) + "/none"
			if prior != nil {
				name = string(target) + "/" + string(*prior)
			}
			t.Run(name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc, m := newWorkflowUseCaseWithMocks(ctrl)

				o := entities.Offer{
					ID:                  "offer-1",
					WorkflowStatus:      entities.StatusWithoutFollowUp,
					InternalScore:       prior,
					TotalMonthlyPayment: dec("92.14"),
				}
				m.repo.EXPECT().GetByID(gomock.Any(), "offer-1").Return(o, nil)
				expectTransition(t, m, o, func(tr entities.StatusTransition) {
					if !tr.Patch.InternalScore.Set || tr.Patch.InternalScore.Value != nil {
						t.Fatalf("expected internal score reset, got %+v", tr.Patch.InternalScore)
					}
					if tr.Patch.Equipment != nil || tr.Patch.Totals != nil {
						t.Fatalf("reactivation must not touch equipment or figures")
					}
				})
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

				got, err := uc.Reactivate(context.Background(), "offer-1", target)
				if err != nil {
					t.Fatalf("unexpected err: %v", err)
				}
				if got.WorkflowStatus != target {
					t.Fatalf("expected %s, got %s", target, got.WorkflowStatus)
				}
				if got.InternalScore != nil {
					t.Fatalf("expected internal score nil, got %v", *got.InternalScore)
				}
				if !got.TotalMonthlyPayment.Equal(dec("92.14")) {
					t.Fatalf("figures must be untouched")
				}
			})
		}
	}

	t.Run("leaving without_follow_up through a plain status update also resets the score", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newWorkflowUseCaseWithMocks(ctrl)

		o := entities.Offer{ID: "offer-1", WorkflowStatus: entities.StatusWithoutFollowUp, InternalScore: scorePtr(entities.ScoreC)}
		m.repo.EXPECT().GetByID(gomock.Any(), "offer-1").Return(o, nil)
		expectTransition(t, m, o, nil)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.UpdateWorkflowStatus(context.Background(), "offer-1", entities.StatusDraft, entities.StatusWithoutFollowUp, "")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.InternalScore != nil {
			t.Fatalf("expected internal score nil")
		}
	})
}

func TestWorkflowUseCase_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newWorkflowUseCaseWithMocks(ctrl)

	m.history.EXPECT().ListByOfferID(gomock.Any(), "offer-1").Return([]entities.StatusHistoryEntry{{ID: "h1"}, {ID: "h2"}}, nil)

	got, err := uc.History(context.Background(), "offer-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
}
