package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"leasing_offers/internal/adapter/http/handlers/mocks"
	"leasing_offers/internal/domain/entities"
	"leasing_offers/internal/domain/workflow"
	"leasing_offers/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWorkflowHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing previous status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.PATCH("/v1/offers/:id/status", h.UpdateStatus)

		w := serve(r, http.MethodPatch, "/v1/offers/offer-1/status", `{"status":"sent"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("transition not allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.PATCH("/v1/offers/:id/status", h.UpdateStatus)

		uc.EXPECT().
			UpdateWorkflowStatus(gomock.Any(), "offer-1", entities.StatusCompleted, entities.StatusDraft, "").
			Return(entities.Offer{}, workflow.ErrInvalidTransition)

		w := serve(r, http.MethodPatch, "/v1/offers/offer-1/status", `{"status":"completed","previous_status":"draft"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("stale previous status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.PATCH("/v1/offers/:id/status", h.UpdateStatus)

		uc.EXPECT().
			UpdateWorkflowStatus(gomock.Any(), "offer-1", entities.StatusInternalReview, entities.StatusSent, "").
			Return(entities.Offer{}, usecase.ErrStatusConflict)

		w := serve(r, http.MethodPatch, "/v1/offers/offer-1/status", `{"status":"internal_review","previous_status":"sent"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var got map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if got["code"] != "STATUS_CONFLICT" {
			t.Fatalf("expected STATUS_CONFLICT, got %q", got["code"])
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.PATCH("/v1/offers/:id/status", h.UpdateStatus)

		uc.EXPECT().
			UpdateWorkflowStatus(gomock.Any(), "offer-1", entities.StatusSent, entities.StatusDraft, "mailed").
			Return(sampleOffer(entities.StatusSent), nil)

		w := serve(r, http.MethodPatch, "/v1/offers/offer-1/status", `{"status":" sent ","previous_status":"draft","reason":" mailed "}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestWorkflowHandler_Score(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("internal score is uppercased", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.POST("/v1/offers/:id/internal-score", h.ScoreInternally)

		uc.EXPECT().ScoreInternally(gomock.Any(), "offer-1", entities.ScoreA, "").Return(sampleOffer(entities.StatusInternalApproved), nil)

		w := serve(r, http.MethodPost, "/v1/offers/offer-1/internal-score", `{"score":"a"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("leaser score needs a reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.POST("/v1/offers/:id/leaser-score", h.ScoreByLeaser)

		uc.EXPECT().ScoreByLeaser(gomock.Any(), "offer-1", entities.ScoreC, "").Return(entities.Offer{}, workflow.ErrScoreReasonRequired)

		w := serve(r, http.MethodPost, "/v1/offers/offer-1/leaser-score", `{"score":"C"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("scoring outside review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.POST("/v1/offers/:id/leaser-score", h.ScoreByLeaser)

		uc.EXPECT().ScoreByLeaser(gomock.Any(), "offer-1", entities.ScoreA, "").Return(entities.Offer{}, workflow.ErrScoringNotAllowed)

		w := serve(r, http.MethodPost, "/v1/offers/offer-1/leaser-score", `{"score":"A"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestWorkflowHandler_NoFollowUpAndReactivate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("classify without body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.POST("/v1/offers/:id/no-follow-up", h.ClassifyNoFollowUp)

		uc.EXPECT().ClassifyNoFollowUp(gomock.Any(), "offer-1", "").Return(sampleOffer(entities.StatusWithoutFollowUp), nil)

		w := serve(r, http.MethodPost, "/v1/offers/offer-1/no-follow-up", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("classify refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.POST("/v1/offers/:id/no-follow-up", h.ClassifyNoFollowUp)

		uc.EXPECT().ClassifyNoFollowUp(gomock.Any(), "offer-1", "client silent").Return(entities.Offer{}, workflow.ErrNoFollowUpNotAllowed)

		w := serve(r, http.MethodPost, "/v1/offers/offer-1/no-follow-up", `{"reason":"client silent"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("reactivate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.POST("/v1/offers/:id/reactivate", h.Reactivate)

		uc.EXPECT().Reactivate(gomock.Any(), "offer-1", entities.StatusSent).Return(sampleOffer(entities.StatusSent), nil)

		w := serve(r, http.MethodPost, "/v1/offers/offer-1/reactivate", `{"status":"sent"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reactivate unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		h := NewWorkflowHandler(uc)

		r := gin.New()
		r.POST("/v1/offers/:id/reactivate", h.Reactivate)

		uc.EXPECT().Reactivate(gomock.Any(), "offer-1", entities.WorkflowStatus("limbo")).Return(entities.Offer{}, workflow.ErrUnknownStatus)

		w := serve(r, http.MethodPost, "/v1/offers/offer-1/reactivate", `{"status":"limbo"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestWorkflowHandler_History(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIWorkflowUseCase(ctrl)
	h := NewWorkflowHandler(uc)

	r := gin.New()
	r.GET("/v1/offers/:id/history", h.History)

	now := time.Now().UTC()
	uc.EXPECT().History(gomock.Any(), "offer-1").Return([]entities.StatusHistoryEntry{
		{ID: "h1", OfferID: "offer-1", To: entities.StatusDraft, AcceptedAt: now},
		{ID: "h2", OfferID: "offer-1", From: entities.StatusDraft, To: entities.StatusSent, AcceptedAt: now.Add(time.Second)},
	}, nil)

	w := serve(r, http.MethodGet, "/v1/offers/offer-1/history", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 2 || got[1]["id"] != "h2" {
		t.Fatalf("unexpected history: %v", got)
	}
}
