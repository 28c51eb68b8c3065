package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"leasing_offers/internal/domain/entities"
	"leasing_offers/internal/usecase/interfaces"
	mock_interfaces "leasing_offers/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func silverLevel() entities.CommissionLevel {
	return entities.CommissionLevel{
		ID:   "silver",
		Name: "Silver",
		Rates: []entities.CommissionRate{
			{Min: dec("0"), Max: dec("5000"), Rate: dec("3")},
			{Min: dec("5000.01"), Rate: dec("4.5")},
		},
	}
}

func TestCommissionUseCase_CreateForOffer(t *testing.T) {
	t.Run("offer without ambassador", func(t *testing.T) {
		uc := NewCommissionUseCase(newTestCalculator(), nil, nil)
		_, err := uc.CreateForOffer(context.Background(), entities.Offer{ID: "offer-1"})
		if !errors.Is(err, ErrNoAmbassador) {
			t.Fatalf("expected ErrNoAmbassador, got %v", err)
		}
	})

	t.Run("ambassador without level", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICommissionRepository(ctrl)
		ambassadors := mock_interfaces.NewMockIAmbassadorRepository(ctrl)
		uc := NewCommissionUseCase(newTestCalculator(), repo, ambassadors)

		ambassadors.EXPECT().GetCommissionLevel(gomock.Any(), "amb-1").Return(entities.CommissionLevel{}, nil)

		_, err := uc.CreateForOffer(context.Background(), entities.Offer{ID: "offer-1", AmbassadorID: "amb-1"})
		if !errors.Is(err, ErrCommissionLevelNotFound) {
			t.Fatalf("expected ErrCommissionLevelNotFound, got %v", err)
		}
	})

	t.Run("base derived from total monthly payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICommissionRepository(ctrl)
		ambassadors := mock_interfaces.NewMockIAmbassadorRepository(ctrl)
		uc := NewCommissionUseCase(newTestCalculator(), repo, ambassadors)

		ambassadors.EXPECT().GetCommissionLevel(gomock.Any(), "amb-1").Return(silverLevel(), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.CommissionRecord) (entities.CommissionRecord, error) {
			return r, nil
		})

		// 196.2 × 100 / 3.27 = 6000, second bracket
		got, err := uc.CreateForOffer(context.Background(), entities.Offer{
			ID: "offer-1", AmbassadorID: "amb-1", TotalMonthlyPayment: dec("196.2"), Coefficient: dec("3.27"),
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !got.Base.Equal(dec("6000")) || !got.Rate.Equal(dec("4.5")) || !got.Amount.Equal(dec("270")) {
			t.Fatalf("unexpected commission: base=%s rate=%s amount=%s", got.Base, got.Rate, got.Amount)
		}
		if got.ID != CommissionID("offer-1", "amb-1") || got.LevelID != "silver" {
			t.Fatalf("unexpected identity: %+v", got)
		}
	})

	t.Run("manual financed amount does not change the base", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICommissionRepository(ctrl)
		ambassadors := mock_interfaces.NewMockIAmbassadorRepository(ctrl)
		uc := NewCommissionUseCase(newTestCalculator(), repo, ambassadors)

		ambassadors.EXPECT().GetCommissionLevel(gomock.Any(), "amb-1").Return(silverLevel(), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.CommissionRecord) (entities.CommissionRecord, error) {
			return r, nil
		})

		// 65.4 × 100 / 3.27 = 2000, first bracket
		got, err := uc.CreateForOffer(context.Background(), entities.Offer{
			ID: "offer-1", AmbassadorID: "amb-1", TotalMonthlyPayment: dec("65.4"), Coefficient: dec("3.27"),
			ManualFinancedAmount: dec("9000"), FinancedAmount: dec("9000"),
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !got.Base.Equal(dec("2000")) || !got.Rate.Equal(dec("3")) || !got.Amount.Equal(dec("60")) {
			t.Fatalf("unexpected commission: base=%s rate=%s amount=%s", got.Base, got.Rate, got.Amount)
		}
	})

	t.Run("replay returns the existing record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICommissionRepository(ctrl)
		ambassadors := mock_interfaces.NewMockIAmbassadorRepository(ctrl)
		uc := NewCommissionUseCase(newTestCalculator(), repo, ambassadors)

		id := CommissionID("offer-1", "amb-1")
		existing := entities.CommissionRecord{ID: id, OfferID: "offer-1", Amount: dec("30"), Status: entities.CommissionStatusPaid}
		ambassadors.EXPECT().GetCommissionLevel(gomock.Any(), "amb-1").Return(silverLevel(), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.CommissionRecord{}, interfaces.ErrCommissionExists)
		repo.EXPECT().GetByID(gomock.Any(), id).Return(existing, nil)

		got, err := uc.CreateForOffer(context.Background(), entities.Offer{ID: "offer-1", AmbassadorID: "amb-1", TotalMonthlyPayment: dec("32.7")})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.Status != entities.CommissionStatusPaid || !got.Amount.Equal(dec("30")) {
			t.Fatalf("expected the stored record, got %+v", got)
		}
	})
}

func TestCommissionUseCase_Settle(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewCommissionUseCase(newTestCalculator(), nil, nil)
		_, err := uc.Settle(context.Background(), "")
		if !errors.Is(err, ErrInvalidCommissionID) {
			t.Fatalf("expected ErrInvalidCommissionID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICommissionRepository(ctrl)
		uc := NewCommissionUseCase(newTestCalculator(), repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.CommissionRecord{}, nil)

		_, err := uc.Settle(context.Background(), "c-1")
		if !errors.Is(err, ErrCommissionNotFound) {
			t.Fatalf("expected ErrCommissionNotFound, got %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICommissionRepository(ctrl)
		uc := NewCommissionUseCase(newTestCalculator(), repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.CommissionRecord{ID: "c-1", Status: entities.CommissionStatusPaid}, nil)

		_, err := uc.Settle(context.Background(), "c-1")
		if !errors.Is(err, ErrCommissionAlreadySettled) {
			t.Fatalf("expected ErrCommissionAlreadySettled, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICommissionRepository(ctrl)
		uc := NewCommissionUseCase(newTestCalculator(), repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.CommissionRecord{ID: "c-1", Status: entities.CommissionStatusPending}, nil)
		repo.EXPECT().MarkPaid(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(func(_ context.Context, id string, at time.Time) (entities.CommissionRecord, error) {
			return entities.CommissionRecord{ID: id, Status: entities.CommissionStatusPaid, SettledAt: &at}, nil
		})

		got, err := uc.Settle(context.Background(), "c-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.Status != entities.CommissionStatusPaid || got.SettledAt == nil {
			t.Fatalf("unexpected record: %+v", got)
		}
	})

	t.Run("lost race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICommissionRepository(ctrl)
		uc := NewCommissionUseCase(newTestCalculator(), repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.CommissionRecord{ID: "c-1", Status: entities.CommissionStatusPending}, nil)
		repo.EXPECT().MarkPaid(gomock.Any(), "c-1", gomock.Any()).Return(entities.CommissionRecord{}, nil)

		_, err := uc.Settle(context.Background(), "c-1")
		if !errors.Is(err, ErrCommissionAlreadySettled) {
			t.Fatalf("expected ErrCommissionAlreadySettled, got %v", err)
		}
	})
}
