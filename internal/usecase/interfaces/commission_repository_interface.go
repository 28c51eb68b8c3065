package interfaces

import (
	"context"
	"errors"
	"time"

	"leasing_offers/internal/domain/entities"
)

// ErrCommissionExists is returned by Create when a record with the same id is stored.
var ErrCommissionExists = errors.New("commission already exists")

// ICommissionRepository abstracts DynamoDB persistence for CommissionRecord.
//
// MarkPaid only succeeds on a pending record; otherwise (or when missing) it
// returns a zero-value record.

type ICommissionRepository interface {
	Create(ctx context.Context, r entities.CommissionRecord) (entities.CommissionRecord, error)
	GetByID(ctx context.Context, id string) (entities.CommissionRecord, error)
	ListByOfferID(ctx context.Context, offerID string) ([]entities.CommissionRecord, error)
	MarkPaid(ctx context.Context, id string, settledAt time.Time) (entities.CommissionRecord, error)
}

// IAmbassadorRepository resolves the commission level assigned to an ambassador.
// Unknown ambassadors (or ambassadors without a level) yield a zero-value level.
type IAmbassadorRepository interface {
	GetCommissionLevel(ctx context.Context, ambassadorID string) (entities.CommissionLevel, error)
}
