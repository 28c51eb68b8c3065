package interfaces

import (
	"context"

	"leasing_offers/internal/domain/entities"
)

// ILeaserRepository abstracts the leaser coefficient tables.
// A missing leaser yields a zero-value table (LeaserID == "").

type ILeaserRepository interface {
	GetCoefficientTable(ctx context.Context, leaserID string) (entities.CoefficientTable, error)
	PutCoefficientTable(ctx context.Context, t entities.CoefficientTable) (entities.CoefficientTable, error)
}
