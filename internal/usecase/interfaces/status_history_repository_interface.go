package interfaces

import (
	"context"

	"leasing_offers/internal/domain/entities"
)

// IStatusHistoryRepository abstracts the append-only status history log.
// Entries written as part of a transition go through IOfferRepository.TransitionStatus.

type IStatusHistoryRepository interface {
	Append(ctx context.Context, e entities.StatusHistoryEntry) (entities.StatusHistoryEntry, error)
	ListByOfferID(ctx context.Context, offerID string) ([]entities.StatusHistoryEntry, error)
}
