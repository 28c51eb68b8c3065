package interfaces

import (
	"context"
	"errors"

	"leasing_offers/internal/domain/entities"
)

// ErrStatusConflict is returned by TransitionStatus when the stored status no
// longer matches the transition's expected previous status.
var ErrStatusConflict = errors.New("offer status changed concurrently")

// ErrOfferNotEditable is returned by equipment writes when the stored status no
// longer allows editing.
var ErrOfferNotEditable = errors.New("offer is not editable in its current status")

// IOfferRepository abstracts DynamoDB persistence for Offer.
//
// Not-found is signalled by a zero-value Offer (ID == "") and a nil error, so use
// cases decide how fatal it is. Equipment lines are embedded in the offer item.
//
//   - Update applies a partial patch (updateOffer)
//   - InsertEquipmentLines appends lines and stores the recomputed totals
//   - equipment writes (Update with Equipment set, InsertEquipmentLines) only
//     apply while the stored status is editable
//   - TransitionStatus is a compare-and-set on the workflow status that also
//     appends the history entry, atomically

type IOfferRepository interface {
	Create(ctx context.Context, o entities.Offer) (entities.Offer, error)
	GetByID(ctx context.Context, id string) (entities.Offer, error)
	Update(ctx context.Context, id string, patch entities.OfferPatch) (entities.Offer, error)
	InsertEquipmentLines(ctx context.Context, offerID string, lines []entities.EquipmentLine, totals entities.Totals) (entities.Offer, error)
	TransitionStatus(ctx context.Context, t entities.StatusTransition) (entities.Offer, entities.StatusHistoryEntry, error)
	Delete(ctx context.Context, id string) (bool, error)
}
