package interfaces

import (
	"context"

	"leasing_offers/internal/domain/entities"
)

// IEventPublisher delivers offer events to the peripheral consumers
// (notification mailer, PDF renderer).
type IEventPublisher interface {
	Publish(ctx context.Context, e entities.OfferEvent) error
}
