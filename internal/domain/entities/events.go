package entities

import "time"

// EventType names the outbound events consumed by peripheral systems
// (mailer, PDF renderer, commission follow-up).
type EventType string

const (
	EventOfferStatusChanged EventType = "offer.status_changed"
	EventOfferCreated       EventType = "offer.created"
)

// OfferEvent is published after the underlying write is durable.
//
// Offer is the authoritative state after the write; From/To/Reason are only set
// for status changes.
type OfferEvent struct {
	Type       EventType      `json:"type"`
	OfferID    string         `json:"offer_id"`
	From       WorkflowStatus `json:"from,omitempty"`
	To         WorkflowStatus `json:"to,omitempty"`
	Reason     string         `json:"reason,omitempty"`
	Offer      Offer          `json:"offer"`
	OccurredAt time.Time      `json:"occurred_at"`
}
