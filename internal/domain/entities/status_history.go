package entities

import "time"

// StatusHistoryEntry is one accepted workflow transition.
//
// Storage model (DynamoDB):
//   - PK: offer_id
//   - SK: accepted_at#id, so a query returns entries in acceptance order
//
// Entries are append-only: they are never updated or deleted, because scoring
// disputes are settled from this trail.
type StatusHistoryEntry struct {
	ID         string         `json:"id"`
	OfferID    string         `json:"offer_id"`
	From       WorkflowStatus `json:"from"`
	To         WorkflowStatus `json:"to"`
	Reason     string         `json:"reason,omitempty"`
	AcceptedAt time.Time      `json:"accepted_at"`
}

// StatusTransition is a validated request to move an offer from one status to another.
//
// The repository applies it as a compare-and-set on From and writes the history
// entry in the same transaction. Patch carries side fields that change together
// with the status (scores).
type StatusTransition struct {
	OfferID string
	From    WorkflowStatus
	To      WorkflowStatus
	Reason  string
	Patch   OfferPatch
}
