package response

import (
	"time"

	"leasing_offers/internal/domain/entities"
)

type StatusHistoryResponse struct {
	ID         string    `json:"id"`
	OfferID    string    `json:"offer_id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	Reason     string    `json:"reason,omitempty"`
	AcceptedAt time.Time `json:"accepted_at"`
}

func FromStatusHistory(entries []entities.StatusHistoryEntry) []StatusHistoryResponse {
	out := make([]StatusHistoryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, StatusHistoryResponse{
			ID:         e.ID,
			OfferID:    e.OfferID,
			From:       string(e.From),
			To:         string(e.To),
			Reason:     e.Reason,
			AcceptedAt: e.AcceptedAt,
		})
	}
	return out
}

type CommissionResponse struct {
	ID           string     `json:"id"`
	OfferID      string     `json:"offer_id"`
	AmbassadorID string     `json:"ambassador_id"`
	LevelID      string     `json:"level_id"`
	Base         float64    `json:"base"`
	Rate         float64    `json:"rate"`
	Amount       float64    `json:"amount"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	SettledAt    *time.Time `json:"settled_at,omitempty"`
}

func FromCommission(c entities.CommissionRecord) CommissionResponse {
	return CommissionResponse{
		ID:           c.ID,
		OfferID:      c.OfferID,
		AmbassadorID: c.AmbassadorID,
		LevelID:      c.LevelID,
		Base:         money(c.Base),
		Rate:         rate(c.Rate),
		Amount:       money(c.Amount),
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
		SettledAt:    c.SettledAt,
	}
}

func FromCommissions(records []entities.CommissionRecord) []CommissionResponse {
	out := make([]CommissionResponse, 0, len(records))
	for _, c := range records {
		out = append(out, FromCommission(c))
	}
	return out
}
