package response

import (
	"time"

	"leasing_offers/internal/domain/entities"
	"leasing_offers/internal/domain/workflow"
)

type EquipmentLineResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	PurchasePrice  float64 `json:"purchase_price"`
	Quantity       int     `json:"quantity"`
	Margin         float64 `json:"margin"`
	MonthlyPayment float64 `json:"monthly_payment"`
	MonthlyTotal   float64 `json:"monthly_total"`
	PricingMode    string  `json:"pricing_mode"`

	MarginAdjustment float64 `json:"margin_adjustment"`
}

type OfferResponse struct {
	ID           string `json:"id"`
	ClientID     string `json:"client_id"`
	ClientName   string `json:"client_name"`
	ClientEmail  string `json:"client_email"`
	LeaserID     string `json:"leaser_id"`
	AmbassadorID string `json:"ambassador_id,omitempty"`

	WorkflowStatus string  `json:"workflow_status"`
	InternalScore  *string `json:"internal_score"`
	LeaserScore    *string `json:"leaser_score"`

	Equipment []EquipmentLineResponse `json:"equipment"`

	Coefficient         float64 `json:"coefficient"`
	FinancedAmount      float64 `json:"financed_amount"`
	TotalMonthlyPayment float64 `json:"total_monthly_payment"`
	TotalPurchasePrice  float64 `json:"total_purchase_price"`
	MarginPercentage    float64 `json:"margin_percentage"`

	CanEdit                    bool     `json:"can_edit"`
	CanClassifyNoFollowUp      bool     `json:"can_classify_no_follow_up"`
	CanSendGoogleReviewRequest bool     `json:"can_send_google_review_request"`
	AllowedTransitions         []string `json:"allowed_transitions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromOffer(o entities.Offer) OfferResponse {
	res := OfferResponse{
		ID:                         o.ID,
		ClientID:                   o.ClientID,
		ClientName:                 o.ClientName,
		ClientEmail:                o.ClientEmail,
		LeaserID:                   o.LeaserID,
		AmbassadorID:               o.AmbassadorID,
		WorkflowStatus:             string(o.WorkflowStatus),
		InternalScore:              scoreString(o.InternalScore),
		LeaserScore:                scoreString(o.LeaserScore),
		Equipment:                  make([]EquipmentLineResponse, 0, len(o.Equipment)),
		Coefficient:                rate(o.Coefficient),
		FinancedAmount:             money(o.FinancedAmount),
		TotalMonthlyPayment:        money(o.TotalMonthlyPayment),
		TotalPurchasePrice:         money(o.TotalPurchasePrice),
		MarginPercentage:           money(o.MarginPercentage),
		CanEdit:                    workflow.CanEdit(o),
		CanClassifyNoFollowUp:      workflow.CanClassifyNoFollowUp(o),
		CanSendGoogleReviewRequest: workflow.CanSendGoogleReviewRequest(o),
		AllowedTransitions:         make([]string, 0),
		CreatedAt:                  o.CreatedAt,
		UpdatedAt:                  o.UpdatedAt,
	}
	for _, l := range o.Equipment {
		res.Equipment = append(res.Equipment, EquipmentLineResponse{
			ID:             l.ID,
			Title:          l.Title,
			PurchasePrice:  money(l.PurchasePrice),
			Quantity:       l.Quantity,
			Margin:         money(l.Margin),
			MonthlyPayment: money(l.MonthlyPayment),
			MonthlyTotal:   money(l.MonthlyTotal()),
			PricingMode:    string(l.PricingMode),

			MarginAdjustment: money(l.MarginAdjustment),
		})
	}
	for _, s := range workflow.PermittedTargets(o.WorkflowStatus) {
		res.AllowedTransitions = append(res.AllowedTransitions, string(s))
	}
	return res
}

func scoreString(s *entities.Score) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}
