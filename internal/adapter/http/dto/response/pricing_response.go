package response

import (
	"strconv"

	"leasing_offers/internal/domain/entities"
	"leasing_offers/internal/usecase"
)

// PricingResponse carries the value together with the calculator condition.
// Value is only meaningful when Condition is "ok" or Warning is set.
type PricingResponse struct {
	Value       float64 `json:"value"`
	Coefficient float64 `json:"coefficient,omitempty"`
	Condition   string  `json:"condition"`
	Warning     bool    `json:"warning"`
}

func FromPricingResult(r usecase.PricingResult) PricingResponse {
	return PricingResponse{
		Value:       money(r.Value),
		Coefficient: rate(r.Coefficient),
		Condition:   string(r.Condition),
		Warning:     r.Condition.IsWarning(),
	}
}

type CoefficientLookupResponse struct {
	LeaserID    string  `json:"leaser_id"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
	Coefficient float64 `json:"coefficient"`
	Fallback    bool    `json:"fallback"`
}

func FromCoefficientLookup(l usecase.CoefficientLookup) CoefficientLookupResponse {
	return CoefficientLookupResponse{
		LeaserID:    l.LeaserID,
		Price:       money(l.Price),
		Duration:    l.Duration,
		Coefficient: rate(l.Coefficient),
		Fallback:    l.Fallback,
	}
}

type CoefficientBracketResponse struct {
	Min          float64            `json:"min"`
	Max          float64            `json:"max"`
	Coefficients map[string]float64 `json:"coefficients"`
}

type CoefficientTableResponse struct {
	LeaserID        string                       `json:"leaser_id"`
	DefaultDuration int                          `json:"default_duration"`
	Durations       []int                        `json:"durations"`
	Brackets        []CoefficientBracketResponse `json:"brackets"`
}

func FromCoefficientTable(t entities.CoefficientTable) CoefficientTableResponse {
	res := CoefficientTableResponse{
		LeaserID:        t.LeaserID,
		DefaultDuration: t.DefaultDuration,
		Durations:       t.Durations(),
		Brackets:        make([]CoefficientBracketResponse, 0, len(t.Brackets)),
	}
	for _, b := range t.Brackets {
		coefs := make(map[string]float64, len(b.Coefficients))
		for m, c := range b.Coefficients {
			coefs[strconv.Itoa(m)] = rate(c)
		}
		res.Brackets = append(res.Brackets, CoefficientBracketResponse{
			Min:          money(b.Min),
			Max:          money(b.Max),
			Coefficients: coefs,
		})
	}
	return res
}
