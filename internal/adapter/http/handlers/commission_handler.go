package handlers

import (
	"net/http"

	response "leasing_offers/internal/adapter/http/dto/response"
	"leasing_offers/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CommissionHandler struct {
	usecase usecase.ICommissionUseCase
}

func NewCommissionHandler(uc usecase.ICommissionUseCase) *CommissionHandler {
	return &CommissionHandler{usecase: uc}
}

// ListByOffer godoc
// @Summary  List the commissions of an offer
// @Tags     commissions
// @Produce  json
// @Param    id   path  string  true  "Offer ID"
// @Success  200  {array}  response.CommissionResponse
// @Router   /offers/{id}/commissions [get]
func (h *CommissionHandler) ListByOffer(c *gin.Context) {
	records, err := h.usecase.ListByOffer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCommissions(records))
}

// Settle godoc
// @Summary  Mark a commission as paid
// @Tags     commissions
// @Produce  json
// @Param    id   path      string  true  "Commission ID"
// @Success  200  {object}  response.CommissionResponse
// @Failure  409  {object}  pkg.HTTPError
// @Router   /commissions/{id}/settle [patch]
func (h *CommissionHandler) Settle(c *gin.Context) {
	record, err := h.usecase.Settle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCommission(record))
}
