package handlers

import (
	"net/http"
	"strconv"

	request "leasing_offers/internal/adapter/http/dto/request"
	response "leasing_offers/internal/adapter/http/dto/response"
	"leasing_offers/internal/usecase"
	"leasing_offers/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var (
	errInvalidPricingPayload = pkg.NewDomainErrorSimple("INVALID_PRICING_INPUT", "Invalid pricing payload", http.StatusBadRequest)
)

// PricingHandler exposes the calculator to interactive forms and manages
// leaser coefficient tables. Calculator answers are always 200; the condition
// field tells whether the value is usable.
type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// PutCoefficientTable godoc
// @Summary  Replace a leaser's coefficient table
// @Tags     leasers
// @Accept   json
// @Produce  json
// @Param    id     path      string                           true  "Leaser ID"
// @Param    table  body      request.CoefficientTableRequest  true  "Table"
// @Success  200    {object}  response.CoefficientTableResponse
// @Failure  400    {object}  pkg.HTTPError
// @Router   /leasers/{id}/coefficients [put]
func (h *PricingHandler) PutCoefficientTable(c *gin.Context) {
	var payload request.CoefficientTableRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}
	table, err := payload.ToTable(c.Param("id"))
	if err != nil {
		respondInvalid(c, err.Error())
		return
	}

	saved, err := h.usecase.PutCoefficientTable(c.Request.Context(), table)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCoefficientTable(saved))
}

// GetLeaserCoefficient godoc
// @Summary  Resolve the coefficient for a purchase price
// @Tags     leasers
// @Produce  json
// @Param    id        path   string  true   "Leaser ID"
// @Param    price     query  string  true   "Purchase price"
// @Param    duration  query  int     false  "Duration in months"
// @Success  200  {object}  response.CoefficientLookupResponse
// @Router   /leasers/{id}/coefficient [get]
func (h *PricingHandler) GetLeaserCoefficient(c *gin.Context) {
	price, err := decimal.NewFromString(c.Query("price"))
	if err != nil {
		respondInvalid(c, "price must be a number")
		return
	}
	months := 0
	if raw := c.Query("duration"); raw != "" {
		months, err = strconv.Atoi(raw)
		if err != nil || months <= 0 {
			respondInvalid(c, "duration must be a positive number of months")
			return
		}
	}

	lookup, err := h.usecase.LeaserCoefficient(c.Request.Context(), c.Param("id"), price, months)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCoefficientLookup(lookup))
}

// MonthlyPayment godoc
// @Summary  Monthly payment from purchase price and margin
// @Tags     pricing
// @Accept   json
// @Produce  json
// @Param    input  body      request.MonthlyPaymentRequest  true  "Input"
// @Success  200    {object}  response.PricingResponse
// @Router   /pricing/monthly-payment [post]
func (h *PricingHandler) MonthlyPayment(c *gin.Context) {
	var payload request.MonthlyPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}
	res := h.usecase.MonthlyPayment(payload.PurchasePrice, payload.Margin, payload.Coefficient)
	c.JSON(http.StatusOK, response.FromPricingResult(res))
}

// Margin godoc
// @Summary  Margin from a target monthly payment or a target sale price
// @Tags     pricing
// @Accept   json
// @Produce  json
// @Param    input  body      request.MarginRequest  true  "Input"
// @Success  200    {object}  response.PricingResponse
// @Router   /pricing/margin [post]
func (h *PricingHandler) Margin(c *gin.Context) {
	var payload request.MarginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		respondInvalid(c, err.Error())
		return
	}

	var res usecase.PricingResult
	if payload.TargetMonthly != nil {
		res = h.usecase.MarginFromTargetMonthly(payload.PurchasePrice, *payload.TargetMonthly, payload.Coefficient)
	} else {
		res = h.usecase.MarginFromTargetSalePrice(payload.PurchasePrice, *payload.TargetSalePrice)
	}
	c.JSON(http.StatusOK, response.FromPricingResult(res))
}

// FinancedAmount godoc
// @Summary  Financed amount from a monthly payment
// @Tags     pricing
// @Accept   json
// @Produce  json
// @Param    input  body      request.FinancedAmountRequest  true  "Input"
// @Success  200    {object}  response.PricingResponse
// @Router   /pricing/financed-amount [post]
func (h *PricingHandler) FinancedAmount(c *gin.Context) {
	var payload request.FinancedAmountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}
	res := h.usecase.FinancedAmount(payload.MonthlyPayment, payload.Coefficient)
	c.JSON(http.StatusOK, response.FromPricingResult(res))
}
