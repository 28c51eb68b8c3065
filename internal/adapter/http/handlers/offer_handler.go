package handlers

import (
	"net/http"

	request "leasing_offers/internal/adapter/http/dto/request"
	response "leasing_offers/internal/adapter/http/dto/response"
	"leasing_offers/internal/domain/pricing"
	"leasing_offers/internal/usecase"
	"leasing_offers/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOfferPayload     = pkg.NewDomainErrorSimple("INVALID_OFFER_INPUT", "Invalid offer payload", http.StatusBadRequest)
	errInvalidEquipmentPayload = pkg.NewDomainErrorSimple("INVALID_EQUIPMENT_INPUT", "Invalid equipment payload", http.StatusBadRequest)
)

// OfferHandler handles offer and equipment requests.
type OfferHandler struct {
	usecase usecase.IOfferUseCase
}

func NewOfferHandler(uc usecase.IOfferUseCase) *OfferHandler {
	return &OfferHandler{usecase: uc}
}

// CreateOffer godoc
// @Summary  Create a draft offer
// @Tags     offers
// @Accept   json
// @Produce  json
// @Param    offer  body      request.CreateOfferRequest  true  "Offer"
// @Success  201    {object}  response.OfferResponse
// @Failure  400    {object}  pkg.HTTPError
// @Router   /offers [post]
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	var payload request.CreateOfferRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOfferPayload.HTTPStatus, errInvalidOfferPayload.ToHTTPError())
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondInvalid(c, err.Error())
		return
	}

	offer, err := h.usecase.CreateOffer(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOffer(offer))
}

// GetOffer godoc
// @Summary  Get an offer with its gate flags
// @Tags     offers
// @Produce  json
// @Param    id   path      string  true  "Offer ID"
// @Success  200  {object}  response.OfferResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /offers/{id} [get]
func (h *OfferHandler) GetOffer(c *gin.Context) {
	offer, err := h.usecase.GetOffer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOffer(offer))
}

// DeleteOffer godoc
// @Summary  Delete an offer
// @Tags     offers
// @Param    id       path  string  true  "Offer ID"
// @Param    confirm  query string  true  "Must equal the offer ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Failure  428  {object}  pkg.HTTPError
// @Router   /offers/{id} [delete]
func (h *OfferHandler) DeleteOffer(c *gin.Context) {
	if err := h.usecase.DeleteOffer(c.Request.Context(), c.Param("id"), c.Query("confirm")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddEquipment godoc
// @Summary  Add an equipment line
// @Tags     equipment
// @Accept   json
// @Produce  json
// @Param    id    path      string                    true  "Offer ID"
// @Param    line  body      request.EquipmentRequest  true  "Equipment line"
// @Success  201   {object}  response.OfferResponse
// @Failure  409   {object}  pkg.HTTPError
// @Router   /offers/{id}/equipment [post]
func (h *OfferHandler) AddEquipment(c *gin.Context) {
	var payload request.EquipmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEquipmentPayload.HTTPStatus, errInvalidEquipmentPayload.ToHTTPError())
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondInvalid(c, err.Error())
		return
	}

	offer, err := h.usecase.AddEquipment(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOffer(offer))
}

// UpdateEquipment godoc
// @Summary  Update an equipment line
// @Tags     equipment
// @Accept   json
// @Produce  json
// @Param    id       path      string                          true  "Offer ID"
// @Param    line_id  path      string                          true  "Line ID"
// @Param    line     body      request.UpdateEquipmentRequest  true  "Changes"
// @Success  200      {object}  response.OfferResponse
// @Failure  404      {object}  pkg.HTTPError
// @Router   /offers/{id}/equipment/{line_id} [put]
func (h *OfferHandler) UpdateEquipment(c *gin.Context) {
	var payload request.UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEquipmentPayload.HTTPStatus, errInvalidEquipmentPayload.ToHTTPError())
		return
	}
	upd, err := payload.ToUpdate()
	if err != nil {
		respondInvalid(c, err.Error())
		return
	}

	offer, err := h.usecase.UpdateEquipment(c.Request.Context(), c.Param("id"), c.Param("line_id"), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOffer(offer))
}

// RemoveEquipment godoc
// @Summary  Remove an equipment line
// @Tags     equipment
// @Produce  json
// @Param    id       path      string  true  "Offer ID"
// @Param    line_id  path      string  true  "Line ID"
// @Success  200      {object}  response.OfferResponse
// @Router   /offers/{id}/equipment/{line_id} [delete]
func (h *OfferHandler) RemoveEquipment(c *gin.Context) {
	offer, err := h.usecase.RemoveEquipment(c.Request.Context(), c.Param("id"), c.Param("line_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOffer(offer))
}

// AdjustMargin godoc
// @Summary  Distribute a margin amount over all lines
// @Tags     equipment
// @Accept   json
// @Produce  json
// @Param    id          path      string                           true  "Offer ID"
// @Param    adjustment  body      request.MarginAdjustmentRequest  true  "Adjustment"
// @Success  200         {object}  response.OfferResponse
// @Router   /offers/{id}/margin-adjustment [post]
func (h *OfferHandler) AdjustMargin(c *gin.Context) {
	var payload request.MarginAdjustmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	mode, err := pricing.ParseAdjustmentMode(payload.Mode)
	if err != nil {
		respondInvalid(c, err.Error())
		return
	}

	offer, err := h.usecase.AdjustGlobalMargin(c.Request.Context(), c.Param("id"), payload.Amount, mode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOffer(offer))
}
