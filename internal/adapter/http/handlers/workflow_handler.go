package handlers

import (
	"context"
	"net/http"
	"strings"

	request "leasing_offers/internal/adapter/http/dto/request"
	response "leasing_offers/internal/adapter/http/dto/response"
	"leasing_offers/internal/domain/entities"
	"leasing_offers/internal/usecase"
	"leasing_offers/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidStatusPayload = pkg.NewDomainErrorSimple("INVALID_STATUS_INPUT", "Invalid status payload", http.StatusBadRequest)
	errInvalidScorePayload  = pkg.NewDomainErrorSimple("INVALID_SCORE_INPUT", "Invalid score payload", http.StatusBadRequest)
)

// WorkflowHandler handles status transitions, scoring and history.
type WorkflowHandler struct {
	usecase usecase.IWorkflowUseCase
}

func NewWorkflowHandler(uc usecase.IWorkflowUseCase) *WorkflowHandler {
	return &WorkflowHandler{usecase: uc}
}

// UpdateStatus godoc
// @Summary  Move an offer to another workflow status
// @Tags     workflow
// @Accept   json
// @Produce  json
// @Param    id      path      string                       true  "Offer ID"
// @Param    status  body      request.UpdateStatusRequest  true  "Transition"
// @Success  200     {object}  response.OfferResponse
// @Failure  409     {object}  pkg.HTTPError
// @Router   /offers/{id}/status [patch]
func (h *WorkflowHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}
	next, previous := payload.Statuses()

	offer, err := h.usecase.UpdateWorkflowStatus(c.Request.Context(), c.Param("id"), next, previous, strings.TrimSpace(payload.Reason))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOffer(offer))
}

// ScoreInternally godoc
// @Summary  Record the internal review score
// @Tags     workflow
// @Accept   json
// @Produce  json
// @Param    id     path      string                true  "Offer ID"
// @Param    score  body      request.ScoreRequest  true  "Score"
// @Success  200    {object}  response.OfferResponse
// @Router   /offers/{id}/internal-score [post]
func (h *WorkflowHandler) ScoreInternally(c *gin.Context) {
	h.score(c, h.usecase.ScoreInternally)
}

// ScoreByLeaser godoc
// @Summary  Record the leaser review score
// @Tags     workflow
// @Accept   json
// @Produce  json
// @Param    id     path      string                true  "Offer ID"
// @Param    score  body      request.ScoreRequest  true  "Score"
// @Success  200    {object}  response.OfferResponse
// @Router   /offers/{id}/leaser-score [post]
func (h *WorkflowHandler) ScoreByLeaser(c *gin.Context) {
	h.score(c, h.usecase.ScoreByLeaser)
}

func (h *WorkflowHandler) score(
	c *gin.Context,
	scorer func(ctx context.Context, offerID string, score entities.Score, reason string) (entities.Offer, error),
) {
	var payload request.ScoreRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidScorePayload.HTTPStatus, errInvalidScorePayload.ToHTTPError())
		return
	}

	offer, err := scorer(c.Request.Context(), c.Param("id"), payload.ResolveScore(), strings.TrimSpace(payload.Reason))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOffer(offer))
}

// ClassifyNoFollowUp godoc
// @Summary  Park an offer as without follow-up
// @Tags     workflow
// @Accept   json
// @Produce  json
// @Param    id      path      string                     true   "Offer ID"
// @Param    reason  body      request.NoFollowUpRequest  false  "Reason"
// @Success  200     {object}  response.OfferResponse
// @Router   /offers/{id}/no-follow-up [post]
func (h *WorkflowHandler) ClassifyNoFollowUp(c *gin.Context) {
	var payload request.NoFollowUpRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
			return
		}
	}

	offer, err := h.usecase.ClassifyNoFollowUp(c.Request.Context(), c.Param("id"), strings.TrimSpace(payload.Reason))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOffer(offer))
}

// Reactivate godoc
// @Summary  Bring an offer back from without follow-up
// @Tags     workflow
// @Accept   json
// @Produce  json
// @Param    id      path      string                     true  "Offer ID"
// @Param    target  body      request.ReactivateRequest  true  "Target status"
// @Success  200     {object}  response.OfferResponse
// @Router   /offers/{id}/reactivate [post]
func (h *WorkflowHandler) Reactivate(c *gin.Context) {
	var payload request.ReactivateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	target := entities.WorkflowStatus(strings.TrimSpace(payload.Status))
	offer, err := h.usecase.Reactivate(c.Request.Context(), c.Param("id"), target)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOffer(offer))
}

// History godoc
// @Summary  List accepted transitions, oldest first
// @Tags     workflow
// @Produce  json
// @Param    id   path  string  true  "Offer ID"
// @Success  200  {array}  response.StatusHistoryResponse
// @Router   /offers/{id}/history [get]
func (h *WorkflowHandler) History(c *gin.Context) {
	entries, err := h.usecase.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStatusHistory(entries))
}
