package handlers

import (
	"errors"
	"net/http"

	"leasing_offers/internal/domain/workflow"
	"leasing_offers/internal/usecase"
	"leasing_offers/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func respondError(c *gin.Context, err error) {
	appErr := mapError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondInvalid(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", message, http.StatusBadRequest).ToHTTPError())
}

func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOfferID), errors.Is(err, usecase.ErrInvalidClient),
		errors.Is(err, usecase.ErrInvalidLeaserID), errors.Is(err, usecase.ErrInvalidPrice),
		errors.Is(err, usecase.ErrInvalidCommissionID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidEquipment):
		return pkg.NewDomainErrorSimple("INVALID_EQUIPMENT", "Invalid equipment line", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNegativeMargin):
		return pkg.NewDomainErrorSimple("NEGATIVE_MARGIN", "Equipment margin cannot be negative", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAdjustment):
		return pkg.NewDomainErrorSimple("INVALID_ADJUSTMENT", "Invalid margin adjustment", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCoefficientTable):
		return pkg.NewDomainError("INVALID_COEFFICIENT_TABLE", "Invalid coefficient table", err, http.StatusBadRequest)
	case errors.Is(err, workflow.ErrUnknownStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown workflow status", http.StatusBadRequest)
	case errors.Is(err, workflow.ErrInvalidScore):
		return pkg.NewDomainErrorSimple("INVALID_SCORE", "Score must be A, B or C", http.StatusBadRequest)
	case errors.Is(err, workflow.ErrScoreReasonRequired):
		return pkg.NewDomainErrorSimple("SCORE_REASON_REQUIRED", "A reason is required for scores B and C", http.StatusBadRequest)
	case errors.Is(err, workflow.ErrInvalidTransition), errors.Is(err, workflow.ErrReactivationNotAllowed),
		errors.Is(err, workflow.ErrNoFollowUpNotAllowed), errors.Is(err, workflow.ErrScoringNotAllowed):
		return pkg.NewDomainError("INVALID_TRANSITION", "Transition not allowed from the current status", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrStatusConflict):
		return pkg.NewDomainErrorSimple("STATUS_CONFLICT", "Offer status changed, reload and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrOfferNotEditable):
		return pkg.NewDomainErrorSimple("OFFER_NOT_EDITABLE", "Offer is not editable in its current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrCommissionAlreadySettled):
		return pkg.NewDomainErrorSimple("COMMISSION_ALREADY_SETTLED", "Commission already settled", http.StatusConflict)
	case errors.Is(err, usecase.ErrOfferNotFound):
		return pkg.NewDomainErrorSimple("OFFER_NOT_FOUND", "Offer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEquipmentLineNotFound):
		return pkg.NewDomainErrorSimple("EQUIPMENT_LINE_NOT_FOUND", "Equipment line not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCommissionNotFound):
		return pkg.NewDomainErrorSimple("COMMISSION_NOT_FOUND", "Commission not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrConfirmationRequired):
		return pkg.NewDomainErrorSimple("CONFIRMATION_REQUIRED", "Pass the offer id as confirm to delete it", http.StatusPreconditionRequired)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
