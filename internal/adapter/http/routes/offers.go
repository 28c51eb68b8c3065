package routes

import (
	"leasing_offers/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOffers      = "/offers"
	PathCommissions = "/commissions"
	PathLeasers     = "/leasers"
	PathPricing     = "/pricing"
)

func addOfferRoutes(
	rg *gin.RouterGroup,
	offerHandler *handlers.OfferHandler,
	workflowHandler *handlers.WorkflowHandler,
	commissionHandler *handlers.CommissionHandler,
) {
	offers := rg.Group(PathOffers)
	{
		offers.POST("", offerHandler.CreateOffer)
		offers.GET("/:id", offerHandler.GetOffer)
		offers.DELETE("/:id", offerHandler.DeleteOffer)

		offers.POST("/:id/equipment", offerHandler.AddEquipment)
		offers.PUT("/:id/equipment/:line_id", offerHandler.UpdateEquipment)
		offers.DELETE("/:id/equipment/:line_id", offerHandler.RemoveEquipment)
		offers.POST("/:id/margin-adjustment", offerHandler.AdjustMargin)

		offers.PATCH("/:id/status", workflowHandler.UpdateStatus)
		offers.POST("/:id/internal-score", workflowHandler.ScoreInternally)
		offers.POST("/:id/leaser-score", workflowHandler.ScoreByLeaser)
		offers.POST("/:id/no-follow-up", workflowHandler.ClassifyNoFollowUp)
		offers.POST("/:id/reactivate", workflowHandler.Reactivate)
		offers.GET("/:id/history", workflowHandler.History)

		offers.GET("/:id/commissions", commissionHandler.ListByOffer)
	}
}

func addCommissionRoutes(rg *gin.RouterGroup, commissionHandler *handlers.CommissionHandler) {
	commissions := rg.Group(PathCommissions)
	{
		commissions.PATCH("/:id/settle", commissionHandler.Settle)
	}
}

func addPricingRoutes(rg *gin.RouterGroup, pricingHandler *handlers.PricingHandler) {
	leasers := rg.Group(PathLeasers)
	{
		leasers.PUT("/:id/coefficients", pricingHandler.PutCoefficientTable)
		leasers.GET("/:id/coefficient", pricingHandler.GetLeaserCoefficient)
	}

	pricing := rg.Group(PathPricing)
	{
		pricing.POST("/monthly-payment", pricingHandler.MonthlyPayment)
		pricing.POST("/margin", pricingHandler.Margin)
		pricing.POST("/financed-amount", pricingHandler.FinancedAmount)
	}
}
