package routes

import (
	"context"
	"log"
	"strconv"

	_ "leasing_offers/docs" // generated by swag init
	"leasing_offers/internal/adapter/http/handlers"
	"leasing_offers/internal/adapter/persistence/repository"
	"leasing_offers/internal/domain/pricing"
	"leasing_offers/internal/infrastructure/config"
	"leasing_offers/internal/infrastructure/database"
	"leasing_offers/internal/infrastructure/events"
	"leasing_offers/internal/usecase"
	"leasing_offers/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err = router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb, err := database.ConnectDynamoDB(context.Background())
	if err != nil {
		log.Fatalf("Failed to connect to DynamoDB: %v", err)
	}

	offerRepo := repository.NewOfferDynamoRepository(ddb, cfg.Tables.Offers, cfg.Tables.StatusHistory)
	historyRepo := repository.NewStatusHistoryDynamoRepository(ddb, cfg.Tables.StatusHistory)
	leaserRepo := repository.NewLeaserDynamoRepository(ddb, cfg.Tables.Leasers)
	commissionRepo := repository.NewCommissionDynamoRepository(ddb, cfg.Tables.Commissions)
	ambassadorRepo := repository.NewAmbassadorDynamoRepository(ddb, cfg.Tables.Ambassadors)

	calc := pricing.NewCalculator(cfg.DefaultCoefficient, cfg.LineTolerance)
	publisher := newPublisher(cfg.Redis)

	commissionUseCase := usecase.NewCommissionUseCase(calc, commissionRepo, ambassadorRepo)
	offerUseCase := usecase.NewOfferUseCase(calc, offerRepo, historyRepo, leaserRepo, publisher)
	workflowUseCase := usecase.NewWorkflowUseCase(offerRepo, historyRepo, commissionUseCase, publisher)
	pricingUseCase := usecase.NewPricingUseCase(calc, leaserRepo)

	offerHandler := handlers.NewOfferHandler(offerUseCase)
	workflowHandler := handlers.NewWorkflowHandler(workflowUseCase)
	commissionHandler := handlers.NewCommissionHandler(commissionUseCase)
	pricingHandler := handlers.NewPricingHandler(pricingUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOfferRoutes(v1, offerHandler, workflowHandler, commissionHandler)
	addCommissionRoutes(v1, commissionHandler)
	addPricingRoutes(v1, pricingHandler)
}

// newPublisher falls back to logging events when no Redis address is set.
func newPublisher(cfg config.Redis) interfaces.IEventPublisher {
	if cfg.Addr == "" {
		log.Printf("[events] REDIS_ADDR not set, offer events will only be logged")
		return events.LogPublisher{}
	}
	return events.NewRedisPublisher(cfg.Addr, cfg.Password, cfg.DB, cfg.Stream)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
