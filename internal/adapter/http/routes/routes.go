package routes

import (
	"log"
	"strconv"

	_ "company_payments/docs" // swagger spec, generated
	"company_payments/internal/adapter/http/handlers"
	"company_payments/internal/adapter/persistence/repository"
	"company_payments/internal/infrastructure/config"
	"company_payments/internal/infrastructure/database"
	"company_payments/internal/infrastructure/messaging"
	"company_payments/internal/infrastructure/payments"
	"company_payments/internal/usecase"
	"company_payments/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	ddb := database.ConnectDynamoDB()
	paymentRepo := repository.NewCompanyPaymentDynamoRepository(ddb, cfg.PaymentsTable)

	// A missing API key only disables checkout calls; webhook verification
	// needs just the secret, so receive-only deployments keep working.
	gateway := payments.NewStripeGateway(cfg.StripeAPIKey, cfg.StripeWebhookSecret, cfg.StripeTimeout())

	var notifier interfaces.IPaymentNotifier
	sn, err := messaging.NewSQSNotifier(cfg.SubscriptionPaidQueueURL)
	if err != nil {
		log.Printf("Subscription-paid notifier not configured: %v", err)
	} else {
		notifier = sn
	}

	paymentUseCase := usecase.NewCompanyPaymentUseCase(paymentRepo, gateway, cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL)
	checkoutUseCase := usecase.NewStripeCheckoutUseCase(gateway)
	webhookUseCase := usecase.NewStripeWebhookUseCase(paymentRepo, gateway, notifier)

	paymentHandler := handlers.NewCompanyPaymentHandler(paymentUseCase)
	stripeHandler := handlers.NewStripeHandler(webhookUseCase, checkoutUseCase)

	root := router.Group("")
	addPingRoutes(root)
	addPaymentRoutes(root, stripeHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
