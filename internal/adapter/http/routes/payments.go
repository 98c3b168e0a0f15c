package routes

import (
	"company_payments/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathStripe   = "/stripe"
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, stripeHandler *handlers.StripeHandler, paymentHandler *handlers.CompanyPaymentHandler) {
	stripe := rg.Group(PathStripe)
	{
		// Raw body in, plain text out; Stripe drives the retry policy.
		stripe.POST("/webhook", stripeHandler.HandleWebhook)
		stripe.POST("/checkout-session", stripeHandler.CreateCheckoutSession)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.Create)
		payments.GET("", paymentHandler.List)
		payments.GET("/:id", paymentHandler.GetByID)
		payments.PATCH("/:id", paymentHandler.Update)
		payments.DELETE("/:id", paymentHandler.Delete)
	}
}
