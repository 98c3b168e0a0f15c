package handlers

import (
	"errors"
	"log"
	"net/http"

	"company_payments/internal/adapter/http/dto/request"
	"company_payments/internal/adapter/http/dto/response"
	"company_payments/internal/usecase"
	"company_payments/internal/usecase/interfaces"
	"company_payments/pkg"

	"github.com/gin-gonic/gin"
)

// StripeHandler handles the webhook endpoint and the bare checkout-session
// endpoint.

type StripeHandler struct {
	webhook  usecase.IStripeWebhookUseCase
	checkout usecase.IStripeCheckoutUseCase
}

func NewStripeHandler(webhook usecase.IStripeWebhookUseCase, checkout usecase.IStripeCheckoutUseCase) *StripeHandler {
	return &StripeHandler{webhook: webhook, checkout: checkout}
}

// HandleWebhook godoc
// @Summary      Stripe webhook receiver
// @Description  Verifies and applies a Stripe payment-status event.
// @Tags         stripe
// @Accept       json
// @Produce      plain
// @Success      200 {string} string "ok"
// @Failure      400 {string} string
// @Router       /stripe/webhook [post]
//
// Response policy: anything that would make Stripe redeliver forever
// (disabled config, unknown type, unmatched record) is acknowledged with
// 200; only an untrustworthy request (missing/invalid signature) is
// rejected.
func (h *StripeHandler) HandleWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		log.Printf("[stripe][handler] webhook body read failed err=%v", err)
		c.String(http.StatusBadRequest, "Invalid request body")
		return
	}

	err = h.webhook.HandleEvent(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	switch {
	case err == nil:
		c.String(http.StatusOK, "ok")
	case errors.Is(err, interfaces.ErrWebhookNotConfigured):
		log.Printf("[stripe][handler] webhook secret not configured; ignoring event")
		c.String(http.StatusOK, "ignored")
	case errors.Is(err, interfaces.ErrMissingSignature):
		c.String(http.StatusBadRequest, "Missing Stripe-Signature header")
	case errors.Is(err, interfaces.ErrInvalidSignature):
		log.Printf("[stripe][handler] invalid signature err=%v", err)
		c.String(http.StatusBadRequest, "Invalid signature")
	default:
		log.Printf("[stripe][handler] webhook handling failed err=%v", err)
		c.String(http.StatusInternalServerError, "Internal error")
	}
}

// CreateCheckoutSession godoc
// @Summary      Create a hosted checkout session
// @Description  Creates a Stripe Checkout session without persisting a payment record.
// @Tags         stripe
// @Accept       json
// @Produce      json
// @Param        request body request.CreateStripeCheckoutRequest true "session to create"
// @Success      200 {object} response.CreateStripeCheckoutResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /stripe/checkout-session [post]
func (h *StripeHandler) CreateCheckoutSession(c *gin.Context) {
	var req request.CreateStripeCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[stripe][handler] invalid checkout request err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.checkout.CreateCheckoutSession(c.Request.Context(), usecase.CreateStripeCheckoutInput{
		Amount:      req.Amount,
		Currency:    req.Currency,
		SuccessURL:  req.SuccessURL,
		CancelURL:   req.CancelURL,
		Description: req.Description,
		Metadata:    req.Metadata,
	})
	if err != nil {
		log.Printf("[stripe][handler] checkout session failed err=%v", err)
		appErr := mapStripeCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCheckoutSessionResult(result))
}

func mapStripeCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAmount), errors.Is(err, usecase.ErrInvalidCurrency), errors.Is(err, usecase.ErrInvalidRedirectURL):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGateway):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_ERROR", "Payment provider error", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
