package response

import (
	"time"

	"company_payments/internal/domain/entities"
)

type CreateCompanyPaymentResponse struct {
	ID                      string `json:"id"`
	Status                  string `json:"status"`
	StripeCheckoutSessionID string `json:"stripeCheckoutSessionId,omitempty"`
	CheckoutURL             string `json:"checkoutUrl,omitempty"`
}

func FromCreatedCompanyPayment(p entities.CompanyPayment, checkoutURL string) CreateCompanyPaymentResponse {
	return CreateCompanyPaymentResponse{
		ID:                      p.ID,
		Status:                  string(p.Status),
		StripeCheckoutSessionID: p.StripeCheckoutSessionID,
		CheckoutURL:             checkoutURL,
	}
}

type CompanyPaymentResponse struct {
	ID                      string    `json:"id"`
	CompanyID               string    `json:"companyId"`
	Amount                  float64   `json:"amount"`
	Currency                string    `json:"currency"`
	Gateway                 string    `json:"gateway"`
	Method                  string    `json:"method"`
	Status                  string    `json:"status"`
	PurchasedAt             time.Time `json:"purchasedAt"`
	StripeCheckoutSessionID string    `json:"stripeCheckoutSessionId,omitempty"`
	StripePaymentIntentID   string    `json:"stripePaymentIntentId,omitempty"`
	PaymentTransactionID    string    `json:"paymentTransactionId,omitempty"`
	SubscriptionID          string    `json:"subscriptionId,omitempty"`
}

func FromCompanyPayment(p entities.CompanyPayment) CompanyPaymentResponse {
	return CompanyPaymentResponse{
		ID:                      p.ID,
		CompanyID:               p.CompanyID,
		Amount:                  p.Amount,
		Currency:                p.Currency,
		Gateway:                 p.Gateway,
		Method:                  string(p.Method),
		Status:                  string(p.Status),
		PurchasedAt:             p.PurchasedAt,
		StripeCheckoutSessionID: p.StripeCheckoutSessionID,
		StripePaymentIntentID:   p.StripePaymentIntentID,
		PaymentTransactionID:    p.PaymentTransactionID,
		SubscriptionID:          p.SubscriptionID,
	}
}
