package response

import "company_payments/internal/usecase/interfaces"

type CreateStripeCheckoutResponse struct {
	SessionID       string `json:"sessionId"`
	CheckoutURL     string `json:"checkoutUrl"`
	PaymentIntentID string `json:"paymentIntentId,omitempty"`
}

func FromCheckoutSessionResult(r interfaces.CheckoutSessionResult) CreateStripeCheckoutResponse {
	return CreateStripeCheckoutResponse{
		SessionID:       r.SessionID,
		CheckoutURL:     r.CheckoutURL,
		PaymentIntentID: r.PaymentIntentID,
	}
}
