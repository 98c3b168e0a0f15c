package entities

import "time"

// TransactionStatus is the reconciliation state of a company payment.
//
// PENDING is the only initial state. Terminal states may be re-applied
// (idempotent) or overwritten by a later gateway event of higher authority:
// Stripe can emit a fallback success after an async failure signal.

type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "PENDING"
	TransactionStatusSuccessful TransactionStatus = "SUCCESSFUL"
	TransactionStatusFailed     TransactionStatus = "FAILED"
)

// PaymentMethod is the payment instrument category selected at creation.

type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentMethodVisa       PaymentMethod = "VISA"
	PaymentMethodEWallet    PaymentMethod = "E_WALLET"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodVisa, PaymentMethodEWallet:
		return true
	}
	return false
}

// CompanyPayment is the payment entity persisted by the payment-service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (stripe_checkout_session_id-index): stripe_checkout_session_id
//   - GSI2 (stripe_payment_intent_id-index): stripe_payment_intent_id
//
// Correlation keys:
//   - StripeCheckoutSessionID is set at creation when using hosted checkout.
//   - StripePaymentIntentID may be set at creation or later from a webhook.
//   - PaymentTransactionID (settlement/charge id) is set only on success.
//
// At most one payment exists per checkout-session id and per
// payment-intent id.

type CompanyPayment struct {
	ID          string            `json:"id"`
	CompanyID   string            `json:"companyId"`
	Amount      float64           `json:"amount"`
	Currency    string            `json:"currency"`
	Gateway     string            `json:"gateway"`
	Method      PaymentMethod     `json:"method"`
	Status      TransactionStatus `json:"status"`
	PurchasedAt time.Time         `json:"purchasedAt"`

	StripeCheckoutSessionID string `json:"stripeCheckoutSessionId,omitempty"`
	StripePaymentIntentID   string `json:"stripePaymentIntentId,omitempty"`
	PaymentTransactionID    string `json:"paymentTransactionId,omitempty"`
	SubscriptionID          string `json:"subscriptionId,omitempty"`
}
