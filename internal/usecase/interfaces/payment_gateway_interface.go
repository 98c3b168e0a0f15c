package interfaces

import (
	"context"
	"encoding/json"
	"errors"
)

var (
	// ErrWebhookNotConfigured means no webhook secret is set. This is
	// "webhook disabled", not a security failure: callers must acknowledge
	// the event so the gateway stops redelivering.
	ErrWebhookNotConfigured = errors.New("webhook secret not configured")

	// ErrMissingSignature means the signature header was absent or blank.
	ErrMissingSignature = errors.New("missing signature header")

	// ErrInvalidSignature means cryptographic verification failed. Must be
	// rejected at the transport boundary, never swallowed.
	ErrInvalidSignature = errors.New("invalid webhook signature")

	// ErrGatewayNotConfigured means no API key is set: outbound gateway
	// calls fail, webhook verification is unaffected.
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
)

// CheckoutSessionRequest describes one hosted-checkout session to create.
// AmountMinor is already converted to integer minor units.
type CheckoutSessionRequest struct {
	AmountMinor       int64
	Currency          string
	SuccessURL        string
	CancelURL         string
	Description       string
	ClientReferenceID string
	Metadata          map[string]string
}

// CheckoutSessionResult is the session handle returned by the gateway.
// PaymentIntentID is often, but not always, available immediately.
type CheckoutSessionResult struct {
	SessionID       string
	CheckoutURL     string
	PaymentIntentID string
}

// WebhookEvent is a signature-verified gateway event.
type WebhookEvent struct {
	ID   string
	Type string
	// ObjectRaw is the event's data.object, for typed deserialization.
	ObjectRaw json.RawMessage
	// Payload is the full raw body, for fallback field extraction when the
	// typed form cannot be deserialized (unknown API versions).
	Payload []byte
}

// IPaymentGateway abstracts the external payment provider (Stripe).
//
// Implementations hold their own client handle and credentials; no global
// mutable gateway state.
type IPaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (CheckoutSessionResult, error)
	VerifyWebhook(payload []byte, signatureHeader string) (WebhookEvent, error)
}
