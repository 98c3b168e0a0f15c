package payments

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"company_payments/internal/usecase/interfaces"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
)

// StripeGateway is an explicitly constructed, immutable Stripe client
// handle. The API key lives inside the owned client.API; nothing assigns
// the SDK's global key.
//
// Mock mode (PAYMENT_GATEWAY_MOCK/STRIPE_MOCK) fabricates session handles
// locally so the service can run without Stripe credentials.

type StripeGateway struct {
	api           *client.API
	webhookSecret string
	mockMode      bool
}

var _ interfaces.IPaymentGateway = (*StripeGateway)(nil)

// NewStripeGateway never fails: a missing API key disables checkout calls
// only. Webhook verification needs just the secret, so receive-only
// deployments keep authenticating events.
func NewStripeGateway(apiKey, webhookSecret string, timeout time.Duration) *StripeGateway {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[stripe][gateway] mock mode enabled")
		return &StripeGateway{webhookSecret: webhookSecret, mockMode: true}
	}

	if strings.TrimSpace(apiKey) == "" {
		log.Printf("[stripe][gateway] missing STRIPE_API_KEY; checkout disabled, webhook verification active")
		return &StripeGateway{webhookSecret: webhookSecret}
	}

	// Bounded timeout so a slow Stripe call cannot hang the request.
	httpClient := &http.Client{Timeout: timeout}
	api := &client.API{}
	api.Init(apiKey, stripe.NewBackends(httpClient))
	log.Printf("[stripe][gateway] Stripe client initialized timeout=%s", timeout)

	return &StripeGateway{api: api, webhookSecret: webhookSecret}
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req interfaces.CheckoutSessionRequest) (interfaces.CheckoutSessionResult, error) {
	if g.mockMode {
		id := fmt.Sprintf("cs_mock_%d", time.Now().UTC().UnixNano())
		log.Printf("[stripe][gateway] mock create session session_id=%s amount_minor=%d", id, req.AmountMinor)
		return interfaces.CheckoutSessionResult{
			SessionID:   id,
			CheckoutURL: "https://checkout.stripe.com/pay/" + id,
		}, nil
	}

	if g.api == nil {
		return interfaces.CheckoutSessionResult{}, fmt.Errorf("%w: missing STRIPE_API_KEY", interfaces.ErrGatewayNotConfigured)
	}

	log.Printf("[stripe][gateway] create session start amount_minor=%d currency=%s", req.AmountMinor, req.Currency)

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(req.Currency),
					UnitAmount: stripe.Int64(req.AmountMinor),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Description),
					},
				},
			},
		},
	}
	params.Context = ctx
	if req.ClientReferenceID != "" {
		params.ClientReferenceID = stripe.String(req.ClientReferenceID)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		log.Printf("[stripe][gateway] create session failed err=%v", err)
		return interfaces.CheckoutSessionResult{}, fmt.Errorf("create checkout session: %w", err)
	}

	result := interfaces.CheckoutSessionResult{
		SessionID:   sess.ID,
		CheckoutURL: sess.URL,
	}
	if sess.PaymentIntent != nil {
		result.PaymentIntentID = sess.PaymentIntent.ID
	}

	log.Printf("[stripe][gateway] create session success session_id=%s", sess.ID)
	return result, nil
}

// VerifyWebhook authenticates raw webhook bytes against the shared secret
// (timestamp + HMAC per Stripe's scheme). The raw payload is byte-exact:
// any re-serialization before this point would break the signature.
//
// An api_version the SDK does not recognize is not an authentication
// failure: the event is still correctly signed, and callers fall back to
// raw-payload extraction when the typed form cannot be deserialized.
func (g *StripeGateway) VerifyWebhook(payload []byte, signatureHeader string) (interfaces.WebhookEvent, error) {
	if strings.TrimSpace(g.webhookSecret) == "" {
		return interfaces.WebhookEvent{}, interfaces.ErrWebhookNotConfigured
	}
	if strings.TrimSpace(signatureHeader) == "" {
		return interfaces.WebhookEvent{}, interfaces.ErrMissingSignature
	}

	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		log.Printf("[stripe][gateway] signature verification failed err=%v", err)
		return interfaces.WebhookEvent{}, fmt.Errorf("%w: %v", interfaces.ErrInvalidSignature, err)
	}

	verified := interfaces.WebhookEvent{
		ID:      event.ID,
		Type:    string(event.Type),
		Payload: payload,
	}
	if event.Data != nil {
		verified.ObjectRaw = event.Data.Raw
	}
	return verified, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "STRIPE_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
