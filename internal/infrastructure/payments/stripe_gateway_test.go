package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"company_payments/internal/usecase/interfaces"
)

const testWebhookSecret = "whsec_test_secret"

// signPayload produces a Stripe-Signature header the SDK accepts:
// t=<unix>,v1=hex(hmac_sha256(secret, "<unix>.<payload>")).
func signPayload(payload []byte, secret string, at time.Time) string {
	ts := fmt.Sprintf("%d", at.Unix())
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ts + "." + string(payload)))
	return fmt.Sprintf("t=%s,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func TestNewStripeGateway(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("STRIPE_MOCK", "")

	t.Run("missing api key disables checkout only", func(t *testing.T) {
		g := NewStripeGateway("  ", testWebhookSecret, 30*time.Second)

		_, err := g.CreateCheckoutSession(context.Background(), interfaces.CheckoutSessionRequest{AmountMinor: 100, Currency: "brl"})
		if !errors.Is(err, interfaces.ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}

		// Verification needs only the secret.
		payload := []byte(`{"id":"evt_1","type":"checkout.session.completed","data":{"object":{"id":"cs_1"}}}`)
		event, err := g.VerifyWebhook(payload, signPayload(payload, testWebhookSecret, time.Now()))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.ID != "evt_1" {
			t.Fatalf("unexpected event: %+v", event)
		}
	})

	t.Run("mock mode needs no key", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		g := NewStripeGateway("", testWebhookSecret, 30*time.Second)
		if !g.mockMode {
			t.Fatalf("expected mock mode")
		}
	})
}

func TestStripeGateway_VerifyWebhook(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("STRIPE_MOCK", "")

	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed","data":{"object":{"id":"cs_1","payment_status":"paid"}}}`)

	t.Run("no secret configured", func(t *testing.T) {
		g := &StripeGateway{}
		_, err := g.VerifyWebhook(payload, signPayload(payload, testWebhookSecret, time.Now()))
		if !errors.Is(err, interfaces.ErrWebhookNotConfigured) {
			t.Fatalf("expected ErrWebhookNotConfigured, got %v", err)
		}
	})

	t.Run("missing signature header", func(t *testing.T) {
		g := &StripeGateway{webhookSecret: testWebhookSecret}
		_, err := g.VerifyWebhook(payload, "  ")
		if !errors.Is(err, interfaces.ErrMissingSignature) {
			t.Fatalf("expected ErrMissingSignature, got %v", err)
		}
	})

	t.Run("invalid signature", func(t *testing.T) {
		g := &StripeGateway{webhookSecret: testWebhookSecret}
		_, err := g.VerifyWebhook(payload, signPayload(payload, "whsec_wrong_secret", time.Now()))
		if !errors.Is(err, interfaces.ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("stale timestamp rejected", func(t *testing.T) {
		g := &StripeGateway{webhookSecret: testWebhookSecret}
		_, err := g.VerifyWebhook(payload, signPayload(payload, testWebhookSecret, time.Now().Add(-time.Hour)))
		if !errors.Is(err, interfaces.ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("tampered payload rejected", func(t *testing.T) {
		g := &StripeGateway{webhookSecret: testWebhookSecret}
		header := signPayload(payload, testWebhookSecret, time.Now())
		tampered := []byte(strings.Replace(string(payload), "paid", "free", 1))
		_, err := g.VerifyWebhook(tampered, header)
		if !errors.Is(err, interfaces.ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("valid signature", func(t *testing.T) {
		g := &StripeGateway{webhookSecret: testWebhookSecret}
		event, err := g.VerifyWebhook(payload, signPayload(payload, testWebhookSecret, time.Now()))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.ID != "evt_1" || event.Type != "checkout.session.completed" {
			t.Fatalf("unexpected event: %+v", event)
		}
		if string(event.Payload) != string(payload) {
			t.Fatalf("payload must pass through byte-exact")
		}
		if !strings.Contains(string(event.ObjectRaw), `"cs_1"`) {
			t.Fatalf("expected data.object raw, got %s", event.ObjectRaw)
		}
	})

	t.Run("unrecognized api version still verifies", func(t *testing.T) {
		// A correctly signed event from a newer Stripe API version is
		// authentic; typed deserialization may fail later, verification
		// must not.
		g := &StripeGateway{webhookSecret: testWebhookSecret}
		newer := []byte(`{"id":"evt_2","api_version":"2099-01-01","type":"checkout.session.completed","data":{"object":{"id":"cs_2","payment_status":"paid"}}}`)

		event, err := g.VerifyWebhook(newer, signPayload(newer, testWebhookSecret, time.Now()))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.ID != "evt_2" || event.Type != "checkout.session.completed" {
			t.Fatalf("unexpected event: %+v", event)
		}
		if string(event.Payload) != string(newer) {
			t.Fatalf("payload must pass through byte-exact")
		}
	})
}

func TestStripeGateway_MockCheckoutSession(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "mock")

	g := NewStripeGateway("", "", 30*time.Second)

	res, err := g.CreateCheckoutSession(context.Background(), interfaces.CheckoutSessionRequest{AmountMinor: 4990, Currency: "brl"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(res.SessionID, "cs_mock_") {
		t.Fatalf("unexpected session id: %s", res.SessionID)
	}
	if !strings.Contains(res.CheckoutURL, res.SessionID) {
		t.Fatalf("checkout url must embed the session id: %s", res.CheckoutURL)
	}
}

func TestIsPaymentGatewayMockEnabled(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("STRIPE_MOCK", "")
	if isPaymentGatewayMockEnabled() {
		t.Fatalf("expected disabled")
	}

	for _, v := range []string{"1", "true", "YES", "on", "mock"} {
		t.Setenv("PAYMENT_GATEWAY_MOCK", v)
		if !isPaymentGatewayMockEnabled() {
			t.Fatalf("expected enabled for %q", v)
		}
	}

	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("STRIPE_MOCK", "true")
	if !isPaymentGatewayMockEnabled() {
		t.Fatalf("expected enabled via STRIPE_MOCK")
	}
}
