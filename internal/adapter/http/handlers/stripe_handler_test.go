package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"company_payments/internal/adapter/http/handlers/mocks"
	"company_payments/internal/usecase"
	"company_payments/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newStripeRouter(h *StripeHandler) *gin.Engine {
	r := gin.New()
	r.POST("/stripe/webhook", h.HandleWebhook)
	r.POST("/stripe/checkout-session", h.CreateCheckoutSession)
	return r
}

func TestStripeHandler_HandleWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{name: "applied", err: nil, wantCode: http.StatusOK, wantBody: "ok"},
		{name: "webhook not configured", err: interfaces.ErrWebhookNotConfigured, wantCode: http.StatusOK, wantBody: "ignored"},
		{name: "missing signature", err: interfaces.ErrMissingSignature, wantCode: http.StatusBadRequest, wantBody: "Missing Stripe-Signature header"},
		{name: "invalid signature", err: interfaces.ErrInvalidSignature, wantCode: http.StatusBadRequest, wantBody: "Invalid signature"},
		{name: "store failure", err: errors.New("dynamodb down"), wantCode: http.StatusInternalServerError, wantBody: "Internal error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			webhook := mocks.NewMockIStripeWebhookUseCase(ctrl)
			h := NewStripeHandler(webhook, nil)
			r := newStripeRouter(h)

			webhook.EXPECT().HandleEvent(gomock.Any(), []byte(`{"id":"evt_1"}`), "t=1,v1=abc").Return(tc.err)

			req := httptest.NewRequest(http.MethodPost, "/stripe/webhook", bytes.NewBufferString(`{"id":"evt_1"}`))
			req.Header.Set("Stripe-Signature", "t=1,v1=abc")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, w.Code)
			}
			if w.Body.String() != tc.wantBody {
				t.Fatalf("expected body %q, got %q", tc.wantBody, w.Body.String())
			}
		})
	}

	t.Run("raw body reaches the usecase untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		webhook := mocks.NewMockIStripeWebhookUseCase(ctrl)
		h := NewStripeHandler(webhook, nil)
		r := newStripeRouter(h)

		// Whitespace matters for signature verification; the handler must
		// not re-serialize the payload.
		raw := "{\n  \"id\": \"evt_1\"\n}"
		webhook.EXPECT().HandleEvent(gomock.Any(), []byte(raw), gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/stripe/webhook", bytes.NewBufferString(raw))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestStripeHandler_CreateCheckoutSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockIStripeCheckoutUseCase(ctrl)
		h := NewStripeHandler(nil, checkout)
		r := newStripeRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/stripe/checkout-session", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		checkout := mocks.NewMockIStripeCheckoutUseCase(ctrl)
		h := NewStripeHandler(nil, checkout)
		r := newStripeRouter(h)

		checkout.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(interfaces.CheckoutSessionResult{
			SessionID:   "cs_test_1",
			CheckoutURL: "https://checkout.stripe.com/c/pay/cs_test_1",
		}, nil)

		body := `{"amount":49.90,"currency":"BRL","successUrl":"https://x/s","cancelUrl":"https://x/c"}`
		req := httptest.NewRequest(http.MethodPost, "/stripe/checkout-session", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["sessionId"] != "cs_test_1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("mapped errors", func(t *testing.T) {
		cases := []struct {
			name     string
			err      error
			wantCode int
		}{
			{name: "invalid amount", err: usecase.ErrInvalidAmount, wantCode: http.StatusBadRequest},
			{name: "gateway not configured", err: usecase.ErrGatewayNotConfigured, wantCode: http.StatusServiceUnavailable},
			{name: "gateway error", err: usecase.ErrPaymentGateway, wantCode: http.StatusBadGateway},
			{name: "unknown", err: errors.New("boom"), wantCode: http.StatusInternalServerError},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				checkout := mocks.NewMockIStripeCheckoutUseCase(ctrl)
				h := NewStripeHandler(nil, checkout)
				r := newStripeRouter(h)

				checkout.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(interfaces.CheckoutSessionResult{}, tc.err)

				body := `{"amount":49.90,"currency":"BRL","successUrl":"https://x/s","cancelUrl":"https://x/c"}`
				req := httptest.NewRequest(http.MethodPost, "/stripe/checkout-session", bytes.NewBufferString(body))
				req.Header.Set("Content-Type", "application/json")
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code != tc.wantCode {
					t.Fatalf("expected %d, got %d", tc.wantCode, w.Code)
				}
			})
		}
	})
}
