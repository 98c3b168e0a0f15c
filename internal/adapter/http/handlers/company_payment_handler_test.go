package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"company_payments/internal/adapter/http/handlers/mocks"
	"company_payments/internal/domain/entities"
	"company_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const handlerTestPaymentID = "7f9c24e5-2f1a-4b4e-9c36-8a1d3f0e5b11"

func newPaymentRouter(h *CompanyPaymentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/payments", h.Create)
	r.GET("/payments", h.List)
	r.GET("/payments/:id", h.GetByID)
	r.PATCH("/payments/:id", h.Update)
	r.DELETE("/payments/:id", h.Delete)
	return r
}

func TestCompanyPaymentHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompanyPaymentUseCase(ctrl)
		r := newPaymentRouter(NewCompanyPaymentHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(`{"amount":10}`))
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
		uc := mocks.NewMockICompanyPaymentUseCase(ctrl)
		r := newPaymentRouter(NewCompanyPaymentHandler(uc))

		created := entities.CompanyPayment{
			ID:                      handlerTestPaymentID,
			Status:                  entities.TransactionStatusPending,
			StripeCheckoutSessionID: "cs_test_1",
			PurchasedAt:             time.Now().UTC(),
		}
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.CreateCompanyPaymentInput) (entities.CompanyPayment, string, error) {
				if in.Method != entities.PaymentMethodCreditCard {
					t.Fatalf("unexpected method: %s", in.Method)
				}
				return created, "https://checkout.stripe.com/c/pay/cs_test_1", nil
			},
		)

		body := `{"companyId":"0b9d7a40-6c1e-4f7e-b9a2-5d3c8e1f4a22","amount":49.90,"currency":"BRL","method":"CREDIT_CARD"}`
		req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != handlerTestPaymentID || resp["checkoutUrl"] != "https://checkout.stripe.com/c/pay/cs_test_1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompanyPaymentUseCase(ctrl)
		r := newPaymentRouter(NewCompanyPaymentHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.CompanyPayment{}, "", usecase.ErrGatewayNotConfigured)

		body := `{"companyId":"0b9d7a40-6c1e-4f7e-b9a2-5d3c8e1f4a22","amount":49.90,"currency":"BRL","method":"CREDIT_CARD"}`
		req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestCompanyPaymentHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompanyPaymentUseCase(ctrl)
		r := newPaymentRouter(NewCompanyPaymentHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), handlerTestPaymentID).Return(entities.CompanyPayment{}, usecase.ErrCompanyPaymentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/payments/"+handlerTestPaymentID, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompanyPaymentUseCase(ctrl)
		r := newPaymentRouter(NewCompanyPaymentHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), handlerTestPaymentID).Return(entities.CompanyPayment{
			ID:     handlerTestPaymentID,
			Status: entities.TransactionStatusSuccessful,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/payments/"+handlerTestPaymentID, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["status"] != "SUCCESSFUL" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCompanyPaymentHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICompanyPaymentUseCase(ctrl)
	r := newPaymentRouter(NewCompanyPaymentHandler(uc))

	uc.EXPECT().List(gomock.Any()).Return([]entities.CompanyPayment{
		{ID: "p1", Status: entities.TransactionStatusPending},
		{ID: "p2", Status: entities.TransactionStatusFailed},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/payments", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp) != 2 {
		t.Fatalf("expected 2 payments, got body: %s", w.Body.String())
	}
}

func TestCompanyPaymentHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompanyPaymentUseCase(ctrl)
		r := newPaymentRouter(NewCompanyPaymentHandler(uc))

		uc.EXPECT().Update(gomock.Any(), handlerTestPaymentID, gomock.Any()).DoAndReturn(
			func(_ any, _ string, in usecase.UpdateCompanyPaymentInput) (entities.CompanyPayment, error) {
				if in.Amount == nil || *in.Amount != 99.90 {
					t.Fatalf("unexpected input: %+v", in)
				}
				if in.Method == nil || *in.Method != entities.PaymentMethodEWallet {
					t.Fatalf("expected method pointer mapping: %+v", in)
				}
				return entities.CompanyPayment{ID: handlerTestPaymentID, Amount: 99.90}, nil
			},
		)

		body := `{"amount":99.90,"method":"E_WALLET"}`
		req := httptest.NewRequest(http.MethodPatch, "/payments/"+handlerTestPaymentID, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompanyPaymentUseCase(ctrl)
		r := newPaymentRouter(NewCompanyPaymentHandler(uc))

		uc.EXPECT().Update(gomock.Any(), handlerTestPaymentID, gomock.Any()).Return(entities.CompanyPayment{}, usecase.ErrCompanyPaymentNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/payments/"+handlerTestPaymentID, bytes.NewBufferString(`{"amount":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCompanyPaymentHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompanyPaymentUseCase(ctrl)
		r := newPaymentRouter(NewCompanyPaymentHandler(uc))

		uc.EXPECT().Delete(gomock.Any(), handlerTestPaymentID).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/payments/"+handlerTestPaymentID, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompanyPaymentUseCase(ctrl)
		r := newPaymentRouter(NewCompanyPaymentHandler(uc))

		uc.EXPECT().Delete(gomock.Any(), "x").Return(usecase.ErrInvalidPaymentID)

		req := httptest.NewRequest(http.MethodDelete, "/payments/x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestMapCompanyPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidPaymentID, http.StatusBadRequest},
		{usecase.ErrInvalidCompanyID, http.StatusBadRequest},
		{usecase.ErrInvalidAmount, http.StatusBadRequest},
		{usecase.ErrInvalidCurrency, http.StatusBadRequest},
		{usecase.ErrInvalidPaymentMethod, http.StatusBadRequest},
		{usecase.ErrCompanyPaymentNotFound, http.StatusNotFound},
		{usecase.ErrGatewayNotConfigured, http.StatusServiceUnavailable},
		{usecase.ErrPaymentGateway, http.StatusBadGateway},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapCompanyPaymentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
