package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"company_payments/internal/usecase/interfaces"
)

var (
	ErrInvalidCurrency    = errors.New("currency must not be blank")
	ErrInvalidRedirectURL = errors.New("successUrl and cancelUrl must not be blank")
	ErrPaymentGateway     = errors.New("payment gateway error")

	// ErrGatewayNotConfigured re-exports the gateway sentinel so handlers
	// map it alongside the other usecase errors.
	ErrGatewayNotConfigured = interfaces.ErrGatewayNotConfigured
)

const defaultCheckoutDescription = "Company payment"

// IStripeCheckoutUseCase creates a hosted checkout session without touching
// the database. Used by external teams that track the payment themselves.

type IStripeCheckoutUseCase interface {
	CreateCheckoutSession(ctx context.Context, in CreateStripeCheckoutInput) (interfaces.CheckoutSessionResult, error)
}

type CreateStripeCheckoutInput struct {
	Amount      float64
	Currency    string
	SuccessURL  string
	CancelURL   string
	Description string
	Metadata    map[string]string
}

type StripeCheckoutUseCase struct {
	gateway interfaces.IPaymentGateway
}

var _ IStripeCheckoutUseCase = (*StripeCheckoutUseCase)(nil)

func NewStripeCheckoutUseCase(gateway interfaces.IPaymentGateway) *StripeCheckoutUseCase {
	return &StripeCheckoutUseCase{gateway: gateway}
}

func (u *StripeCheckoutUseCase) CreateCheckoutSession(ctx context.Context, in CreateStripeCheckoutInput) (interfaces.CheckoutSessionResult, error) {
	minorUnits, err := MinorUnits(in.Amount)
	if err != nil {
		return interfaces.CheckoutSessionResult{}, err
	}
	if strings.TrimSpace(in.Currency) == "" {
		return interfaces.CheckoutSessionResult{}, ErrInvalidCurrency
	}
	if strings.TrimSpace(in.SuccessURL) == "" || strings.TrimSpace(in.CancelURL) == "" {
		return interfaces.CheckoutSessionResult{}, ErrInvalidRedirectURL
	}
	if u.gateway == nil {
		return interfaces.CheckoutSessionResult{}, ErrGatewayNotConfigured
	}

	description := strings.TrimSpace(in.Description)
	if description == "" {
		description = defaultCheckoutDescription
	}

	log.Printf("[checkout][usecase] create start amount=%.2f currency=%s minor_units=%d", in.Amount, in.Currency, minorUnits)

	result, err := u.gateway.CreateCheckoutSession(ctx, interfaces.CheckoutSessionRequest{
		AmountMinor: minorUnits,
		Currency:    strings.ToLower(strings.TrimSpace(in.Currency)),
		SuccessURL:  in.SuccessURL,
		CancelURL:   in.CancelURL,
		Description: description,
		Metadata:    in.Metadata,
	})
	if err != nil {
		log.Printf("[checkout][usecase] gateway failed err=%v", err)
		if errors.Is(err, ErrGatewayNotConfigured) {
			return interfaces.CheckoutSessionResult{}, err
		}
		return interfaces.CheckoutSessionResult{}, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}

	log.Printf("[checkout][usecase] create success session_id=%s", result.SessionID)
	return result, nil
}
