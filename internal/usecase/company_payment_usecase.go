package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"company_payments/internal/domain/entities"
	"company_payments/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCompanyPaymentNotFound = errors.New("company payment not found")
	ErrInvalidPaymentID       = errors.New("invalid payment id")
	ErrInvalidCompanyID       = errors.New("invalid company id")
	ErrInvalidPaymentMethod   = errors.New("invalid payment method")
)

const gatewayStripe = "stripe"

// ICompanyPaymentUseCase encapsulates the payment-record lifecycle: create
// a PENDING record seeded with Stripe checkout correlation ids, plus the
// query/update/delete surface.

type ICompanyPaymentUseCase interface {
	Create(ctx context.Context, in CreateCompanyPaymentInput) (entities.CompanyPayment, string, error)
	GetByID(ctx context.Context, id string) (entities.CompanyPayment, error)
	List(ctx context.Context) ([]entities.CompanyPayment, error)
	Update(ctx context.Context, id string, in UpdateCompanyPaymentInput) (entities.CompanyPayment, error)
	Delete(ctx context.Context, id string) error
}

type CreateCompanyPaymentInput struct {
	CompanyID      string
	Amount         float64
	Currency       string
	Method         entities.PaymentMethod
	SubscriptionID string
}

type UpdateCompanyPaymentInput struct {
	Amount   *float64
	Currency *string
	Method   *entities.PaymentMethod
}

type CompanyPaymentUseCase struct {
	repo       interfaces.ICompanyPaymentRepository
	gateway    interfaces.IPaymentGateway
	successURL string
	cancelURL  string
}

var _ ICompanyPaymentUseCase = (*CompanyPaymentUseCase)(nil)

func NewCompanyPaymentUseCase(repo interfaces.ICompanyPaymentRepository, gateway interfaces.IPaymentGateway, successURL, cancelURL string) *CompanyPaymentUseCase {
	return &CompanyPaymentUseCase{repo: repo, gateway: gateway, successURL: successURL, cancelURL: cancelURL}
}

// Create persists a PENDING payment seeded with the checkout-session handle.
// The paymentId travels to Stripe twice on purpose: as client_reference_id
// and inside metadata, so webhooks can be re-associated with this record
// even when Stripe's own ids have not propagated yet.
func (u *CompanyPaymentUseCase) Create(ctx context.Context, in CreateCompanyPaymentInput) (entities.CompanyPayment, string, error) {
	log.Printf("[payment][usecase] create start company_id=%s amount=%.2f currency=%s method=%s", in.CompanyID, in.Amount, in.Currency, in.Method)

	if _, err := uuid.Parse(strings.TrimSpace(in.CompanyID)); err != nil {
		return entities.CompanyPayment{}, "", ErrInvalidCompanyID
	}
	minorUnits, err := MinorUnits(in.Amount)
	if err != nil {
		return entities.CompanyPayment{}, "", err
	}
	if strings.TrimSpace(in.Currency) == "" {
		return entities.CompanyPayment{}, "", ErrInvalidCurrency
	}
	if !in.Method.Valid() {
		return entities.CompanyPayment{}, "", ErrInvalidPaymentMethod
	}
	if u.gateway == nil {
		return entities.CompanyPayment{}, "", ErrGatewayNotConfigured
	}
	if strings.TrimSpace(u.successURL) == "" || strings.TrimSpace(u.cancelURL) == "" {
		return entities.CompanyPayment{}, "", ErrInvalidRedirectURL
	}

	paymentID := uuid.NewString()
	companyID := strings.TrimSpace(in.CompanyID)

	session, err := u.gateway.CreateCheckoutSession(ctx, interfaces.CheckoutSessionRequest{
		AmountMinor:       minorUnits,
		Currency:          strings.ToLower(strings.TrimSpace(in.Currency)),
		SuccessURL:        u.successURL,
		CancelURL:         u.cancelURL,
		Description:       defaultCheckoutDescription,
		ClientReferenceID: paymentID,
		Metadata: map[string]string{
			"paymentId": paymentID,
			"companyId": companyID,
		},
	})
	if err != nil {
		log.Printf("[payment][usecase] gateway failed company_id=%s err=%v", companyID, err)
		if errors.Is(err, ErrGatewayNotConfigured) {
			return entities.CompanyPayment{}, "", err
		}
		return entities.CompanyPayment{}, "", fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}

	p := entities.CompanyPayment{
		ID:                      paymentID,
		CompanyID:               companyID,
		Amount:                  in.Amount,
		Currency:                strings.ToUpper(strings.TrimSpace(in.Currency)),
		Gateway:                 gatewayStripe,
		Method:                  in.Method,
		Status:                  entities.TransactionStatusPending,
		PurchasedAt:             time.Now().UTC(),
		StripeCheckoutSessionID: session.SessionID,
		StripePaymentIntentID:   session.PaymentIntentID,
		SubscriptionID:          strings.TrimSpace(in.SubscriptionID),
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] repository create failed payment_id=%s err=%v", paymentID, err)
		return entities.CompanyPayment{}, "", err
	}

	log.Printf("[payment][usecase] create success payment_id=%s checkout_session_id=%s", created.ID, created.StripeCheckoutSessionID)
	return created, session.CheckoutURL, nil
}

func (u *CompanyPaymentUseCase) GetByID(ctx context.Context, id string) (entities.CompanyPayment, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return entities.CompanyPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CompanyPayment{}, err
	}
	if p.ID == "" {
		return entities.CompanyPayment{}, ErrCompanyPaymentNotFound
	}
	return p, nil
}

func (u *CompanyPaymentUseCase) List(ctx context.Context) ([]entities.CompanyPayment, error) {
	return u.repo.List(ctx)
}

func (u *CompanyPaymentUseCase) Update(ctx context.Context, id string, in UpdateCompanyPaymentInput) (entities.CompanyPayment, error) {
	log.Printf("[payment][usecase] update start payment_id=%s", id)

	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.CompanyPayment{}, err
	}

	if in.Amount != nil {
		if _, err := MinorUnits(*in.Amount); err != nil {
			return entities.CompanyPayment{}, err
		}
		existing.Amount = *in.Amount
	}
	if in.Currency != nil {
		if strings.TrimSpace(*in.Currency) == "" {
			return entities.CompanyPayment{}, ErrInvalidCurrency
		}
		existing.Currency = strings.ToUpper(strings.TrimSpace(*in.Currency))
	}
	if in.Method != nil {
		if !in.Method.Valid() {
			return entities.CompanyPayment{}, ErrInvalidPaymentMethod
		}
		existing.Method = *in.Method
	}

	updated, err := u.repo.Update(ctx, existing)
	if err != nil {
		log.Printf("[payment][usecase] update failed payment_id=%s err=%v", id, err)
		return entities.CompanyPayment{}, err
	}
	log.Printf("[payment][usecase] update success payment_id=%s", updated.ID)
	return updated, nil
}

func (u *CompanyPaymentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidPaymentID
	}
	log.Printf("[payment][usecase] delete payment_id=%s", id)
	return u.repo.Delete(ctx, id)
}
