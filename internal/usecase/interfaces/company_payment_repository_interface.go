package interfaces

import (
	"context"

	"company_payments/internal/domain/entities"
)

// ICompanyPaymentRepository abstracts DynamoDB persistence for CompanyPayment.
//
// Lookups return a zero-value entity (ID == "") and a nil error when no
// record matches; callers decide whether that is an error.
//
// ApplyStatus is the only mutation the webhook flow uses: a single atomic
// update that sets the status (and the settlement id when non-blank) and
// reports the status the record had before, so callers can tell a real
// transition from an idempotent re-apply.

type ICompanyPaymentRepository interface {
	Create(ctx context.Context, p entities.CompanyPayment) (entities.CompanyPayment, error)
	GetByID(ctx context.Context, id string) (entities.CompanyPayment, error)
	GetByCheckoutSessionID(ctx context.Context, sessionID string) (entities.CompanyPayment, error)
	GetByPaymentIntentID(ctx context.Context, paymentIntentID string) (entities.CompanyPayment, error)
	List(ctx context.Context) ([]entities.CompanyPayment, error)
	Update(ctx context.Context, p entities.CompanyPayment) (entities.CompanyPayment, error)
	Delete(ctx context.Context, id string) error

	ApplyStatus(ctx context.Context, id string, status entities.TransactionStatus, paymentTransactionID string) (updated entities.CompanyPayment, previous entities.TransactionStatus, err error)
}
