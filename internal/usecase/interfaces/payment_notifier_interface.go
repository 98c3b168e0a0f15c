package interfaces

import (
	"context"

	"company_payments/internal/domain/entities"
)

// IPaymentNotifier emits a subscription-paid notification to the message
// bus after a payment changes status. Side effect only: emission failures
// must never roll back the transition that triggered them.
type IPaymentNotifier interface {
	SendSubscriptionPaid(ctx context.Context, companyID, transactionID string, status entities.TransactionStatus) error
}
