package request

// CreateCompanyPaymentRequest starts a tracked payment: a PENDING record
// plus a hosted Stripe Checkout session correlated to it.

type CreateCompanyPaymentRequest struct {
	CompanyID      string  `json:"companyId" binding:"required"`
	Amount         float64 `json:"amount" binding:"required"`
	Currency       string  `json:"currency" binding:"required"`
	Method         string  `json:"method" binding:"required"`
	SubscriptionID string  `json:"subscriptionId"`
}

type UpdateCompanyPaymentRequest struct {
	Amount   *float64 `json:"amount"`
	Currency *string  `json:"currency"`
	Method   *string  `json:"method"`
}
