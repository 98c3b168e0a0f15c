package request

// CreateStripeCheckoutRequest creates a bare hosted checkout session for
// external callers that keep their own payment records. Nothing is stored.

type CreateStripeCheckoutRequest struct {
	Amount      float64           `json:"amount" binding:"required"`
	Currency    string            `json:"currency" binding:"required"`
	SuccessURL  string            `json:"successUrl" binding:"required"`
	CancelURL   string            `json:"cancelUrl" binding:"required"`
	Description string            `json:"description"`
	Method      string            `json:"method"`
	Metadata    map[string]string `json:"metadata"`
}
