package handlers

import (
	"errors"
	"log"
	"net/http"

	"company_payments/internal/adapter/http/dto/request"
	"company_payments/internal/adapter/http/dto/response"
	"company_payments/internal/domain/entities"
	"company_payments/internal/usecase"
	"company_payments/pkg"

	"github.com/gin-gonic/gin"
)

// CompanyPaymentHandler handles the payment-record CRUD surface.

type CompanyPaymentHandler struct {
	usecase usecase.ICompanyPaymentUseCase
}

func NewCompanyPaymentHandler(uc usecase.ICompanyPaymentUseCase) *CompanyPaymentHandler {
	return &CompanyPaymentHandler{usecase: uc}
}

// Create godoc
// @Summary      Create a company payment
// @Description  Creates a PENDING payment record and its hosted checkout session.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request body request.CreateCompanyPaymentRequest true "payment to create"
// @Success      201 {object} response.CreateCompanyPaymentResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /payments [post]
func (h *CompanyPaymentHandler) Create(c *gin.Context) {
	var req request.CreateCompanyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] invalid create request err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, checkoutURL, err := h.usecase.Create(c.Request.Context(), usecase.CreateCompanyPaymentInput{
		CompanyID:      req.CompanyID,
		Amount:         req.Amount,
		Currency:       req.Currency,
		Method:         entities.PaymentMethod(req.Method),
		SubscriptionID: req.SubscriptionID,
	})
	if err != nil {
		log.Printf("[payment][handler] create failed company_id=%s err=%v", req.CompanyID, err)
		appErr := mapCompanyPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success payment_id=%s", created.ID)

	c.JSON(http.StatusCreated, response.FromCreatedCompanyPayment(created, checkoutURL))
}

// GetByID godoc
// @Summary      Get a company payment
// @Tags         payments
// @Produce      json
// @Param        id path string true "payment id"
// @Success      200 {object} response.CompanyPaymentResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /payments/{id} [get]
func (h *CompanyPaymentHandler) GetByID(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCompanyPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCompanyPayment(p))
}

// List godoc
// @Summary      List company payments
// @Tags         payments
// @Produce      json
// @Success      200 {array} response.CompanyPaymentResponse
// @Router       /payments [get]
func (h *CompanyPaymentHandler) List(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCompanyPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.CompanyPaymentResponse, 0, len(items))
	for _, p := range items {
		out = append(out, response.FromCompanyPayment(p))
	}
	c.JSON(http.StatusOK, out)
}

// Update godoc
// @Summary      Update a company payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id path string true "payment id"
// @Param        request body request.UpdateCompanyPaymentRequest true "fields to update"
// @Success      200 {object} response.CompanyPaymentResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /payments/{id} [patch]
func (h *CompanyPaymentHandler) Update(c *gin.Context) {
	var req request.UpdateCompanyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	in := usecase.UpdateCompanyPaymentInput{
		Amount:   req.Amount,
		Currency: req.Currency,
	}
	if req.Method != nil {
		m := entities.PaymentMethod(*req.Method)
		in.Method = &m
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		log.Printf("[payment][handler] update failed payment_id=%s err=%v", c.Param("id"), err)
		appErr := mapCompanyPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCompanyPayment(updated))
}

// Delete godoc
// @Summary      Delete a company payment
// @Tags         payments
// @Param        id path string true "payment id"
// @Success      204
// @Failure      400 {object} pkg.HTTPError
// @Router       /payments/{id} [delete]
func (h *CompanyPaymentHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCompanyPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCompanyPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidCompanyID),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidCurrency),
		errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrInvalidRedirectURL):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCompanyPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGateway):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_ERROR", "Payment provider error", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
