package handler

import (
	"github.com/gin-gonic/gin"
	financeapp "github.com/ledgerflow/backend/internal/application/finance"
	"github.com/ledgerflow/backend/internal/interfaces/http/dto"
)

// ExpenseHandler handles expense-related API endpoints
type ExpenseHandler struct {
	BaseHandler
	expenseService *financeapp.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService *financeapp.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// List godoc
// @Summary   List expenses
// @Tags      expenses
// @Produce   json
// @Success   200 {array} dto.ExpenseResponse
// @Security  BearerAuth
// @Router    /expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.expenseService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewExpenseListResponse(expenses))
}

// GetByID returns one expense
func (h *ExpenseHandler) GetByID(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	expense, err := h.expenseService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewExpenseResponse(expense))
}

// Create godoc
// @Summary   Record an expense
// @Tags      expenses
// @Accept    json
// @Produce   json
// @Param     request body dto.ExpenseRequest true "Expense"
// @Success   201 {object} dto.ExpenseResponse
// @Failure   400 {object} dto.ErrorResponse
// @Security  BearerAuth
// @Router    /expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req dto.ExpenseRequest
	if !h.bindJSON(c, &req) {
		return
	}
	expense, err := h.expenseService.Create(c.Request.Context(), req.Draft())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.NewExpenseResponse(expense))
}

// Update replaces an expense's fields
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	var req dto.ExpenseRequest
	if !h.bindJSON(c, &req) {
		return
	}
	expense, err := h.expenseService.Update(c.Request.Context(), id, req.Draft())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewExpenseResponse(expense))
}

// Delete removes an expense
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	if err := h.expenseService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.OK())
}

// PaymentHandler handles payment-related API endpoints
type PaymentHandler struct {
	BaseHandler
	paymentService *financeapp.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *financeapp.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// List godoc
// @Summary   List payments
// @Tags      payments
// @Produce   json
// @Success   200 {array} dto.PaymentResponse
// @Security  BearerAuth
// @Router    /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.paymentService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewPaymentListResponse(payments))
}

// GetByID returns one payment
func (h *PaymentHandler) GetByID(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	payment, err := h.paymentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewPaymentResponse(payment))
}

// Create godoc
// @Summary   Record a payment
// @Tags      payments
// @Accept    json
// @Produce   json
// @Param     request body dto.PaymentRequest true "Payment"
// @Success   201 {object} dto.PaymentResponse
// @Failure   400 {object} dto.ErrorResponse
// @Security  BearerAuth
// @Router    /payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	var req dto.PaymentRequest
	if !h.bindJSON(c, &req) {
		return
	}
	payment, err := h.paymentService.Create(c.Request.Context(), req.Draft())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.NewPaymentResponse(payment))
}

// Update replaces a payment's fields
func (h *PaymentHandler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	var req dto.PaymentRequest
	if !h.bindJSON(c, &req) {
		return
	}
	payment, err := h.paymentService.Update(c.Request.Context(), id, req.Draft())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.NewPaymentResponse(payment))
}

// Delete removes a payment
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}
	if err := h.paymentService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.OK())
}
