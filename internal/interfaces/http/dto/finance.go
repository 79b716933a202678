package dto

import (
	"github.com/ledgerflow/backend/internal/domain/finance"
	"github.com/ledgerflow/backend/internal/domain/shared"
)

// ExpenseRequest is the body of expense create and update
type ExpenseRequest struct {
	Type            string `json:"type" binding:"max=50"`
	Amount          Number `json:"amount"`
	Date            string `json:"date" binding:"max=50"`
	PaymentMethod   string `json:"paymentMethod" binding:"max=50"`
	ReferenceNumber string `json:"referenceNumber" binding:"max=100"`
	Description     string `json:"description"`
	TaxDeductible   bool   `json:"taxDeductible"`
	Tag             string `json:"tag" binding:"max=255"`
	VendorID        ID     `json:"vendorId"`
	CustomerID      ID     `json:"customerId"`
}

// Draft converts the request to the domain input
func (r ExpenseRequest) Draft() finance.ExpenseDraft {
	return finance.ExpenseDraft{
		Type:            r.Type,
		Amount:          r.Amount.OrZero(),
		AmountGiven:     r.Amount.Present(),
		Date:            r.Date,
		PaymentMethod:   r.PaymentMethod,
		ReferenceNumber: r.ReferenceNumber,
		Description:     r.Description,
		TaxDeductible:   r.TaxDeductible,
		Tag:             r.Tag,
		VendorID:        r.VendorID.Ptr(),
		CustomerID:      r.CustomerID.Ptr(),
	}
}

// ExpenseResponse is an expense with its linked parties
type ExpenseResponse struct {
	ID              uint             `json:"id"`
	Type            string           `json:"type"`
	Amount          float64          `json:"amount"`
	Date            string           `json:"date"`
	PaymentMethod   *string          `json:"paymentMethod"`
	ReferenceNumber *string          `json:"referenceNumber"`
	Description     *string          `json:"description"`
	TaxDeductible   bool             `json:"taxDeductible"`
	Tag             *string          `json:"tag"`
	VendorID        *uint            `json:"vendorId"`
	CustomerID      *uint            `json:"customerId"`
	CreatedAt       string           `json:"createdAt"`
	UpdatedAt       string           `json:"updatedAt"`
	Vendor          *VendorSummary   `json:"vendor"`
	Customer        *CustomerSummary `json:"customer"`
}

// NewExpenseResponse maps a domain expense
func NewExpenseResponse(e *finance.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:              e.ID,
		Type:            e.Type,
		Amount:          shared.MoneyFloat(e.Amount),
		Date:            e.Date,
		PaymentMethod:   nonBlank(e.PaymentMethod),
		ReferenceNumber: nonBlank(e.ReferenceNumber),
		Description:     nonBlank(e.Description),
		TaxDeductible:   e.TaxDeductible,
		Tag:             nonBlank(e.Tag),
		VendorID:        e.VendorID,
		CustomerID:      e.CustomerID,
		CreatedAt:       Timestamp(e.CreatedAt),
		UpdatedAt:       Timestamp(e.UpdatedAt),
		Vendor:          newVendorSummary(e.Vendor),
		Customer:        newCustomerSummary(e.Customer),
	}
}

// NewExpenseListResponse maps a list of expenses
func NewExpenseListResponse(expenses []finance.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		out[i] = NewExpenseResponse(&expenses[i])
	}
	return out
}

// PaymentRequest is the body of payment create and update
type PaymentRequest struct {
	Amount          Number `json:"amount"`
	Date            string `json:"date" binding:"max=50"`
	PaymentMethod   string `json:"paymentMethod" binding:"max=50"`
	ReferenceNumber string `json:"referenceNumber" binding:"max=100"`
	Notes           string `json:"notes"`
	Status          Text   `json:"status" binding:"max=20"`
	InvoiceID       ID     `json:"invoiceId"`
	VendorID        ID     `json:"vendorId"`
	CustomerID      ID     `json:"customerId"`
}

// Draft converts the request to the domain input
func (r PaymentRequest) Draft() finance.PaymentDraft {
	return finance.PaymentDraft{
		Amount:          r.Amount.OrZero(),
		AmountGiven:     r.Amount.Present(),
		Date:            r.Date,
		PaymentMethod:   r.PaymentMethod,
		ReferenceNumber: r.ReferenceNumber,
		Notes:           r.Notes,
		Status:          r.Status.String(),
		InvoiceID:       r.InvoiceID.Ptr(),
		VendorID:        r.VendorID.Ptr(),
		CustomerID:      r.CustomerID.Ptr(),
	}
}

// PaymentInvoiceSummary is the invoice embedded in a payment
type PaymentInvoiceSummary struct {
	ID            uint    `json:"id"`
	InvoiceNumber string  `json:"invoiceNumber"`
	Status        string  `json:"status"`
	Total         float64 `json:"total"`
	CustomerName  *string `json:"customerName"`
}

// PaymentResponse is a payment with its linked invoice and parties
type PaymentResponse struct {
	ID              uint                   `json:"id"`
	Amount          float64                `json:"amount"`
	Date            string                 `json:"date"`
	PaymentMethod   *string                `json:"paymentMethod"`
	ReferenceNumber *string                `json:"referenceNumber"`
	Notes           *string                `json:"notes"`
	Status          string                 `json:"status"`
	InvoiceID       *uint                  `json:"invoiceId"`
	VendorID        *uint                  `json:"vendorId"`
	CustomerID      *uint                  `json:"customerId"`
	CreatedAt       string                 `json:"createdAt"`
	UpdatedAt       string                 `json:"updatedAt"`
	Invoice         *PaymentInvoiceSummary `json:"invoice"`
	Vendor          *VendorSummary         `json:"vendor"`
	Customer        *CustomerSummary       `json:"customer"`
}

// NewPaymentResponse maps a domain payment
func NewPaymentResponse(p *finance.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:              p.ID,
		Amount:          shared.MoneyFloat(p.Amount),
		Date:            p.Date,
		PaymentMethod:   nonBlank(p.PaymentMethod),
		ReferenceNumber: nonBlank(p.ReferenceNumber),
		Notes:           nonBlank(p.Notes),
		Status:          p.Status,
		InvoiceID:       p.InvoiceID,
		VendorID:        p.VendorID,
		CustomerID:      p.CustomerID,
		CreatedAt:       Timestamp(p.CreatedAt),
		UpdatedAt:       Timestamp(p.UpdatedAt),
		Vendor:          newVendorSummary(p.Vendor),
		Customer:        newCustomerSummary(p.Customer),
	}
	if inv := p.Invoice; inv != nil {
		resp.Invoice = &PaymentInvoiceSummary{
			ID:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			Status:        inv.Status,
			Total:         shared.MoneyFloat(inv.Total),
			CustomerName:  nonBlank(inv.CustomerName),
		}
	}
	return resp
}

// NewPaymentListResponse maps a list of payments
func NewPaymentListResponse(payments []finance.Payment) []PaymentResponse {
	out := make([]PaymentResponse, len(payments))
	for i := range payments {
		out[i] = NewPaymentResponse(&payments[i])
	}
	return out
}
