package dto

import (
	"github.com/ledgerflow/backend/internal/domain/invoicing"
	"github.com/ledgerflow/backend/internal/domain/shared"
)

// LineItemRequest is one submitted invoice row
type LineItemRequest struct {
	Description string `json:"description" binding:"max=255"`
	Quantity    Number `json:"quantity"`
	Rate        Number `json:"rate"`
}

// InvoiceRequest is the body of invoice create and update. Numeric fields
// that do not parse count as zero and a non-string status counts as draft.
type InvoiceRequest struct {
	InvoiceNumber string            `json:"invoiceNumber" binding:"max=50"`
	CustomerID    ID                `json:"customerId"`
	Status        Text              `json:"status"`
	IssueDate     string            `json:"issueDate" binding:"max=50"`
	DueDate       string            `json:"dueDate" binding:"max=50"`
	PaymentTerms  string            `json:"paymentTerms" binding:"max=50"`
	Notes         string            `json:"notes"`
	Terms         string            `json:"terms"`
	TaxRate       Number            `json:"taxRate"`
	DiscountTotal Number            `json:"discountTotal"`
	LineItems     []LineItemRequest `json:"lineItems" binding:"dive"`
}

// Draft converts the request to the domain input
func (r InvoiceRequest) Draft() invoicing.Draft {
	items := make([]invoicing.LineItemInput, len(r.LineItems))
	for i, item := range r.LineItems {
		items[i] = invoicing.LineItemInput{
			Description: item.Description,
			Quantity:    item.Quantity.OrZero(),
			Rate:        item.Rate.OrZero(),
		}
	}
	return invoicing.Draft{
		InvoiceNumber: r.InvoiceNumber,
		CustomerID:    r.CustomerID.Value(),
		Status:        r.Status.String(),
		IssueDate:     r.IssueDate,
		DueDate:       r.DueDate,
		PaymentTerms:  r.PaymentTerms,
		Notes:         r.Notes,
		Terms:         r.Terms,
		TaxRate:       r.TaxRate.OrZero(),
		DiscountTotal: r.DiscountTotal.OrZero(),
		LineItems:     items,
	}
}

// LineItemResponse is one stored invoice row
type LineItemResponse struct {
	ID          uint    `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
}

// InvoiceCustomerResponse is the customer embedded in an invoice
type InvoiceCustomerResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
}

// InvoiceResponse is an invoice with its customer and line items
type InvoiceResponse struct {
	ID            uint                     `json:"id"`
	InvoiceNumber string                   `json:"invoiceNumber"`
	CustomerID    uint                     `json:"customerId"`
	Status        string                   `json:"status"`
	IssueDate     string                   `json:"issueDate"`
	DueDate       string                   `json:"dueDate"`
	PaymentTerms  string                   `json:"paymentTerms"`
	Notes         string                   `json:"notes"`
	Terms         string                   `json:"terms"`
	TaxRate       float64                  `json:"taxRate"`
	Subtotal      float64                  `json:"subtotal"`
	TaxTotal      float64                  `json:"taxTotal"`
	DiscountTotal float64                  `json:"discountTotal"`
	Total         float64                  `json:"total"`
	CreatedAt     string                   `json:"createdAt"`
	UpdatedAt     string                   `json:"updatedAt"`
	Customer      *InvoiceCustomerResponse `json:"customer"`
	LineItems     []LineItemResponse       `json:"lineItems"`
}

// NewInvoiceResponse maps a domain invoice
func NewInvoiceResponse(inv *invoicing.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		CustomerID:    inv.CustomerID,
		Status:        string(inv.Status),
		IssueDate:     inv.IssueDate,
		DueDate:       inv.DueDate,
		PaymentTerms:  inv.PaymentTerms,
		Notes:         inv.Notes,
		Terms:         inv.Terms,
		TaxRate:       inv.TaxRate.InexactFloat64(),
		Subtotal:      shared.MoneyFloat(inv.Subtotal),
		TaxTotal:      shared.MoneyFloat(inv.TaxTotal),
		DiscountTotal: shared.MoneyFloat(inv.DiscountTotal),
		Total:         shared.MoneyFloat(inv.Total),
		CreatedAt:     Timestamp(inv.CreatedAt),
		UpdatedAt:     Timestamp(inv.UpdatedAt),
		LineItems:     make([]LineItemResponse, len(inv.Items)),
	}
	if c := inv.Customer; c != nil {
		resp.Customer = &InvoiceCustomerResponse{ID: c.ID, Name: c.Name, Email: c.Email, Company: c.Company}
	}
	for i, item := range inv.Items {
		resp.LineItems[i] = LineItemResponse{
			ID:          item.ID,
			Description: item.Description,
			Quantity:    item.Quantity.InexactFloat64(),
			Rate:        item.Rate.InexactFloat64(),
		}
	}
	return resp
}

// NewInvoiceListResponse maps a list of invoices
func NewInvoiceListResponse(invoices []invoicing.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		out[i] = NewInvoiceResponse(&invoices[i])
	}
	return out
}
