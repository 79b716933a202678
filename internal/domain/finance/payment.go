package finance

import (
	"strings"

	"github.com/ledgerflow/backend/internal/domain/partner"
	"github.com/ledgerflow/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DefaultPaymentStatus is stored when a client omits the payment status
const DefaultPaymentStatus = "completed"

// InvoiceSummary is the slice of an invoice embedded in payment responses.
// CustomerName is empty when the invoice has no resolvable customer.
type InvoiceSummary struct {
	ID            uint
	InvoiceNumber string
	Status        string
	Total         decimal.Decimal
	CustomerName  string
}

// Payment is money received or paid out, optionally linked to an invoice,
// a vendor or a customer.
type Payment struct {
	shared.BaseEntity
	Amount          decimal.Decimal
	Date            string
	PaymentMethod   string
	ReferenceNumber string
	Notes           string
	Status          string
	InvoiceID       *uint
	VendorID        *uint
	CustomerID      *uint
	Invoice         *InvoiceSummary
	Vendor          *partner.Summary
	Customer        *partner.Summary
}

// PaymentDraft carries the writable fields of a payment
type PaymentDraft struct {
	Amount          decimal.Decimal
	AmountGiven     bool
	Date            string
	PaymentMethod   string
	ReferenceNumber string
	Notes           string
	Status          string
	InvoiceID       *uint
	VendorID        *uint
	CustomerID      *uint
}

var (
	errPaymentRequired     = shared.NewValidationError("Amount and date are required")
	errPaymentDateRequired = shared.NewValidationError("Payment date is required")
	ErrPaymentNotFound     = shared.NewNotFoundError("Payment not found")
)

// NewPayment validates a draft for creation
func NewPayment(d PaymentDraft) (*Payment, error) {
	if !d.AmountGiven || strings.TrimSpace(d.Date) == "" {
		return nil, errPaymentRequired
	}
	p := &Payment{}
	if err := p.Apply(d); err != nil {
		return nil, err
	}
	return p, nil
}

// Apply overwrites the payment with the draft
func (p *Payment) Apply(d PaymentDraft) error {
	if !d.Amount.IsPositive() {
		return errAmountNotPositive
	}
	date := strings.TrimSpace(d.Date)
	if date == "" {
		return errPaymentDateRequired
	}

	if !sameRef(p.InvoiceID, d.InvoiceID) {
		p.Invoice = nil
	}
	if !sameRef(p.VendorID, d.VendorID) {
		p.Vendor = nil
	}
	if !sameRef(p.CustomerID, d.CustomerID) {
		p.Customer = nil
	}

	p.Amount = d.Amount
	p.Date = date
	p.PaymentMethod = strings.TrimSpace(d.PaymentMethod)
	p.ReferenceNumber = strings.TrimSpace(d.ReferenceNumber)
	p.Notes = strings.TrimSpace(d.Notes)
	p.Status = strings.TrimSpace(d.Status)
	if p.Status == "" {
		p.Status = DefaultPaymentStatus
	}
	p.InvoiceID = normalizeRef(d.InvoiceID)
	p.VendorID = normalizeRef(d.VendorID)
	p.CustomerID = normalizeRef(d.CustomerID)
	return nil
}

// PaymentRepository persists payments with their invoice and party summaries
// loaded.
type PaymentRepository interface {
	shared.Repository[Payment]
}
