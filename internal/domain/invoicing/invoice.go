package invoicing

import (
	"context"
	"strings"

	"github.com/ledgerflow/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of an invoice
type Status string

const (
	StatusDraft Status = "draft"
	StatusSent  Status = "sent"
	StatusPaid  Status = "paid"

	// legacyStatusOverdue is still sent by older clients and is stored as sent.
	legacyStatusOverdue = "overdue"
)

// NormalizeStatus maps client input onto a known status. Unknown and empty
// values fall back to draft.
func NormalizeStatus(raw string) Status {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == legacyStatusOverdue {
		return StatusSent
	}
	switch Status(value) {
	case StatusDraft, StatusSent, StatusPaid:
		return Status(value)
	default:
		return StatusDraft
	}
}

// IsPaid reports whether the invoice counts towards revenue
func (s Status) IsPaid() bool {
	return s == StatusPaid
}

// LineItem is a persisted billable row owned by exactly one invoice
type LineItem struct {
	ID          uint
	InvoiceID   uint
	Description string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
}

// Amount returns quantity multiplied by rate
func (l LineItem) Amount() decimal.Decimal {
	return l.Quantity.Mul(l.Rate)
}

// CustomerSummary is the slice of a customer embedded in invoice responses
type CustomerSummary struct {
	ID      uint
	Name    string
	Email   string
	Company string
}

// Invoice is the invoice aggregate. Its totals are always derived from its
// line items, tax rate and discount.
type Invoice struct {
	shared.BaseEntity
	InvoiceNumber string
	CustomerID    uint
	Customer      *CustomerSummary
	Status        Status
	IssueDate     string
	DueDate       string
	PaymentTerms  string
	Notes         string
	Terms         string
	TaxRate       decimal.Decimal
	Totals
	Items []LineItem
}

// Draft carries the writable fields of an invoice
type Draft struct {
	InvoiceNumber string
	CustomerID    uint
	Status        string
	IssueDate     string
	DueDate       string
	PaymentTerms  string
	Notes         string
	Terms         string
	TaxRate       decimal.Decimal
	DiscountTotal decimal.Decimal
	LineItems     []LineItemInput
}

var (
	// ErrMissingRequired is returned when the invoice number or customer is absent
	ErrMissingRequired = shared.NewValidationError("Invoice number and customer are required")
	// ErrDuplicateNumber is returned when another invoice already uses the number
	ErrDuplicateNumber = shared.NewAlreadyExistsError("Invoice number must be unique")
	ErrNotFound        = shared.NewNotFoundError("Invoice not found")
	// ErrUnknownCustomer is returned when customerId names no customer
	ErrUnknownCustomer = shared.NewValidationError("Customer not found")
)

// NewInvoice builds a new invoice from a draft
func NewInvoice(d Draft) (*Invoice, error) {
	inv := &Invoice{}
	if err := inv.Apply(d); err != nil {
		return nil, err
	}
	return inv, nil
}

// Apply overwrites every writable field from the draft and recalculates
// totals. Line items are replaced wholesale.
func (inv *Invoice) Apply(d Draft) error {
	number := strings.TrimSpace(d.InvoiceNumber)
	if number == "" || d.CustomerID == 0 {
		return ErrMissingRequired
	}

	totals := ComputeTotals(d.LineItems, d.TaxRate, d.DiscountTotal)
	items := RetainItems(d.LineItems)
	for i := range items {
		items[i].InvoiceID = inv.ID
	}

	if inv.CustomerID != d.CustomerID {
		inv.Customer = nil
	}
	inv.InvoiceNumber = number
	inv.CustomerID = d.CustomerID
	inv.Status = NormalizeStatus(d.Status)
	inv.IssueDate = d.IssueDate
	inv.DueDate = d.DueDate
	inv.PaymentTerms = d.PaymentTerms
	inv.Notes = d.Notes
	inv.Terms = d.Terms
	inv.TaxRate = d.TaxRate
	inv.Totals = totals
	inv.Items = items
	return nil
}

// InvoiceRepository persists invoices together with their line items.
// FindAll returns newest id first with customer summaries and items loaded.
// Create and Update write the invoice and its items atomically and report a
// taken invoice number as ErrDuplicateNumber. Delete detaches payments.
type InvoiceRepository interface {
	shared.Repository[Invoice]
	ExistsByID(ctx context.Context, id uint) (bool, error)
}
