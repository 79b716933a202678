package finance

import (
	"strings"

	"github.com/ledgerflow/backend/internal/domain/partner"
	"github.com/ledgerflow/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Expense is money the business spent, optionally attributed to a vendor or
// a customer.
type Expense struct {
	shared.BaseEntity
	Type            string
	Amount          decimal.Decimal
	Date            string
	PaymentMethod   string
	ReferenceNumber string
	Description     string
	TaxDeductible   bool
	Tag             string
	VendorID        *uint
	CustomerID      *uint
	Vendor          *partner.Summary
	Customer        *partner.Summary
}

// ExpenseDraft carries the writable fields of an expense. AmountGiven is
// false when the client omitted the amount entirely.
type ExpenseDraft struct {
	Type            string
	Amount          decimal.Decimal
	AmountGiven     bool
	Date            string
	PaymentMethod   string
	ReferenceNumber string
	Description     string
	TaxDeductible   bool
	Tag             string
	VendorID        *uint
	CustomerID      *uint
}

var (
	errExpenseRequired     = shared.NewValidationError("Type, amount and date are required")
	errExpenseTypeRequired = shared.NewValidationError("Expense type is required")
	errAmountNotPositive   = shared.NewValidationError("Amount must be greater than zero")
	ErrExpenseNotFound     = shared.NewNotFoundError("Expense not found")

	// Unknown references are rejected as bad input rather than missing resources
	ErrUnknownVendor   = shared.NewValidationError("Vendor not found")
	ErrUnknownCustomer = shared.NewValidationError("Customer not found")
	ErrUnknownInvoice  = shared.NewValidationError("Invoice not found")
)

// NewExpense validates a draft for creation, where type, amount and date
// must all be present.
func NewExpense(d ExpenseDraft) (*Expense, error) {
	if strings.TrimSpace(d.Type) == "" || !d.AmountGiven || strings.TrimSpace(d.Date) == "" {
		return nil, errExpenseRequired
	}
	e := &Expense{}
	if err := e.Apply(d); err != nil {
		return nil, err
	}
	return e, nil
}

// Apply overwrites the expense with the draft. Party summaries are cleared
// whenever the referenced id changes.
func (e *Expense) Apply(d ExpenseDraft) error {
	expenseType := strings.TrimSpace(d.Type)
	if expenseType == "" {
		return errExpenseTypeRequired
	}
	if !d.Amount.IsPositive() {
		return errAmountNotPositive
	}

	if !sameRef(e.VendorID, d.VendorID) {
		e.Vendor = nil
	}
	if !sameRef(e.CustomerID, d.CustomerID) {
		e.Customer = nil
	}

	e.Type = expenseType
	e.Amount = d.Amount
	e.Date = strings.TrimSpace(d.Date)
	e.PaymentMethod = strings.TrimSpace(d.PaymentMethod)
	e.ReferenceNumber = strings.TrimSpace(d.ReferenceNumber)
	e.Description = strings.TrimSpace(d.Description)
	e.TaxDeductible = d.TaxDeductible
	e.Tag = strings.TrimSpace(d.Tag)
	e.VendorID = normalizeRef(d.VendorID)
	e.CustomerID = normalizeRef(d.CustomerID)
	return nil
}

// ExpenseRepository persists expenses with their party summaries loaded
type ExpenseRepository interface {
	shared.Repository[Expense]
}

// normalizeRef treats a zero id as no reference.
func normalizeRef(id *uint) *uint {
	if id == nil || *id == 0 {
		return nil
	}
	v := *id
	return &v
}

func sameRef(a, b *uint) bool {
	a, b = normalizeRef(a), normalizeRef(b)
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
