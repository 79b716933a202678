package partner

import (
	"strings"

	"github.com/ledgerflow/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DefaultPaymentTerms applies when a client omits payment terms
const DefaultPaymentTerms = "net30"

// Address is a postal address block
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// IsEmpty reports whether every part of the address is blank
func (a Address) IsEmpty() bool {
	return a.Street == "" && a.City == "" && a.State == "" && a.ZipCode == "" && a.Country == ""
}

// Customer is a billable contact
type Customer struct {
	shared.BaseEntity
	Name           string
	Email          string
	Phone          string
	Company        string
	Address        Address
	BillingAddress Address
	TaxID          string
	PaymentTerms   string
	CreditLimit    *decimal.Decimal
	Notes          string
	IsActive       bool
}

// CustomerDraft carries the writable fields of a customer
type CustomerDraft struct {
	Name           string
	Email          string
	Phone          string
	Company        string
	Address        Address
	BillingAddress Address
	TaxID          string
	PaymentTerms   string
	CreditLimit    *decimal.Decimal
	Notes          string
	IsActive       *bool
}

var (
	errCustomerRequired    = shared.NewValidationError("Name and email are required")
	ErrCustomerNotFound    = shared.NewNotFoundError("Customer not found")
	// ErrCustomerHasInvoices blocks deleting a customer that invoices still reference
	ErrCustomerHasInvoices = shared.NewConflictError("Customer has invoices")
)

// NewCustomer validates a draft and builds a customer
func NewCustomer(d CustomerDraft) (*Customer, error) {
	c := &Customer{}
	if err := c.Apply(d); err != nil {
		return nil, err
	}
	return c, nil
}

// Apply overwrites the customer with the draft
func (c *Customer) Apply(d CustomerDraft) error {
	name := strings.TrimSpace(d.Name)
	email := strings.TrimSpace(d.Email)
	if name == "" || email == "" {
		return errCustomerRequired
	}

	c.Name = name
	c.Email = email
	c.Phone = d.Phone
	c.Company = d.Company
	c.Address = d.Address
	c.BillingAddress = d.BillingAddress
	c.TaxID = d.TaxID
	c.PaymentTerms = orDefault(d.PaymentTerms, DefaultPaymentTerms)
	c.CreditLimit = d.CreditLimit
	c.Notes = d.Notes
	c.IsActive = d.IsActive == nil || *d.IsActive
	return nil
}

// Summary returns the compact form embedded in expense and payment responses
func (c *Customer) Summary() Summary {
	return Summary{
		ID:      c.ID,
		Name:    firstNonBlank("Unnamed Customer", c.Name, c.Company),
		Company: c.Company,
		Email:   strings.TrimSpace(c.Email),
	}
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func firstNonBlank(fallback string, values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return fallback
}
