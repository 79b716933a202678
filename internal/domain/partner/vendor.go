package partner

import (
	"context"
	"strings"

	"github.com/ledgerflow/backend/internal/domain/shared"
)

// DefaultVendorCategory applies when a client omits the category
const DefaultVendorCategory = "other"

// Vendor is a supplier the business pays
type Vendor struct {
	shared.BaseEntity
	Company       string
	ContactName   string
	Email         string
	Phone         string
	Address       Address
	TaxID         string
	PaymentTerms  string
	Category      string
	AccountNumber string
	Notes         string
	IsActive      bool
}

// VendorDraft carries the writable fields of a vendor
type VendorDraft struct {
	Company       string
	ContactName   string
	Email         string
	Phone         string
	Address       Address
	TaxID         string
	PaymentTerms  string
	Category      string
	AccountNumber string
	Notes         string
	IsActive      *bool
}

var (
	errVendorRequired = shared.NewValidationError("Company and email are required")
	ErrVendorNotFound = shared.NewNotFoundError("Vendor not found")
)

// NewVendor validates a draft and builds a vendor
func NewVendor(d VendorDraft) (*Vendor, error) {
	v := &Vendor{}
	if err := v.Apply(d); err != nil {
		return nil, err
	}
	return v, nil
}

// Apply overwrites the vendor with the draft
func (v *Vendor) Apply(d VendorDraft) error {
	company := strings.TrimSpace(d.Company)
	email := strings.TrimSpace(d.Email)
	if company == "" || email == "" {
		return errVendorRequired
	}

	v.Company = company
	v.ContactName = strings.TrimSpace(d.ContactName)
	v.Email = email
	v.Phone = d.Phone
	v.Address = d.Address
	v.TaxID = d.TaxID
	v.PaymentTerms = orDefault(d.PaymentTerms, DefaultPaymentTerms)
	v.Category = orDefault(d.Category, DefaultVendorCategory)
	v.AccountNumber = d.AccountNumber
	v.Notes = d.Notes
	v.IsActive = d.IsActive == nil || *d.IsActive
	return nil
}

// Summary returns the compact form embedded in expense and payment responses
func (v *Vendor) Summary() Summary {
	return Summary{
		ID:      v.ID,
		Name:    firstNonBlank("Unnamed Vendor", v.Company, v.ContactName),
		Company: v.Company,
		Contact: v.ContactName,
		Email:   strings.TrimSpace(v.Email),
	}
}

// Summary is the compact view of a customer or vendor
type Summary struct {
	ID      uint
	Name    string
	Company string
	Contact string
	Email   string
}

// CustomerRepository persists customers. Delete refuses customers that still
// own invoices and detaches them from expenses and payments.
type CustomerRepository interface {
	shared.Repository[Customer]
}

// VendorRepository persists vendors. Delete detaches the vendor from
// expenses and payments.
type VendorRepository interface {
	shared.Repository[Vendor]
}

// Lookup resolves optional party references
type Lookup interface {
	FindCustomer(ctx context.Context, id uint) (*Customer, error)
	FindVendor(ctx context.Context, id uint) (*Vendor, error)
}
