// Package settings holds the per-installation singleton records: company
// profile, tax, notification and security settings.
package settings

import (
	"context"
	"strings"

	"github.com/ledgerflow/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MaxTaxRates caps the number of named tax rates
const MaxTaxRates = 5

// DefaultEntityType applies when the organisation entity type is omitted
const DefaultEntityType = "llc"

// CompanyAddress is one of the company's two address blocks
type CompanyAddress struct {
	Address1   string
	Address2   string
	City       string
	State      string
	PostalCode string
	Country    string
}

// Company is the business profile printed on invoices
type Company struct {
	shared.BaseEntity
	Name         string
	ContactEmail string
	CompanyPhone string
	Mailing      CompanyAddress
	Physical     CompanyAddress
}

// TaxOrg describes the organisation for tax purposes
type TaxOrg struct {
	EntityType string
	TaxID      string
	Country    string
	Region     string
}

// TaxRate is one named rate in the ordered rate list
type TaxRate struct {
	Name     string
	Rate     decimal.Decimal
	Compound bool
}

// Tax is the tax configuration singleton
type Tax struct {
	shared.BaseEntity
	Org            TaxOrg
	DefaultTaxRate decimal.Decimal
	Rates          []TaxRate
}

// ErrTooManyTaxRates rejects a rate list longer than MaxTaxRates
var ErrTooManyTaxRates = shared.NewValidationError("At most 5 tax rates")

// SetRates replaces the rate list in input order
func (t *Tax) SetRates(rates []TaxRate) error {
	if len(rates) > MaxTaxRates {
		return ErrTooManyTaxRates
	}
	t.Rates = append([]TaxRate(nil), rates...)
	return nil
}

// NamedRates returns the rates that carry a name
func (t *Tax) NamedRates() []TaxRate {
	named := make([]TaxRate, 0, len(t.Rates))
	for _, r := range t.Rates {
		if strings.TrimSpace(r.Name) != "" {
			named = append(named, r)
		}
	}
	return named
}

// SetOrg sets the organisation block, defaulting the entity type
func (t *Tax) SetOrg(org TaxOrg) {
	if org.EntityType == "" {
		org.EntityType = DefaultEntityType
	}
	t.Org = org
}

// Notification holds outbound notification preferences
type Notification struct {
	shared.BaseEntity
	EnableEmail  bool
	EmailAddress string
	EnableSMS    bool
	PhoneNumber  string
}

var errCompanyNameRequired = shared.NewValidationError("Password and company name are required")

// SetupRequest is the first-run bootstrap input
type SetupRequest struct {
	Password string
	Company  Company
}

// Validate checks the bootstrap input before anything is written
func (r SetupRequest) Validate() error {
	if r.Password == "" || strings.TrimSpace(r.Company.Name) == "" {
		return errCompanyNameRequired
	}
	return ValidatePassword(r.Password)
}

// Repositories for the singleton records
type (
	CompanyRepository      = shared.SingletonRepository[Company]
	TaxRepository          = shared.SingletonRepository[Tax]
	NotificationRepository = shared.SingletonRepository[Notification]
	SecurityRepository     = shared.SingletonRepository[Security]
)

// Repositories bundles the singleton repositories bound to one transaction
type Repositories struct {
	Company      CompanyRepository
	Tax          TaxRepository
	Notification NotificationRepository
	Security     SecurityRepository
}

// Transactor runs fn with repositories that share a single transaction.
// The transaction commits when fn returns nil.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(repos Repositories) error) error
}
