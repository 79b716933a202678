package models

import (
	"github.com/ledgerflow/backend/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// AddressColumns is an address block flattened into its owner's table
type AddressColumns struct {
	Street  string `gorm:"type:varchar(255)"`
	City    string `gorm:"type:varchar(100)"`
	State   string `gorm:"type:varchar(100)"`
	ZipCode string `gorm:"type:varchar(50)"`
	Country string `gorm:"type:varchar(100)"`
}

func (a AddressColumns) toDomain() partner.Address {
	return partner.Address{Street: a.Street, City: a.City, State: a.State, ZipCode: a.ZipCode, Country: a.Country}
}

func addressColumns(a partner.Address) AddressColumns {
	return AddressColumns{Street: a.Street, City: a.City, State: a.State, ZipCode: a.ZipCode, Country: a.Country}
}

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	BaseModel
	Name           string              `gorm:"type:varchar(255);not null"`
	Email          string              `gorm:"type:varchar(255);not null;index"`
	Phone          string              `gorm:"type:varchar(50)"`
	Company        string              `gorm:"type:varchar(255)"`
	Address        AddressColumns      `gorm:"embedded"`
	BillingAddress AddressColumns      `gorm:"embedded;embeddedPrefix:billing_"`
	TaxID          string              `gorm:"type:varchar(100)"`
	PaymentTerms   string              `gorm:"type:varchar(50);not null;default:'net30'"`
	CreditLimit    decimal.NullDecimal `gorm:"type:decimal(18,4)"`
	Notes          string              `gorm:"type:text"`
	IsActive       bool                `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *partner.Customer {
	c := &partner.Customer{
		BaseEntity:     m.BaseModel.ToDomain(),
		Name:           m.Name,
		Email:          m.Email,
		Phone:          m.Phone,
		Company:        m.Company,
		Address:        m.Address.toDomain(),
		BillingAddress: m.BillingAddress.toDomain(),
		TaxID:          m.TaxID,
		PaymentTerms:   m.PaymentTerms,
		Notes:          m.Notes,
		IsActive:       m.IsActive,
	}
	if m.CreditLimit.Valid {
		limit := m.CreditLimit.Decimal
		c.CreditLimit = &limit
	}
	return c
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.Email = c.Email
	m.Phone = c.Phone
	m.Company = c.Company
	m.Address = addressColumns(c.Address)
	m.BillingAddress = addressColumns(c.BillingAddress)
	m.TaxID = c.TaxID
	m.PaymentTerms = c.PaymentTerms
	m.CreditLimit = decimal.NullDecimal{}
	if c.CreditLimit != nil {
		m.CreditLimit = decimal.NewNullDecimal(*c.CreditLimit)
	}
	m.Notes = c.Notes
	m.IsActive = c.IsActive
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

// VendorModel is the persistence model for the Vendor domain entity.
type VendorModel struct {
	BaseModel
	Company       string         `gorm:"type:varchar(255);not null"`
	ContactName   string         `gorm:"type:varchar(255)"`
	Email         string         `gorm:"type:varchar(255);not null"`
	Phone         string         `gorm:"type:varchar(50)"`
	Address       AddressColumns `gorm:"embedded"`
	TaxID         string         `gorm:"type:varchar(100)"`
	PaymentTerms  string         `gorm:"type:varchar(50);not null;default:'net30'"`
	Category      string         `gorm:"type:varchar(50);not null;default:'other'"`
	AccountNumber string         `gorm:"type:varchar(100)"`
	Notes         string         `gorm:"type:text"`
	IsActive      bool           `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (VendorModel) TableName() string {
	return "vendors"
}

// ToDomain converts the persistence model to a domain Vendor entity.
func (m *VendorModel) ToDomain() *partner.Vendor {
	return &partner.Vendor{
		BaseEntity:    m.BaseModel.ToDomain(),
		Company:       m.Company,
		ContactName:   m.ContactName,
		Email:         m.Email,
		Phone:         m.Phone,
		Address:       m.Address.toDomain(),
		TaxID:         m.TaxID,
		PaymentTerms:  m.PaymentTerms,
		Category:      m.Category,
		AccountNumber: m.AccountNumber,
		Notes:         m.Notes,
		IsActive:      m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Vendor entity.
func (m *VendorModel) FromDomain(v *partner.Vendor) {
	m.FromDomainBaseEntity(v.BaseEntity)
	m.Company = v.Company
	m.ContactName = v.ContactName
	m.Email = v.Email
	m.Phone = v.Phone
	m.Address = addressColumns(v.Address)
	m.TaxID = v.TaxID
	m.PaymentTerms = v.PaymentTerms
	m.Category = v.Category
	m.AccountNumber = v.AccountNumber
	m.Notes = v.Notes
	m.IsActive = v.IsActive
}

// VendorModelFromDomain creates a new persistence model from a domain Vendor entity.
func VendorModelFromDomain(v *partner.Vendor) *VendorModel {
	m := &VendorModel{}
	m.FromDomain(v)
	return m
}

func customerSummary(m *CustomerModel) *partner.Summary {
	if m == nil || m.ID == 0 {
		return nil
	}
	s := m.ToDomain().Summary()
	return &s
}

func vendorSummary(m *VendorModel) *partner.Summary {
	if m == nil || m.ID == 0 {
		return nil
	}
	s := m.ToDomain().Summary()
	return &s
}
