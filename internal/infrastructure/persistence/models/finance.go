package models

import (
	"strings"

	"github.com/ledgerflow/backend/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// ExpenseModel is the persistence model for the Expense domain entity.
type ExpenseModel struct {
	BaseModel
	Type            string          `gorm:"type:varchar(50);not null"`
	Amount          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Date            string          `gorm:"type:varchar(50);not null"`
	PaymentMethod   string          `gorm:"type:varchar(50)"`
	ReferenceNumber string          `gorm:"type:varchar(100)"`
	Description     string          `gorm:"type:text"`
	TaxDeductible   bool            `gorm:"not null;default:false"`
	Tag             string          `gorm:"type:varchar(255)"`
	VendorID        *uint           `gorm:"index"`
	CustomerID      *uint           `gorm:"index"`
	Vendor          *VendorModel    `gorm:"foreignKey:VendorID;constraint:OnDelete:SET NULL"`
	Customer        *CustomerModel  `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for GORM
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToDomain converts the persistence model to a domain Expense
func (m *ExpenseModel) ToDomain() *finance.Expense {
	return &finance.Expense{
		BaseEntity:      m.BaseModel.ToDomain(),
		Type:            m.Type,
		Amount:          m.Amount,
		Date:            m.Date,
		PaymentMethod:   m.PaymentMethod,
		ReferenceNumber: m.ReferenceNumber,
		Description:     m.Description,
		TaxDeductible:   m.TaxDeductible,
		Tag:             m.Tag,
		VendorID:        m.VendorID,
		CustomerID:      m.CustomerID,
		Vendor:          vendorSummary(m.Vendor),
		Customer:        customerSummary(m.Customer),
	}
}

// FromDomain populates the persistence model from a domain Expense
func (m *ExpenseModel) FromDomain(e *finance.Expense) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.Type = e.Type
	m.Amount = e.Amount
	m.Date = e.Date
	m.PaymentMethod = e.PaymentMethod
	m.ReferenceNumber = e.ReferenceNumber
	m.Description = e.Description
	m.TaxDeductible = e.TaxDeductible
	m.Tag = e.Tag
	m.VendorID = e.VendorID
	m.CustomerID = e.CustomerID
}

// ExpenseModelFromDomain creates a new persistence model from a domain Expense
func ExpenseModelFromDomain(e *finance.Expense) *ExpenseModel {
	m := &ExpenseModel{}
	m.FromDomain(e)
	return m
}

// PaymentModel is the persistence model for the Payment domain entity.
type PaymentModel struct {
	BaseModel
	Amount          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Date            string          `gorm:"type:varchar(50);not null"`
	PaymentMethod   string          `gorm:"type:varchar(50)"`
	ReferenceNumber string          `gorm:"type:varchar(100)"`
	Notes           string          `gorm:"type:text"`
	Status          string          `gorm:"type:varchar(20);not null;default:'completed'"`
	InvoiceID       *uint           `gorm:"index"`
	VendorID        *uint           `gorm:"index"`
	CustomerID      *uint           `gorm:"index"`
	Invoice         *InvoiceModel   `gorm:"foreignKey:InvoiceID;constraint:OnDelete:SET NULL"`
	Vendor          *VendorModel    `gorm:"foreignKey:VendorID;constraint:OnDelete:SET NULL"`
	Customer        *CustomerModel  `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment. The invoice
// summary needs Invoice.Customer preloaded to carry a customer name.
func (m *PaymentModel) ToDomain() *finance.Payment {
	p := &finance.Payment{
		BaseEntity:      m.BaseModel.ToDomain(),
		Amount:          m.Amount,
		Date:            m.Date,
		PaymentMethod:   m.PaymentMethod,
		ReferenceNumber: m.ReferenceNumber,
		Notes:           m.Notes,
		Status:          m.Status,
		InvoiceID:       m.InvoiceID,
		VendorID:        m.VendorID,
		CustomerID:      m.CustomerID,
		Vendor:          vendorSummary(m.Vendor),
		Customer:        customerSummary(m.Customer),
	}
	if m.Invoice != nil && m.Invoice.ID != 0 {
		p.Invoice = &finance.InvoiceSummary{
			ID:            m.Invoice.ID,
			InvoiceNumber: m.Invoice.InvoiceNumber,
			Status:        m.Invoice.Status,
			Total:         m.Invoice.Total,
		}
		if c := m.Invoice.Customer; c != nil {
			p.Invoice.CustomerName = strings.TrimSpace(c.Name)
			if p.Invoice.CustomerName == "" {
				p.Invoice.CustomerName = strings.TrimSpace(c.Company)
			}
		}
	}
	return p
}

// FromDomain populates the persistence model from a domain Payment
func (m *PaymentModel) FromDomain(p *finance.Payment) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Amount = p.Amount
	m.Date = p.Date
	m.PaymentMethod = p.PaymentMethod
	m.ReferenceNumber = p.ReferenceNumber
	m.Notes = p.Notes
	m.Status = p.Status
	m.InvoiceID = p.InvoiceID
	m.VendorID = p.VendorID
	m.CustomerID = p.CustomerID
}

// PaymentModelFromDomain creates a new persistence model from a domain Payment
func PaymentModelFromDomain(p *finance.Payment) *PaymentModel {
	m := &PaymentModel{}
	m.FromDomain(p)
	return m
}
