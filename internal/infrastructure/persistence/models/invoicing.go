package models

import (
	"github.com/ledgerflow/backend/internal/domain/invoicing"
	"github.com/shopspring/decimal"
)

// InvoiceModel is the persistence model for the Invoice aggregate root.
type InvoiceModel struct {
	BaseModel
	InvoiceNumber string             `gorm:"type:varchar(50);not null;uniqueIndex:idx_invoices_invoice_number"`
	CustomerID    uint               `gorm:"not null;index"`
	Customer      *CustomerModel     `gorm:"foreignKey:CustomerID"`
	Status        string             `gorm:"type:varchar(20);not null;default:'draft'"`
	IssueDate     string             `gorm:"type:varchar(50)"`
	DueDate       string             `gorm:"type:varchar(50)"`
	PaymentTerms  string             `gorm:"type:varchar(50)"`
	Notes         string             `gorm:"type:text"`
	Terms         string             `gorm:"type:text"`
	TaxRate       decimal.Decimal    `gorm:"type:decimal(18,4);not null;default:0"`
	Subtotal      decimal.Decimal    `gorm:"type:decimal(18,4);not null;default:0"`
	TaxTotal      decimal.Decimal    `gorm:"type:decimal(18,4);not null;default:0"`
	DiscountTotal decimal.Decimal    `gorm:"type:decimal(18,4);not null;default:0"`
	Total         decimal.Decimal    `gorm:"type:decimal(18,4);not null;default:0"`
	Items         []InvoiceItemModel `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice. The customer
// summary is filled when the Customer association was preloaded.
func (m *InvoiceModel) ToDomain() *invoicing.Invoice {
	inv := &invoicing.Invoice{
		BaseEntity:    m.BaseModel.ToDomain(),
		InvoiceNumber: m.InvoiceNumber,
		CustomerID:    m.CustomerID,
		Status:        invoicing.Status(m.Status),
		IssueDate:     m.IssueDate,
		DueDate:       m.DueDate,
		PaymentTerms:  m.PaymentTerms,
		Notes:         m.Notes,
		Terms:         m.Terms,
		TaxRate:       m.TaxRate,
		Totals: invoicing.Totals{
			Subtotal:      m.Subtotal,
			TaxTotal:      m.TaxTotal,
			DiscountTotal: m.DiscountTotal,
			Total:         m.Total,
		},
		Items: make([]invoicing.LineItem, 0, len(m.Items)),
	}
	if m.Customer != nil && m.Customer.ID != 0 {
		inv.Customer = &invoicing.CustomerSummary{
			ID:      m.Customer.ID,
			Name:    m.Customer.Name,
			Email:   m.Customer.Email,
			Company: m.Customer.Company,
		}
	}
	for _, item := range m.Items {
		inv.Items = append(inv.Items, item.ToDomain())
	}
	return inv
}

// FromDomain populates the persistence model from a domain Invoice. Items
// are copied without their ids; the repository rewrites them wholesale.
func (m *InvoiceModel) FromDomain(inv *invoicing.Invoice) {
	m.FromDomainBaseEntity(inv.BaseEntity)
	m.InvoiceNumber = inv.InvoiceNumber
	m.CustomerID = inv.CustomerID
	m.Status = string(inv.Status)
	m.IssueDate = inv.IssueDate
	m.DueDate = inv.DueDate
	m.PaymentTerms = inv.PaymentTerms
	m.Notes = inv.Notes
	m.Terms = inv.Terms
	m.TaxRate = inv.TaxRate
	m.Subtotal = inv.Subtotal
	m.TaxTotal = inv.TaxTotal
	m.DiscountTotal = inv.DiscountTotal
	m.Total = inv.Total
	m.Items = make([]InvoiceItemModel, 0, len(inv.Items))
	for _, item := range inv.Items {
		m.Items = append(m.Items, InvoiceItemModel{
			InvoiceID:   inv.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
		})
	}
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice.
func InvoiceModelFromDomain(inv *invoicing.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(inv)
	return m
}

// InvoiceItemModel is one persisted line item
type InvoiceItemModel struct {
	ID          uint            `gorm:"primaryKey"`
	InvoiceID   uint            `gorm:"not null;index"`
	Description string          `gorm:"type:varchar(255);not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Rate        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (InvoiceItemModel) TableName() string {
	return "invoice_items"
}

// ToDomain converts the persistence model to a domain LineItem
func (m InvoiceItemModel) ToDomain() invoicing.LineItem {
	return invoicing.LineItem{
		ID:          m.ID,
		InvoiceID:   m.InvoiceID,
		Description: m.Description,
		Quantity:    m.Quantity,
		Rate:        m.Rate,
	}
}
