package models

import (
	"github.com/ledgerflow/backend/internal/domain/settings"
	"github.com/shopspring/decimal"
)

// CompanyAddressColumns is a company address block flattened into its row
type CompanyAddressColumns struct {
	Address1   string `gorm:"type:varchar(255)"`
	Address2   string `gorm:"type:varchar(255)"`
	City       string `gorm:"type:varchar(100)"`
	State      string `gorm:"type:varchar(100)"`
	PostalCode string `gorm:"type:varchar(50)"`
	Country    string `gorm:"type:varchar(100)"`
}

// CompanyModel is the persistence model for the company profile singleton
type CompanyModel struct {
	BaseModel
	Name         string                `gorm:"type:varchar(255);not null"`
	ContactEmail string                `gorm:"type:varchar(255)"`
	CompanyPhone string                `gorm:"type:varchar(50)"`
	Mailing      CompanyAddressColumns `gorm:"embedded;embeddedPrefix:mailing_"`
	Physical     CompanyAddressColumns `gorm:"embedded;embeddedPrefix:physical_"`
}

// TableName returns the table name for GORM
func (CompanyModel) TableName() string {
	return "companies"
}

// ToDomain converts the persistence model to a domain Company
func (m *CompanyModel) ToDomain() *settings.Company {
	return &settings.Company{
		BaseEntity:   m.BaseModel.ToDomain(),
		Name:         m.Name,
		ContactEmail: m.ContactEmail,
		CompanyPhone: m.CompanyPhone,
		Mailing:      settings.CompanyAddress(m.Mailing),
		Physical:     settings.CompanyAddress(m.Physical),
	}
}

// FromDomain populates the persistence model from a domain Company
func (m *CompanyModel) FromDomain(c *settings.Company) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.ContactEmail = c.ContactEmail
	m.CompanyPhone = c.CompanyPhone
	m.Mailing = CompanyAddressColumns(c.Mailing)
	m.Physical = CompanyAddressColumns(c.Physical)
}

// TaxSettingsModel is the persistence model for the tax settings singleton.
// Named rates live in tax_rates ordered by position.
type TaxSettingsModel struct {
	BaseModel
	EntityType     string          `gorm:"type:varchar(50);not null;default:'llc'"`
	TaxID          string          `gorm:"type:varchar(100)"`
	Country        string          `gorm:"type:varchar(100)"`
	Region         string          `gorm:"type:varchar(100)"`
	DefaultTaxRate decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Rates          []TaxRateModel  `gorm:"foreignKey:TaxSettingsID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (TaxSettingsModel) TableName() string {
	return "tax_settings"
}

// ToDomain converts the persistence model to a domain Tax. Rates must be
// loaded in position order.
func (m *TaxSettingsModel) ToDomain() *settings.Tax {
	t := &settings.Tax{
		BaseEntity: m.BaseModel.ToDomain(),
		Org: settings.TaxOrg{
			EntityType: m.EntityType,
			TaxID:      m.TaxID,
			Country:    m.Country,
			Region:     m.Region,
		},
		DefaultTaxRate: m.DefaultTaxRate,
	}
	rates := make([]settings.TaxRate, 0, len(m.Rates))
	for _, r := range m.Rates {
		rates = append(rates, settings.TaxRate{Name: r.Name, Rate: r.Rate, Compound: r.Compound})
	}
	t.Rates = rates
	return t
}

// FromDomain populates the persistence model from a domain Tax
func (m *TaxSettingsModel) FromDomain(t *settings.Tax) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.EntityType = t.Org.EntityType
	m.TaxID = t.Org.TaxID
	m.Country = t.Org.Country
	m.Region = t.Org.Region
	m.DefaultTaxRate = t.DefaultTaxRate
	m.Rates = make([]TaxRateModel, 0, len(t.Rates))
	for i, r := range t.Rates {
		m.Rates = append(m.Rates, TaxRateModel{
			TaxSettingsID: t.ID,
			Position:      i + 1,
			Name:          r.Name,
			Rate:          r.Rate,
			Compound:      r.Compound,
		})
	}
}

// TaxRateModel is one named tax rate
type TaxRateModel struct {
	ID            uint            `gorm:"primaryKey"`
	TaxSettingsID uint            `gorm:"not null;uniqueIndex:idx_tax_rates_position,priority:1"`
	Position      int             `gorm:"not null;uniqueIndex:idx_tax_rates_position,priority:2"`
	Name          string          `gorm:"type:varchar(100)"`
	Rate          decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Compound      bool            `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (TaxRateModel) TableName() string {
	return "tax_rates"
}

// NotificationSettingsModel is the persistence model for notification preferences
type NotificationSettingsModel struct {
	BaseModel
	EnableEmail  bool   `gorm:"not null;default:false"`
	EmailAddress string `gorm:"type:varchar(255)"`
	EnableSMS    bool   `gorm:"column:enable_sms;not null;default:false"`
	PhoneNumber  string `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (NotificationSettingsModel) TableName() string {
	return "notification_settings"
}

// ToDomain converts the persistence model to a domain Notification
func (m *NotificationSettingsModel) ToDomain() *settings.Notification {
	return &settings.Notification{
		BaseEntity:   m.BaseModel.ToDomain(),
		EnableEmail:  m.EnableEmail,
		EmailAddress: m.EmailAddress,
		EnableSMS:    m.EnableSMS,
		PhoneNumber:  m.PhoneNumber,
	}
}

// FromDomain populates the persistence model from a domain Notification
func (m *NotificationSettingsModel) FromDomain(n *settings.Notification) {
	m.FromDomainBaseEntity(n.BaseEntity)
	m.EnableEmail = n.EnableEmail
	m.EmailAddress = n.EmailAddress
	m.EnableSMS = n.EnableSMS
	m.PhoneNumber = n.PhoneNumber
}

// SecuritySettingsModel is the persistence model for the security singleton.
// A NULL password_hash means no password has been configured.
type SecuritySettingsModel struct {
	BaseModel
	PasswordHash    *string `gorm:"type:varchar(255)"`
	Enable2FA       bool    `gorm:"column:enable_2fa;not null;default:false"`
	TwoFactorMethod string  `gorm:"type:varchar(10);not null;default:'email'"`
}

// TableName returns the table name for GORM
func (SecuritySettingsModel) TableName() string {
	return "security_settings"
}

// ToDomain converts the persistence model to a domain Security
func (m *SecuritySettingsModel) ToDomain() *settings.Security {
	s := &settings.Security{
		BaseEntity:      m.BaseModel.ToDomain(),
		Enable2FA:       m.Enable2FA,
		TwoFactorMethod: settings.NormalizeTwoFactorMethod(m.TwoFactorMethod),
	}
	if m.PasswordHash != nil {
		s.PasswordHash = *m.PasswordHash
	}
	return s
}

// FromDomain populates the persistence model from a domain Security
func (m *SecuritySettingsModel) FromDomain(s *settings.Security) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.PasswordHash = nil
	if s.PasswordHash != "" {
		hash := s.PasswordHash
		m.PasswordHash = &hash
	}
	m.Enable2FA = s.Enable2FA
	m.TwoFactorMethod = string(s.TwoFactorMethod)
}
