package models

import (
	"time"

	"github.com/ledgerflow/backend/internal/domain/shared"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// PrimaryKey returns the row id
func (m *BaseModel) PrimaryKey() uint {
	return m.ID
}

// SetPrimaryKey sets the row id
func (m *BaseModel) SetPrimaryKey(id uint) {
	m.ID = id
}

// All lists every model in dependency order, for AutoMigrate
func All() []any {
	return []any{
		&CustomerModel{},
		&VendorModel{},
		&InvoiceModel{},
		&InvoiceItemModel{},
		&ExpenseModel{},
		&PaymentModel{},
		&CompanyModel{},
		&TaxSettingsModel{},
		&TaxRateModel{},
		&NotificationSettingsModel{},
		&SecuritySettingsModel{},
	}
}
