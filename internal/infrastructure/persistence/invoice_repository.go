package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/ledgerflow/backend/internal/domain/invoicing"
	"github.com/ledgerflow/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements invoicing.InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

func withInvoiceDetails(db *gorm.DB) *gorm.DB {
	return db.Preload("Customer").Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	})
}

// FindByID loads an invoice with its customer and line items
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uint) (*invoicing.Invoice, error) {
	return r.load(r.db.WithContext(ctx), id)
}

func (r *GormInvoiceRepository) load(db *gorm.DB, id uint) (*invoicing.Invoice, error) {
	var model models.InvoiceModel
	if err := withInvoiceDetails(db).First(&model, id).Error; err != nil {
		return nil, translateNotFound(err, invoicing.ErrNotFound)
	}
	return model.ToDomain(), nil
}

// FindAll returns every invoice, newest id first
func (r *GormInvoiceRepository) FindAll(ctx context.Context) ([]invoicing.Invoice, error) {
	var rows []models.InvoiceModel
	if err := withInvoiceDetails(r.db.WithContext(ctx)).Order("id DESC").Find(&rows).Error; err != nil {
		return nil, wrap("list invoices", err)
	}
	invoices := make([]invoicing.Invoice, len(rows))
	for i := range rows {
		invoices[i] = *rows[i].ToDomain()
	}
	return invoices, nil
}

// ExistsByID reports whether an invoice with the id exists
func (r *GormInvoiceRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.InvoiceModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, wrap("check invoice exists", err)
	}
	return count > 0, nil
}

// Create inserts the invoice with its line items in one transaction and
// reloads it with the customer summary.
func (r *GormInvoiceRepository) Create(ctx context.Context, inv *invoicing.Invoice) error {
	model := models.InvoiceModelFromDomain(inv)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Customer").Create(model).Error; err != nil {
			return translateDuplicate(err, "create invoice")
		}
		reloaded, err := r.load(tx, model.ID)
		if err != nil {
			return err
		}
		*inv = *reloaded
		return nil
	})
}

// Update rewrites the invoice row and replaces its line items. Any failure,
// including a taken invoice number, rolls back to the prior state.
func (r *GormInvoiceRepository) Update(ctx context.Context, inv *invoicing.Invoice) error {
	model := models.InvoiceModelFromDomain(inv)
	model.UpdatedAt = time.Now()
	items := model.Items
	model.Items = nil

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.InvoiceModel{BaseModel: models.BaseModel{ID: inv.ID}}).
			Select("*").Omit("id", "created_at", "Customer", "Items").
			Updates(model)
		if result.Error != nil {
			return translateDuplicate(result.Error, "update invoice")
		}
		if result.RowsAffected == 0 {
			return invoicing.ErrNotFound
		}

		if err := tx.Where("invoice_id = ?", inv.ID).Delete(&models.InvoiceItemModel{}).Error; err != nil {
			return wrap("delete invoice items", err)
		}
		if len(items) > 0 {
			for i := range items {
				items[i].InvoiceID = inv.ID
			}
			if err := tx.Create(&items).Error; err != nil {
				return wrap("insert invoice items", err)
			}
		}

		reloaded, err := r.load(tx, inv.ID)
		if err != nil {
			return err
		}
		*inv = *reloaded
		return nil
	})
}

// Delete removes an invoice with its line items and detaches its payments
func (r *GormInvoiceRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.InvoiceModel{}, id).Error; err != nil {
			return translateNotFound(err, invoicing.ErrNotFound)
		}
		if err := detach(tx, "invoice_id", id, &models.PaymentModel{}); err != nil {
			return err
		}
		if err := tx.Where("invoice_id = ?", id).Delete(&models.InvoiceItemModel{}).Error; err != nil {
			return wrap("delete invoice items", err)
		}
		return wrap("delete invoice", tx.Delete(&models.InvoiceModel{}, id).Error)
	})
}

func translateDuplicate(err error, op string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return invoicing.ErrDuplicateNumber
	}
	return wrap(op, err)
}

var _ invoicing.InvoiceRepository = (*GormInvoiceRepository)(nil)
