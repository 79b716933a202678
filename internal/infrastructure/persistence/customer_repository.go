package persistence

import (
	"context"
	"time"

	"github.com/ledgerflow/backend/internal/domain/partner"
	"github.com/ledgerflow/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCustomerRepository implements partner.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uint) (*partner.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		return nil, translateNotFound(err, partner.ErrCustomerNotFound)
	}
	return model.ToDomain(), nil
}

// FindAll returns every customer in id order
func (r *GormCustomerRepository) FindAll(ctx context.Context) ([]partner.Customer, error) {
	var rows []models.CustomerModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, wrap("list customers", err)
	}
	customers := make([]partner.Customer, len(rows))
	for i := range rows {
		customers[i] = *rows[i].ToDomain()
	}
	return customers, nil
}

// Create inserts a customer and sets its id and timestamps
func (r *GormCustomerRepository) Create(ctx context.Context, c *partner.Customer) error {
	model := models.CustomerModelFromDomain(c)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return wrap("create customer", err)
	}
	c.BaseEntity = model.BaseModel.ToDomain()
	return nil
}

// Update overwrites every column of an existing customer
func (r *GormCustomerRepository) Update(ctx context.Context, c *partner.Customer) error {
	model := models.CustomerModelFromDomain(c)
	model.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.CustomerModel{BaseModel: models.BaseModel{ID: c.ID}}).
		Select("*").Omit("id", "created_at").
		Updates(model)
	if err := requireRow(result, partner.ErrCustomerNotFound); err != nil {
		return err
	}
	c.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete removes a customer. A customer with invoices is refused with
// partner.ErrCustomerHasInvoices; expenses and payments referencing it are
// detached in the same transaction.
func (r *GormCustomerRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.CustomerModel{}, id).Error; err != nil {
			return translateNotFound(err, partner.ErrCustomerNotFound)
		}

		var invoices int64
		if err := tx.Model(&models.InvoiceModel{}).Where("customer_id = ?", id).Count(&invoices).Error; err != nil {
			return wrap("count customer invoices", err)
		}
		if invoices > 0 {
			return partner.ErrCustomerHasInvoices
		}

		if err := detach(tx, "customer_id", id, &models.ExpenseModel{}, &models.PaymentModel{}); err != nil {
			return err
		}
		return wrap("delete customer", tx.Delete(&models.CustomerModel{}, id).Error)
	})
}

// detach nulls column on every row of each model that references id
func detach(tx *gorm.DB, column string, id uint, targets ...any) error {
	for _, target := range targets {
		if err := tx.Model(target).Where(column+" = ?", id).Update(column, nil).Error; err != nil {
			return wrap("detach "+column, err)
		}
	}
	return nil
}

var _ partner.CustomerRepository = (*GormCustomerRepository)(nil)
