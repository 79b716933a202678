package persistence

import (
	"context"
	"time"

	"github.com/ledgerflow/backend/internal/domain/finance"
	"github.com/ledgerflow/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPaymentRepository implements finance.PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

func withPaymentLinks(db *gorm.DB) *gorm.DB {
	return db.Preload("Invoice").Preload("Invoice.Customer").Preload("Vendor").Preload("Customer")
}

// FindByID loads a payment with its invoice, vendor and customer summaries
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uint) (*finance.Payment, error) {
	return r.load(r.db.WithContext(ctx), id)
}

func (r *GormPaymentRepository) load(db *gorm.DB, id uint) (*finance.Payment, error) {
	var model models.PaymentModel
	if err := withPaymentLinks(db).First(&model, id).Error; err != nil {
		return nil, translateNotFound(err, finance.ErrPaymentNotFound)
	}
	return model.ToDomain(), nil
}

// FindAll returns every payment in id order
func (r *GormPaymentRepository) FindAll(ctx context.Context) ([]finance.Payment, error) {
	var rows []models.PaymentModel
	if err := withPaymentLinks(r.db.WithContext(ctx)).Order("id").Find(&rows).Error; err != nil {
		return nil, wrap("list payments", err)
	}
	payments := make([]finance.Payment, len(rows))
	for i := range rows {
		payments[i] = *rows[i].ToDomain()
	}
	return payments, nil
}

// Create inserts a payment and reloads its linked summaries
func (r *GormPaymentRepository) Create(ctx context.Context, p *finance.Payment) error {
	model := models.PaymentModelFromDomain(p)
	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(model).Error; err != nil {
		return wrap("create payment", err)
	}
	reloaded, err := r.load(db, model.ID)
	if err != nil {
		return err
	}
	*p = *reloaded
	return nil
}

// Update overwrites every column of an existing payment
func (r *GormPaymentRepository) Update(ctx context.Context, p *finance.Payment) error {
	model := models.PaymentModelFromDomain(p)
	model.UpdatedAt = time.Now()
	db := r.db.WithContext(ctx)
	result := db.Model(&models.PaymentModel{BaseModel: models.BaseModel{ID: p.ID}}).
		Select("*").Omit("id", "created_at", "Invoice", "Vendor", "Customer").
		Updates(model)
	if err := requireRow(result, finance.ErrPaymentNotFound); err != nil {
		return err
	}
	reloaded, err := r.load(db, p.ID)
	if err != nil {
		return err
	}
	*p = *reloaded
	return nil
}

// Delete removes a payment
func (r *GormPaymentRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.PaymentModel{}, id)
	return requireRow(result, finance.ErrPaymentNotFound)
}

var _ finance.PaymentRepository = (*GormPaymentRepository)(nil)
