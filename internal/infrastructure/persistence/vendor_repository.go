package persistence

import (
	"context"
	"time"

	"github.com/ledgerflow/backend/internal/domain/partner"
	"github.com/ledgerflow/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormVendorRepository implements partner.VendorRepository using GORM
type GormVendorRepository struct {
	db *gorm.DB
}

// NewGormVendorRepository creates a new GormVendorRepository
func NewGormVendorRepository(db *gorm.DB) *GormVendorRepository {
	return &GormVendorRepository{db: db}
}

// FindByID finds a vendor by its ID
func (r *GormVendorRepository) FindByID(ctx context.Context, id uint) (*partner.Vendor, error) {
	var model models.VendorModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		return nil, translateNotFound(err, partner.ErrVendorNotFound)
	}
	return model.ToDomain(), nil
}

// FindAll returns every vendor in id order
func (r *GormVendorRepository) FindAll(ctx context.Context) ([]partner.Vendor, error) {
	var rows []models.VendorModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, wrap("list vendors", err)
	}
	vendors := make([]partner.Vendor, len(rows))
	for i := range rows {
		vendors[i] = *rows[i].ToDomain()
	}
	return vendors, nil
}

// Create inserts a vendor
func (r *GormVendorRepository) Create(ctx context.Context, v *partner.Vendor) error {
	model := models.VendorModelFromDomain(v)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return wrap("create vendor", err)
	}
	v.BaseEntity = model.BaseModel.ToDomain()
	return nil
}

// Update overwrites every column of an existing vendor
func (r *GormVendorRepository) Update(ctx context.Context, v *partner.Vendor) error {
	model := models.VendorModelFromDomain(v)
	model.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.VendorModel{BaseModel: models.BaseModel{ID: v.ID}}).
		Select("*").Omit("id", "created_at").
		Updates(model)
	if err := requireRow(result, partner.ErrVendorNotFound); err != nil {
		return err
	}
	v.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete removes a vendor after detaching its expenses and payments
func (r *GormVendorRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.VendorModel{}, id).Error; err != nil {
			return translateNotFound(err, partner.ErrVendorNotFound)
		}
		if err := detach(tx, "vendor_id", id, &models.ExpenseModel{}, &models.PaymentModel{}); err != nil {
			return err
		}
		return wrap("delete vendor", tx.Delete(&models.VendorModel{}, id).Error)
	})
}

var _ partner.VendorRepository = (*GormVendorRepository)(nil)
