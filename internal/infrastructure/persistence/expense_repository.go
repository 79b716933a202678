package persistence

import (
	"context"
	"time"

	"github.com/ledgerflow/backend/internal/domain/finance"
	"github.com/ledgerflow/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormExpenseRepository implements finance.ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

func withExpenseParties(db *gorm.DB) *gorm.DB {
	return db.Preload("Vendor").Preload("Customer")
}

// FindByID loads an expense with its vendor and customer summaries
func (r *GormExpenseRepository) FindByID(ctx context.Context, id uint) (*finance.Expense, error) {
	return r.load(r.db.WithContext(ctx), id)
}

func (r *GormExpenseRepository) load(db *gorm.DB, id uint) (*finance.Expense, error) {
	var model models.ExpenseModel
	if err := withExpenseParties(db).First(&model, id).Error; err != nil {
		return nil, translateNotFound(err, finance.ErrExpenseNotFound)
	}
	return model.ToDomain(), nil
}

// FindAll returns every expense in id order
func (r *GormExpenseRepository) FindAll(ctx context.Context) ([]finance.Expense, error) {
	var rows []models.ExpenseModel
	if err := withExpenseParties(r.db.WithContext(ctx)).Order("id").Find(&rows).Error; err != nil {
		return nil, wrap("list expenses", err)
	}
	expenses := make([]finance.Expense, len(rows))
	for i := range rows {
		expenses[i] = *rows[i].ToDomain()
	}
	return expenses, nil
}

// Create inserts an expense and reloads its party summaries
func (r *GormExpenseRepository) Create(ctx context.Context, e *finance.Expense) error {
	model := models.ExpenseModelFromDomain(e)
	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(model).Error; err != nil {
		return wrap("create expense", err)
	}
	reloaded, err := r.load(db, model.ID)
	if err != nil {
		return err
	}
	*e = *reloaded
	return nil
}

// Update overwrites every column of an existing expense
func (r *GormExpenseRepository) Update(ctx context.Context, e *finance.Expense) error {
	model := models.ExpenseModelFromDomain(e)
	model.UpdatedAt = time.Now()
	db := r.db.WithContext(ctx)
	result := db.Model(&models.ExpenseModel{BaseModel: models.BaseModel{ID: e.ID}}).
		Select("*").Omit("id", "created_at", "Vendor", "Customer").
		Updates(model)
	if err := requireRow(result, finance.ErrExpenseNotFound); err != nil {
		return err
	}
	reloaded, err := r.load(db, e.ID)
	if err != nil {
		return err
	}
	*e = *reloaded
	return nil
}

// Delete removes an expense
func (r *GormExpenseRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ExpenseModel{}, id)
	return requireRow(result, finance.ErrExpenseNotFound)
}

var _ finance.ExpenseRepository = (*GormExpenseRepository)(nil)
