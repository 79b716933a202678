package persistence

import (
	"context"

	"github.com/ledgerflow/backend/internal/domain/settings"
	"github.com/ledgerflow/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// settingsRow is a singleton model that converts to and from entity E
type settingsRow[E any, M any] interface {
	singletonRow[M]
	ToDomain() *E
	FromDomain(*E)
}

// singletonRepository adapts a SingletonStore to shared.SingletonRepository
type singletonRepository[E any, M any, P settingsRow[E, M]] struct {
	store *SingletonStore[M, P]
}

func (r *singletonRepository[E, M, P]) Get(ctx context.Context) (*E, error) {
	row, err := r.store.Get(ctx)
	if err != nil || row == nil {
		return nil, err
	}
	return row.ToDomain(), nil
}

func (r *singletonRepository[E, M, P]) GetOrCreate(ctx context.Context, defaults *E) (*E, error) {
	row := P(new(M))
	row.FromDomain(defaults)
	stored, err := r.store.GetOrCreate(ctx, row)
	if err != nil {
		return nil, err
	}
	return stored.ToDomain(), nil
}

func (r *singletonRepository[E, M, P]) Save(ctx context.Context, entity *E) error {
	row := P(new(M))
	row.FromDomain(entity)
	if err := r.store.Save(ctx, row); err != nil {
		return err
	}
	*entity = *row.ToDomain()
	return nil
}

// NewCompanyRepository creates the company profile repository
func NewCompanyRepository(db *gorm.DB) settings.CompanyRepository {
	return &singletonRepository[settings.Company, models.CompanyModel, *models.CompanyModel]{
		store: NewSingletonStore[models.CompanyModel](db, "companies"),
	}
}

// NewNotificationRepository creates the notification settings repository
func NewNotificationRepository(db *gorm.DB) settings.NotificationRepository {
	return &singletonRepository[settings.Notification, models.NotificationSettingsModel, *models.NotificationSettingsModel]{
		store: NewSingletonStore[models.NotificationSettingsModel](db, "notification_settings"),
	}
}

// NewSecurityRepository creates the security settings repository
func NewSecurityRepository(db *gorm.DB) settings.SecurityRepository {
	return &singletonRepository[settings.Security, models.SecuritySettingsModel, *models.SecuritySettingsModel]{
		store: NewSingletonStore[models.SecuritySettingsModel](db, "security_settings"),
	}
}

// NewTaxRepository creates the tax settings repository. Rates are stored in
// tax_rates and replaced wholesale on every save.
func NewTaxRepository(db *gorm.DB) settings.TaxRepository {
	store := NewSingletonStore[models.TaxSettingsModel](db, "tax_settings")
	store.preload = func(db *gorm.DB) *gorm.DB {
		return db.Preload("Rates", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		})
	}
	store.afterSave = replaceTaxRates
	return &singletonRepository[settings.Tax, models.TaxSettingsModel, *models.TaxSettingsModel]{store: store}
}

func replaceTaxRates(tx *gorm.DB, row *models.TaxSettingsModel) error {
	if err := tx.Where("tax_settings_id = ?", row.ID).Delete(&models.TaxRateModel{}).Error; err != nil {
		return wrap("delete tax rates", err)
	}
	if len(row.Rates) == 0 {
		return nil
	}
	for i := range row.Rates {
		row.Rates[i].ID = 0
		row.Rates[i].TaxSettingsID = row.ID
		row.Rates[i].Position = i + 1
	}
	return wrap("insert tax rates", tx.Create(&row.Rates).Error)
}

// GormSettingsTransactor runs settings writes in one database transaction
type GormSettingsTransactor struct {
	db *gorm.DB
}

// NewGormSettingsTransactor creates a new GormSettingsTransactor
func NewGormSettingsTransactor(db *gorm.DB) *GormSettingsTransactor {
	return &GormSettingsTransactor{db: db}
}

// WithinTransaction implements settings.Transactor
func (t *GormSettingsTransactor) WithinTransaction(ctx context.Context, fn func(repos settings.Repositories) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewSettingsRepositories(tx))
	})
}

// NewSettingsRepositories builds every singleton repository on db
func NewSettingsRepositories(db *gorm.DB) settings.Repositories {
	return settings.Repositories{
		Company:      NewCompanyRepository(db),
		Tax:          NewTaxRepository(db),
		Notification: NewNotificationRepository(db),
		Security:     NewSecurityRepository(db),
	}
}

var _ settings.Transactor = (*GormSettingsTransactor)(nil)
