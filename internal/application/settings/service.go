// Package settings implements reading and upserting the company profile and
// the tax and notification settings.
package settings

import (
	"context"

	"github.com/ledgerflow/backend/internal/domain/settings"
	"go.uber.org/zap"
)

// Service reads and upserts the configuration singletons. Getters return
// nil when the row has never been written.
type Service struct {
	companyRepo      settings.CompanyRepository
	taxRepo          settings.TaxRepository
	notificationRepo settings.NotificationRepository
	logger           *zap.Logger
}

// NewService creates a new settings Service
func NewService(repos settings.Repositories, logger *zap.Logger) *Service {
	return &Service{
		companyRepo:      repos.Company,
		taxRepo:          repos.Tax,
		notificationRepo: repos.Notification,
		logger:           logger.Named("settings_service"),
	}
}

// Company returns the company profile
func (s *Service) Company(ctx context.Context) (*settings.Company, error) {
	return s.companyRepo.Get(ctx)
}

// SaveCompany overwrites the company profile, creating it on first use
func (s *Service) SaveCompany(ctx context.Context, input settings.Company) (uint, error) {
	company, err := s.companyRepo.GetOrCreate(ctx, &settings.Company{})
	if err != nil {
		return 0, err
	}
	company.Name = input.Name
	company.ContactEmail = input.ContactEmail
	company.CompanyPhone = input.CompanyPhone
	company.Mailing = input.Mailing
	company.Physical = input.Physical
	if err := s.companyRepo.Save(ctx, company); err != nil {
		return 0, err
	}

	s.logger.Info("Company profile saved", zap.Uint("company_id", company.ID))
	return company.ID, nil
}

// Tax returns the tax settings
func (s *Service) Tax(ctx context.Context) (*settings.Tax, error) {
	return s.taxRepo.Get(ctx)
}

// SaveTax overwrites the tax settings. The rate list is replaced and may hold
// at most settings.MaxTaxRates entries.
func (s *Service) SaveTax(ctx context.Context, input settings.Tax) (uint, error) {
	tax, err := s.taxRepo.GetOrCreate(ctx, &settings.Tax{})
	if err != nil {
		return 0, err
	}
	tax.SetOrg(input.Org)
	tax.DefaultTaxRate = input.DefaultTaxRate
	if err := tax.SetRates(input.Rates); err != nil {
		return 0, err
	}
	if err := s.taxRepo.Save(ctx, tax); err != nil {
		return 0, err
	}

	s.logger.Info("Tax settings saved", zap.Uint("tax_settings_id", tax.ID), zap.Int("rates", len(tax.Rates)))
	return tax.ID, nil
}

// Notification returns the notification settings
func (s *Service) Notification(ctx context.Context) (*settings.Notification, error) {
	return s.notificationRepo.Get(ctx)
}

// SaveNotification overwrites the notification settings
func (s *Service) SaveNotification(ctx context.Context, input settings.Notification) (uint, error) {
	n, err := s.notificationRepo.GetOrCreate(ctx, &settings.Notification{})
	if err != nil {
		return 0, err
	}
	n.EnableEmail = input.EnableEmail
	n.EmailAddress = input.EmailAddress
	n.EnableSMS = input.EnableSMS
	n.PhoneNumber = input.PhoneNumber
	if err := s.notificationRepo.Save(ctx, n); err != nil {
		return 0, err
	}
	return n.ID, nil
}
