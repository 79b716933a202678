package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ledgerflow/backend/internal/domain/settings"
	"github.com/ledgerflow/backend/internal/domain/shared"
	"github.com/ledgerflow/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyRepository_Lifecycle(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	repo := NewCompanyRepository(db.DB)

	missing, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, missing)

	created, err := repo.GetOrCreate(ctx, &settings.Company{Name: "Acme"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	again, err := repo.GetOrCreate(ctx, &settings.Company{Name: "Ignored"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	assert.Equal(t, "Acme", again.Name)

	again.Mailing = settings.CompanyAddress{Address1: "1 Main St", City: "Springfield"}
	require.NoError(t, repo.Save(ctx, again))

	stored, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Springfield", stored.Mailing.City)
	assert.Empty(t, stored.Physical.City)
}

func TestSingletonStore_SaveAdoptsExistingRow(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	repo := NewNotificationRepository(db.DB)

	require.NoError(t, repo.Save(ctx, &settings.Notification{EnableEmail: true}))
	second := &settings.Notification{EnableSMS: true, PhoneNumber: "555"}
	require.NoError(t, repo.Save(ctx, second))

	var count int64
	require.NoError(t, db.DB.Model(&models.NotificationSettingsModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	stored, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, stored.ID)
	assert.False(t, stored.EnableEmail)
	assert.True(t, stored.EnableSMS)
}

func TestSingletonStore_Violation(t *testing.T) {
	t.Run("sqlite", func(t *testing.T) {
		db := newTestDatabase(t)
		require.NoError(t, db.DB.Create(&models.CompanyModel{Name: "One"}).Error)
		require.NoError(t, db.DB.Create(&models.CompanyModel{Name: "Two"}).Error)

		_, err := NewCompanyRepository(db.DB).Get(context.Background())
		assert.ErrorIs(t, err, shared.ErrSingletonViolation)
	})

	t.Run("sql shape", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "security_settings" ORDER BY id LIMIT .*`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "enable_2fa", "two_factor_method"}).
				AddRow(1, false, "email").
				AddRow(2, true, "sms"))

		_, err := NewSecurityRepository(gormDB).Get(context.Background())
		assert.ErrorIs(t, err, shared.ErrSingletonViolation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTaxRepository_Rates(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	repo := NewTaxRepository(db.DB)

	tax, err := repo.GetOrCreate(ctx, &settings.Tax{})
	require.NoError(t, err)
	assert.Empty(t, tax.Rates)

	tax.SetOrg(settings.TaxOrg{Country: "US"})
	tax.DefaultTaxRate = decimal.RequireFromString("7.25")
	require.NoError(t, tax.SetRates([]settings.TaxRate{
		{Name: "State", Rate: decimal.NewFromInt(6)},
		{Name: "", Rate: decimal.NewFromInt(1)},
		{Name: "City", Rate: decimal.RequireFromString("1.25"), Compound: true},
	}))
	require.NoError(t, repo.Save(ctx, tax))

	stored, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.DefaultEntityType, stored.Org.EntityType)
	assert.True(t, decimal.RequireFromString("7.25").Equal(stored.DefaultTaxRate))
	require.Len(t, stored.Rates, 3)
	named := stored.NamedRates()
	require.Len(t, named, 2)
	assert.Equal(t, "State", named[0].Name)
	assert.Equal(t, "City", named[1].Name)
	assert.True(t, named[1].Compound)

	require.NoError(t, stored.SetRates([]settings.TaxRate{{Name: "Flat", Rate: decimal.NewFromInt(5)}}))
	require.NoError(t, repo.Save(ctx, stored))

	var count int64
	require.NoError(t, db.DB.Model(&models.TaxRateModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSecurityRepository_PasswordHashRoundTrip(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	repo := NewSecurityRepository(db.DB)

	sec, err := repo.GetOrCreate(ctx, settings.DefaultSecurity())
	require.NoError(t, err)
	assert.False(t, sec.HasPassword())

	sec.PasswordHash = "$2a$04$examplehash"
	require.NoError(t, repo.Save(ctx, sec))

	stored, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, stored.HasPassword())
	assert.Equal(t, settings.TwoFactorEmail, stored.TwoFactorMethod)
}

func TestGormSettingsTransactor_RollsBack(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	tx := NewGormSettingsTransactor(db.DB)

	err := tx.WithinTransaction(ctx, func(repos settings.Repositories) error {
		if _, err := repos.Company.GetOrCreate(ctx, &settings.Company{Name: "Acme"}); err != nil {
			return err
		}
		return settings.ErrPasswordTooShort
	})
	assert.ErrorIs(t, err, settings.ErrPasswordTooShort)

	company, err := NewCompanyRepository(db.DB).Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, company)

	require.NoError(t, tx.WithinTransaction(ctx, func(repos settings.Repositories) error {
		_, err := repos.Company.GetOrCreate(ctx, &settings.Company{Name: "Acme"})
		return err
	}))
	company, err = NewCompanyRepository(db.DB).Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, company)
	assert.Equal(t, "Acme", company.Name)
}
