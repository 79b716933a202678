package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ledgerflow/backend/internal/domain/invoicing"
	"github.com/ledgerflow/backend/internal/domain/partner"
	"github.com/ledgerflow/backend/internal/infrastructure/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newTestDatabase opens a migrated in-memory sqlite database
func newTestDatabase(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(&config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"}, nil)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// newMockGormDB creates a gorm handle over sqlmock with the postgres dialector
func newMockGormDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	return openMockGormDB(t, mockDB, mock)
}

func openMockGormDB(t *testing.T, mockDB *sql.DB, mock sqlmock.Sqlmock) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)
	return gormDB, mock, mockDB
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) *partner.Customer {
	t.Helper()
	c, err := partner.NewCustomer(partner.CustomerDraft{Name: name, Email: name + "@example.com", Company: name + " Ltd"})
	require.NoError(t, err)
	require.NoError(t, NewGormCustomerRepository(db).Create(context.Background(), c))
	return c
}

func seedVendor(t *testing.T, db *gorm.DB, company string) *partner.Vendor {
	t.Helper()
	v, err := partner.NewVendor(partner.VendorDraft{Company: company, ContactName: "Pat", Email: "ap@" + company + ".test"})
	require.NoError(t, err)
	require.NoError(t, NewGormVendorRepository(db).Create(context.Background(), v))
	return v
}

func seedInvoice(t *testing.T, db *gorm.DB, number string, customerID uint) *invoicing.Invoice {
	t.Helper()
	inv, err := invoicing.NewInvoice(invoicing.Draft{
		InvoiceNumber: number,
		CustomerID:    customerID,
		Status:        "sent",
		IssueDate:     "2024-03-01",
		TaxRate:       decimal.NewFromInt(10),
		LineItems: []invoicing.LineItemInput{
			{Description: "Consulting", Quantity: decimal.NewFromInt(2), Rate: decimal.NewFromInt(50)},
		},
	})
	require.NoError(t, err)
	require.NoError(t, NewGormInvoiceRepository(db).Create(context.Background(), inv))
	return inv
}

func uintPtr(v uint) *uint { return &v }
