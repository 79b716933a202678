package persistence

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ledgerflow/backend/internal/domain/finance"
	"github.com/ledgerflow/backend/internal/domain/invoicing"
	"github.com/ledgerflow/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormInvoiceRepository_Create(t *testing.T) {
	db := newTestDatabase(t)
	c := seedCustomer(t, db.DB, "acme")

	inv := seedInvoice(t, db.DB, "INV-1", c.ID)

	require.NotZero(t, inv.ID)
	require.NotNil(t, inv.Customer)
	assert.Equal(t, "acme", inv.Customer.Name)
	assert.Equal(t, "acme Ltd", inv.Customer.Company)
	require.Len(t, inv.Items, 1)
	assert.Equal(t, inv.ID, inv.Items[0].InvoiceID)
	assert.True(t, decimal.NewFromInt(100).Equal(inv.Subtotal))
	assert.True(t, decimal.NewFromInt(110).Equal(inv.Total))
	assert.Equal(t, invoicing.StatusSent, inv.Status)
}

func TestGormInvoiceRepository_DuplicateNumber(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	repo := NewGormInvoiceRepository(db.DB)
	c := seedCustomer(t, db.DB, "acme")
	first := seedInvoice(t, db.DB, "INV-1", c.ID)
	second := seedInvoice(t, db.DB, "INV-2", c.ID)

	t.Run("on create", func(t *testing.T) {
		dup, err := invoicing.NewInvoice(invoicing.Draft{InvoiceNumber: "INV-1", CustomerID: c.ID})
		require.NoError(t, err)

		err = repo.Create(ctx, dup)
		assert.ErrorIs(t, err, invoicing.ErrDuplicateNumber)
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
	})

	t.Run("on update leaves the prior invoice intact", func(t *testing.T) {
		current, err := repo.FindByID(ctx, second.ID)
		require.NoError(t, err)
		require.NoError(t, current.Apply(invoicing.Draft{
			InvoiceNumber: first.InvoiceNumber,
			CustomerID:    c.ID,
			LineItems:     []invoicing.LineItemInput{{Description: "Other", Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(1)}},
		}))

		err = repo.Update(ctx, current)
		assert.ErrorIs(t, err, invoicing.ErrDuplicateNumber)

		stored, err := repo.FindByID(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, "INV-2", stored.InvoiceNumber)
		require.Len(t, stored.Items, 1)
		assert.Equal(t, "Consulting", stored.Items[0].Description)
	})
}

func TestGormInvoiceRepository_UpdateReplacesItems(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	repo := NewGormInvoiceRepository(db.DB)
	c := seedCustomer(t, db.DB, "acme")
	inv := seedInvoice(t, db.DB, "INV-1", c.ID)

	require.NoError(t, inv.Apply(invoicing.Draft{
		InvoiceNumber: "INV-1",
		CustomerID:    c.ID,
		Status:        "paid",
		LineItems: []invoicing.LineItemInput{
			{Description: "Design", Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(300)},
			{Description: "  ", Quantity: decimal.NewFromInt(9), Rate: decimal.NewFromInt(9)},
			{Description: "Hosting", Quantity: decimal.NewFromInt(3), Rate: decimal.NewFromInt(10)},
		},
	}))
	require.NoError(t, repo.Update(ctx, inv))

	stored, err := repo.FindByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, invoicing.StatusPaid, stored.Status)
	require.Len(t, stored.Items, 2)
	assert.Equal(t, "Design", stored.Items[0].Description)
	assert.Equal(t, "Hosting", stored.Items[1].Description)
	assert.True(t, decimal.NewFromInt(330).Equal(stored.Total))

	var count int64
	require.NoError(t, db.DB.Table("invoice_items").Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestGormInvoiceRepository_FindAllNewestFirst(t *testing.T) {
	db := newTestDatabase(t)
	c := seedCustomer(t, db.DB, "acme")
	seedInvoice(t, db.DB, "INV-1", c.ID)
	seedInvoice(t, db.DB, "INV-2", c.ID)
	seedInvoice(t, db.DB, "INV-3", c.ID)

	all, err := NewGormInvoiceRepository(db.DB).FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "INV-3", all[0].InvoiceNumber)
	assert.Equal(t, "INV-1", all[2].InvoiceNumber)
	for _, inv := range all {
		assert.NotNil(t, inv.Customer)
		assert.Len(t, inv.Items, 1)
	}
}

func TestGormInvoiceRepository_Delete(t *testing.T) {
	db := newTestDatabase(t)
	ctx := context.Background()
	repo := NewGormInvoiceRepository(db.DB)
	c := seedCustomer(t, db.DB, "acme")
	inv := seedInvoice(t, db.DB, "INV-1", c.ID)

	payments := NewGormPaymentRepository(db.DB)
	p, err := finance.NewPayment(finance.PaymentDraft{
		Amount: decimal.NewFromInt(110), AmountGiven: true, Date: "2024-03-05", InvoiceID: uintPtr(inv.ID),
	})
	require.NoError(t, err)
	require.NoError(t, payments.Create(ctx, p))
	require.NotNil(t, p.Invoice)
	assert.Equal(t, "acme", p.Invoice.CustomerName)

	require.NoError(t, repo.Delete(ctx, inv.ID))

	exists, err := repo.ExistsByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	var items int64
	require.NoError(t, db.DB.Table("invoice_items").Where("invoice_id = ?", inv.ID).Count(&items).Error)
	assert.Zero(t, items)

	detached, err := payments.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, detached.InvoiceID)
	assert.Nil(t, detached.Invoice)

	assert.ErrorIs(t, repo.Delete(ctx, inv.ID), invoicing.ErrNotFound)
}

func TestGormInvoiceRepository_ExistsByID_SQL(t *testing.T) {
	gormDB, mock, mockDB := newMockGormDB(t)
	defer mockDB.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "invoices" WHERE id = $1`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := NewGormInvoiceRepository(gormDB).ExistsByID(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
