package finance

import (
	"context"
	"testing"

	"github.com/ledgerflow/backend/internal/domain/finance"
	"github.com/ledgerflow/backend/internal/domain/invoicing"
	"github.com/ledgerflow/backend/internal/domain/partner"
	"github.com/ledgerflow/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func ref(id uint) *uint { return &id }

type fixture struct {
	expenses  *mockRepo[finance.Expense]
	payments  *mockRepo[finance.Payment]
	vendors   *mockRepo[partner.Vendor]
	customers *mockRepo[partner.Customer]
	invoices  *mockInvoiceRepo[invoicing.Invoice]
}

func newFixture() *fixture {
	return &fixture{
		expenses:  new(mockRepo[finance.Expense]),
		payments:  new(mockRepo[finance.Payment]),
		vendors:   new(mockRepo[partner.Vendor]),
		customers: new(mockRepo[partner.Customer]),
		invoices:  new(mockInvoiceRepo[invoicing.Invoice]),
	}
}

func (f *fixture) expenseService() *ExpenseService {
	return NewExpenseService(f.expenses, f.vendors, f.customers, zap.NewNop())
}

func (f *fixture) paymentService() *PaymentService {
	return NewPaymentService(f.payments, f.invoices, f.vendors, f.customers, zap.NewNop())
}

func expenseDraft() finance.ExpenseDraft {
	return finance.ExpenseDraft{
		Type:        "Office",
		Amount:      decimal.NewFromInt(42),
		AmountGiven: true,
		Date:        "2024-03-01",
	}
}

func TestExpenseService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores an expense without references", func(t *testing.T) {
		f := newFixture()
		f.expenses.On("Create", ctx, mock.AnythingOfType("*finance.Expense")).Return(nil)

		e, err := f.expenseService().Create(ctx, expenseDraft())
		require.NoError(t, err)
		assert.Equal(t, "Office", e.Type)
		f.vendors.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("unknown vendor is a validation error", func(t *testing.T) {
		f := newFixture()
		f.vendors.On("FindByID", ctx, uint(3)).Return(nil, partner.ErrVendorNotFound)

		d := expenseDraft()
		d.VendorID = ref(3)
		_, err := f.expenseService().Create(ctx, d)
		assert.ErrorIs(t, err, finance.ErrUnknownVendor)
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
		f.expenses.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown customer is a validation error", func(t *testing.T) {
		f := newFixture()
		f.vendors.On("FindByID", ctx, uint(3)).Return(&partner.Vendor{}, nil)
		f.customers.On("FindByID", ctx, uint(4)).Return(nil, partner.ErrCustomerNotFound)

		d := expenseDraft()
		d.VendorID, d.CustomerID = ref(3), ref(4)
		_, err := f.expenseService().Create(ctx, d)
		require.Error(t, err)
		assert.Equal(t, "Customer not found", err.Error())
	})

	t.Run("zero ids mean no reference", func(t *testing.T) {
		f := newFixture()
		f.expenses.On("Create", ctx, mock.Anything).Return(nil)

		d := expenseDraft()
		d.VendorID = ref(0)
		e, err := f.expenseService().Create(ctx, d)
		require.NoError(t, err)
		assert.Nil(t, e.VendorID)
	})

	t.Run("missing amount", func(t *testing.T) {
		d := expenseDraft()
		d.AmountGiven = false
		_, err := newFixture().expenseService().Create(ctx, d)
		require.Error(t, err)
		assert.Equal(t, "Type, amount and date are required", err.Error())
	})
}

func TestExpenseService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		f := newFixture()
		f.expenses.On("FindByID", ctx, uint(1)).Return(nil, finance.ErrExpenseNotFound)

		_, err := f.expenseService().Update(ctx, 1, expenseDraft())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("non positive amount", func(t *testing.T) {
		f := newFixture()
		f.expenses.On("FindByID", ctx, uint(1)).Return(&finance.Expense{Type: "x"}, nil)

		d := expenseDraft()
		d.Amount = decimal.Zero
		_, err := f.expenseService().Update(ctx, 1, d)
		require.Error(t, err)
		assert.Equal(t, "Amount must be greater than zero", err.Error())
		f.expenses.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("dropping the vendor clears the summary", func(t *testing.T) {
		f := newFixture()
		stored := &finance.Expense{
			BaseEntity: shared.BaseEntity{ID: 1},
			Type:       "x",
			VendorID:   ref(2),
			Vendor:     &partner.Summary{ID: 2, Name: "Paper Co"},
		}
		f.expenses.On("FindByID", ctx, uint(1)).Return(stored, nil)
		f.expenses.On("Update", ctx, stored).Return(nil)

		e, err := f.expenseService().Update(ctx, 1, expenseDraft())
		require.NoError(t, err)
		assert.Nil(t, e.VendorID)
		assert.Nil(t, e.Vendor)
	})
}

func paymentDraft() finance.PaymentDraft {
	return finance.PaymentDraft{
		Amount:      decimal.NewFromInt(110),
		AmountGiven: true,
		Date:        "2024-03-02",
		InvoiceID:   ref(9),
	}
}

func TestPaymentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a payment against an invoice", func(t *testing.T) {
		f := newFixture()
		f.invoices.On("ExistsByID", ctx, uint(9)).Return(true, nil)
		f.payments.On("Create", ctx, mock.AnythingOfType("*finance.Payment")).Return(nil)

		p, err := f.paymentService().Create(ctx, paymentDraft())
		require.NoError(t, err)
		assert.Equal(t, finance.DefaultPaymentStatus, p.Status)
		f.payments.AssertExpectations(t)
	})

	t.Run("unknown invoice is a validation error", func(t *testing.T) {
		f := newFixture()
		f.invoices.On("ExistsByID", ctx, uint(9)).Return(false, nil)

		_, err := f.paymentService().Create(ctx, paymentDraft())
		assert.ErrorIs(t, err, finance.ErrUnknownInvoice)
		f.payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown vendor after a valid invoice", func(t *testing.T) {
		f := newFixture()
		f.invoices.On("ExistsByID", ctx, uint(9)).Return(true, nil)
		f.vendors.On("FindByID", ctx, uint(5)).Return(nil, partner.ErrVendorNotFound)

		d := paymentDraft()
		d.VendorID = ref(5)
		_, err := f.paymentService().Create(ctx, d)
		assert.ErrorIs(t, err, finance.ErrUnknownVendor)
	})

	t.Run("missing date", func(t *testing.T) {
		d := paymentDraft()
		d.Date = " "
		_, err := newFixture().paymentService().Create(ctx, d)
		require.Error(t, err)
		assert.Equal(t, "Amount and date are required", err.Error())
	})
}

func TestPaymentService_Update(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	stored := &finance.Payment{BaseEntity: shared.BaseEntity{ID: 4}, Status: "completed"}
	f.payments.On("FindByID", ctx, uint(4)).Return(stored, nil)

	d := paymentDraft()
	d.Date = ""
	_, err := f.paymentService().Update(ctx, 4, d)
	require.Error(t, err)
	assert.Equal(t, "Payment date is required", err.Error())
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.expenses.On("Delete", ctx, uint(1)).Return(finance.ErrExpenseNotFound)
	f.payments.On("Delete", ctx, uint(2)).Return(nil)

	assert.ErrorIs(t, f.expenseService().Delete(ctx, 1), shared.ErrNotFound)
	assert.NoError(t, f.paymentService().Delete(ctx, 2))
}
